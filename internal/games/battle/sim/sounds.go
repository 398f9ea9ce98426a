package sim

// Sound identifies an audio cue requested by the simulation. Playback is
// up to the frontend.
type Sound string

const (
	SoundFire      Sound = "fire"
	SoundBrick     Sound = "brick"
	SoundSteel     Sound = "steel"
	SoundExplosion Sound = "explosion"
	SoundBonus     Sound = "bonus"
	SoundStart     Sound = "start"
	SoundGameOver  Sound = "end"
)

// emit queues a sound for the current tick.
func (w *World) emit(s Sound) {
	w.sounds = append(w.sounds, s)
}

// DrainSounds returns and clears the sounds requested since the last call.
func (w *World) DrainSounds() []Sound {
	out := w.sounds
	w.sounds = nil
	return out
}
