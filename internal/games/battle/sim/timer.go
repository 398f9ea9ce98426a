package sim

import (
	"github.com/charmbracelet/log"
)

// Handle identifies a scheduled timer entry.
type Handle uint64

// RepeatForever makes a timer fire until it is cancelled.
const RepeatForever = -1

// EffectKind tags what a timer does when it fires.
type EffectKind int

const (
	EffectSpawnEnemy     EffectKind = iota // try to admit the next queued enemy
	EffectExplosionFrame                   // advance an explosion animation
	EffectEndSpawning                      // spawning enemy becomes Alive
	EffectShieldOff                        // drop a tank's shield
	EffectFortressRevert                   // rebuild the castle perimeter in brick
	EffectUnfreeze                         // enemies may move again
	EffectUnparalyse                       // player may move again
	EffectEnemyFire                        // allow an enemy one more shot
	EffectBonusBlink                       // toggle bonus visibility
	EffectBonusExpire                      // remove an uncollected bonus
	EffectLabelExpire                      // remove a floating score label
	EffectWaterToggle                      // swap the water animation frame
	EffectStageEnd                         // publish the stage outcome
)

var effectNames = [...]string{
	EffectSpawnEnemy:     "spawn-enemy",
	EffectExplosionFrame: "explosion-frame",
	EffectEndSpawning:    "end-spawning",
	EffectShieldOff:      "shield-off",
	EffectFortressRevert: "fortress-revert",
	EffectUnfreeze:       "unfreeze",
	EffectUnparalyse:     "unparalyse",
	EffectEnemyFire:      "enemy-fire",
	EffectBonusBlink:     "bonus-blink",
	EffectBonusExpire:    "bonus-expire",
	EffectLabelExpire:    "label-expire",
	EffectWaterToggle:    "water-toggle",
	EffectStageEnd:       "stage-end",
}

// String returns the effect name used in logs.
func (k EffectKind) String() string {
	if k >= 0 && int(k) < len(effectNames) {
		return effectNames[k]
	}
	return "unknown"
}

// Effect is the payload of a timer: a kind, the entity it applies to and
// an optional integer argument.
type Effect struct {
	Kind   EffectKind
	Target EntityID
	Value  int
}

type timerEntry struct {
	handle   Handle
	interval int
	repeat   int
	times    int
	elapsed  int
	effect   Effect
	dead     bool
}

// Scheduler runs delayed and repeating effects from elapsed tick time.
// Entries fire in insertion order. Entries added while Advance runs are
// not visited until the next call.
type Scheduler struct {
	entries []*timerEntry
	next    Handle
	logger  *log.Logger
}

// NewScheduler creates an empty scheduler. A nil logger discards output.
func NewScheduler(logger *log.Logger) *Scheduler {
	if logger == nil {
		logger = discardLogger()
	}
	return &Scheduler{logger: logger}
}

// Schedule registers an effect to fire every intervalMs, repeat times in
// total (RepeatForever for no limit).
func (s *Scheduler) Schedule(intervalMs int, effect Effect, repeat int) Handle {
	s.next++
	s.entries = append(s.entries, &timerEntry{
		handle:   s.next,
		interval: intervalMs,
		repeat:   repeat,
		effect:   effect,
	})
	return s.next
}

// Cancel stops the entry with the given handle. It reports whether a live
// entry was found.
func (s *Scheduler) Cancel(h Handle) bool {
	if h == 0 {
		return false
	}
	for _, e := range s.entries {
		if e.handle == h && !e.dead {
			e.dead = true
			return true
		}
	}
	return false
}

// Pending reports whether h refers to a live entry.
func (s *Scheduler) Pending(h Handle) bool {
	for _, e := range s.entries {
		if e.handle == h && !e.dead {
			return true
		}
	}
	return false
}

// Len returns the number of live entries.
func (s *Scheduler) Len() int {
	n := 0
	for _, e := range s.entries {
		if !e.dead {
			n++
		}
	}
	return n
}

// Clear cancels every entry.
func (s *Scheduler) Clear() {
	for _, e := range s.entries {
		e.dead = true
	}
	s.entries = nil
}

// Advance adds deltaMs to every entry and fires each entry whose elapsed
// time reached its interval, at most once per call. An entry that used up
// its repeats is retired before its effect runs. When fire returns an
// error the entry is evicted and the error is logged, never returned.
func (s *Scheduler) Advance(deltaMs int, fire func(Effect) error) {
	snapshot := make([]*timerEntry, len(s.entries))
	copy(snapshot, s.entries)

	for _, e := range snapshot {
		if e.dead {
			continue
		}
		e.elapsed += deltaMs
		if e.elapsed < e.interval {
			continue
		}
		e.elapsed -= e.interval
		e.times++
		if e.repeat >= 0 && e.times >= e.repeat {
			e.dead = true
		}
		if err := fire(e.effect); err != nil {
			e.dead = true
			s.logger.Warn("timer effect failed", "effect", e.effect.Kind, "target", e.effect.Target, "err", err)
		}
	}

	live := s.entries[:0]
	for _, e := range s.entries {
		if !e.dead {
			live = append(live, e)
		}
	}
	clear(s.entries[len(live):])
	s.entries = live
}
