// Package sim is the tank battle simulation: terrain, tanks, bullets,
// bonuses, the castle and the timer-driven effects that tie them together.
// A World advances in fixed ticks and never touches a terminal, a window
// or a clock of its own.
package sim

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tank-arcade/internal/config"
	"github.com/vovakirdan/tank-arcade/internal/core"
)

var fieldRect = core.NewRect(0, 0, FieldSize, FieldSize)

// gameOverStop is where the rising GAME OVER banner comes to rest.
const gameOverStop = FieldSize/2 - 20

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

// LevelSource supplies stage files by 1-based stage number.
type LevelSource interface {
	Load(stage int) ([]byte, error)
}

// Outcome is published when a stage ends.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeStageCleared
	OutcomeGameOver
)

// Option configures a World.
type Option func(*World)

// WithLogger sets the structured logger.
func WithLogger(l *log.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithSeed seeds the world's random number generator.
func WithSeed(seed int64) Option {
	return func(w *World) { w.rng = NewRNG(seed) }
}

// WithPlayers sets the number of local players (1 or 2).
func WithPlayers(n int) Option {
	return func(w *World) { w.seats = core.Clamp(n, 1, 2) }
}

// WithLevels sets where stage files come from.
func WithLevels(src LevelSource) Option {
	return func(w *World) { w.levels = src }
}

// WithDifficulty overrides the difficulty manager built from the config.
func WithDifficulty(dm *config.DifficultyManager) Option {
	return func(w *World) {
		if dm != nil {
			w.difficulty = dm
		}
	}
}

// World owns every entity of a battle and advances them one tick at a time.
// It is not safe for concurrent use.
type World struct {
	cfg        config.BattleConfig
	logger     *log.Logger
	rng        *RNG
	timers     *Scheduler
	levels     LevelSource
	difficulty *config.DifficultyManager
	seats      int

	stage      int
	tiles      *TileMap
	castle     *Castle
	players    []*Player
	enemies    []*Enemy
	bullets    []*Bullet
	bonuses    []*Bonus
	labels     []*Label
	explosions []*Explosion
	queue      []EnemyKind

	active     bool // players may act; cleared when the stage is won
	gameOver   bool
	gameOverY  int
	outcome    Outcome
	frozen     bool
	waterFrame int
	fireChance float64

	fortressTimer Handle
	freezeTimer   Handle

	nextID EntityID
	ticks  uint64
	sounds []Sound
}

// New creates a world with its players. Call StartStage before ticking.
func New(cfg config.BattleConfig, opts ...Option) *World {
	w := &World{
		cfg:    cfg,
		logger: discardLogger(),
		rng:    NewRNG(1),
		seats:  1,
		tiles:  NewTileMap(),
		castle: NewCastle(),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.difficulty == nil {
		w.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	}
	w.timers = NewScheduler(w.logger)

	for seat := core.Player1; int(seat) <= w.seats; seat++ {
		p := newPlayer(w.newID(), seat, cfg.Player.Lives, cfg.Player.Speed)
		w.players = append(w.players, p)
	}
	w.gameOverY = FieldSize + 40
	return w
}

func (w *World) newID() EntityID {
	w.nextID++
	return w.nextID
}

// StartStage loads a stage and resets everything but the players' lives
// and scores. A missing or malformed stage file is reported as an error
// wrapping ErrLevelNotFound or ErrMalformedLevel.
func (w *World) StartStage(stage int) error {
	if w.levels == nil {
		return fmt.Errorf("%w: no level source", ErrLevelNotFound)
	}
	data, err := w.levels.Load(stage)
	if err != nil {
		return fmt.Errorf("%w: stage %d: %v", ErrLevelNotFound, stage, err)
	}
	tiles, err := ParseLevel(data)
	if err != nil {
		return fmt.Errorf("stage %d: %w", stage, err)
	}

	w.timers.Clear()
	w.stage = stage
	w.tiles = tiles
	w.castle.Rebuild()
	w.tiles.SetObjective(w.castle.Rect)
	w.enemies = nil
	w.bullets = nil
	w.bonuses = nil
	w.labels = nil
	w.explosions = nil
	w.frozen = false
	w.waterFrame = 0
	w.active = true
	w.gameOver = false
	w.gameOverY = FieldSize + 40
	w.outcome = OutcomeNone
	w.fortressTimer = 0
	w.freezeTimer = 0
	w.queue = enemyQueue(stage, w.rng)
	w.fireChance = w.difficulty.FireChance(w.cfg.Enemy.FireChance, stage)

	for _, p := range w.players {
		p.Trophies = Trophies{}
		if p.Out {
			continue
		}
		w.respawn(p, true)
	}

	spawnEvery := w.difficulty.SpawnInterval(w.cfg.Enemy.SpawnIntervalMs, stage)
	w.timers.Schedule(spawnEvery, Effect{Kind: EffectSpawnEnemy}, RepeatForever)
	w.timers.Schedule(w.cfg.Durations.WaterFrameMs, Effect{Kind: EffectWaterToggle}, RepeatForever)
	w.emit(SoundStart)

	w.logger.Info("stage started", "stage", stage, "enemies", len(w.queue), "spawn_ms", spawnEvery)
	return nil
}

// Tick advances the world by one fixed step of deltaMs milliseconds.
// Order: input, players, enemies, bonus pickups and deaths, bullets,
// pruning, castle, timers.
func (w *World) Tick(deltaMs int, events []ControlEvent) {
	w.ticks++
	playing := w.active && !w.gameOver

	if playing {
		for _, ev := range events {
			if p := w.seat(ev.Seat); p != nil && p.Tank.Status == StatusAlive {
				p.handle(w, ev)
			}
		}
	}

	for _, p := range w.players {
		if playing && p.Tank.Status == StatusAlive {
			w.drive(p)
		}
		finishExplosion(w, &p.Tank)
	}

	w.updateEnemies(playing)

	if playing {
		w.settlePlayers()
	}

	for _, b := range w.bullets {
		if b.State != BulletRemoved {
			w.updateBullet(b)
		}
	}
	w.bullets = compact(w.bullets, func(b *Bullet) bool { return b.State != BulletRemoved })
	w.bonuses = compact(w.bonuses, func(b *Bonus) bool { return b.Active })
	w.labels = compact(w.labels, func(l *Label) bool { return l.Active })
	w.explosions = compact(w.explosions, func(e *Explosion) bool { return e.Active })

	if !w.gameOver && !w.castle.Active {
		w.endGame("castle destroyed")
	}
	if w.castle.State == CastleExploding && w.explosion(w.castle.explosion).Done() {
		w.castle.State = CastleDestroyed
	}

	w.timers.Advance(deltaMs, w.applyEffect)

	if w.gameOver && w.gameOverY > gameOverStop {
		w.gameOverY -= 4
	}
}

// compact filters s in place, keeping the elements for which keep is true.
func compact[T any](s []T, keep func(T) bool) []T {
	out := s[:0]
	for _, v := range s {
		if keep(v) {
			out = append(out, v)
		}
	}
	clear(s[len(out):])
	return out
}

// drive runs one behaviour: decide, rotate, move, observe. Rotation is
// applied before the move attempt; paralysis and freeze stop the move only.
func (w *World) drive(b Behavior) {
	t := b.State()
	in := b.DecideIntent(w)
	var res MoveResult
	if in.Move {
		prev := t.Dir
		if prev != in.Dir {
			rotate(t, in.Dir)
		}
		if !t.Paralysed && !t.Paused {
			snap := w.cfg.Gameplay.SnapOnTurn && prev.Vertical() != in.Dir.Vertical()
			res = tryMove(w, t, in.Dir, snap)
		}
	}
	b.Observe(w, in, res)
}

// updateEnemies runs the AI, finishes explosions and prunes dead enemies.
// Pruning the last enemy of an empty queue clears the stage.
func (w *World) updateEnemies(playing bool) {
	pruned := false
	for _, e := range w.enemies {
		switch e.Tank.Status {
		case StatusAlive:
			w.drive(e)
		case StatusExploding:
			finishExplosion(w, &e.Tank)
		case StatusDead:
			pruned = true
		}
	}
	if !pruned {
		return
	}
	w.enemies = compact(w.enemies, func(e *Enemy) bool { return e.Tank.Status != StatusDead })
	if playing && len(w.queue) == 0 && len(w.enemies) == 0 {
		w.finishStage()
	}
}

// settlePlayers applies pending bonuses and handles deaths.
func (w *World) settlePlayers() {
	for _, p := range w.players {
		switch {
		case p.Tank.Status == StatusAlive && p.pendingBonus != nil:
			b := p.pendingBonus
			p.pendingBonus = nil
			if b.Active {
				w.triggerBonus(b, p)
			}
		case p.Tank.Status == StatusDead && !p.Out:
			p.Lives--
			if p.Lives > 0 {
				w.respawn(p, false)
				continue
			}
			p.Out = true
			w.logger.Info("player out", "seat", p.Seat, "score", p.Score)
			if w.allOut() {
				w.endGame("no lives left")
			}
		}
	}
}

func (w *World) allOut() bool {
	for _, p := range w.players {
		if !p.Out {
			return false
		}
	}
	return true
}

// respawn resets a player at its start point behind a short shield.
func (w *World) respawn(p *Player, clearTrophies bool) {
	p.reset()
	if clearTrophies {
		p.Trophies = Trophies{}
	}
	w.timers.Cancel(p.paralyseTmr)
	w.shield(&p.Tank, w.cfg.Player.RespawnShieldMs)
}

// shield protects a tank for ms milliseconds, replacing any running shield.
func (w *World) shield(t *TankState, ms int) {
	t.Shielded = true
	w.timers.Cancel(t.shieldTimer)
	t.shieldTimer = w.timers.Schedule(ms, Effect{Kind: EffectShieldOff, Target: t.ID}, 1)
}

// paralyse freezes a player hit by a team mate.
func (w *World) paralyse(p *Player) {
	p.Tank.Paralysed = true
	w.timers.Cancel(p.paralyseTmr)
	p.paralyseTmr = w.timers.Schedule(w.cfg.Durations.ParalysisMs, Effect{Kind: EffectUnparalyse, Target: p.Tank.ID}, 1)
}

// setFreeze pauses or releases every enemy and blocks spawning meanwhile.
func (w *World) setFreeze(on bool) {
	w.frozen = on
	for _, e := range w.enemies {
		e.Tank.Paused = on
	}
}

// spawnEnemy admits the next queued enemy when there is room for it.
func (w *World) spawnEnemy() {
	if len(w.enemies) >= w.cfg.Enemy.MaxActive || len(w.queue) == 0 || w.frozen {
		return
	}

	order := []int{0, 1, 2}
	w.rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	var pos core.Point
	found := false
	for _, i := range order {
		r := core.NewRect(enemySpawns[i].X, enemySpawns[i].Y, TankSize, TankSize)
		free := true
		for _, t := range w.tanks() {
			if t.Status != StatusDead && r.Intersects(t.Rect) {
				free = false
				break
			}
		}
		if free {
			pos, found = enemySpawns[i], true
			break
		}
	}
	if !found {
		return
	}

	kind := w.queue[0]
	w.queue = w.queue[1:]
	e := newEnemy(w.newID(), kind, pos)
	if n := w.cfg.Gameplay.BonusCarrier; n > 0 && !w.carrierAlive() && w.rng.Intn(n) == 0 {
		e.Carrier = true
	}
	w.enemies = append(w.enemies, e)

	e.spawnTimer = w.timers.Schedule(w.cfg.Durations.SpawningMs, Effect{Kind: EffectEndSpawning, Target: e.Tank.ID}, 1)
	e.fireTimer = w.timers.Schedule(w.cfg.Enemy.FireIntervalMs, Effect{Kind: EffectEnemyFire, Target: e.Tank.ID}, RepeatForever)
	w.logger.Debug("enemy spawned", "kind", kind, "x", pos.X, "carrier", e.Carrier, "left", len(w.queue))
}

func (w *World) carrierAlive() bool {
	for _, e := range w.enemies {
		if e.Carrier && e.Tank.Status != StatusDead {
			return true
		}
	}
	return false
}

// killTank is called when a bullet takes a tank's health to zero.
func (w *World) killTank(t *TankState, b *Bullet) {
	if e := w.enemy(t.ID); e != nil {
		if shooter := w.player(b.Owner); shooter != nil {
			shooter.Score += e.Kind.Points()
			shooter.Kills++
			shooter.Trophies.Kills[e.Kind]++
			w.addLabel(t.Rect.TopLeft(), killLabel(e.Kind))
		}
		if e.Carrier {
			e.Carrier = false
			w.spawnBonus()
		}
	}
	w.explodeTank(t)
}

// explodeTank starts a tank's three-frame explosion.
func (w *World) explodeTank(t *TankState) {
	if t.Status == StatusExploding || t.Status == StatusDead {
		return
	}
	t.Status = StatusExploding
	t.Shielded = false
	w.timers.Cancel(t.shieldTimer)
	t.explosion = w.spawnExplosion(t.Rect, 3).ID
	if e := w.enemy(t.ID); e != nil {
		w.timers.Cancel(e.fireTimer)
		w.timers.Cancel(e.spawnTimer)
	}
	w.emit(SoundExplosion)
}

// destroyCastle blows up the objective. The game ends on the next check.
func (w *World) destroyCastle() {
	w.castle.State = CastleExploding
	w.castle.Active = false
	w.castle.explosion = w.spawnExplosion(w.castle.Rect, 3).ID
	w.emit(SoundExplosion)
}

// spawnExplosion centres an animation on r.
func (w *World) spawnExplosion(r core.Rect, frames int) *Explosion {
	cx, cy := r.Center()
	x := &Explosion{
		ID:     w.newID(),
		Pos:    core.Pt(cx-16, cy-16),
		Frames: frames,
		Active: true,
	}
	w.explosions = append(w.explosions, x)
	w.timers.Schedule(w.cfg.Durations.ExplosionFrameMs, Effect{Kind: EffectExplosionFrame, Target: x.ID}, frames)
	return x
}

func (w *World) addLabel(pos core.Point, text string) {
	l := &Label{ID: w.newID(), Pos: pos, Text: text, Active: true}
	w.labels = append(w.labels, l)
	w.timers.Schedule(w.cfg.Durations.LabelMs, Effect{Kind: EffectLabelExpire, Target: l.ID}, 1)
}

func (w *World) addBullet(b *Bullet) {
	b.ID = w.newID()
	w.bullets = append(w.bullets, b)
}

// finishStage stops player input and publishes the win after a pause.
func (w *World) finishStage() {
	if !w.active {
		return
	}
	w.active = false
	w.timers.Schedule(w.cfg.Durations.StageEndMs, Effect{Kind: EffectStageEnd, Value: int(OutcomeStageCleared)}, 1)
	w.logger.Info("stage cleared", "stage", w.stage)
}

// endGame starts the game-over sequence once.
func (w *World) endGame(reason string) {
	if w.gameOver {
		return
	}
	w.gameOver = true
	w.gameOverY = FieldSize + 40
	w.emit(SoundGameOver)
	w.timers.Schedule(w.cfg.Durations.StageEndMs, Effect{Kind: EffectStageEnd, Value: int(OutcomeGameOver)}, 1)
	w.logger.Info("game over", "stage", w.stage, "reason", reason, "score", w.Score())
}

// Lookups by entity ID.

func (w *World) seat(s core.PlayerID) *Player {
	for _, p := range w.players {
		if p.Seat == s {
			return p
		}
	}
	return nil
}

func (w *World) player(id EntityID) *Player {
	for _, p := range w.players {
		if p.Tank.ID == id {
			return p
		}
	}
	return nil
}

func (w *World) enemy(id EntityID) *Enemy {
	for _, e := range w.enemies {
		if e.Tank.ID == id {
			return e
		}
	}
	return nil
}

func (w *World) explosion(id EntityID) *Explosion {
	if id == 0 {
		return nil
	}
	for _, x := range w.explosions {
		if x.ID == id {
			return x
		}
	}
	return nil
}

func (w *World) bonus(id EntityID) *Bonus {
	for _, b := range w.bonuses {
		if b.ID == id {
			return b
		}
	}
	return nil
}

func (w *World) label(id EntityID) *Label {
	for _, l := range w.labels {
		if l.ID == id {
			return l
		}
	}
	return nil
}

// tanks lists every player and enemy tank.
func (w *World) tanks() []*TankState {
	out := make([]*TankState, 0, len(w.players)+len(w.enemies))
	for _, p := range w.players {
		out = append(out, &p.Tank)
	}
	for _, e := range w.enemies {
		out = append(out, &e.Tank)
	}
	return out
}

// Read-only accessors for renderers and the session layer.

func (w *World) Stage() int { return w.stage }
func (w *World) Tiles() *TileMap { return w.tiles }
func (w *World) Castle() *Castle { return w.castle }
func (w *World) Players() []*Player { return w.players }
func (w *World) Enemies() []*Enemy { return w.enemies }
func (w *World) Bullets() []*Bullet { return w.bullets }
func (w *World) Bonuses() []*Bonus { return w.bonuses }
func (w *World) Labels() []*Label { return w.labels }
func (w *World) Explosions() []*Explosion { return w.explosions }
func (w *World) EnemiesLeft() int { return len(w.queue) }
func (w *World) Frozen() bool { return w.frozen }
func (w *World) WaterFrame() int { return w.waterFrame }
func (w *World) Active() bool { return w.active }
func (w *World) GameOver() bool { return w.gameOver }
func (w *World) GameOverY() int { return w.gameOverY }
func (w *World) Outcome() Outcome { return w.outcome }
func (w *World) Ticks() uint64 { return w.ticks }
func (w *World) Timers() *Scheduler { return w.timers }
func (w *World) Config() config.BattleConfig { return w.cfg }

// Seat returns the player in a seat, or nil.
func (w *World) Seat(s core.PlayerID) *Player {
	return w.seat(s)
}

// Score returns the combined score of all players.
func (w *World) Score() int {
	total := 0
	for _, p := range w.players {
		total += p.Score
	}
	return total
}
