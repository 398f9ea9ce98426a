package sim

// Snapshot is a flat copy of the world state for determinism checks and
// debug dumps. Primitive types only.
type Snapshot struct {
	Tick        uint64
	Stage       int
	Active      bool
	GameOver    bool
	Outcome     int
	Frozen      bool
	EnemiesLeft int
	Terrain     string

	// Each player is 9 ints: X, Y, Dir, Status, Lives, Score, Superpowers, Shielded, Paralysed
	PlayerData []int
	// Each enemy is 6 ints: Kind, X, Y, Dir, Status, Health
	EnemyData []int
	// Each bullet is 5 ints: X, Y, Dir, State, OwnerSide
	BulletData []int
	// Each bonus is 3 ints: Kind, X, Y
	BonusData []int

	CastleState int
	Timers      int
	RNGState    uint64
}

// Snapshot returns the current world state.
func (w *World) Snapshot() Snapshot {
	playerData := make([]int, 0, len(w.players)*9)
	for _, p := range w.players {
		t := p.Tank
		playerData = append(playerData,
			t.Rect.X, t.Rect.Y, int(t.Dir), int(t.Status),
			p.Lives, p.Score, t.Superpowers, boolInt(t.Shielded), boolInt(t.Paralysed))
	}

	enemyData := make([]int, 0, len(w.enemies)*6)
	for _, e := range w.enemies {
		t := e.Tank
		enemyData = append(enemyData, int(e.Kind), t.Rect.X, t.Rect.Y, int(t.Dir), int(t.Status), t.Health)
	}

	bulletData := make([]int, 0, len(w.bullets)*5)
	for _, b := range w.bullets {
		bulletData = append(bulletData, b.Rect.X, b.Rect.Y, int(b.Dir), int(b.State), int(b.OwnerSide))
	}

	bonusData := make([]int, 0, len(w.bonuses)*3)
	for _, b := range w.bonuses {
		if b.Active {
			bonusData = append(bonusData, int(b.Kind), b.Rect.X, b.Rect.Y)
		}
	}

	return Snapshot{
		Tick:        w.ticks,
		Stage:       w.stage,
		Active:      w.active,
		GameOver:    w.gameOver,
		Outcome:     int(w.outcome),
		Frozen:      w.frozen,
		EnemiesLeft: len(w.queue),
		Terrain:     w.tiles.String(),
		PlayerData:  playerData,
		EnemyData:   enemyData,
		BulletData:  bulletData,
		BonusData:   bonusData,
		CastleState: int(w.castle.State),
		Timers:      w.timers.Len(),
		RNGState:    w.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Stage)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Outcome)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemiesLeft) //#nosec G115 -- hash computation
	h = h*31 + uint64(boolInt(snap.Active))
	h = h*31 + uint64(boolInt(snap.GameOver))
	h = h*31 + uint64(boolInt(snap.Frozen))
	for i := 0; i < len(snap.Terrain); i++ {
		h = h*31 + uint64(snap.Terrain[i])
	}
	for _, data := range [][]int{snap.PlayerData, snap.EnemyData, snap.BulletData, snap.BonusData} {
		h = h*31 + uint64(len(data))
		for _, v := range data {
			h = h*31 + uint64(v) //#nosec G115 -- hash computation
		}
	}
	h = h*31 + uint64(snap.CastleState) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Timers)      //#nosec G115 -- hash computation
	h = h*31 + snap.RNGState
	return h
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
