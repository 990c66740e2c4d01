package main

import (
	"math"
	"math/rand"
)

const (
	EnemySpawnBaseInterval = 0.5    // seconds at difficulty 1.0
	EnemyMaxCount          = 500    // hard cap on live enemies
	EnemyCullDistance      = 2000.0 // despawn beyond this distance from the avatar
	EnemySpawnDistance     = 900.0  // spawn ring radius around the avatar, just off-screen
	DifficultyStep         = 0.1    // added per survived minute
	DifficultyMax          = 10.0
	BossSpawnTime          = 1800.0 // Death appears at the 30-minute mark
)

// EnemyKind enumerates the enemy roster.
type EnemyKind int

const (
	EnemyBat EnemyKind = iota
	EnemySkeleton
	EnemyZombie
	EnemyGhost
	EnemyDemon
	EnemyMedusa
	EnemyDragon
	EnemyBossDeath
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyBat:
		return "bat"
	case EnemySkeleton:
		return "skeleton"
	case EnemyZombie:
		return "zombie"
	case EnemyGhost:
		return "ghost"
	case EnemyDemon:
		return "demon"
	case EnemyMedusa:
		return "medusa"
	case EnemyDragon:
		return "dragon"
	case EnemyBossDeath:
		return "boss_death"
	}
	return "unknown"
}

type enemyStats struct {
	HP            float64
	Speed         float64
	ContactDamage float64
	XPValue       int
	GoldChance    float64
	Radius        float64
}

// Base stats before difficulty scaling. Radii stay under MaxEnemyRadius so
// radius-padded grid queries never miss a body.
var enemyTable = map[EnemyKind]enemyStats{
	EnemyBat:       {HP: 10, Speed: 150, ContactDamage: 5, XPValue: 3, GoldChance: 0.05, Radius: 8},
	EnemySkeleton:  {HP: 30, Speed: 80, ContactDamage: 8, XPValue: 5, GoldChance: 0.08, Radius: 12},
	EnemyZombie:    {HP: 80, Speed: 40, ContactDamage: 12, XPValue: 8, GoldChance: 0.10, Radius: 14},
	EnemyGhost:     {HP: 40, Speed: 70, ContactDamage: 10, XPValue: 6, GoldChance: 0.08, Radius: 10},
	EnemyMedusa:    {HP: 60, Speed: 60, ContactDamage: 12, XPValue: 8, GoldChance: 0.10, Radius: 12},
	EnemyDemon:     {HP: 100, Speed: 120, ContactDamage: 15, XPValue: 10, GoldChance: 0.12, Radius: 14},
	EnemyDragon:    {HP: 200, Speed: 80, ContactDamage: 20, XPValue: 15, GoldChance: 0.15, Radius: 20},
	EnemyBossDeath: {HP: 5000, Speed: 30, ContactDamage: 50, XPValue: 500, GoldChance: 1.0, Radius: 30},
}

// Waves unlock tougher kinds as the run progresses (minute thresholds).
var spawnWaves = []struct {
	AfterMinutes float64
	Kinds        []EnemyKind
}{
	{0, []EnemyKind{EnemyBat}},
	{1, []EnemyKind{EnemyBat, EnemySkeleton}},
	{3, []EnemyKind{EnemySkeleton, EnemyZombie, EnemyGhost}},
	{6, []EnemyKind{EnemyZombie, EnemyGhost, EnemyMedusa}},
	{10, []EnemyKind{EnemyMedusa, EnemyDemon}},
	{15, []EnemyKind{EnemyDemon, EnemyDragon}},
}

// Enemy is a single chaser. All behavior is "walk straight at the avatar";
// variety comes from the stat table, not per-kind code.
type Enemy struct {
	Kind          EnemyKind
	X, Y          float64
	HP            float64
	MaxHP         float64
	MoveSpeed     float64
	ContactDamage float64
	XPValue       int
	GoldChance    float64
	Radius        float64
}

// NewEnemy builds an enemy with HP and contact damage scaled by difficulty.
// Movement speed and rewards are not scaled.
func NewEnemy(kind EnemyKind, x, y, difficulty float64) Enemy {
	st := enemyTable[kind]
	return Enemy{
		Kind:          kind,
		X:             x,
		Y:             y,
		HP:            st.HP * difficulty,
		MaxHP:         st.HP * difficulty,
		MoveSpeed:     st.Speed,
		ContactDamage: st.ContactDamage * difficulty,
		XPValue:       st.XPValue,
		GoldChance:    st.GoldChance,
		Radius:        st.Radius,
	}
}

// Update walks the enemy toward the target position.
func (e *Enemy) Update(dt, targetX, targetY float64) {
	dx := targetX - e.X
	dy := targetY - e.Y
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist < 1e-6 {
		return
	}
	e.X += dx / dist * e.MoveSpeed * dt
	e.Y += dy / dist * e.MoveSpeed * dt
}

// TakeDamage applies a hit, clamping HP at zero. Negative amounts are
// treated as zero so a hostile event can never heal.
func (e *Enemy) TakeDamage(amount float64) {
	if amount < 0 {
		amount = 0
	}
	e.HP -= amount
	if e.HP < 0 {
		e.HP = 0
	}
}

// Dead reports whether HP has reached zero.
func (e *Enemy) Dead() bool {
	return e.HP <= 0
}

// DifficultyFromElapsed returns the scalar for a run clock: +0.1 per whole
// minute survived, capped.
func DifficultyFromElapsed(elapsed float64) float64 {
	d := 1.0 + DifficultyStep*math.Floor(elapsed/60.0)
	if d > DifficultyMax {
		d = DifficultyMax
	}
	return d
}

// EffectiveSpawnInterval shortens the spawn period as difficulty climbs.
func EffectiveSpawnInterval(base, difficulty float64) float64 {
	if difficulty < 1 {
		difficulty = 1
	}
	return base / difficulty
}

// kindsForElapsed returns the spawn pool for the current run clock.
func kindsForElapsed(elapsed float64) []EnemyKind {
	minutes := elapsed / 60.0
	pool := spawnWaves[0].Kinds
	for _, w := range spawnWaves {
		if minutes >= w.AfterMinutes {
			pool = w.Kinds
		}
	}
	return pool
}

// EnemySpawner accumulates time and decides when the next enemy appears.
type EnemySpawner struct {
	Timer float64
}

// Update advances the spawn timer and returns how many enemies to spawn this
// tick. Usually 0 or 1; more after a long stall.
func (sp *EnemySpawner) Update(dt, elapsed float64) int {
	interval := EffectiveSpawnInterval(EnemySpawnBaseInterval, DifficultyFromElapsed(elapsed))
	sp.Timer += dt
	n := 0
	for sp.Timer >= interval {
		sp.Timer -= interval
		n++
	}
	return n
}

// spawnPosition picks a point on a ring around the avatar so enemies appear
// just outside the view.
func spawnPosition(cx, cy float64) (float64, float64) {
	angle := rand.Float64() * 2 * math.Pi
	return cx + math.Cos(angle)*EnemySpawnDistance, cy + math.Sin(angle)*EnemySpawnDistance
}

// rollSpawnKind picks an enemy kind from the pool for the current clock.
func rollSpawnKind(elapsed float64) EnemyKind {
	pool := kindsForElapsed(elapsed)
	return pool[rand.Intn(len(pool))]
}
