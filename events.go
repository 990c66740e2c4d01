package main

// Combat resolvers communicate through per-tick event queues instead of
// calling each other directly. Queues are appended during a tick, read in
// emission order, and reset before the next tick begins.

// WeaponFired is emitted by the cooldown scheduler when a weapon's timer
// expires. One resolver per weapon kind consumes it.
type WeaponFired struct {
	Kind  WeaponKind
	Level int
}

// DamageEnemy requests damage against a specific enemy. Emitters do not
// check liveness; the damage resolver drops stale targets.
type DamageEnemy struct {
	Target EnemyHandle
	Amount float64
	Source WeaponKind
}

// EnemyDied records a kill with the position and rewards captured at the
// moment of death, so downstream consumers never need the despawned enemy.
type EnemyDied struct {
	Target  EnemyHandle
	X, Y    float64
	Kind    EnemyKind
	XPValue int
}

// PlayerDamaged carries contact damage toward the avatar's health.
type PlayerDamaged struct {
	Amount float64
}

// CombatEvents holds all per-tick queues. Reset keeps capacity.
type CombatEvents struct {
	WeaponFired   []WeaponFired
	DamageEnemy   []DamageEnemy
	EnemyDied     []EnemyDied
	PlayerDamaged []PlayerDamaged
}

func NewCombatEvents() *CombatEvents {
	return &CombatEvents{}
}

func (e *CombatEvents) EmitWeaponFired(ev WeaponFired) {
	e.WeaponFired = append(e.WeaponFired, ev)
}

func (e *CombatEvents) EmitDamageEnemy(ev DamageEnemy) {
	e.DamageEnemy = append(e.DamageEnemy, ev)
}

func (e *CombatEvents) EmitEnemyDied(ev EnemyDied) {
	e.EnemyDied = append(e.EnemyDied, ev)
}

func (e *CombatEvents) EmitPlayerDamaged(ev PlayerDamaged) {
	e.PlayerDamaged = append(e.PlayerDamaged, ev)
}

// Reset clears every queue at the end of a tick.
func (e *CombatEvents) Reset() {
	e.WeaponFired = e.WeaponFired[:0]
	e.DamageEnemy = e.DamageEnemy[:0]
	e.EnemyDied = e.EnemyDied[:0]
	e.PlayerDamaged = e.PlayerDamaged[:0]
}
