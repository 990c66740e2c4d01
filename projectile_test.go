package main

import "testing"

func TestProjectileMotionAndLifetime(t *testing.T) {
	p := NewProjectile(WeaponMagicWand, 0, 0, 100, 0, 10, 0, 0.5, 8)

	p.Update(0.1)
	if p.X != 10 || p.Y != 0 {
		t.Errorf("expected position (10, 0) after 0.1s, got (%f, %f)", p.X, p.Y)
	}
	if !p.Alive {
		t.Error("projectile should still be alive mid-flight")
	}

	// Four more ticks exhaust the 0.5s lifetime.
	for i := 0; i < 4; i++ {
		p.Update(0.1)
	}
	if p.Alive {
		t.Error("projectile should expire once its lifetime runs out")
	}
}

func TestProjectileDeadDoesNotMove(t *testing.T) {
	p := NewProjectile(WeaponMagicWand, 0, 0, 100, 0, 10, 0, 5, 8)
	p.Alive = false
	p.Update(1.0)
	if p.X != 0 {
		t.Errorf("dead projectile moved to x=%f", p.X)
	}
}

func TestProjectileNoPierceSingleHit(t *testing.T) {
	store := NewEnemyStore()
	grid := NewSpatialGrid(64)
	events := NewCombatEvents()
	store.Spawn(NewEnemy(EnemyBat, 0, 0, 1.0))
	store.Spawn(NewEnemy(EnemyBat, 5, 0, 1.0))
	rebuild(grid, store)

	p := NewProjectile(WeaponMagicWand, 0, 0, 0, 0, 10, 0, 5, 8)
	p.CollideEnemies(grid, store, 32, events)

	if len(events.DamageEnemy) != 1 {
		t.Errorf("pierce 0 bolt should damage exactly one enemy, got %d events", len(events.DamageEnemy))
	}
	if p.Alive {
		t.Error("pierce 0 bolt should despawn on its first hit")
	}
}

func TestProjectilePierceBudget(t *testing.T) {
	// Two enemies overlapping the bolt at the same position. Pierce 1 means
	// two hits total: both get damaged and the bolt despawns on the second.
	store := NewEnemyStore()
	grid := NewSpatialGrid(64)
	events := NewCombatEvents()
	store.Spawn(NewEnemy(EnemyBat, 0, 0, 1.0))
	store.Spawn(NewEnemy(EnemyBat, 0, 0, 1.0))
	store.Spawn(NewEnemy(EnemyBat, 0, 0, 1.0))
	rebuild(grid, store)

	p := NewProjectile(WeaponMagicWand, 0, 0, 0, 0, 10, 1, 5, 8)
	p.CollideEnemies(grid, store, 32, events)

	if len(events.DamageEnemy) != 2 {
		t.Errorf("pierce 1 bolt should damage exactly two enemies, got %d events", len(events.DamageEnemy))
	}
	if p.Alive {
		t.Error("bolt should despawn once the pierce budget is spent")
	}
	if p.HitCount() > 2 {
		t.Errorf("bolt recorded %d hits, budget allows 2", p.HitCount())
	}
}

func TestProjectileNoDoubleHitAcrossTicks(t *testing.T) {
	store := NewEnemyStore()
	grid := NewSpatialGrid(64)
	events := NewCombatEvents()
	store.Spawn(NewEnemy(EnemyZombie, 0, 0, 1.0))
	rebuild(grid, store)

	// Plenty of pierce so the bolt survives the first hit.
	p := NewProjectile(WeaponHolyWand, 0, 0, 0, 0, 10, 5, 5, 8)
	p.CollideEnemies(grid, store, 32, events)
	p.CollideEnemies(grid, store, 32, events)

	if len(events.DamageEnemy) != 1 {
		t.Errorf("an enemy overlapped across ticks should be hit once, got %d events", len(events.DamageEnemy))
	}
	if !p.Alive {
		t.Error("bolt with remaining pierce should survive the hit")
	}
}

func TestProjectileSkipsStaleHandles(t *testing.T) {
	store := NewEnemyStore()
	grid := NewSpatialGrid(64)
	events := NewCombatEvents()
	h := store.Spawn(NewEnemy(EnemyBat, 0, 0, 1.0))
	rebuild(grid, store)
	store.Despawn(h) // grid still holds the stale handle

	p := NewProjectile(WeaponMagicWand, 0, 0, 0, 0, 10, 0, 5, 8)
	p.CollideEnemies(grid, store, 32, events)

	if len(events.DamageEnemy) != 0 {
		t.Errorf("stale handle produced %d damage events", len(events.DamageEnemy))
	}
	if !p.Alive {
		t.Error("bolt should keep flying when the only candidate is stale")
	}
}
