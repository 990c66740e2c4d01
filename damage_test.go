package main

import "testing"

func TestApplyEnemyDamageKillsAndReports(t *testing.T) {
	store := NewEnemyStore()
	events := NewCombatEvents()
	h := store.Spawn(NewEnemy(EnemyBat, 42, -7, 1.0)) // 10 HP

	events.EmitDamageEnemy(DamageEnemy{Target: h, Amount: 6, Source: WeaponWhip})
	events.EmitDamageEnemy(DamageEnemy{Target: h, Amount: 6, Source: WeaponWhip})
	ApplyEnemyDamage(events, store)

	if len(events.EnemyDied) != 1 {
		t.Fatalf("expected exactly one death, got %d", len(events.EnemyDied))
	}
	died := events.EnemyDied[0]
	if died.X != 42 || died.Y != -7 {
		t.Errorf("death should capture last position, got (%f, %f)", died.X, died.Y)
	}
	if died.Kind != EnemyBat || died.XPValue != 3 {
		t.Errorf("death should carry kind and xp, got %v/%d", died.Kind, died.XPValue)
	}
	if store.Get(h) != nil {
		t.Error("dead enemy should be despawned")
	}
}

func TestApplyEnemyDamageSkipsStale(t *testing.T) {
	store := NewEnemyStore()
	events := NewCombatEvents()
	h := store.Spawn(NewEnemy(EnemyBat, 0, 0, 1.0))
	store.Despawn(h)

	events.EmitDamageEnemy(DamageEnemy{Target: h, Amount: 100, Source: WeaponWhip})
	ApplyEnemyDamage(events, store)

	if len(events.EnemyDied) != 0 {
		t.Errorf("stale target produced %d deaths", len(events.EnemyDied))
	}
}

func TestApplyEnemyDamageOneDeathForOverkill(t *testing.T) {
	store := NewEnemyStore()
	events := NewCombatEvents()
	h := store.Spawn(NewEnemy(EnemyBat, 0, 0, 1.0))

	// The second event arrives after the kill and must be skipped.
	events.EmitDamageEnemy(DamageEnemy{Target: h, Amount: 100, Source: WeaponWhip})
	events.EmitDamageEnemy(DamageEnemy{Target: h, Amount: 100, Source: WeaponMagicWand})
	ApplyEnemyDamage(events, store)

	if len(events.EnemyDied) != 1 {
		t.Errorf("overkill should report one death, got %d", len(events.EnemyDied))
	}
}

func TestApplyEnemyDamageZeroAmount(t *testing.T) {
	store := NewEnemyStore()
	events := NewCombatEvents()
	h := store.Spawn(NewEnemy(EnemyBat, 0, 0, 1.0))

	events.EmitDamageEnemy(DamageEnemy{Target: h, Amount: 0, Source: WeaponWhip})
	events.EmitDamageEnemy(DamageEnemy{Target: h, Amount: -5, Source: WeaponWhip})
	ApplyEnemyDamage(events, store)

	if e := store.Get(h); e == nil || e.HP != e.MaxHP {
		t.Error("zero or negative damage must not change HP")
	}
	if len(events.EnemyDied) != 0 {
		t.Errorf("zero damage produced %d deaths", len(events.EnemyDied))
	}
}

func TestEnemyTakeDamageClamps(t *testing.T) {
	e := NewEnemy(EnemyZombie, 0, 0, 1.0)
	e.TakeDamage(-50)
	if e.HP != e.MaxHP {
		t.Error("negative damage should not heal")
	}
	e.TakeDamage(1e9)
	if e.HP != 0 {
		t.Errorf("HP should clamp at zero, got %f", e.HP)
	}
	if !e.Dead() {
		t.Error("zero HP means dead")
	}
}

func TestPlayerContactOpensWindow(t *testing.T) {
	tun := DefaultTuning()
	av := NewAvatar(CharKnight, &tun)
	av.X, av.Y = 0, 0
	store := NewEnemyStore()
	grid := NewSpatialGrid(tun.SpatialCellSize)
	events := NewCombatEvents()
	store.Spawn(NewEnemy(EnemyBat, av.X+5, av.Y, 1.0))
	rebuild(grid, store)

	kind, hit := ResolvePlayerContact(av, grid, store, &tun, events)
	if !hit || kind != EnemyBat {
		t.Fatalf("expected bat contact, got hit=%v kind=%v", hit, kind)
	}
	if len(events.PlayerDamaged) != 1 || events.PlayerDamaged[0].Amount != 5 {
		t.Errorf("expected one 5-damage event, got %+v", events.PlayerDamaged)
	}
	if av.InvincibleFor != tun.InvincibilityDuration {
		t.Errorf("contact should open a %fs window, got %f", tun.InvincibilityDuration, av.InvincibleFor)
	}
}

func TestPlayerContactOneHitPerTick(t *testing.T) {
	tun := DefaultTuning()
	av := NewAvatar(CharKnight, &tun)
	av.X, av.Y = 0, 0
	store := NewEnemyStore()
	grid := NewSpatialGrid(tun.SpatialCellSize)
	events := NewCombatEvents()
	for i := 0; i < 5; i++ {
		store.Spawn(NewEnemy(EnemyZombie, av.X, av.Y, 1.0))
	}
	rebuild(grid, store)

	ResolvePlayerContact(av, grid, store, &tun, events)
	if len(events.PlayerDamaged) != 1 {
		t.Errorf("five overlapping bodies should land one hit, got %d", len(events.PlayerDamaged))
	}
}

func TestPlayerContactSkippedWhileInvincible(t *testing.T) {
	tun := DefaultTuning()
	av := NewAvatar(CharKnight, &tun)
	av.X, av.Y = 0, 0
	av.InvincibleFor = 0.3
	store := NewEnemyStore()
	grid := NewSpatialGrid(tun.SpatialCellSize)
	events := NewCombatEvents()
	store.Spawn(NewEnemy(EnemyDemon, av.X, av.Y, 1.0))
	rebuild(grid, store)

	if _, hit := ResolvePlayerContact(av, grid, store, &tun, events); hit {
		t.Error("contact must be skipped while the mercy window is open")
	}
	if len(events.PlayerDamaged) != 0 {
		t.Error("no damage events while invincible")
	}
}

func TestTickInvincibilityClampsAtZero(t *testing.T) {
	tun := DefaultTuning()
	av := NewAvatar(CharKnight, &tun)
	av.InvincibleFor = 0.05
	TickInvincibility(av, 0.1)
	if av.InvincibleFor != 0 {
		t.Errorf("window should clamp at zero, got %f", av.InvincibleFor)
	}
	if av.Invincible() {
		t.Error("expired window should not report invincible")
	}
}

func TestApplyPlayerDamageDrainsQueue(t *testing.T) {
	tun := DefaultTuning()
	av := NewAvatar(CharKnight, &tun)
	start := av.HP
	events := NewCombatEvents()
	events.EmitPlayerDamaged(PlayerDamaged{Amount: 10})
	events.EmitPlayerDamaged(PlayerDamaged{Amount: 7})
	ApplyPlayerDamage(events, av)
	if av.HP != start-17 {
		t.Errorf("expected HP %f, got %f", start-17, av.HP)
	}
}
