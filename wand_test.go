package main

import (
	"math"
	"testing"
)

func TestNearestEnemy(t *testing.T) {
	store := NewEnemyStore()
	store.Spawn(NewEnemy(EnemyBat, 500, 0, 1.0))
	near := store.Spawn(NewEnemy(EnemyBat, 100, 0, 1.0))
	store.Spawn(NewEnemy(EnemyBat, 0, 300, 1.0))

	if got := NearestEnemy(store, 0, 0); got != near {
		t.Errorf("expected nearest handle %v, got %v", near, got)
	}
}

func TestNearestEnemyEmptyStore(t *testing.T) {
	store := NewEnemyStore()
	if got := NearestEnemy(store, 0, 0); got != NoEnemy {
		t.Errorf("empty store should return NoEnemy, got %v", got)
	}
}

func TestWandAimsAtNearest(t *testing.T) {
	tun := DefaultTuning()
	av := NewAvatar(CharMagician, &tun)
	av.X, av.Y = 0, 0
	av.ProjectileSpeedMult = 1.0
	store := NewEnemyStore()
	store.Spawn(NewEnemy(EnemyBat, 200, 0, 1.0))

	p := FireMagicWand(WeaponFired{Kind: WeaponMagicWand, Level: 1}, av, store, &tun)
	if p == nil {
		t.Fatal("expected a projectile with a live target")
	}
	if p.VX <= 0 || math.Abs(p.VY) > 1e-9 {
		t.Errorf("bolt should fly straight at (+x), got velocity (%f, %f)", p.VX, p.VY)
	}
	speed := math.Sqrt(p.VX*p.VX + p.VY*p.VY)
	if math.Abs(speed-tun.WandProjectileSpeed) > 1e-6 {
		t.Errorf("expected speed %f, got %f", tun.WandProjectileSpeed, speed)
	}
	if p.Pierce != 0 {
		t.Errorf("base wand bolt should have pierce 0, got %d", p.Pierce)
	}
}

func TestWandSkipsWithNoEnemies(t *testing.T) {
	tun := DefaultTuning()
	av := NewAvatar(CharMagician, &tun)
	store := NewEnemyStore()

	if p := FireMagicWand(WeaponFired{Kind: WeaponMagicWand, Level: 1}, av, store, &tun); p != nil {
		t.Error("no enemies should mean no projectile")
	}
}

func TestWandSkipsDegenerateDirection(t *testing.T) {
	tun := DefaultTuning()
	av := NewAvatar(CharMagician, &tun)
	av.X, av.Y = 30, 40
	store := NewEnemyStore()
	store.Spawn(NewEnemy(EnemyBat, 30, 40, 1.0))

	if p := FireMagicWand(WeaponFired{Kind: WeaponMagicWand, Level: 1}, av, store, &tun); p != nil {
		t.Error("target on top of the avatar leaves no direction, shot should be skipped")
	}
}

func TestWandDamagePerLevel(t *testing.T) {
	tun := DefaultTuning()
	av := NewAvatar(CharMagician, &tun)
	av.X, av.Y = 0, 0
	av.DamageMultiplier = 1.0
	store := NewEnemyStore()
	store.Spawn(NewEnemy(EnemyBat, 100, 0, 1.0))

	p := FireMagicWand(WeaponFired{Kind: WeaponMagicWand, Level: 4}, av, store, &tun)
	if p == nil {
		t.Fatal("expected a projectile")
	}
	want := tun.WandBaseDamage + tun.WandDamagePerLevel*3
	if p.Damage != want {
		t.Errorf("expected damage %f at level 4, got %f", want, p.Damage)
	}
}
