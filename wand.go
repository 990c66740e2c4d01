package main

import "math"

// wandDamage is the per-hit damage before the avatar's damage multiplier.
func wandDamage(kind WeaponKind, level int, tun *Tuning) float64 {
	base, perLevel := tun.WandBaseDamage, tun.WandDamagePerLevel
	if kind == WeaponHolyWand {
		base, perLevel = base*2, perLevel*2
	}
	return base + perLevel*float64(level-1)
}

// wandPierce is how many enemies a bolt passes through before despawning.
func wandPierce(kind WeaponKind, level int) int {
	if kind == WeaponHolyWand {
		return 2 + level/4
	}
	// Base wand gains pierce late.
	if level >= 5 {
		return 1
	}
	return 0
}

// NearestEnemy scans every live enemy and returns the handle closest to the
// given point. Deliberately a full scan rather than a grid query: the target
// can be anywhere, not just nearby. Returns NoEnemy when the store is empty.
func NearestEnemy(enemies *EnemyStore, x, y float64) EnemyHandle {
	best := NoEnemy
	bestDist := math.MaxFloat64
	enemies.ForEach(func(h EnemyHandle, e *Enemy) {
		d2 := DistanceSq(x, y, e.X, e.Y)
		if d2 < bestDist {
			bestDist = d2
			best = h
		}
	})
	return best
}

// FireMagicWand resolves one wand activation: aim a bolt at the nearest
// enemy and return it. Returns nil when there is no enemy to aim at or the
// target sits exactly on the avatar, leaving no usable direction. A skipped
// shot is simply lost; the cooldown was already spent.
func FireMagicWand(ev WeaponFired, av *Avatar, enemies *EnemyStore, tun *Tuning) *Projectile {
	target := NearestEnemy(enemies, av.X, av.Y)
	e := enemies.Get(target)
	if e == nil {
		return nil
	}

	dx := e.X - av.X
	dy := e.Y - av.Y
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist < 1e-6 {
		return nil
	}

	speed := tun.WandProjectileSpeed * av.ProjectileSpeedMult
	return NewProjectile(
		ev.Kind,
		av.X, av.Y,
		dx/dist*speed, dy/dist*speed,
		wandDamage(ev.Kind, ev.Level, tun)*av.DamageMultiplier,
		wandPierce(ev.Kind, ev.Level),
		tun.WandProjectileLifetime,
		tun.WandProjectileRadius,
	)
}
