package main

import "math"

// WhipSide is the side of the avatar the next swing covers.
type WhipSide int

const (
	WhipRight WhipSide = iota
	WhipLeft
)

func (s WhipSide) Flip() WhipSide {
	if s == WhipRight {
		return WhipLeft
	}
	return WhipRight
}

// Sign returns +1 for the right side, -1 for the left.
func (s WhipSide) Sign() float64 {
	if s == WhipRight {
		return 1
	}
	return -1
}

// whipDamage is the per-hit damage before the avatar's damage multiplier.
func whipDamage(kind WeaponKind, level int, tun *Tuning) float64 {
	base, perLevel := tun.WhipBaseDamage, tun.WhipDamagePerLevel
	if kind == WeaponBloodyTear {
		base, perLevel = base*2, perLevel*1.5
	}
	return base + perLevel*float64(level-1)
}

// whipFanHit reports whether a relative offset from the avatar falls inside
// the swing fan on the given side. sideSign 0 accepts both sides. The fan is
// the sector of the range circle whose vertical extent is squeezed by the
// spread factor. Enemies exactly on the vertical axis are on neither side.
func whipFanHit(relX, relY, rng, spread, sideSign float64) bool {
	if sideSign != 0 && relX*sideSign <= 0 {
		return false
	}
	if relX*relX+relY*relY >= rng*rng {
		return false
	}
	return math.Abs(relY) < rng*spread
}

// FireWhip resolves one whip activation: flip the stored side, then sweep a
// fan on the new side and emit a damage event for every enemy inside it.
// There is no cap on hits per swing. The side flips even when the swing hits
// nothing. The evolved form sweeps both sides at once.
func FireWhip(ev WeaponFired, av *Avatar, grid *SpatialGrid, enemies *EnemyStore, tun *Tuning, events *CombatEvents) {
	av.WhipSide = av.WhipSide.Flip()
	sideSign := av.WhipSide.Sign()
	if ev.Kind == WeaponBloodyTear {
		sideSign = 0
	}

	rng := tun.WhipBaseRange * av.AreaMultiplier
	damage := whipDamage(ev.Kind, ev.Level, tun) * av.DamageMultiplier

	// Pad the broad-phase query so bodies whose center sits in a neighboring
	// cell still show up.
	candidates := grid.GetNearby(av.X, av.Y, rng+tun.MaxEnemyRadius)
	for _, h := range candidates {
		e := enemies.Get(h)
		if e == nil {
			continue
		}
		if whipFanHit(e.X-av.X, e.Y-av.Y, rng, tun.WhipSpreadFactor, sideSign) {
			events.EmitDamageEnemy(DamageEnemy{Target: h, Amount: damage, Source: ev.Kind})
		}
	}
}
