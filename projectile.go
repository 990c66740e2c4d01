package main

// Projectile is a weapon bolt traveling in a straight line. Pierce is the
// number of enemies it may pass through after the first hit, so a pierce
// budget of P allows P+1 hits total.
type Projectile struct {
	ID     string
	Weapon WeaponKind
	X, Y   float64
	VX, VY float64
	Damage float64
	Pierce int
	Life   float64
	Radius float64
	Alive  bool

	hit map[EnemyHandle]struct{} // enemies already damaged by this bolt
}

func NewProjectile(weapon WeaponKind, x, y, vx, vy, damage float64, pierce int, lifetime, radius float64) *Projectile {
	return &Projectile{
		ID:     GenerateID(3),
		Weapon: weapon,
		X:      x,
		Y:      y,
		VX:     vx,
		VY:     vy,
		Damage: damage,
		Pierce: pierce,
		Life:   lifetime,
		Radius: radius,
		Alive:  true,
	}
}

// Update moves the projectile one tick and expires it past its lifetime.
func (p *Projectile) Update(dt float64) {
	if !p.Alive {
		return
	}
	p.X += p.VX * dt
	p.Y += p.VY * dt
	p.Life -= dt
	if p.Life <= 0 {
		p.Alive = false
	}
}

// HasHit reports whether this bolt already damaged the given enemy.
func (p *Projectile) HasHit(h EnemyHandle) bool {
	_, ok := p.hit[h]
	return ok
}

// MarkHit records an enemy so the bolt cannot damage it twice while
// overlapping it across consecutive ticks.
func (p *Projectile) MarkHit(h EnemyHandle) {
	if p.hit == nil {
		p.hit = make(map[EnemyHandle]struct{}, 4)
	}
	p.hit[h] = struct{}{}
}

// HitCount returns how many distinct enemies the bolt has damaged.
func (p *Projectile) HitCount() int {
	return len(p.hit)
}

// CollideEnemies runs the bolt's narrow phase against grid candidates. Each
// overlapping enemy not yet hit gets one damage event; when the pierce
// budget is spent the bolt despawns immediately and stops scanning, leaving
// remaining candidates untouched.
func (p *Projectile) CollideEnemies(grid *SpatialGrid, enemies *EnemyStore, maxEnemyRadius float64, events *CombatEvents) {
	if !p.Alive {
		return
	}
	candidates := grid.GetNearby(p.X, p.Y, p.Radius+maxEnemyRadius)
	for _, h := range candidates {
		if p.HasHit(h) {
			continue
		}
		e := enemies.Get(h)
		if e == nil {
			continue
		}
		if !CheckCircleOverlap(p.X, p.Y, p.Radius, e.X, e.Y, e.Radius) {
			continue
		}
		events.EmitDamageEnemy(DamageEnemy{Target: h, Amount: p.Damage, Source: p.Weapon})
		p.MarkHit(h)
		if p.Pierce <= 0 {
			p.Alive = false
			return
		}
		p.Pierce--
	}
}
