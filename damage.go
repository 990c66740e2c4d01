package main

// ApplyEnemyDamage drains the DamageEnemy queue in arrival order. Stale
// targets are skipped silently; they died or despawned earlier this tick.
// An enemy that reaches zero HP emits exactly one EnemyDied with its
// position and rewards captured before the slot is freed.
func ApplyEnemyDamage(events *CombatEvents, enemies *EnemyStore) {
	for _, ev := range events.DamageEnemy {
		e := enemies.Get(ev.Target)
		if e == nil {
			continue
		}
		e.TakeDamage(ev.Amount)
		if e.Dead() {
			events.EmitEnemyDied(EnemyDied{
				Target:  ev.Target,
				X:       e.X,
				Y:       e.Y,
				Kind:    e.Kind,
				XPValue: e.XPValue,
			})
			enemies.Despawn(ev.Target)
		}
	}
}

// TickInvincibility counts the avatar's mercy window down. Runs at the start
// of the simulation step, so a window granted last tick always survives at
// least one full tick before it can expire.
func TickInvincibility(av *Avatar, dt float64) {
	if av.InvincibleFor > 0 {
		av.InvincibleFor -= dt
		if av.InvincibleFor < 0 {
			av.InvincibleFor = 0
		}
	}
}

// ResolvePlayerContact checks enemy bodies against the avatar. While a mercy
// window is open the check is skipped entirely. Otherwise the first
// confirmed overlap deals that enemy's contact damage, opens a fresh window,
// and ends the scan; at most one contact hit lands per tick no matter how
// many enemies overlap. Returns the kind that connected.
func ResolvePlayerContact(av *Avatar, grid *SpatialGrid, enemies *EnemyStore, tun *Tuning, events *CombatEvents) (EnemyKind, bool) {
	if av.Invincible() {
		return 0, false
	}
	candidates := grid.GetNearby(av.X, av.Y, av.Radius+tun.MaxEnemyRadius)
	for _, h := range candidates {
		e := enemies.Get(h)
		if e == nil {
			continue
		}
		if !CheckCircleOverlap(av.X, av.Y, av.Radius, e.X, e.Y, e.Radius) {
			continue
		}
		events.EmitPlayerDamaged(PlayerDamaged{Amount: e.ContactDamage})
		av.InvincibleFor = tun.InvincibilityDuration
		return e.Kind, true
	}
	return 0, false
}

// ApplyPlayerDamage drains the PlayerDamaged queue into the avatar's HP.
func ApplyPlayerDamage(events *CombatEvents, av *Avatar) {
	for _, ev := range events.PlayerDamaged {
		av.TakeDamage(ev.Amount)
	}
}
