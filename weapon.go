package main

const (
	MaxWeapons     = 6
	MaxWeaponLevel = 8

	// Clamp bounds for attack speed bonuses. Even a fully stacked build keeps
	// at least 10% of the base cooldown.
	CooldownReductionMax  = 0.9
	CooldownMultiplierMin = 0.1
)

// WeaponKind enumerates the weapon roster, evolved forms included.
type WeaponKind int

const (
	WeaponWhip WeaponKind = iota
	WeaponMagicWand
	WeaponBloodyTear // evolved whip
	WeaponHolyWand   // evolved magic wand
)

func (k WeaponKind) String() string {
	switch k {
	case WeaponWhip:
		return "whip"
	case WeaponMagicWand:
		return "magic_wand"
	case WeaponBloodyTear:
		return "bloody_tear"
	case WeaponHolyWand:
		return "holy_wand"
	}
	return "unknown"
}

// IsEvolved reports whether this kind is an evolved form.
func (k WeaponKind) IsEvolved() bool {
	return k == WeaponBloodyTear || k == WeaponHolyWand
}

// EvolvedForm returns the evolved kind for a base weapon, or the kind
// itself if it has no evolution.
func (k WeaponKind) EvolvedForm() WeaponKind {
	switch k {
	case WeaponWhip:
		return WeaponBloodyTear
	case WeaponMagicWand:
		return WeaponHolyWand
	}
	return k
}

// WeaponState is one equipped weapon slot. The timer counts down every tick;
// at or below zero the weapon fires and the timer is reset additively, so
// overshoot from a long tick carries into the next interval instead of being
// discarded.
type WeaponState struct {
	Kind          WeaponKind
	Level         int
	CooldownTimer float64
}

// NewWeaponState starts a weapon at level 1 with a full cooldown, so a
// freshly picked weapon does not fire on the tick it was equipped.
func NewWeaponState(kind WeaponKind) WeaponState {
	w := WeaponState{Kind: kind, Level: 1}
	w.CooldownTimer = w.BaseCooldown()
	return w
}

// BaseCooldown returns the cadence in seconds for the weapon's current
// level. Higher levels fire slightly faster, with a floor.
func (w *WeaponState) BaseCooldown() float64 {
	var base, step, floor float64
	switch w.Kind {
	case WeaponWhip:
		base, step, floor = 1.35, 0.05, 0.8
	case WeaponBloodyTear:
		base, step, floor = 1.0, 0.04, 0.6
	case WeaponMagicWand:
		base, step, floor = 1.2, 0.05, 0.7
	case WeaponHolyWand:
		base, step, floor = 0.8, 0.03, 0.5
	default:
		base, step, floor = 1.0, 0, 1.0
	}
	cd := base - step*float64(w.Level-1)
	if cd < floor {
		cd = floor
	}
	return cd
}

// EffectiveCooldown applies the avatar's cooldown reduction. Reduction is
// clamped to [0, CooldownReductionMax] and the resulting multiplier to
// [CooldownMultiplierMin, 1].
func (w *WeaponState) EffectiveCooldown(reduction float64) float64 {
	reduction = Clamp(reduction, 0, CooldownReductionMax)
	mult := Clamp(1.0-reduction, CooldownMultiplierMin, 1.0)
	return w.BaseCooldown() * mult
}

// TickWeaponCooldowns advances every equipped weapon's timer. When a timer
// expires it emits exactly one WeaponFired and resets by adding the
// effective cooldown onto the (possibly negative) timer.
func TickWeaponCooldowns(weapons []WeaponState, reduction, dt float64, events *CombatEvents) {
	for i := range weapons {
		w := &weapons[i]
		w.CooldownTimer -= dt
		if w.CooldownTimer <= 0 {
			events.EmitWeaponFired(WeaponFired{Kind: w.Kind, Level: w.Level})
			w.CooldownTimer += w.EffectiveCooldown(reduction)
		}
	}
}
