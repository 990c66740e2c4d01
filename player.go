package main

import (
	"math"
)

const (
	XPLevelBase       = 20
	XPLevelMultiplier = 1.2
)

// Avatar is the player-controlled survivor. Movement comes from a client
// input direction; everything else (weapon fire, damage, leveling) is driven
// by the simulation.
type Avatar struct {
	X, Y   float64
	Radius float64

	HP      float64
	MaxHP   float64
	HPRegen float64

	MoveSpeed float64
	MoveX     float64 // input direction, normalized on use
	MoveY     float64

	// Stat multipliers, adjusted by character choice and passive items.
	DamageMultiplier    float64
	CooldownReduction   float64
	AreaMultiplier      float64
	ProjectileSpeedMult float64
	Luck                float64

	PickupRadius float64

	// Mercy window after a contact hit. Positive means contact damage is
	// skipped entirely.
	InvincibleFor float64

	WhipSide WhipSide
	Weapons  []WeaponState
	Passives []PassiveState

	Level    int
	XP       int
	XPToNext int

	Kills int
	Gold  int
	Alive bool
}

// NewAvatar builds an avatar from a character definition, carrying the
// tuned pickup radius.
func NewAvatar(kind CharacterKind, tun *Tuning) *Avatar {
	def := GetCharacterDef(kind)
	a := &Avatar{
		Radius:              def.Radius,
		HP:                  def.MaxHP,
		MaxHP:               def.MaxHP,
		HPRegen:             def.HPRegen,
		MoveSpeed:           def.MoveSpeed,
		DamageMultiplier:    def.DamageMult,
		CooldownReduction:   def.CooldownRed,
		AreaMultiplier:      def.AreaMult,
		ProjectileSpeedMult: def.ProjSpeedMult,
		Luck:                def.Luck,
		PickupRadius:        tun.PickupRadius,
		WhipSide:            WhipLeft, // first swing flips to the right
		Level:               1,
		XPToNext:            xpToNext(1),
		Alive:               true,
	}
	a.Weapons = append(a.Weapons, NewWeaponState(def.StartWeapon))
	return a
}

// Update moves the avatar by the current input direction and applies
// regeneration.
func (a *Avatar) Update(dt float64) {
	if !a.Alive {
		return
	}
	mx, my := a.MoveX, a.MoveY
	mag := math.Sqrt(mx*mx + my*my)
	if mag > 1 {
		mx /= mag
		my /= mag
	}
	a.X += mx * a.MoveSpeed * dt
	a.Y += my * a.MoveSpeed * dt

	if a.HPRegen > 0 && a.HP < a.MaxHP {
		a.HP += a.HPRegen * dt
		if a.HP > a.MaxHP {
			a.HP = a.MaxHP
		}
	}
}

// Invincible reports whether the contact mercy window is open.
func (a *Avatar) Invincible() bool {
	return a.InvincibleFor > 0
}

// TakeDamage reduces HP, clamping at zero and flipping Alive off.
func (a *Avatar) TakeDamage(amount float64) {
	if !a.Alive || amount <= 0 {
		return
	}
	a.HP -= amount
	if a.HP <= 0 {
		a.HP = 0
		a.Alive = false
	}
}

// xpToNext is the XP needed to go from the given level to the next.
func xpToNext(level int) int {
	return int(XPLevelBase * math.Pow(XPLevelMultiplier, float64(level-1)))
}

// GainXP adds experience. Levels are consumed one at a time via ConsumeLevel
// so the run can pause for an upgrade choice between each.
func (a *Avatar) GainXP(amount int) {
	if amount <= 0 {
		return
	}
	a.XP += amount
}

// LevelUpReady reports whether enough XP is banked for the next level.
func (a *Avatar) LevelUpReady() bool {
	return a.XP >= a.XPToNext
}

// ConsumeLevel spends banked XP for one level, keeping the remainder.
func (a *Avatar) ConsumeLevel() {
	if !a.LevelUpReady() {
		return
	}
	a.XP -= a.XPToNext
	a.Level++
	a.XPToNext = xpToNext(a.Level)
}

// WeaponSlot returns the equipped slot for a kind, or nil.
func (a *Avatar) WeaponSlot(kind WeaponKind) *WeaponState {
	for i := range a.Weapons {
		if a.Weapons[i].Kind == kind {
			return &a.Weapons[i]
		}
	}
	return nil
}

// AddWeapon equips a new weapon if a slot is free and the kind is not
// already held.
func (a *Avatar) AddWeapon(kind WeaponKind) bool {
	if len(a.Weapons) >= MaxWeapons || a.WeaponSlot(kind) != nil {
		return false
	}
	a.Weapons = append(a.Weapons, NewWeaponState(kind))
	return true
}

// PassiveSlot returns the equipped passive for a kind, or nil.
func (a *Avatar) PassiveSlot(kind PassiveKind) *PassiveState {
	for i := range a.Passives {
		if a.Passives[i].Kind == kind {
			return &a.Passives[i]
		}
	}
	return nil
}

// ToState converts to protocol state
func (a *Avatar) ToState() AvatarState {
	return AvatarState{
		X:          round1(a.X),
		Y:          round1(a.Y),
		HP:         round1(a.HP),
		MaxHP:      a.MaxHP,
		Level:      a.Level,
		XP:         a.XP,
		XPToNext:   a.XPToNext,
		Kills:      a.Kills,
		Gold:       a.Gold,
		Invincible: a.Invincible(),
	}
}
