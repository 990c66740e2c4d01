package main

import "math/rand"

const (
	MaxPassives     = 6
	MaxPassiveLevel = 5
	UpgradeChoices  = 3
)

// PassiveKind enumerates the passive item roster.
type PassiveKind int

const (
	PassiveSpinach PassiveKind = iota // damage
	PassiveWings                      // move speed
	PassiveHollowHeart                // max HP
	PassiveEmptyTome                  // cooldown
	PassiveClover                     // luck
	PassivePummarola                  // regen
)

func (k PassiveKind) String() string {
	switch k {
	case PassiveSpinach:
		return "spinach"
	case PassiveWings:
		return "wings"
	case PassiveHollowHeart:
		return "hollow_heart"
	case PassiveEmptyTome:
		return "empty_tome"
	case PassiveClover:
		return "clover"
	case PassivePummarola:
		return "pummarola"
	}
	return "unknown"
}

// PassiveState is one equipped passive item.
type PassiveState struct {
	Kind  PassiveKind
	Level int
}

var allPassives = []PassiveKind{
	PassiveSpinach, PassiveWings, PassiveHollowHeart,
	PassiveEmptyTome, PassiveClover, PassivePummarola,
}

// Weapon evolutions: a max-level weapon plus its paired passive unlocks the
// evolved form on the next level-up.
var evolutionPairs = map[WeaponKind]PassiveKind{
	WeaponWhip:      PassiveHollowHeart,
	WeaponMagicWand: PassiveEmptyTome,
}

// applyPassiveEffect nudges avatar stats by one level of the passive.
func applyPassiveEffect(av *Avatar, kind PassiveKind) {
	switch kind {
	case PassiveSpinach:
		av.DamageMultiplier += 0.10
	case PassiveWings:
		av.MoveSpeed *= 1.10
	case PassiveHollowHeart:
		bonus := av.MaxHP * 0.20
		av.MaxHP += bonus
		av.HP += bonus
	case PassiveEmptyTome:
		av.CooldownReduction = Clamp(av.CooldownReduction+0.08, 0, CooldownReductionMax)
	case PassiveClover:
		av.Luck += 0.10
	case PassivePummarola:
		av.HPRegen += 0.2
	}
}

// UpgradeOptionKind tags what an upgrade choice does.
type UpgradeOptionKind int

const (
	UpgradeNewWeapon UpgradeOptionKind = iota
	UpgradeWeaponLevel
	UpgradeNewPassive
	UpgradePassiveLevel
	UpgradeEvolveWeapon
)

// UpgradeChoice is one card offered on level-up.
type UpgradeChoice struct {
	Kind    UpgradeOptionKind `json:"kind" msgpack:"kind"`
	Weapon  WeaponKind        `json:"weapon" msgpack:"weapon"`
	Passive PassiveKind       `json:"passive" msgpack:"passive"`
	Label   string            `json:"label" msgpack:"label"`
}

// RollUpgradeChoices builds the candidate pool for the avatar's current
// build and samples up to three options. An available evolution is always
// offered first. Returns nil when nothing can be upgraded.
func RollUpgradeChoices(av *Avatar) []UpgradeChoice {
	var pool []UpgradeChoice

	for i := range av.Weapons {
		w := &av.Weapons[i]
		if w.Level < MaxWeaponLevel {
			pool = append(pool, UpgradeChoice{
				Kind:   UpgradeWeaponLevel,
				Weapon: w.Kind,
				Label:  w.Kind.String() + " +1",
			})
		}
	}
	if len(av.Weapons) < MaxWeapons {
		for _, k := range []WeaponKind{WeaponWhip, WeaponMagicWand} {
			if av.WeaponSlot(k) == nil && av.WeaponSlot(k.EvolvedForm()) == nil {
				pool = append(pool, UpgradeChoice{
					Kind:   UpgradeNewWeapon,
					Weapon: k,
					Label:  "new " + k.String(),
				})
			}
		}
	}
	for i := range av.Passives {
		p := &av.Passives[i]
		if p.Level < MaxPassiveLevel {
			pool = append(pool, UpgradeChoice{
				Kind:    UpgradePassiveLevel,
				Passive: p.Kind,
				Label:   p.Kind.String() + " +1",
			})
		}
	}
	if len(av.Passives) < MaxPassives {
		for _, k := range allPassives {
			if av.PassiveSlot(k) == nil {
				pool = append(pool, UpgradeChoice{
					Kind:    UpgradeNewPassive,
					Passive: k,
					Label:   "new " + k.String(),
				})
			}
		}
	}

	choices := make([]UpgradeChoice, 0, UpgradeChoices)
	for base, passive := range evolutionPairs {
		w := av.WeaponSlot(base)
		if w != nil && w.Level >= MaxWeaponLevel && av.PassiveSlot(passive) != nil {
			choices = append(choices, UpgradeChoice{
				Kind:   UpgradeEvolveWeapon,
				Weapon: base,
				Label:  "evolve " + base.String() + " into " + base.EvolvedForm().String(),
			})
		}
	}

	// Tiny Fisher-Yates over the pool, then take what's left to fill.
	for i := len(pool) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		pool[i], pool[j] = pool[j], pool[i]
	}
	for _, c := range pool {
		if len(choices) >= UpgradeChoices {
			break
		}
		choices = append(choices, c)
	}
	return choices
}

// ApplyUpgrade mutates the avatar per the chosen card.
func ApplyUpgrade(av *Avatar, c UpgradeChoice) {
	switch c.Kind {
	case UpgradeNewWeapon:
		av.AddWeapon(c.Weapon)
	case UpgradeWeaponLevel:
		if w := av.WeaponSlot(c.Weapon); w != nil && w.Level < MaxWeaponLevel {
			w.Level++
		}
	case UpgradeNewPassive:
		if len(av.Passives) < MaxPassives && av.PassiveSlot(c.Passive) == nil {
			av.Passives = append(av.Passives, PassiveState{Kind: c.Passive, Level: 1})
			applyPassiveEffect(av, c.Passive)
		}
	case UpgradePassiveLevel:
		if p := av.PassiveSlot(c.Passive); p != nil && p.Level < MaxPassiveLevel {
			p.Level++
			applyPassiveEffect(av, c.Passive)
		}
	case UpgradeEvolveWeapon:
		if w := av.WeaponSlot(c.Weapon); w != nil {
			w.Kind = c.Weapon.EvolvedForm()
			w.CooldownTimer = w.BaseCooldown()
		}
	}
}
