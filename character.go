package main

// CharacterKind identifies a playable character archetype.
type CharacterKind int

const (
	CharKnight   CharacterKind = 0
	CharMagician CharacterKind = 1
	CharRogue    CharacterKind = 2
)

func (k CharacterKind) String() string {
	switch k {
	case CharKnight:
		return "knight"
	case CharMagician:
		return "magician"
	case CharRogue:
		return "rogue"
	}
	return "unknown"
}

// CharacterDef holds a character's starting stats and weapon.
type CharacterDef struct {
	MaxHP         float64
	MoveSpeed     float64
	Radius        float64
	StartWeapon   WeaponKind
	DamageMult    float64
	CooldownRed   float64
	AreaMult      float64
	ProjSpeedMult float64
	Luck          float64
	HPRegen       float64 // HP per second
}

var Characters = [3]CharacterDef{
	// Knight: durable melee start
	{
		MaxHP: 120, MoveSpeed: 190, Radius: 12, StartWeapon: WeaponWhip,
		DamageMult: 1.1, CooldownRed: 0, AreaMult: 1.0, ProjSpeedMult: 1.0,
		Luck: 1.0, HPRegen: 0.2,
	},
	// Magician: ranged start, fires faster
	{
		MaxHP: 90, MoveSpeed: 200, Radius: 12, StartWeapon: WeaponMagicWand,
		DamageMult: 1.0, CooldownRed: 0.1, AreaMult: 1.0, ProjSpeedMult: 1.1,
		Luck: 1.0, HPRegen: 0,
	},
	// Rogue: quick and lucky, fragile
	{
		MaxHP: 80, MoveSpeed: 230, Radius: 11, StartWeapon: WeaponWhip,
		DamageMult: 1.0, CooldownRed: 0, AreaMult: 1.0, ProjSpeedMult: 1.0,
		Luck: 1.3, HPRegen: 0,
	},
}

// GetCharacterDef returns the definition for a character, defaulting to the
// knight for out-of-range values from the wire.
func GetCharacterDef(kind CharacterKind) CharacterDef {
	if kind < 0 || int(kind) >= len(Characters) {
		return Characters[CharKnight]
	}
	return Characters[kind]
}
