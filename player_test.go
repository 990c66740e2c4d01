package main

import (
	"math"
	"testing"
)

func TestAvatarMovementNormalized(t *testing.T) {
	tun := DefaultTuning()
	av := NewAvatar(CharKnight, &tun)
	av.X, av.Y = 0, 0

	// Diagonal input at full deflection moves at MoveSpeed, not 1.41x.
	av.MoveX, av.MoveY = 1, 1
	av.Update(1.0)
	dist := Distance(0, 0, av.X, av.Y)
	if math.Abs(dist-av.MoveSpeed) > 1e-6 {
		t.Errorf("diagonal movement covered %f, want %f", dist, av.MoveSpeed)
	}

	// Partial deflection is not scaled up.
	av2 := NewAvatar(CharKnight, &tun)
	av2.MoveX, av2.MoveY = 0.5, 0
	av2.Update(1.0)
	if math.Abs(av2.X-av2.MoveSpeed*0.5) > 1e-6 {
		t.Errorf("half deflection moved %f, want %f", av2.X, av2.MoveSpeed*0.5)
	}
}

func TestAvatarRegen(t *testing.T) {
	tun := DefaultTuning()
	av := NewAvatar(CharKnight, &tun) // knight has regen
	av.HP = av.MaxHP - 5
	for i := 0; i < 60; i++ {
		av.Update(1.0 / 60.0)
	}
	if av.HP <= av.MaxHP-5 {
		t.Error("regen should recover HP over time")
	}

	av.HP = av.MaxHP - 0.001
	av.Update(10)
	if av.HP > av.MaxHP {
		t.Errorf("regen overshot MaxHP: %f > %f", av.HP, av.MaxHP)
	}
}

func TestXPCurve(t *testing.T) {
	if got := xpToNext(1); got != 20 {
		t.Errorf("level 1 needs 20 xp, got %d", got)
	}
	if got := xpToNext(2); got != 24 {
		t.Errorf("level 2 needs 24 xp, got %d", got)
	}
	for lvl := 1; lvl < 50; lvl++ {
		if xpToNext(lvl+1) <= xpToNext(lvl) {
			t.Fatalf("xp requirement should grow monotonically, broke at level %d", lvl)
		}
	}
}

func TestGainXPAndConsumeLevel(t *testing.T) {
	tun := DefaultTuning()
	av := NewAvatar(CharKnight, &tun)

	av.GainXP(25)
	if !av.LevelUpReady() {
		t.Fatal("25 xp should be enough for level 2")
	}
	av.ConsumeLevel()
	if av.Level != 2 {
		t.Errorf("expected level 2, got %d", av.Level)
	}
	if av.XP != 5 {
		t.Errorf("surplus xp should carry over, got %d", av.XP)
	}
	if av.XPToNext != xpToNext(2) {
		t.Errorf("threshold should advance to %d, got %d", xpToNext(2), av.XPToNext)
	}

	// Without enough banked xp, ConsumeLevel is a no-op.
	av.ConsumeLevel()
	if av.Level != 2 {
		t.Error("ConsumeLevel without banked xp should do nothing")
	}

	// Negative amounts are ignored.
	av.GainXP(-100)
	if av.XP != 5 {
		t.Errorf("negative xp gain changed the bank to %d", av.XP)
	}
}

func TestAvatarDeath(t *testing.T) {
	tun := DefaultTuning()
	av := NewAvatar(CharKnight, &tun)
	av.TakeDamage(av.MaxHP + 50)
	if av.Alive {
		t.Error("lethal damage should kill")
	}
	if av.HP != 0 {
		t.Errorf("HP should clamp at zero, got %f", av.HP)
	}

	// Dead avatars ignore both damage and movement.
	av.TakeDamage(10)
	av.MoveX = 1
	x := av.X
	av.Update(1.0)
	if av.X != x {
		t.Error("dead avatar should not move")
	}
}

func TestAddWeaponSlots(t *testing.T) {
	tun := DefaultTuning()
	av := NewAvatar(CharKnight, &tun) // starts with a whip

	if av.AddWeapon(WeaponWhip) {
		t.Error("duplicate weapon should be rejected")
	}
	if !av.AddWeapon(WeaponMagicWand) {
		t.Error("second weapon should fit")
	}
	if av.WeaponSlot(WeaponMagicWand) == nil {
		t.Error("equipped weapon should be findable")
	}

	// Fill remaining slots, then the next add fails.
	for len(av.Weapons) < MaxWeapons {
		av.Weapons = append(av.Weapons, NewWeaponState(WeaponBloodyTear))
	}
	if av.AddWeapon(WeaponHolyWand) {
		t.Error("full weapon bar should reject new weapons")
	}
}

func TestCharacterDefs(t *testing.T) {
	tun := DefaultTuning()

	knight := NewAvatar(CharKnight, &tun)
	if knight.Weapons[0].Kind != WeaponWhip {
		t.Error("knight should start with a whip")
	}
	mage := NewAvatar(CharMagician, &tun)
	if mage.Weapons[0].Kind != WeaponMagicWand {
		t.Error("magician should start with a magic wand")
	}
	if mage.MaxHP >= knight.MaxHP {
		t.Error("magician should be squishier than the knight")
	}

	// Unknown kinds fall back to the knight.
	if def := GetCharacterDef(CharacterKind(99)); def != Characters[CharKnight] {
		t.Error("unknown character should default to the knight")
	}
}
