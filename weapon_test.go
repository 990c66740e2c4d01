package main

import (
	"math"
	"testing"
)

func TestCooldownTicksDown(t *testing.T) {
	w := NewWeaponState(WeaponWhip)
	start := w.CooldownTimer
	events := NewCombatEvents()

	weapons := []WeaponState{w}
	TickWeaponCooldowns(weapons, 0, 0.1, events)

	if got := weapons[0].CooldownTimer; math.Abs(got-(start-0.1)) > 1e-9 {
		t.Errorf("expected timer %f, got %f", start-0.1, got)
	}
	if len(events.WeaponFired) != 0 {
		t.Error("no fire expected before the timer expires")
	}
}

func TestCooldownFiresOnExpiry(t *testing.T) {
	weapons := []WeaponState{{Kind: WeaponWhip, Level: 2, CooldownTimer: 0.05}}
	events := NewCombatEvents()

	TickWeaponCooldowns(weapons, 0, 0.1, events)

	if len(events.WeaponFired) != 1 {
		t.Fatalf("expected 1 fire event, got %d", len(events.WeaponFired))
	}
	ev := events.WeaponFired[0]
	if ev.Kind != WeaponWhip || ev.Level != 2 {
		t.Errorf("fire event should carry kind and level, got %+v", ev)
	}
}

func TestCooldownAdditiveReset(t *testing.T) {
	// Timer at 0.05 with dt 0.1 overshoots by 0.05; the reset adds the
	// cooldown onto the negative remainder instead of starting from full.
	weapons := []WeaponState{{Kind: WeaponWhip, Level: 1, CooldownTimer: 0.05}}
	events := NewCombatEvents()
	cd := weapons[0].BaseCooldown()

	TickWeaponCooldowns(weapons, 0, 0.1, events)

	want := 0.05 - 0.1 + cd
	if got := weapons[0].CooldownTimer; math.Abs(got-want) > 1e-9 {
		t.Errorf("expected additive reset to %f, got %f", want, got)
	}
	if got := weapons[0].CooldownTimer; got <= 0 || got > cd {
		t.Errorf("reset timer should land in (0, %f], got %f", cd, got)
	}
}

func TestCooldownReductionHalvesCadence(t *testing.T) {
	w := WeaponState{Kind: WeaponWhip, Level: 1}
	base := w.BaseCooldown()

	if got := w.EffectiveCooldown(0.5); math.Abs(got-base*0.5) > 1e-9 {
		t.Errorf("reduction 0.5 should halve cooldown, got %f want %f", got, base*0.5)
	}
}

func TestCooldownReductionClamped(t *testing.T) {
	w := WeaponState{Kind: WeaponWhip, Level: 1}
	base := w.BaseCooldown()

	// Anything past 0.9 clamps to the 10% floor
	if got := w.EffectiveCooldown(1.5); math.Abs(got-base*0.1) > 1e-9 {
		t.Errorf("excess reduction should clamp to 10%% of base, got %f", got)
	}
	// Negative reduction never speeds up beyond base
	if got := w.EffectiveCooldown(-1); math.Abs(got-base) > 1e-9 {
		t.Errorf("negative reduction should clamp to base cooldown, got %f", got)
	}
}

func TestCooldownFireRateOverTime(t *testing.T) {
	// Over 10 simulated seconds at 60Hz the whip should fire roughly
	// every BaseCooldown seconds with no drift from discarded overshoot.
	weapons := []WeaponState{NewWeaponState(WeaponWhip)}
	events := NewCombatEvents()
	dt := 1.0 / 60.0

	fires := 0
	for i := 0; i < 600; i++ {
		TickWeaponCooldowns(weapons, 0, dt, events)
		fires += len(events.WeaponFired)
		events.Reset()
	}

	want := int(10.0 / weapons[0].BaseCooldown())
	if fires < want-1 || fires > want+1 {
		t.Errorf("expected about %d fires in 10s, got %d", want, fires)
	}
}

func TestBaseCooldownLevelFloor(t *testing.T) {
	w := WeaponState{Kind: WeaponWhip, Level: MaxWeaponLevel}
	if w.BaseCooldown() < 0.8 {
		t.Errorf("whip cooldown should floor at 0.8, got %f", w.BaseCooldown())
	}
	low := WeaponState{Kind: WeaponWhip, Level: 1}
	if w.BaseCooldown() >= low.BaseCooldown() {
		t.Error("higher level should not slow the weapon down")
	}
}
