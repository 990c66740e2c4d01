package main

import "testing"

func TestGemIgnoredOutsidePickupRadius(t *testing.T) {
	tun := DefaultTuning()
	av := NewAvatar(CharKnight, &tun)
	av.X, av.Y = 0, 0
	g := NewGem(av.PickupRadius+200, 0, 5)

	g.Update(1.0/60.0, av)
	if g.Attracted {
		t.Error("gem outside the pickup radius should not be pulled")
	}
	if g.X != av.PickupRadius+200 {
		t.Errorf("unattracted gem moved to x=%f", g.X)
	}
}

func TestGemAttractionLatches(t *testing.T) {
	tun := DefaultTuning()
	av := NewAvatar(CharKnight, &tun)
	av.X, av.Y = 0, 0
	g := NewGem(av.PickupRadius-10, 0, 5)

	g.Update(1.0/60.0, av)
	if !g.Attracted {
		t.Fatal("gem inside the pickup radius should latch on")
	}

	// Avatar teleports far away; the gem keeps chasing.
	av.X = 5000
	before := g.X
	g.Update(1.0/60.0, av)
	if !g.Attracted {
		t.Error("attraction must never release")
	}
	if g.X <= before {
		t.Error("latched gem should keep moving toward the avatar")
	}
}

func TestGemAbsorption(t *testing.T) {
	tun := DefaultTuning()
	av := NewAvatar(CharKnight, &tun)
	av.X, av.Y = 0, 0
	g := NewGem(30, 0, 5)
	g.Attracted = true

	total := 0
	for i := 0; i < 60 && g.Alive; i++ {
		total += g.Update(1.0/60.0, av)
	}
	if g.Alive {
		t.Fatal("gem 30 units out should be absorbed within a second")
	}
	if total != 5 {
		t.Errorf("expected 5 xp absorbed, got %d", total)
	}
}

func TestGemTimesOut(t *testing.T) {
	tun := DefaultTuning()
	av := NewAvatar(CharKnight, &tun)
	av.X, av.Y = 10000, 10000
	g := NewGem(0, 0, 5)

	got := 0
	for i := 0; i < int(GemTimeout*60)+10; i++ {
		got += g.Update(1.0/60.0, av)
	}
	if g.Alive {
		t.Error("abandoned gem should fade out")
	}
	if got != 0 {
		t.Errorf("faded gem yielded %d xp", got)
	}
}

func TestCoinCollectsGold(t *testing.T) {
	tun := DefaultTuning()
	av := NewAvatar(CharKnight, &tun)
	av.X, av.Y = 0, 0
	c := NewCoin(GemAbsorptionRadius-1, 0)
	c.Attracted = true

	if got := c.Update(1.0/60.0, av); got != CoinValue {
		t.Errorf("expected %d gold, got %d", CoinValue, got)
	}
	if c.Alive {
		t.Error("collected coin should despawn")
	}
}
