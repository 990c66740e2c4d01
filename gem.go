package main

import "math"

const (
	GemAttractionSpeed  = 400.0 // pixels/s once pulled
	GemAbsorptionRadius = 20.0  // distance at which a gem is collected
	GemTimeout          = 60.0  // dropped loot fades after this
	CoinValue           = 1
)

// Gem is a dropped experience crystal. Once inside the avatar's pickup
// radius it homes in until absorbed; attraction never releases a gem even
// if the avatar moves away.
type Gem struct {
	ID        string
	X, Y      float64
	Value     int
	Life      float64
	Attracted bool
	Alive     bool
}

func NewGem(x, y float64, value int) *Gem {
	return &Gem{
		ID:    GenerateID(4),
		X:     x,
		Y:     y,
		Value: value,
		Life:  GemTimeout,
		Alive: true,
	}
}

// Update ages the gem, handles attraction, and returns the XP absorbed
// this tick (zero until collected).
func (g *Gem) Update(dt float64, av *Avatar) int {
	if !g.Alive {
		return 0
	}
	g.Life -= dt
	if g.Life <= 0 {
		g.Alive = false
		return 0
	}

	dx := av.X - g.X
	dy := av.Y - g.Y
	dist := math.Sqrt(dx*dx + dy*dy)

	if !g.Attracted && dist < av.PickupRadius {
		g.Attracted = true
	}
	if !g.Attracted {
		return 0
	}

	if dist < GemAbsorptionRadius {
		g.Alive = false
		return g.Value
	}
	if dist > 1e-6 {
		step := GemAttractionSpeed * dt
		if step > dist {
			step = dist
		}
		g.X += dx / dist * step
		g.Y += dy / dist * step
	}
	return 0
}

// Coin is dropped gold, persisted to the profile at run end. Same motion
// rules as gems.
type Coin struct {
	ID        string
	X, Y      float64
	Value     int
	Life      float64
	Attracted bool
	Alive     bool
}

func NewCoin(x, y float64) *Coin {
	return &Coin{
		ID:    GenerateID(4),
		X:     x,
		Y:     y,
		Value: CoinValue,
		Life:  GemTimeout,
		Alive: true,
	}
}

// Update mirrors Gem.Update but returns collected gold.
func (c *Coin) Update(dt float64, av *Avatar) int {
	if !c.Alive {
		return 0
	}
	c.Life -= dt
	if c.Life <= 0 {
		c.Alive = false
		return 0
	}

	dx := av.X - c.X
	dy := av.Y - c.Y
	dist := math.Sqrt(dx*dx + dy*dy)

	if !c.Attracted && dist < av.PickupRadius {
		c.Attracted = true
	}
	if !c.Attracted {
		return 0
	}

	if dist < GemAbsorptionRadius {
		c.Alive = false
		return c.Value
	}
	if dist > 1e-6 {
		step := GemAttractionSpeed * dt
		if step > dist {
			step = dist
		}
		c.X += dx / dist * step
		c.Y += dy / dist * step
	}
	return 0
}
