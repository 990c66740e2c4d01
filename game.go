package main

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

const (
	TickRate       = 60 // simulation ticks per second
	BroadcastRate  = 30 // state broadcasts per second
	TickDuration   = time.Second / TickRate
	BroadcastEvery = TickRate / BroadcastRate

	maxProjectilesPerRun = 500
)

// RunPhase is the lifecycle of a single run.
type RunPhase int

const (
	PhasePlaying RunPhase = iota
	PhaseLevelUp          // paused while the client picks an upgrade
	PhaseGameOver
)

// Broadcaster interface for sending messages to the client
type Broadcaster interface {
	SendJSON(msg interface{})
	SendBinary(data []byte)
}

// RunSummary captures the outcome of a finished run for persistence.
type RunSummary struct {
	Character CharacterKind
	Duration  float64
	Level     int
	Kills     int
	Gold      int
	KilledBy  string
}

// Game holds one run: a single avatar against the horde. The mutex guards
// everything; the loop goroutine and client handlers both take it.
type Game struct {
	mu        sync.Mutex
	tuning    *TuningStore
	character CharacterKind

	avatar      *Avatar
	enemies     *EnemyStore
	projectiles []*Projectile
	gems        []*Gem
	coins       []*Coin
	grid        *SpatialGrid
	events      *CombatEvents
	spawner     EnemySpawner

	elapsed     float64
	tick        uint64
	phase       RunPhase
	pending     []UpgradeChoice
	lastHit     EnemyKind
	bossSpawned bool

	running  bool
	stop     chan struct{}
	client   Broadcaster
	onRunEnd func(RunSummary)
}

// NewGame creates a run for the chosen character.
func NewGame(tuning *TuningStore, character CharacterKind) *Game {
	tun := tuning.Get()
	return &Game{
		tuning:    tuning,
		character: character,
		avatar:    NewAvatar(character, tun),
		enemies:   NewEnemyStore(),
		grid:      NewSpatialGrid(tun.SpatialCellSize),
		events:    NewCombatEvents(),
		phase:     PhasePlaying,
		stop:      make(chan struct{}),
	}
}

// Run starts the game loop
func (g *Game) Run() {
	g.mu.Lock()
	g.running = true
	g.mu.Unlock()

	ticker := time.NewTicker(TickDuration)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			g.update()
		case <-g.stop:
			return
		}
	}
}

// Stop terminates the game loop
func (g *Game) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.running {
		g.running = false
		close(g.stop)
	}
}

// SetClient attaches the broadcaster receiving state frames.
func (g *Game) SetClient(client Broadcaster) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.client = client
}

// SetRunEndHook registers the callback fired once when the run ends.
func (g *Game) SetRunEndHook(fn func(RunSummary)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onRunEnd = fn
}

// Phase returns the current run phase.
func (g *Game) Phase() RunPhase {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.phase
}

// HandleInput stores the client's movement direction.
func (g *Game) HandleInput(input ClientInput) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.avatar.MoveX = Clamp(input.DX, -1, 1)
	g.avatar.MoveY = Clamp(input.DY, -1, 1)
}

// HandleUpgrade resolves a level-up pause with the chosen card index.
// Out-of-range picks take the first card so a buggy client cannot wedge
// the run.
func (g *Game) HandleUpgrade(index int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.phase != PhaseLevelUp || len(g.pending) == 0 {
		return
	}
	if index < 0 || index >= len(g.pending) {
		index = 0
	}
	ApplyUpgrade(g.avatar, g.pending[index])
	g.pending = nil
	g.phase = PhasePlaying

	// Banked XP may cover several levels; pause again for the next one.
	g.checkLevelUp()
}

// update runs one tick of the loop goroutine.
func (g *Game) update() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.tick++
	if g.phase == PhasePlaying {
		g.step(1.0 / float64(TickRate))
	}
	if g.tick%BroadcastEvery == 0 {
		g.broadcastState()
	}
}

// step advances the simulation by dt. Order matters: the mercy window ticks
// first so a window opened by last tick's contact always covers at least one
// full tick, the grid is rebuilt before anything queries it, and weapon
// damage resolves before contact damage.
func (g *Game) step(dt float64) {
	tun := g.tuning.Get()
	av := g.avatar

	TickInvincibility(av, dt)
	g.elapsed += dt

	g.spawnEnemies(dt)
	av.Update(dt)
	g.enemies.ForEach(func(_ EnemyHandle, e *Enemy) {
		e.Update(dt, av.X, av.Y)
	})
	g.cullEnemies()
	g.rebuildGrid(tun)

	TickWeaponCooldowns(av.Weapons, av.CooldownReduction, dt, g.events)
	for _, ev := range g.events.WeaponFired {
		switch ev.Kind {
		case WeaponWhip, WeaponBloodyTear:
			FireWhip(ev, av, g.grid, g.enemies, tun, g.events)
		case WeaponMagicWand, WeaponHolyWand:
			if len(g.projectiles) < maxProjectilesPerRun {
				if p := FireMagicWand(ev, av, g.enemies, tun); p != nil {
					g.projectiles = append(g.projectiles, p)
				}
			}
		}
	}

	for _, p := range g.projectiles {
		p.Update(dt)
		p.CollideEnemies(g.grid, g.enemies, tun.MaxEnemyRadius, g.events)
	}
	live := g.projectiles[:0]
	for _, p := range g.projectiles {
		if p.Alive {
			live = append(live, p)
		}
	}
	g.projectiles = live

	ApplyEnemyDamage(g.events, g.enemies)
	g.handleDeaths()

	if kind, hit := ResolvePlayerContact(av, g.grid, g.enemies, tun, g.events); hit {
		g.lastHit = kind
	}
	ApplyPlayerDamage(g.events, av)

	g.updateLoot(dt)
	g.checkLevelUp()

	if !av.Alive {
		g.endRun()
	}

	g.events.Reset()
}

// spawnEnemies rolls the spawner and inserts new chasers on the spawn ring.
// At the 30-minute mark Death joins exactly once, outside the regular cap.
func (g *Game) spawnEnemies(dt float64) {
	difficulty := DifficultyFromElapsed(g.elapsed)
	if !g.bossSpawned && g.elapsed >= BossSpawnTime {
		g.bossSpawned = true
		x, y := spawnPosition(g.avatar.X, g.avatar.Y)
		g.enemies.Spawn(NewEnemy(EnemyBossDeath, x, y, difficulty))
	}
	n := g.spawner.Update(dt, g.elapsed)
	for i := 0; i < n; i++ {
		if g.enemies.Len() >= EnemyMaxCount {
			return
		}
		x, y := spawnPosition(g.avatar.X, g.avatar.Y)
		g.enemies.Spawn(NewEnemy(rollSpawnKind(g.elapsed), x, y, difficulty))
	}
}

// cullEnemies despawns enemies that wandered too far from the avatar. They
// drop nothing; culling is cleanup, not a kill.
func (g *Game) cullEnemies() {
	var gone []EnemyHandle
	g.enemies.ForEach(func(h EnemyHandle, e *Enemy) {
		if DistanceSq(e.X, e.Y, g.avatar.X, g.avatar.Y) > EnemyCullDistance*EnemyCullDistance {
			gone = append(gone, h)
		}
	})
	for _, h := range gone {
		g.enemies.Despawn(h)
	}
}

// rebuildGrid repopulates the broad-phase from live enemy positions. A cell
// size change from a tuning reload swaps in a fresh grid.
func (g *Game) rebuildGrid(tun *Tuning) {
	if g.grid.CellSize() != tun.SpatialCellSize {
		g.grid = NewSpatialGrid(tun.SpatialCellSize)
	} else {
		g.grid.Clear()
	}
	g.enemies.ForEach(func(h EnemyHandle, e *Enemy) {
		g.grid.Insert(e.X, e.Y, h)
	})
}

// handleDeaths converts EnemyDied events into kills and dropped loot.
func (g *Game) handleDeaths() {
	for _, ev := range g.events.EnemyDied {
		g.avatar.Kills++
		g.gems = append(g.gems, NewGem(ev.X, ev.Y, ev.XPValue))
		if rand.Float64() < enemyTable[ev.Kind].GoldChance*g.avatar.Luck {
			g.coins = append(g.coins, NewCoin(ev.X, ev.Y))
		}
	}
}

// updateLoot advances gems and coins and banks whatever got absorbed.
func (g *Game) updateLoot(dt float64) {
	xp := 0
	liveGems := g.gems[:0]
	for _, gem := range g.gems {
		xp += gem.Update(dt, g.avatar)
		if gem.Alive {
			liveGems = append(liveGems, gem)
		}
	}
	g.gems = liveGems
	g.avatar.GainXP(xp)

	liveCoins := g.coins[:0]
	for _, c := range g.coins {
		g.avatar.Gold += c.Update(dt, g.avatar)
		if c.Alive {
			liveCoins = append(liveCoins, c)
		}
	}
	g.coins = liveCoins
}

// checkLevelUp consumes one banked level and pauses for an upgrade pick.
// When no upgrade is possible the level is consumed silently and the run
// keeps going.
func (g *Game) checkLevelUp() {
	if g.phase != PhasePlaying || !g.avatar.LevelUpReady() {
		return
	}
	g.avatar.ConsumeLevel()
	choices := RollUpgradeChoices(g.avatar)
	if len(choices) == 0 {
		return
	}
	g.pending = choices
	g.phase = PhaseLevelUp
	if g.client != nil {
		g.client.SendJSON(Envelope{T: MsgLevelUp, Data: LevelUpMsg{
			Level:   g.avatar.Level,
			Choices: choices,
		}})
	}
}

// endRun finishes the run, notifies the client, and fires the persistence
// hook exactly once.
func (g *Game) endRun() {
	if g.phase == PhaseGameOver {
		return
	}
	g.phase = PhaseGameOver
	summary := RunSummary{
		Character: g.character,
		Duration:  g.elapsed,
		Level:     g.avatar.Level,
		Kills:     g.avatar.Kills,
		Gold:      g.avatar.Gold,
		KilledBy:  g.lastHit.String(),
	}
	if g.client != nil {
		g.client.SendJSON(Envelope{T: MsgGameOver, Data: GameOverMsg{
			Duration: round1(summary.Duration),
			Level:    summary.Level,
			Kills:    summary.Kills,
			Gold:     summary.Gold,
			KilledBy: summary.KilledBy,
		}})
	}
	if g.onRunEnd != nil {
		hook := g.onRunEnd
		g.onRunEnd = nil
		go hook(summary)
	}
}

// broadcastState packs the current state into a msgpack frame and ships it
// as a binary message.
func (g *Game) broadcastState() {
	if g.client == nil {
		return
	}

	frame := GameStateFrame{
		Tick:    g.tick,
		Elapsed: round1(g.elapsed),
		Phase:   int(g.phase),
		Avatar:  g.avatar.ToState(),
	}
	g.enemies.ForEach(func(h EnemyHandle, e *Enemy) {
		frame.Enemies = append(frame.Enemies, EnemyState{
			ID:   uint64(h.Gen)<<32 | uint64(uint32(h.Idx)),
			Kind: int(e.Kind),
			X:    round1(e.X),
			Y:    round1(e.Y),
			HP:   round1(e.HP),
		})
	})
	for _, p := range g.projectiles {
		frame.Projectiles = append(frame.Projectiles, ProjectileState{
			ID: p.ID,
			X:  round1(p.X),
			Y:  round1(p.Y),
		})
	}
	for _, gem := range g.gems {
		frame.Gems = append(frame.Gems, LootState{ID: gem.ID, X: round1(gem.X), Y: round1(gem.Y), V: gem.Value})
	}
	for _, c := range g.coins {
		frame.Coins = append(frame.Coins, LootState{ID: c.ID, X: round1(c.X), Y: round1(c.Y), V: c.Value})
	}

	data, err := msgpack.Marshal(&frame)
	if err != nil {
		log.Printf("state marshal error: %v", err)
		return
	}
	g.client.SendBinary(data)
}
