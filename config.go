package main

import (
	"log"
	"os"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// Tuning holds the balance numbers that designers iterate on. Everything
// here has a sane default; a YAML file overrides individual fields and can
// be hot reloaded while runs are live. Structural constants (tick rate,
// slot caps, XP curve) stay in code.
type Tuning struct {
	SpatialCellSize float64 `yaml:"spatial_cell_size"`
	MaxEnemyRadius  float64 `yaml:"max_enemy_radius"`

	InvincibilityDuration float64 `yaml:"invincibility_duration"`
	PickupRadius          float64 `yaml:"pickup_radius"`

	WhipBaseRange      float64 `yaml:"whip_base_range"`
	WhipBaseDamage     float64 `yaml:"whip_base_damage"`
	WhipDamagePerLevel float64 `yaml:"whip_damage_per_level"`
	WhipSpreadFactor   float64 `yaml:"whip_spread_factor"`

	WandBaseDamage         float64 `yaml:"wand_base_damage"`
	WandDamagePerLevel     float64 `yaml:"wand_damage_per_level"`
	WandProjectileSpeed    float64 `yaml:"wand_projectile_speed"`
	WandProjectileLifetime float64 `yaml:"wand_projectile_lifetime"`
	WandProjectileRadius   float64 `yaml:"wand_projectile_radius"`
}

// DefaultTuning returns the shipped balance numbers.
func DefaultTuning() Tuning {
	return Tuning{
		SpatialCellSize: 64,
		MaxEnemyRadius:  32,

		InvincibilityDuration: 0.5,
		PickupRadius:          80,

		WhipBaseRange:      150,
		WhipBaseDamage:     20,
		WhipDamagePerLevel: 10,
		WhipSpreadFactor:   0.6,

		WandBaseDamage:         10,
		WandDamagePerLevel:     5,
		WandProjectileSpeed:    600,
		WandProjectileLifetime: 5,
		WandProjectileRadius:   8,
	}
}

// sanitize rejects values that would break the simulation, falling back to
// defaults field by field.
func (t *Tuning) sanitize() {
	def := DefaultTuning()
	if t.SpatialCellSize <= 0 {
		log.Printf("tuning: spatial_cell_size %v invalid, using %v", t.SpatialCellSize, def.SpatialCellSize)
		t.SpatialCellSize = def.SpatialCellSize
	}
	if t.MaxEnemyRadius <= 0 {
		t.MaxEnemyRadius = def.MaxEnemyRadius
	}
	if t.InvincibilityDuration < 0 {
		t.InvincibilityDuration = def.InvincibilityDuration
	}
	if t.WandProjectileLifetime <= 0 {
		t.WandProjectileLifetime = def.WandProjectileLifetime
	}
	if t.WandProjectileRadius <= 0 {
		t.WandProjectileRadius = def.WandProjectileRadius
	}
}

// LoadTuning reads a YAML file over the defaults. Missing fields keep their
// default; a missing file is not an error.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	if path == "" {
		return t, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return t, nil
		}
		return t, err
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return DefaultTuning(), err
	}
	t.sanitize()
	return t, nil
}

// TuningStore hands out immutable snapshots. Games grab one per tick, so a
// hot reload lands cleanly between ticks.
type TuningStore struct {
	v atomic.Value
}

func NewTuningStore(t Tuning) *TuningStore {
	s := &TuningStore{}
	s.v.Store(&t)
	return s
}

// Get returns the current snapshot. Callers must not mutate it.
func (s *TuningStore) Get() *Tuning {
	return s.v.Load().(*Tuning)
}

func (s *TuningStore) Set(t Tuning) {
	s.v.Store(&t)
}

// WatchTuning reloads the file whenever it changes. Editors fire several
// events per save, so reloads are debounced. Returns a stop function.
func WatchTuning(path string, store *TuningStore) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, err
	}

	go func() {
		var pending <-chan time.Time
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					pending = time.After(100 * time.Millisecond)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("tuning watch error: %v", err)
			case <-pending:
				pending = nil
				t, err := LoadTuning(path)
				if err != nil {
					log.Printf("tuning reload failed, keeping current values: %v", err)
					continue
				}
				store.Set(t)
				log.Printf("tuning reloaded from %s", path)
			}
		}
	}()

	return func() { watcher.Close() }, nil
}
