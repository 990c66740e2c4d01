package main

// EnemyHandle is a generational reference to an enemy slot. A handle goes
// stale when its slot is despawned; stale handles resolve to nil instead of
// whatever enemy later reuses the slot.
type EnemyHandle struct {
	Idx int32
	Gen uint32
}

// NoEnemy is the zero-value-adjacent sentinel for "no target".
var NoEnemy = EnemyHandle{Idx: -1}

type enemySlot struct {
	enemy Enemy
	gen   uint32
	live  bool
}

// EnemyStore is a slot map of enemies. Slots are reused after despawn with
// a bumped generation so old handles never alias new enemies.
type EnemyStore struct {
	slots []enemySlot
	free  []int32
	count int
}

func NewEnemyStore() *EnemyStore {
	return &EnemyStore{}
}

// Spawn inserts an enemy and returns its handle.
func (s *EnemyStore) Spawn(e Enemy) EnemyHandle {
	if n := len(s.free); n > 0 {
		idx := s.free[n-1]
		s.free = s.free[:n-1]
		slot := &s.slots[idx]
		slot.enemy = e
		slot.live = true
		s.count++
		return EnemyHandle{Idx: idx, Gen: slot.gen}
	}
	s.slots = append(s.slots, enemySlot{enemy: e, live: true})
	s.count++
	return EnemyHandle{Idx: int32(len(s.slots) - 1), Gen: 0}
}

// Get resolves a handle to its enemy, or nil if the handle is stale.
func (s *EnemyStore) Get(h EnemyHandle) *Enemy {
	if h.Idx < 0 || int(h.Idx) >= len(s.slots) {
		return nil
	}
	slot := &s.slots[h.Idx]
	if !slot.live || slot.gen != h.Gen {
		return nil
	}
	return &slot.enemy
}

// Despawn frees the slot behind a handle. Returns false for stale handles.
func (s *EnemyStore) Despawn(h EnemyHandle) bool {
	if h.Idx < 0 || int(h.Idx) >= len(s.slots) {
		return false
	}
	slot := &s.slots[h.Idx]
	if !slot.live || slot.gen != h.Gen {
		return false
	}
	slot.live = false
	slot.gen++
	s.free = append(s.free, h.Idx)
	s.count--
	return true
}

// Len returns the number of live enemies.
func (s *EnemyStore) Len() int {
	return s.count
}

// ForEach calls fn for every live enemy. fn may mutate the enemy through
// the pointer but must not spawn or despawn during iteration.
func (s *EnemyStore) ForEach(fn func(EnemyHandle, *Enemy)) {
	for i := range s.slots {
		slot := &s.slots[i]
		if !slot.live {
			continue
		}
		fn(EnemyHandle{Idx: int32(i), Gen: slot.gen}, &slot.enemy)
	}
}
