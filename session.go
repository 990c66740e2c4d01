package main

import (
	"sync"
)

const maxRuns = 100

// Session holds one live run and the name of whoever is playing it.
type Session struct {
	ID   string
	Name string
	Game *Game
}

// SessionManager handles creation and lookup of runs
type SessionManager struct {
	mu   sync.RWMutex
	runs map[string]*Session
}

// NewSessionManager creates a new SessionManager
func NewSessionManager() *SessionManager {
	return &SessionManager{
		runs: make(map[string]*Session),
	}
}

// CreateRun starts a new run. Returns nil if the server is at capacity.
func (sm *SessionManager) CreateRun(name string, character CharacterKind, tuning *TuningStore) *Session {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if len(sm.runs) >= maxRuns {
		return nil
	}

	game := NewGame(tuning, character)
	sess := &Session{
		ID:   GenerateID(8),
		Name: name,
		Game: game,
	}
	sm.runs[sess.ID] = sess
	go game.Run()
	return sess
}

// GetRun returns a run by ID
func (sm *SessionManager) GetRun(id string) *Session {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.runs[id]
}

// EndRun stops a run's loop and forgets it.
func (sm *SessionManager) EndRun(id string) {
	sm.mu.Lock()
	sess, ok := sm.runs[id]
	if ok {
		delete(sm.runs, id)
	}
	sm.mu.Unlock()
	if ok {
		sess.Game.Stop()
	}
}

// RunCount returns the number of live runs.
func (sm *SessionManager) RunCount() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.runs)
}
