package main

import (
	"encoding/json"
	"sync"
)

const (
	maxConnsPerIP = 5
	maxTotalConns = 1000
)

// Hub manages all connected clients and routes them to runs
type Hub struct {
	mu         sync.RWMutex
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	sessions   *SessionManager
	tuning     *TuningStore
	// Connection limiting (mutex-protected, accessed from HTTP handlers)
	connMu     sync.Mutex
	ipConns    map[string]int
	totalConns int
	// Auth, DB, analytics
	db        *DB
	auth      *Auth
	analytics *Analytics
}

// NewHub creates a new Hub with database and tuning
func NewHub(db *DB, tuning *TuningStore) *Hub {
	h := &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client, 64),
		unregister: make(chan *Client, 64),
		sessions:   NewSessionManager(),
		tuning:     tuning,
		ipConns:    make(map[string]int),
		db:         db,
		auth:       NewAuth(db),
		analytics:  NewAnalytics(db),
	}
	return h
}

func (h *Hub) CanAccept(ip string) bool {
	h.connMu.Lock()
	defer h.connMu.Unlock()
	if h.totalConns >= maxTotalConns {
		return false
	}
	if h.ipConns[ip] >= maxConnsPerIP {
		return false
	}
	return true
}

func (h *Hub) TrackConnect(ip string) {
	h.connMu.Lock()
	defer h.connMu.Unlock()
	h.ipConns[ip]++
	h.totalConns++
}

func (h *Hub) TrackDisconnect(ip string) {
	h.connMu.Lock()
	defer h.connMu.Unlock()
	h.ipConns[ip]--
	if h.ipConns[ip] <= 0 {
		delete(h.ipConns, ip)
	}
	h.totalConns--
}

// Run processes register/unregister events
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			// Abandoned runs die with the connection
			if client.runID != "" {
				h.sessions.EndRun(client.runID)
			}
		}
	}
}

// makeRunEndHook builds the callback that persists a finished run, checks
// achievements, and tells the client what it unlocked.
func (h *Hub) makeRunEndHook(c *Client, runID string) func(RunSummary) {
	return func(s RunSummary) {
		data, _ := json.Marshal(map[string]interface{}{
			"char": s.Character.String(), "dur": s.Duration,
			"kills": s.Kills, "lvl": s.Level, "by": s.KilledBy,
		})
		h.analytics.Track(EvtRunEnd, c.authPlayerID, runID, string(data))

		if h.db == nil || c.authPlayerID == 0 {
			return
		}
		if err := h.db.RecordRun(c.authPlayerID, s); err != nil {
			return
		}
		unlocked := CheckAchievements(h.db, c.authPlayerID, s)
		for _, def := range unlocked {
			h.analytics.Track(EvtAchievement, c.authPlayerID, runID, def.ID)
		}
		if len(unlocked) > 0 {
			c.SendJSON(Envelope{T: MsgUnlocked, Data: unlocked})
		}
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// TotalConns returns the tracked connection count
func (h *Hub) TotalConns() int {
	h.connMu.Lock()
	defer h.connMu.Unlock()
	return h.totalConns
}
