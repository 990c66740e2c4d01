package main

import (
	"database/sql"
	"log"
	"time"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite database connection
type DB struct {
	conn *sql.DB
}

// PlayerRow represents a player record in the database
type PlayerRow struct {
	ID        int64
	Username  string
	PassHash  string
	CreatedAt time.Time
}

// MetaRow holds a player's aggregate progression across runs.
type MetaRow struct {
	PlayerID   int64
	TotalGold  int
	TotalKills int
	BestTime   float64 // longest survival in seconds
	BestLevel  int
	RunCount   int
	Playtime   float64
}

// RunRow represents one finished run.
type RunRow struct {
	ID        int64
	PlayerID  int64
	Character string
	Duration  float64
	Level     int
	Kills     int
	Gold      int
	KilledBy  string
	CreatedAt time.Time
}

// OpenDB opens (or creates) the SQLite database
func OpenDB(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, err
	}
	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, err
	}
	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// migrate creates tables if they don't exist
func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS players (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		pass_hash TEXT NOT NULL DEFAULT '',
		is_guest INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS meta (
		player_id INTEGER PRIMARY KEY REFERENCES players(id),
		total_gold INTEGER NOT NULL DEFAULT 0,
		total_kills INTEGER NOT NULL DEFAULT 0,
		best_time REAL NOT NULL DEFAULT 0,
		best_level INTEGER NOT NULL DEFAULT 1,
		run_count INTEGER NOT NULL DEFAULT 0,
		playtime REAL NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		player_id INTEGER NOT NULL REFERENCES players(id),
		character TEXT NOT NULL DEFAULT '',
		duration REAL NOT NULL DEFAULT 0,
		level INTEGER NOT NULL DEFAULT 1,
		kills INTEGER NOT NULL DEFAULT 0,
		gold INTEGER NOT NULL DEFAULT 0,
		killed_by TEXT NOT NULL DEFAULT '',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS achievements (
		player_id INTEGER NOT NULL REFERENCES players(id),
		achievement_id TEXT NOT NULL,
		unlocked_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (player_id, achievement_id)
	);

	CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS analytics_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		event_type TEXT NOT NULL,
		player_id INTEGER,
		session_id TEXT,
		data TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_runs_player ON runs(player_id);
	CREATE INDEX IF NOT EXISTS idx_players_username ON players(username);
	CREATE INDEX IF NOT EXISTS idx_analytics_type ON analytics_events(event_type, created_at);
	`
	_, err := db.conn.Exec(schema)
	if err != nil {
		log.Printf("DB migration error: %v", err)
	}
	return err
}

// GetSetting reads a settings value, empty string when missing.
func (db *DB) GetSetting(key string) string {
	var v string
	err := db.conn.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&v)
	if err != nil {
		return ""
	}
	return v
}

// SetSetting upserts a settings value.
func (db *DB) SetSetting(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	return err
}

// CreatePlayer creates a new player account (returns player ID)
func (db *DB) CreatePlayer(username, passHash string) (int64, error) {
	res, err := db.conn.Exec(
		"INSERT INTO players (username, pass_hash) VALUES (?, ?)",
		username, passHash,
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	_, err = db.conn.Exec("INSERT INTO meta (player_id) VALUES (?)", id)
	return id, err
}

// CreateGuest creates a guest player (no password)
func (db *DB) CreateGuest(username string) (int64, error) {
	res, err := db.conn.Exec(
		"INSERT INTO players (username, is_guest) VALUES (?, 1)",
		username,
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	_, err = db.conn.Exec("INSERT INTO meta (player_id) VALUES (?)", id)
	return id, err
}

// GetPlayerByUsername returns a player by username
func (db *DB) GetPlayerByUsername(username string) (*PlayerRow, error) {
	row := db.conn.QueryRow(
		"SELECT id, username, pass_hash, created_at FROM players WHERE username = ?",
		username,
	)
	p := &PlayerRow{}
	err := row.Scan(&p.ID, &p.Username, &p.PassHash, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return p, err
}

// UsernameExists checks if a username is taken
func (db *DB) UsernameExists(username string) (bool, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(*) FROM players WHERE username = ?", username).Scan(&count)
	return count > 0, err
}

// GetMeta returns a player's aggregate progression
func (db *DB) GetMeta(playerID int64) (*MetaRow, error) {
	row := db.conn.QueryRow(
		"SELECT player_id, total_gold, total_kills, best_time, best_level, run_count, playtime FROM meta WHERE player_id = ?",
		playerID,
	)
	m := &MetaRow{}
	err := row.Scan(&m.PlayerID, &m.TotalGold, &m.TotalKills, &m.BestTime, &m.BestLevel, &m.RunCount, &m.Playtime)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return m, err
}

// RecordRun stores a finished run and folds it into the player's meta row.
func (db *DB) RecordRun(playerID int64, s RunSummary) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO runs (player_id, character, duration, level, kills, gold, killed_by)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		playerID, s.Character.String(), s.Duration, s.Level, s.Kills, s.Gold, s.KilledBy,
	)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
		UPDATE meta SET
			total_gold = total_gold + ?,
			total_kills = total_kills + ?,
			best_time = MAX(best_time, ?),
			best_level = MAX(best_level, ?),
			run_count = run_count + 1,
			playtime = playtime + ?
		WHERE player_id = ?`,
		s.Gold, s.Kills, s.Duration, s.Level, s.Duration, playerID,
	)
	if err != nil {
		return err
	}
	return tx.Commit()
}

// GetRunHistory returns a player's recent runs
func (db *DB) GetRunHistory(playerID int64, limit int) ([]RunRow, error) {
	rows, err := db.conn.Query(`
		SELECT id, player_id, character, duration, level, kills, gold, killed_by, created_at
		FROM runs WHERE player_id = ?
		ORDER BY created_at DESC LIMIT ?`,
		playerID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []RunRow
	for rows.Next() {
		var r RunRow
		if err := rows.Scan(&r.ID, &r.PlayerID, &r.Character, &r.Duration, &r.Level, &r.Kills, &r.Gold, &r.KilledBy, &r.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// LeaderboardEntry represents one row in the survival leaderboard
type LeaderboardEntry struct {
	Rank       int     `json:"rank"`
	Username   string  `json:"username"`
	BestTime   float64 `json:"best_time"`
	BestLevel  int     `json:"best_level"`
	TotalKills int     `json:"kills"`
	RunCount   int     `json:"runs"`
}

// GetLeaderboard returns the top players by longest survival time
func (db *DB) GetLeaderboard(limit int) ([]LeaderboardEntry, error) {
	rows, err := db.conn.Query(`
		SELECT p.username, m.best_time, m.best_level, m.total_kills, m.run_count
		FROM meta m JOIN players p ON p.id = m.player_id
		WHERE p.is_guest = 0 AND m.run_count > 0
		ORDER BY m.best_time DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []LeaderboardEntry
	rank := 1
	for rows.Next() {
		var e LeaderboardEntry
		if err := rows.Scan(&e.Username, &e.BestTime, &e.BestLevel, &e.TotalKills, &e.RunCount); err != nil {
			return nil, err
		}
		e.Rank = rank
		rank++
		result = append(result, e)
	}
	return result, rows.Err()
}

// UnlockAchievement records an achievement unlock. Returns true when the
// row was newly inserted.
func (db *DB) UnlockAchievement(playerID int64, achievementID string) (bool, error) {
	res, err := db.conn.Exec(
		"INSERT OR IGNORE INTO achievements (player_id, achievement_id) VALUES (?, ?)",
		playerID, achievementID,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// GetAchievements returns the IDs of a player's unlocked achievements
func (db *DB) GetAchievements(playerID int64) ([]string, error) {
	rows, err := db.conn.Query(
		"SELECT achievement_id FROM achievements WHERE player_id = ?",
		playerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		result = append(result, id)
	}
	return result, rows.Err()
}
