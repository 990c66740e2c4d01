package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"regexp"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenLifetime   = 30 * 24 * time.Hour // survivors come back; keep them signed in
	hashCost        = 12
	passwordMinLen  = 6
	lockoutAfter    = 8
	lockoutDuration = 5 * time.Minute
)

// Usernames show up on the leaderboard, so keep them plain.
var usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]{3,20}$`)

// Auth issues profile tokens for registered survivors and throwaway guest
// profiles. Failed logins per address count toward a temporary lockout.
type Auth struct {
	db     *DB
	secret []byte

	mu       sync.Mutex
	failures map[string]*loginFailures
}

type loginFailures struct {
	count    int
	lockedTo time.Time
}

func NewAuth(db *DB) *Auth {
	return &Auth{
		db:       db,
		secret:   loadOrCreateSecret(db),
		failures: make(map[string]*loginFailures),
	}
}

// loadOrCreateSecret reads the signing secret from the settings table so
// tokens survive restarts, minting and persisting one on first boot.
func loadOrCreateSecret(db *DB) []byte {
	if db != nil {
		if h := db.GetSetting("jwt_secret"); h != "" {
			if b, err := hex.DecodeString(h); err == nil && len(b) == 32 {
				return b
			}
		}
	}
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		panic("failed to generate JWT secret: " + err.Error())
	}
	if db != nil {
		if err := db.SetSetting("jwt_secret", hex.EncodeToString(secret)); err != nil {
			log.Printf("warning: could not persist JWT secret: %v", err)
		}
	}
	return secret
}

// Register creates a survivor profile and signs them in.
func (a *Auth) Register(username, password string) (int64, string, error) {
	if !usernameRe.MatchString(username) {
		return 0, "", fmt.Errorf("username must be 3-20 letters, digits or underscores")
	}
	if len(password) < passwordMinLen {
		return 0, "", fmt.Errorf("password must be at least %d characters", passwordMinLen)
	}

	taken, err := a.db.UsernameExists(username)
	if err != nil {
		return 0, "", fmt.Errorf("database error")
	}
	if taken {
		return 0, "", fmt.Errorf("username already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return 0, "", fmt.Errorf("internal error")
	}
	id, err := a.db.CreatePlayer(username, string(hash))
	if err != nil {
		return 0, "", fmt.Errorf("failed to create account")
	}

	token, err := a.mintToken(id, username, false)
	if err != nil {
		return 0, "", fmt.Errorf("internal error")
	}
	return id, token, nil
}

// RegisterGuest provisions a throwaway profile so an anonymous run still
// lands in the run history. Guest profiles never appear on the leaderboard.
func (a *Auth) RegisterGuest(name string) (int64, string, error) {
	id, err := a.db.CreateGuest(name)
	if err != nil {
		return 0, "", fmt.Errorf("failed to create guest")
	}
	token, err := a.mintToken(id, name, true)
	if err != nil {
		return 0, "", fmt.Errorf("internal error")
	}
	return id, token, nil
}

// Login verifies credentials. Repeated failures from one address lock it
// out for a while; a successful login clears the slate.
func (a *Auth) Login(username, password, ip string) (int64, string, error) {
	if a.lockedOut(ip) {
		return 0, "", fmt.Errorf("too many failed logins, try again later")
	}

	player, err := a.db.GetPlayerByUsername(username)
	if err != nil {
		return 0, "", fmt.Errorf("database error")
	}
	// Guest rows have no hash and cannot be logged into.
	if player == nil || player.PassHash == "" ||
		bcrypt.CompareHashAndPassword([]byte(player.PassHash), []byte(password)) != nil {
		a.recordFailure(ip)
		return 0, "", fmt.Errorf("invalid username or password")
	}

	a.clearFailures(ip)
	token, err := a.mintToken(player.ID, player.Username, false)
	if err != nil {
		return 0, "", fmt.Errorf("internal error")
	}
	return player.ID, token, nil
}

// ValidateToken checks a stored token and returns the profile it names.
// Guest tokens validate too, so a reconnecting guest keeps their history.
func (a *Auth) ValidateToken(tokenStr string) (int64, string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return a.secret, nil
	})
	if err != nil {
		return 0, "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, "", fmt.Errorf("invalid token")
	}

	pid, ok := claims["pid"].(float64)
	if !ok {
		return 0, "", fmt.Errorf("invalid token claims")
	}
	username, ok := claims["usr"].(string)
	if !ok {
		return 0, "", fmt.Errorf("invalid token claims")
	}
	return int64(pid), username, nil
}

func (a *Auth) mintToken(playerID int64, username string, guest bool) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"pid": playerID,
		"usr": username,
		"gst": guest,
		"exp": now.Add(tokenLifetime).Unix(),
		"iat": now.Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

func (a *Auth) lockedOut(ip string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	f, ok := a.failures[ip]
	return ok && time.Now().Before(f.lockedTo)
}

func (a *Auth) recordFailure(ip string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	f, ok := a.failures[ip]
	if !ok {
		f = &loginFailures{}
		a.failures[ip] = f
	}
	f.count++
	if f.count >= lockoutAfter {
		f.lockedTo = time.Now().Add(lockoutDuration)
		f.count = 0
	}
}

func (a *Auth) clearFailures(ip string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.failures, ip)
}

// GenerateGuestName creates a display name like "Survivor_a3f2c1".
func GenerateGuestName() string {
	b := make([]byte, 3)
	rand.Read(b)
	return "Survivor_" + hex.EncodeToString(b)
}
