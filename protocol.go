package main

import "encoding/json"

// Client -> Server message types
const (
	MsgStart    = "start" // start a run
	MsgInput    = "input"
	MsgUpgrade  = "upgrade" // pick a level-up card
	MsgLeave    = "leave"
	MsgRegister = "register"
	MsgLogin    = "login"
	MsgAuth     = "auth" // token re-auth
	MsgProfile  = "profile"
	MsgBoard    = "board" // leaderboard request
)

// Server -> Client message types
const (
	MsgWelcome     = "welcome"
	MsgLevelUp     = "levelup"
	MsgGameOver    = "gameover"
	MsgError       = "error"
	MsgAuthOK      = "auth_ok"
	MsgProfileData = "profile_data"
	MsgBoardData   = "board_data"
	MsgUnlocked    = "unlocked" // achievements earned at run end
)

// Envelope wraps all outgoing JSON messages with a type field. State frames
// bypass it and go out as binary msgpack.
type Envelope struct {
	T    string      `json:"t"`
	Data interface{} `json:"d,omitempty"`
}

// InEnvelope is used for incoming messages — json.RawMessage avoids double-unmarshal
type InEnvelope struct {
	T string          `json:"t"`
	D json.RawMessage `json:"d,omitempty"`
}

// ClientInput is the movement direction, sent at 20Hz or as a compact
// binary message.
type ClientInput struct {
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}

// StartMsg begins a run with the chosen character.
type StartMsg struct {
	Name      string `json:"name"`
	Character int    `json:"char"`
}

// UpgradeMsg picks one of the offered cards by index.
type UpgradeMsg struct {
	Index int `json:"i"`
}

// RegisterMsg creates an account.
type RegisterMsg struct {
	Username string `json:"u"`
	Password string `json:"p"`
}

// LoginMsg authenticates with credentials.
type LoginMsg struct {
	Username string `json:"u"`
	Password string `json:"p"`
}

// AuthMsg re-authenticates with a stored token.
type AuthMsg struct {
	Token string `json:"tok"`
}

// AuthOKMsg confirms authentication.
type AuthOKMsg struct {
	Token    string `json:"tok"`
	Username string `json:"u"`
	PlayerID int64  `json:"pid"`
}

// WelcomeMsg is sent when a run starts.
type WelcomeMsg struct {
	RunID     string `json:"rid"`
	Character int    `json:"char"`
}

// LevelUpMsg pauses the run with upgrade cards.
type LevelUpMsg struct {
	Level   int             `json:"lvl"`
	Choices []UpgradeChoice `json:"choices"`
}

// GameOverMsg reports the run outcome.
type GameOverMsg struct {
	Duration float64 `json:"dur"`
	Level    int     `json:"lvl"`
	Kills    int     `json:"kills"`
	Gold     int     `json:"gold"`
	KilledBy string  `json:"by"`
}

// ErrorMsg sends error to client
type ErrorMsg struct {
	Msg string `json:"msg"`
}

// ProfileDataMsg carries persistent player progress.
type ProfileDataMsg struct {
	Username   string  `json:"u"`
	TotalGold  int     `json:"gold"`
	TotalKills int     `json:"kills"`
	BestTime   float64 `json:"best"`
	RunCount   int     `json:"runs"`
}

// AvatarState is the avatar portion of a state frame.
type AvatarState struct {
	X          float64 `msgpack:"x"`
	Y          float64 `msgpack:"y"`
	HP         float64 `msgpack:"hp"`
	MaxHP      float64 `msgpack:"mhp"`
	Level      int     `msgpack:"lvl"`
	XP         int     `msgpack:"xp"`
	XPToNext   int     `msgpack:"xpn"`
	Kills      int     `msgpack:"k"`
	Gold       int     `msgpack:"g"`
	Invincible bool    `msgpack:"inv"`
}

// EnemyState is one enemy in a state frame. ID packs the slot index and
// generation so clients can interpolate across frames.
type EnemyState struct {
	ID   uint64  `msgpack:"id"`
	Kind int     `msgpack:"k"`
	X    float64 `msgpack:"x"`
	Y    float64 `msgpack:"y"`
	HP   float64 `msgpack:"hp"`
}

// ProjectileState is one bolt in a state frame.
type ProjectileState struct {
	ID string  `msgpack:"id"`
	X  float64 `msgpack:"x"`
	Y  float64 `msgpack:"y"`
}

// LootState covers gems and coins in a state frame.
type LootState struct {
	ID string  `msgpack:"id"`
	X  float64 `msgpack:"x"`
	Y  float64 `msgpack:"y"`
	V  int     `msgpack:"v"`
}

// GameStateFrame is the full binary state broadcast.
type GameStateFrame struct {
	Tick        uint64            `msgpack:"t"`
	Elapsed     float64           `msgpack:"e"`
	Phase       int               `msgpack:"ph"`
	Avatar      AvatarState       `msgpack:"a"`
	Enemies     []EnemyState      `msgpack:"en"`
	Projectiles []ProjectileState `msgpack:"pr"`
	Gems        []LootState       `msgpack:"gm"`
	Coins       []LootState       `msgpack:"cn"`
}
