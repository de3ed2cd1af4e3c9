package game

import "errors"

// GameType identifies which derivation applies. The set is closed: adding a
// game is a protocol change, not a runtime extension.
type GameType string

const (
	TypeDice  GameType = "dice"
	TypeCrash GameType = "crash"
)

// DefaultMaxMultiplier caps crash payouts when the caller does not supply a
// platform limit.
const DefaultMaxMultiplier = 10000

// ErrUnknownGame is returned by Verify for a game outside the closed set.
var ErrUnknownGame = errors.New("unknown game type")

// Result is the outcome of one derivation: the numeric result rounded to two
// decimals, the full computation digest, and the SHA-256 of the server seed
// alone for commitment display.
type Result struct {
	Outcome        float64 `json:"outcome"`
	Digest         string  `json:"digest"`
	ServerSeedHash string  `json:"server_seed_hash"`
}

// Request carries one verification call. ServerSeedHash, Expected and
// MaxMultiplier are optional; a zero MaxMultiplier means DefaultMaxMultiplier.
type Request struct {
	Game           GameType
	ServerSeed     string
	ServerSeedHash string
	ClientSeed     string
	Nonce          int64
	MaxMultiplier  float64
	Expected       *float64
	Strict         bool
}

// Verification is the engine's answer: the derived result plus the
// seed-commitment flags. When no hash claim was supplied both flags are
// false; no assertion was made, so nothing can mismatch.
type Verification struct {
	Result       Result
	HashVerified bool
	HashMismatch bool
}

// Verdict values as surfaced to callers.
const (
	VerdictPass = "PASS"
	VerdictFail = "FAIL"
)
