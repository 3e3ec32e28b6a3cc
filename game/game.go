// Package game defines the generic life-cycle every concrete game engine
// implements: the immutable snapshot stack, the two-phase validate/move
// pipeline, the effect records describing each ply, and the serialized
// record exchanged with collaborators.
package game

import (
	"strings"
	"unicode"

	"golang.org/x/exp/rand"
)

// Completeness of a validated move input.
const (
	// CompleteFull marks a fully specified move.
	CompleteFull = 1
	// CompleteNA marks inputs where completeness does not apply.
	CompleteNA = 0
	// CompletePartial marks a legal prefix of a still-incomplete move.
	CompletePartial = -1
)

// Verdict is the structured result of Validate. It is returned, never
// raised, so interactive callers can render guidance instead of handling a
// fault.
type Verdict struct {
	Valid     bool   `json:"valid"`
	Complete  int    `json:"complete"`
	Message   string `json:"message"`
	CanRender bool   `json:"canrender"`
}

// EffectType tags one atomic change recorded by a completed move.
type EffectType string

const (
	EffectPlace   EffectType = "place"
	EffectCapture EffectType = "capture"
	EffectMove    EffectType = "move"
	EffectPass    EffectType = "pass"
	EffectResign  EffectType = "resign"
	EffectEOG     EffectType = "eog"
	EffectWinners EffectType = "winners"
)

// Effect is one tagged change record. A snapshot carries one Effect per
// atomic change its move produced.
type Effect struct {
	Type  EffectType `json:"type"`
	Where string     `json:"where,omitempty"`
	From  string     `json:"from,omitempty"`
	What  string     `json:"what,omitempty"`
	Who   []int      `json:"who,omitempty"`
}

// ClickResult is the verdict-with-candidate returned by HandleClick: the
// candidate move string built from a pointer interaction, plus the verdict
// of validating it.
type ClickResult struct {
	Move string `json:"move"`
	Verdict
}

// Engine is the uniform contract of a concrete game. A single instance
// must only ever be used from one goroutine; use Clone before any
// speculative exploration.
type Engine interface {
	// ID returns the game identifier recorded in serialized records.
	ID() string
	NumPlayers() int
	Variants() []string
	// CurrPlayer is the 1-based index of the player to move.
	CurrPlayer() int
	GameOver() bool
	// Winners returns the winner set once GameOver is true.
	Winners() []int
	// Moves enumerates every legal move string for the current player.
	Moves() []string
	// Validate checks an input without mutating any state.
	Validate(input string) Verdict
	// Move applies an input. It returns a StateError on a terminal
	// machine and a *ValidationError for invalid untrusted input.
	Move(input string, opts ...MoveOption) error
	// Load rehydrates the current view from a stack entry without
	// truncating history. Negative indices count from the end.
	Load(idx int) error
	// Clone returns a fully independent copy via
	// serialize-then-reconstruct.
	Clone() (Engine, error)
	StackLen() int
	// Serialize produces the full game record in canonical form.
	Serialize() ([]byte, error)
	// Render builds the declarative board payload for the current view.
	Render() *Payload
	// HandleClick folds one pointer interaction into a candidate move
	// string and validates it.
	HandleClick(move string, row, col int, piece string) ClickResult
}

// MoveConfig collects the options of a Move call.
type MoveConfig struct {
	// Partial allows applying a legal prefix of an incomplete move.
	Partial bool
	// Trusted skips re-validation, for replaying validated history.
	Trusted bool
}

// MoveOption configures a Move call.
type MoveOption func(*MoveConfig)

// Partial marks the input as a deliberate prefix of an incomplete move.
func Partial() MoveOption {
	return func(c *MoveConfig) { c.Partial = true }
}

// Trusted applies the move without re-validation.
func Trusted() MoveOption {
	return func(c *MoveConfig) { c.Trusted = true }
}

// NewMoveConfig folds options into a config.
func NewMoveConfig(opts ...MoveOption) MoveConfig {
	var cfg MoveConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Normalize case-folds a move input and strips all whitespace. Every game
// normalizes through here before parsing its own grammar.
func Normalize(input string) string {
	var b strings.Builder
	for _, r := range input {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// NextPlayer advances a 1-based player index modulo the player count.
func NextPlayer(current, numPlayers int) int {
	return current%numPlayers + 1
}

// RandomMove picks one legal move uniformly using the supplied source, so
// move generation stays deterministic under a fixed seed.
func RandomMove(e Engine, rng *rand.Rand) (string, bool) {
	moves := e.Moves()
	if len(moves) == 0 {
		return "", false
	}
	return moves[rng.Intn(len(moves))], true
}
