// Package tally implements the reference capture-by-sum game on an
// orthogonal grid. Players alternately place value-1 pieces; a placement
// may capture orthogonally adjacent enemy pieces whose values sum to at
// most CaptureCap, growing the placed piece by that sum and banking the
// captured values as points. The game ends when the board is full, and
// whoever holds strictly more cells wins. Boards always have an odd cell
// count, so the game is draw-free by construction.
package tally

import (
	"github.com/RainRat/gameslib/board"
	"github.com/RainRat/gameslib/canon"
	"github.com/RainRat/gameslib/game"
)

// GameID identifies tally records.
const GameID = "tally"

// CaptureCap is the maximum total value one placement may capture.
const CaptureCap = 6

const stateVersion = 1

// Piece is one board occupant: its owner and accumulated value.
type Piece struct {
	Owner int `json:"owner"`
	Value int `json:"value"`
}

// Snapshot is one immutable ply record.
type Snapshot struct {
	Version    int               `json:"_version"`
	CurrPlayer int               `json:"currplayer"`
	Board      canon.Dict[Piece] `json:"board"`
	LastMove   string            `json:"lastmove,omitempty"`
	Results    []game.Effect     `json:"_results"`
	Scores     []int             `json:"scores"`
}

// Tally is the game engine. One instance per logical game; clone before
// speculative exploration.
type Tally struct {
	numPlayers int
	variants   []string
	size       int
	graph      *board.RectGrid

	stack    game.Stack[Snapshot]
	gameOver bool
	winners  []int

	// current view, rehydrated by Load
	currPlayer int
	board      canon.Dict[Piece]
	scores     []int
	results    []game.Effect
	lastMove   string
}

// New starts a fresh two-player game. The "size-7" variant selects a 7x7
// board instead of the default 5x5.
func New(variants ...string) (*Tally, error) {
	size := 5
	for _, v := range variants {
		if v == "size-7" {
			size = 7
		}
	}
	g, err := board.NewRectGrid(size, size, board.Orth)
	if err != nil {
		return nil, err
	}
	t := &Tally{
		numPlayers: 2,
		variants:   variants,
		size:       size,
		graph:      g,
	}
	t.stack.Push(Snapshot{
		Version:    stateVersion,
		CurrPlayer: 1,
		Board:      canon.Dict[Piece]{},
		Results:    []game.Effect{},
		Scores:     []int{0, 0},
	})
	if err := t.Load(-1); err != nil {
		return nil, err
	}
	return t, nil
}

// FromRecord resumes a game from its serialized record. The topology and
// current view are rebuilt together.
func FromRecord(data []byte) (*Tally, error) {
	rec, err := game.DecodeRecord[Snapshot](data, GameID)
	if err != nil {
		return nil, err
	}
	size := 5
	for _, v := range rec.Variants {
		if v == "size-7" {
			size = 7
		}
	}
	g, err := board.NewRectGrid(size, size, board.Orth)
	if err != nil {
		return nil, err
	}
	t := &Tally{
		numPlayers: rec.NumPlayers,
		variants:   rec.Variants,
		size:       size,
		graph:      g,
		stack:      rec.Stack,
		gameOver:   rec.GameOver,
		winners:    rec.Winner,
	}
	if err := t.Load(-1); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Tally) ID() string         { return GameID }
func (t *Tally) NumPlayers() int    { return t.numPlayers }
func (t *Tally) Variants() []string { return t.variants }
func (t *Tally) CurrPlayer() int    { return t.currPlayer }
func (t *Tally) GameOver() bool     { return t.gameOver }
func (t *Tally) StackLen() int      { return t.stack.Len() }

func (t *Tally) Winners() []int {
	out := make([]int, len(t.winners))
	copy(out, t.winners)
	return out
}

// Scores returns the banked capture points per player, indexed by
// player-1.
func (t *Tally) Scores() []int {
	out := make([]int, len(t.scores))
	copy(out, t.scores)
	return out
}

// Board returns a copy of the current board view.
func (t *Tally) Board() canon.Dict[Piece] {
	out := make(canon.Dict[Piece], len(t.board))
	for k, v := range t.board {
		out[k] = v
	}
	return out
}

// Results returns the effect records of the current view.
func (t *Tally) Results() []game.Effect {
	out := make([]game.Effect, len(t.results))
	copy(out, t.results)
	return out
}

// LastMove returns the move that produced the current view, "" at the
// initial snapshot.
func (t *Tally) LastMove() string { return t.lastMove }

// Load rehydrates the current view from one stack entry. The stack is
// never truncated: snapshots after idx stay in place as an audit trail,
// and a Move after Load appends onto them.
func (t *Tally) Load(idx int) error {
	snap, err := t.stack.At(idx)
	if err != nil {
		return err
	}
	t.currPlayer = snap.CurrPlayer
	t.lastMove = snap.LastMove
	t.board = make(canon.Dict[Piece], len(snap.Board))
	for k, v := range snap.Board {
		t.board[k] = v
	}
	t.scores = make([]int, len(snap.Scores))
	copy(t.scores, snap.Scores)
	t.results = make([]game.Effect, len(snap.Results))
	copy(t.results, snap.Results)
	return nil
}

// snapshot freezes the current view into a new immutable ply record.
func (t *Tally) snapshot(move string) Snapshot {
	boardCopy := make(canon.Dict[Piece], len(t.board))
	for k, v := range t.board {
		boardCopy[k] = v
	}
	scoresCopy := make([]int, len(t.scores))
	copy(scoresCopy, t.scores)
	resultsCopy := make([]game.Effect, len(t.results))
	copy(resultsCopy, t.results)
	return Snapshot{
		Version:    stateVersion,
		CurrPlayer: t.currPlayer,
		Board:      boardCopy,
		LastMove:   move,
		Results:    resultsCopy,
		Scores:     scoresCopy,
	}
}

func (t *Tally) record() *game.Record[Snapshot] {
	return &game.Record[Snapshot]{
		Game:       GameID,
		NumPlayers: t.numPlayers,
		Variants:   t.variants,
		GameOver:   t.gameOver,
		Winner:     t.Winners(),
		Stack:      t.stack,
	}
}

// Serialize produces the canonical full game record.
func (t *Tally) Serialize() ([]byte, error) {
	return game.EncodeRecord(t.record())
}

// Clone returns an independent copy via serialize-then-reconstruct, so no
// mutable structure is shared with the original.
func (t *Tally) Clone() (game.Engine, error) {
	data, err := t.Serialize()
	if err != nil {
		return nil, err
	}
	return FromRecord(data)
}

// Fingerprint is the content address of the full game record.
func (t *Tally) Fingerprint() (string, error) {
	return t.record().Fingerprint()
}
