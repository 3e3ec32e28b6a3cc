package tally

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/RainRat/gameslib/game"
)

// parsedMove is a normalized move input: the placement cell, the capture
// targets in canonical (sorted) order, and whether the input is an
// incomplete prefix ("c3x" or a trailing comma).
type parsedMove struct {
	cell     string
	captures []string
	partial  bool
}

// canonical rebuilds the move string in enumeration order.
func (m *parsedMove) canonical() string {
	if len(m.captures) == 0 {
		return m.cell
	}
	return m.cell + "x" + strings.Join(m.captures, ",")
}

// parseMove splits a normalized input against the grammar
// cell["x"capture{","capture}]. It reports grammar problems as a message
// for the verdict, not an error.
func parseMove(m string) (*parsedMove, string) {
	parts := strings.Split(m, "x")
	if len(parts) > 2 {
		return nil, "a move names at most one capture group"
	}
	pm := &parsedMove{cell: parts[0]}
	if len(parts) == 1 {
		return pm, ""
	}
	rest := parts[1]
	if rest == "" {
		pm.partial = true
		return pm, ""
	}
	if strings.HasSuffix(rest, ",") {
		pm.partial = true
		rest = strings.TrimSuffix(rest, ",")
	}
	for _, c := range strings.Split(rest, ",") {
		if c == "" {
			return nil, "empty capture target"
		}
		if slices.Contains(pm.captures, c) {
			return nil, fmt.Sprintf("capture target %s named twice", c)
		}
		pm.captures = append(pm.captures, c)
	}
	slices.Sort(pm.captures)
	return pm, ""
}

func invalid(message string) game.Verdict {
	return game.Verdict{Valid: false, Complete: game.CompleteNA, Message: message}
}

// Validate checks a move input against the current snapshot without
// mutating anything. Partial prefixes of legal moves report
// CompletePartial.
func (t *Tally) Validate(input string) game.Verdict {
	if t.gameOver {
		return invalid("the game is over")
	}
	m := game.Normalize(input)
	if m == "" {
		return invalid("enter the cell to place on")
	}
	pm, msg := parseMove(m)
	if pm == nil {
		return invalid(msg)
	}
	if _, _, err := t.graph.Algebraic2Coords(pm.cell); err != nil {
		return invalid(fmt.Sprintf("%s is not a cell on this board", pm.cell))
	}
	if _, ok := t.board[pm.cell]; ok {
		return invalid(fmt.Sprintf("%s is already occupied", pm.cell))
	}
	neighbours, err := t.graph.Neighbours(pm.cell)
	if err != nil {
		return invalid(fmt.Sprintf("%s is not a cell on this board", pm.cell))
	}

	if pm.partial && len(pm.captures) == 0 {
		if len(t.capturable(neighbours)) == 0 {
			return invalid(fmt.Sprintf("no capturable piece next to %s", pm.cell))
		}
		return game.Verdict{
			Valid:     true,
			Complete:  game.CompletePartial,
			Message:   "name the pieces to capture",
			CanRender: true,
		}
	}

	sum := 0
	for _, c := range pm.captures {
		piece, ok := t.board[c]
		if !ok {
			return invalid(fmt.Sprintf("no piece to capture at %s", c))
		}
		if piece.Owner == t.currPlayer {
			return invalid(fmt.Sprintf("the piece at %s is your own", c))
		}
		if !slices.Contains(neighbours, c) {
			return invalid(fmt.Sprintf("%s is not adjacent to %s", c, pm.cell))
		}
		sum += piece.Value
	}
	if sum > CaptureCap {
		return invalid(fmt.Sprintf("captured values sum to %d, above the cap of %d", sum, CaptureCap))
	}

	complete := game.CompleteFull
	message := "legal move"
	if pm.partial {
		complete = game.CompletePartial
		message = "name further pieces to capture, or submit"
	}
	return game.Verdict{Valid: true, Complete: complete, Message: message, CanRender: true}
}

// capturable filters the neighbour list down to enemy pieces within the
// capture cap.
func (t *Tally) capturable(neighbours []string) []string {
	var out []string
	for _, n := range neighbours {
		if piece, ok := t.board[n]; ok && piece.Owner != t.currPlayer && piece.Value <= CaptureCap {
			out = append(out, n)
		}
	}
	slices.Sort(out)
	return out
}

// Moves enumerates every legal move for the current player: one placement
// per empty cell, plus every capture subset whose values stay within the
// cap.
func (t *Tally) Moves() []string {
	if t.gameOver {
		return nil
	}
	var moves []string
	for _, cell := range t.graph.ListCells() {
		if _, ok := t.board[cell]; ok {
			continue
		}
		moves = append(moves, cell)
		neighbours, err := t.graph.Neighbours(cell)
		if err != nil {
			continue
		}
		caps := t.capturable(neighbours)
		for mask := 1; mask < 1<<len(caps); mask++ {
			var chosen []string
			sum := 0
			for i, c := range caps {
				if mask&(1<<i) != 0 {
					chosen = append(chosen, c)
					sum += t.board[c].Value
				}
			}
			if sum <= CaptureCap {
				moves = append(moves, cell+"x"+strings.Join(chosen, ","))
			}
		}
	}
	slices.Sort(moves)
	return moves
}

// Move applies an input through the two-phase pipeline: optional
// re-validation, the legal-enumeration failsafe, board and score effects,
// player advance, terminal evaluation, and the snapshot push.
//
// A partial move (an incomplete prefix applied with the Partial option)
// mutates only the current view for rendering: it neither advances the
// player nor pushes a snapshot. Use it on a clone.
func (t *Tally) Move(input string, opts ...game.MoveOption) error {
	if t.gameOver {
		return game.Statef("cannot move: the game is over")
	}
	cfg := game.NewMoveConfig(opts...)
	m := game.Normalize(input)
	pm, msg := parseMove(m)

	if !cfg.Trusted {
		verdict := t.Validate(m)
		if !verdict.Valid {
			return &game.ValidationError{Verdict: verdict}
		}
		if !cfg.Partial {
			if pm == nil || pm.partial || !slices.Contains(t.Moves(), pm.canonical()) {
				return game.Statef("move %q passed validation but is not in the legal enumeration", m)
			}
		}
	}
	if pm == nil {
		return game.Statef("unparsable trusted move %q: %s", m, msg)
	}

	t.results = []game.Effect{}
	sum := 0
	for _, c := range pm.captures {
		piece := t.board[c]
		sum += piece.Value
		delete(t.board, c)
		t.results = append(t.results, game.Effect{
			Type:  game.EffectCapture,
			Where: c,
			What:  strconv.Itoa(piece.Value),
		})
	}
	placed := Piece{Owner: t.currPlayer, Value: 1 + sum}
	t.board[pm.cell] = placed
	t.results = append(t.results, game.Effect{
		Type:  game.EffectPlace,
		Where: pm.cell,
		What:  strconv.Itoa(placed.Value),
	})
	t.scores[t.currPlayer-1] += sum

	if pm.partial || cfg.Partial {
		t.lastMove = m
		return nil
	}

	t.lastMove = pm.canonical()
	t.currPlayer = game.NextPlayer(t.currPlayer, t.numPlayers)
	t.checkEOG()
	t.stack.Push(t.snapshot(t.lastMove))
	return nil
}

// checkEOG runs the terminal condition once per completed move: a full
// board ends the game, and whoever occupies strictly more cells wins.
// The board always has an odd cell count, so an even split is
// unreachable; hitting one is an invariant violation, not a draw.
func (t *Tally) checkEOG() {
	if len(t.board) < len(t.graph.ListCells()) {
		return
	}
	t.gameOver = true
	held := make([]int, t.numPlayers)
	for _, piece := range t.board {
		held[piece.Owner-1]++
	}
	best := held[0]
	winner := 1
	tied := false
	for i, h := range held[1:] {
		if h > best {
			best = h
			winner = i + 2
			tied = false
		} else if h == best {
			tied = true
		}
	}
	if tied {
		game.Invariant("tally is draw-free but the filled board splits %v", held)
	}
	t.winners = []int{winner}
	t.results = append(t.results,
		game.Effect{Type: game.EffectEOG},
		game.Effect{Type: game.EffectWinners, Who: t.Winners()},
	)
}
