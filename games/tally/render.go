package tally

import (
	"strconv"
	"strings"

	"github.com/RainRat/gameslib/game"
)

var playerGlyphs = []string{"A", "B"}

// Render builds the declarative board payload for the current view using
// the topology's ordered enumeration. Cells encode as glyph+value ("A3"),
// "-" when empty; rows join with newlines.
func (t *Tally) Render() *game.Payload {
	var rows []string
	for _, row := range t.graph.ListCellsOrdered() {
		cells := make([]string, len(row))
		for i, cell := range row {
			if piece, ok := t.board[cell]; ok {
				cells[i] = playerGlyphs[piece.Owner-1] + strconv.Itoa(piece.Value)
			} else {
				cells[i] = "-"
			}
		}
		rows = append(rows, strings.Join(cells, ","))
	}

	payload := &game.Payload{
		Board: game.BoardSpec{
			Style:  "squares",
			Width:  t.size,
			Height: t.size,
		},
		Legend: map[string]string{
			"A": "player 1",
			"B": "player 2",
		},
		Pieces: strings.Join(rows, "\n"),
	}
	if t.lastMove != "" {
		pm, _ := parseMove(t.lastMove)
		if pm != nil {
			payload.Annotations = append(payload.Annotations, game.Annotation{
				Type:    "enter",
				Targets: []string{pm.cell},
			})
			if len(pm.captures) > 0 {
				payload.Annotations = append(payload.Annotations, game.Annotation{
					Type:    "exit",
					Targets: pm.captures,
				})
			}
		}
	}
	return payload
}

// HandleClick folds one pointer interaction into a candidate move string.
// Rendering rows run top down, so row 0 is the top of the board. Clicking
// an empty cell starts a new placement; clicking an enemy piece extends
// the in-progress move with a capture target. The candidate is validated,
// never applied.
func (t *Tally) HandleClick(move string, row, col int, piece string) game.ClickResult {
	cell, err := t.graph.Coords2Algebraic(col, t.size-1-row)
	if err != nil {
		return game.ClickResult{
			Move:    move,
			Verdict: invalid("that point is outside the board"),
		}
	}

	current := game.Normalize(move)
	var candidate string
	_, occupied := t.board[cell]
	switch {
	case current == "" || !occupied:
		candidate = cell
	case strings.HasSuffix(current, "x") || strings.HasSuffix(current, ","):
		candidate = current + cell
	case strings.Contains(current, "x"):
		candidate = current + "," + cell
	default:
		candidate = current + "x" + cell
	}
	return game.ClickResult{Move: candidate, Verdict: t.Validate(candidate)}
}
