package tally

import (
	"testing"

	"github.com/RainRat/gameslib/board"
	"github.com/RainRat/gameslib/canon"
	"github.com/RainRat/gameslib/game"
	"github.com/stretchr/testify/require"
)

func fresh(t *testing.T) *Tally {
	t.Helper()
	g, err := New()
	require.NoError(t, err)
	return g
}

func TestFirstPlacement(t *testing.T) {
	g := fresh(t)

	require.NoError(t, g.Move("a1"))

	require.Equal(t, canon.Dict[Piece]{"a1": {Owner: 1, Value: 1}}, g.Board())
	require.Equal(t, 2, g.currPlayer)
	require.Equal(t, 2, g.StackLen())
	require.Equal(t, []game.Effect{
		{Type: game.EffectPlace, Where: "a1", What: "1"},
	}, g.Results())
	require.Equal(t, "a1", g.LastMove())
}

func TestCaptures(t *testing.T) {
	g := fresh(t)
	require.NoError(t, g.Move("b1")) // player 1
	require.NoError(t, g.Move("c2")) // player 2

	t.Run("capture grows the piece and banks the points", func(t *testing.T) {
		require.NoError(t, g.Move("c1xc2"))
		b := g.Board()
		require.Equal(t, Piece{Owner: 1, Value: 2}, b["c1"])
		require.NotContains(t, b, "c2")
		require.Equal(t, []int{1, 0}, g.Scores())
	})

	t.Run("capture effects are recorded per atomic change", func(t *testing.T) {
		require.Equal(t, []game.Effect{
			{Type: game.EffectCapture, Where: "c2", What: "1"},
			{Type: game.EffectPlace, Where: "c1", What: "2"},
		}, g.Results())
	})
}

func TestOverCapCapture(t *testing.T) {
	g := fresh(t)
	// Contrive a heavy enemy piece next to a1.
	g.board["b1"] = Piece{Owner: 2, Value: 7}

	t.Run("absent from the legal enumeration", func(t *testing.T) {
		require.NotContains(t, g.Moves(), "a1xb1")
		require.Contains(t, g.Moves(), "a1")
	})

	t.Run("rejected with a validation failure", func(t *testing.T) {
		before := g.StackLen()
		err := g.Move("a1xb1")
		var verr *game.ValidationError
		require.ErrorAs(t, err, &verr)
		require.False(t, verr.Verdict.Valid)
		require.Equal(t, before, g.StackLen())
	})

	t.Run("multiple captures breach the cap together", func(t *testing.T) {
		g := fresh(t)
		g.board["b1"] = Piece{Owner: 2, Value: 4}
		g.board["a2"] = Piece{Owner: 2, Value: 4}
		require.Contains(t, g.Moves(), "a1xa2")
		require.Contains(t, g.Moves(), "a1xb1")
		require.NotContains(t, g.Moves(), "a1xa2,b1")

		err := g.Move("a1xa2,b1")
		var verr *game.ValidationError
		require.ErrorAs(t, err, &verr)
	})
}

func TestValidationPurity(t *testing.T) {
	g := fresh(t)
	require.NoError(t, g.Move("c3"))

	before, err := g.Serialize()
	require.NoError(t, err)
	beforeView := g.Board()

	for _, input := range []string{"", "c3", "a1", "a1xc3", "zz99", "!!", "a1x", "b3xc3", "b3xc3,c3"} {
		g.Validate(input)
	}

	after, err := g.Serialize()
	require.NoError(t, err)
	require.Equal(t, string(before), string(after))
	require.Equal(t, beforeView, g.Board())
}

func TestValidateVerdicts(t *testing.T) {
	g := fresh(t)
	require.NoError(t, g.Move("b3")) // player 1
	require.NoError(t, g.Move("d3")) // player 2

	cases := []struct {
		name     string
		input    string
		valid    bool
		complete int
	}{
		{"empty input", "", false, game.CompleteNA},
		{"plain placement", "a1", true, game.CompleteFull},
		{"occupied cell", "b3", false, game.CompleteNA},
		{"off board", "z9", false, game.CompleteNA},
		{"full capture", "c3xd3", true, game.CompleteFull},
		{"capture prefix", "c3x", true, game.CompletePartial},
		{"trailing comma", "c3xd3,", true, game.CompletePartial},
		{"prefix with nothing to capture", "a1x", false, game.CompleteNA},
		{"own piece", "c3xb3", false, game.CompleteNA},
		{"non adjacent capture", "a1xd3", false, game.CompleteNA},
		{"duplicate target", "c3xd3,d3", false, game.CompleteNA},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := g.Validate(tc.input)
			require.Equal(t, tc.valid, v.Valid, v.Message)
			require.Equal(t, tc.complete, v.Complete, v.Message)
			require.NotEmpty(t, v.Message)
		})
	}
}

func TestNormalizedInput(t *testing.T) {
	g := fresh(t)
	require.NoError(t, g.Move(" A1 "))
	require.Equal(t, "a1", g.LastMove())
}

func TestTerminal(t *testing.T) {
	t.Run("full board picks the majority holder", func(t *testing.T) {
		g := fresh(t)
		// Alternate plain placements over every cell in enumeration
		// order, so the board fills in 25 plies without a capture.
		for _, cell := range g.graph.ListCells() {
			require.NoError(t, g.Move(cell))
		}
		require.True(t, g.GameOver())
		// Player 1 made 13 placements to player 2's 12.
		require.Equal(t, []int{1}, g.Winners())
		last := g.Results()
		require.Equal(t, game.EffectEOG, last[len(last)-2].Type)
		require.Equal(t, game.EffectWinners, last[len(last)-1].Type)
		require.Nil(t, g.Moves())
	})

	t.Run("moving after the end is a StateError", func(t *testing.T) {
		g := fresh(t)
		for _, cell := range g.graph.ListCells() {
			require.NoError(t, g.Move(cell))
		}
		err := g.Move("a1")
		var serr *game.StateError
		require.ErrorAs(t, err, &serr)
	})

	t.Run("an even split violates the draw-free invariant", func(t *testing.T) {
		// Contrive an impossible position: a filled even-sized board.
		grid, err := board.NewRectGrid(2, 2, board.Orth)
		require.NoError(t, err)
		g := &Tally{
			numPlayers: 2,
			size:       2,
			graph:      grid,
			currPlayer: 1,
			board: canon.Dict[Piece]{
				"a1": {Owner: 1, Value: 1}, "a2": {Owner: 1, Value: 1},
				"b1": {Owner: 2, Value: 1}, "b2": {Owner: 2, Value: 1},
			},
			scores: []int{0, 0},
		}
		require.PanicsWithError(t,
			"invariant violation: tally is draw-free but the filled board splits [2 2]",
			func() { g.checkEOG() })
	})
}

func TestLoad(t *testing.T) {
	g := fresh(t)
	require.NoError(t, g.Move("a1"))
	require.NoError(t, g.Move("b2"))
	require.NoError(t, g.Move("c3"))

	t.Run("load(0) restores the initial view", func(t *testing.T) {
		require.NoError(t, g.Load(0))
		require.Empty(t, g.Board())
		require.Equal(t, 1, g.currPlayer)
		require.Equal(t, "", g.LastMove())
		require.Equal(t, 4, g.StackLen(), "loading must not truncate")
	})

	t.Run("load(-1) restores the newest view", func(t *testing.T) {
		require.NoError(t, g.Load(-1))
		require.Equal(t, "c3", g.LastMove())
		require.Equal(t, 2, g.currPlayer)
		require.Len(t, g.Board(), 3)
	})

	t.Run("out of bounds is a StateError", func(t *testing.T) {
		var serr *game.StateError
		require.ErrorAs(t, g.Load(4), &serr)
		require.ErrorAs(t, g.Load(-5), &serr)
	})

	t.Run("a move after load appends, never truncates", func(t *testing.T) {
		require.NoError(t, g.Load(1))
		require.NoError(t, g.Move("d4"))
		require.Equal(t, 5, g.StackLen())
	})
}

func TestSerializeRoundTrip(t *testing.T) {
	g := fresh(t)
	require.NoError(t, g.Move("b1"))
	require.NoError(t, g.Move("c2"))
	require.NoError(t, g.Move("c1xc2"))

	data, err := g.Serialize()
	require.NoError(t, err)

	back, err := FromRecord(data)
	require.NoError(t, err)
	require.Equal(t, g.Board(), back.Board())
	require.Equal(t, g.Scores(), back.Scores())
	require.Equal(t, g.StackLen(), back.StackLen())

	again, err := back.Serialize()
	require.NoError(t, err)
	require.Equal(t, string(data), string(again))

	h1, err := g.Fingerprint()
	require.NoError(t, err)
	h2, err := back.Fingerprint()
	require.NoError(t, err)
	require.Equal(t, h1, h2)

	t.Run("foreign records are refused", func(t *testing.T) {
		_, err := FromRecord([]byte(`{"game":"chess","numplayers":2,"stack":[{}]}`))
		var serr *game.StateError
		require.ErrorAs(t, err, &serr)
	})
}

func TestClone(t *testing.T) {
	g := fresh(t)
	require.NoError(t, g.Move("a1"))

	clone, err := g.Clone()
	require.NoError(t, err)
	require.NoError(t, clone.Move("b2"))

	require.Equal(t, 2, g.StackLen(), "the original must not observe the clone's move")
	require.Equal(t, 3, clone.StackLen())
	require.NotContains(t, g.Board(), "b2")
}

func TestTrustedReplay(t *testing.T) {
	g := fresh(t)
	require.NoError(t, g.Move("a1"))
	require.NoError(t, g.Move("b2"))

	replay := fresh(t)
	for i := 1; i < g.StackLen(); i++ {
		snap, err := g.stack.At(i)
		require.NoError(t, err)
		require.NoError(t, replay.Move(snap.LastMove, game.Trusted()))
	}
	require.Equal(t, g.Board(), replay.Board())
}

func TestPartialMove(t *testing.T) {
	g := fresh(t)
	require.NoError(t, g.Move("b3"))

	probe, err := g.Clone()
	require.NoError(t, err)
	require.NoError(t, probe.Move("c3x", game.Partial()))
	require.Equal(t, 2, probe.StackLen(), "partial moves never push a snapshot")
	require.Contains(t, probe.(*Tally).Board(), "c3")
}

func TestHandleClick(t *testing.T) {
	g := fresh(t)
	require.NoError(t, g.Move("b3")) // player 1
	require.NoError(t, g.Move("c4")) // player 2, enemy of player 1

	t.Run("click starts a placement", func(t *testing.T) {
		// Row 0 is the top of the rendered board; c3 sits at row 2, col 2.
		res := g.HandleClick("", 2, 2, "")
		require.Equal(t, "c3", res.Move)
		require.True(t, res.Valid)
		require.Equal(t, game.CompleteFull, res.Complete)
	})

	t.Run("click on an enemy piece extends into a capture", func(t *testing.T) {
		res := g.HandleClick("c3", 1, 2, "") // c4 from player 1's view
		require.Equal(t, "c3xc4", res.Move)
		require.True(t, res.Valid)
	})

	t.Run("click outside the board is rejected", func(t *testing.T) {
		res := g.HandleClick("", 9, 9, "")
		require.False(t, res.Valid)
	})
}

func TestRender(t *testing.T) {
	g := fresh(t)
	require.NoError(t, g.Move("a1"))

	payload := g.Render()
	require.Equal(t, "squares", payload.Board.Style)
	require.Equal(t, 5, payload.Board.Width)
	rows := []string{
		"-,-,-,-,-",
		"-,-,-,-,-",
		"-,-,-,-,-",
		"-,-,-,-,-",
		"A1,-,-,-,-",
	}
	require.Equal(t, rows[0]+"\n"+rows[1]+"\n"+rows[2]+"\n"+rows[3]+"\n"+rows[4], payload.Pieces)
	require.Equal(t, []game.Annotation{{Type: "enter", Targets: []string{"a1"}}}, payload.Annotations)
}
