package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	require.Equal(t, "a1xb1,b2", Normalize("  A1 x B1, B2\t"))
	require.Equal(t, "pass", Normalize("Pass"))
	require.Equal(t, "", Normalize(" \n"))
}

func TestNextPlayer(t *testing.T) {
	require.Equal(t, 2, NextPlayer(1, 2))
	require.Equal(t, 1, NextPlayer(2, 2))
	require.Equal(t, 1, NextPlayer(4, 4))
	require.Equal(t, 3, NextPlayer(2, 4))
}

func TestMoveConfig(t *testing.T) {
	cfg := NewMoveConfig()
	require.False(t, cfg.Partial)
	require.False(t, cfg.Trusted)

	cfg = NewMoveConfig(Partial(), Trusted())
	require.True(t, cfg.Partial)
	require.True(t, cfg.Trusted)
}

func TestStack(t *testing.T) {
	var s Stack[string]
	s.Push("first")
	s.Push("second")
	s.Push("third")

	t.Run("negative indices count from the end", func(t *testing.T) {
		got, err := s.At(-1)
		require.NoError(t, err)
		require.Equal(t, "third", got)

		got, err = s.At(0)
		require.NoError(t, err)
		require.Equal(t, "first", got)

		got, err = s.At(-3)
		require.NoError(t, err)
		require.Equal(t, "first", got)
	})

	t.Run("out of bounds is a StateError", func(t *testing.T) {
		_, err := s.At(3)
		var serr *StateError
		require.ErrorAs(t, err, &serr)

		_, err = s.At(-4)
		require.ErrorAs(t, err, &serr)
	})

	t.Run("peek returns the newest snapshot", func(t *testing.T) {
		require.Equal(t, "third", s.Peek())
		require.Equal(t, 3, s.Len())
	})

	t.Run("peeking an empty stack violates an invariant", func(t *testing.T) {
		var empty Stack[int]
		require.Panics(t, func() { empty.Peek() })
	})
}

func TestDecodeRecord(t *testing.T) {
	rec := &Record[string]{
		Game:       "tally",
		NumPlayers: 2,
		Stack:      Stack[string]{"snap"},
	}
	data, err := EncodeRecord(rec)
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		back, err := DecodeRecord[string](data, "tally")
		require.NoError(t, err)
		require.Equal(t, rec, back)
	})

	t.Run("identifier mismatch is a StateError", func(t *testing.T) {
		_, err := DecodeRecord[string](data, "othergame")
		var serr *StateError
		require.ErrorAs(t, err, &serr)
	})

	t.Run("garbage is a StateError", func(t *testing.T) {
		_, err := DecodeRecord[string]([]byte("{nope"), "tally")
		var serr *StateError
		require.ErrorAs(t, err, &serr)
	})

	t.Run("fingerprints are stable", func(t *testing.T) {
		h1, err := rec.Fingerprint()
		require.NoError(t, err)
		h2, err := rec.Fingerprint()
		require.NoError(t, err)
		require.Equal(t, h1, h2)
		require.Len(t, h1, 16)
	})
}
