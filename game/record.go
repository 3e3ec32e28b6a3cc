package game

import "github.com/RainRat/gameslib/canon"

// Record is the persistence and transport unit: the full serialized game,
// stack included. S is the concrete game's snapshot type.
type Record[S any] struct {
	Game       string   `json:"game"`
	NumPlayers int      `json:"numplayers"`
	Variants   []string `json:"variants,omitempty"`
	GameOver   bool     `json:"gameover"`
	Winner     []int    `json:"winner,omitempty"`
	Stack      Stack[S] `json:"stack"`
}

// EncodeRecord serializes a record canonically.
func EncodeRecord[S any](r *Record[S]) ([]byte, error) {
	return canon.Marshal(r)
}

// DecodeRecord parses a serialized record and checks it belongs to the
// handling engine. A mismatched or empty record is a StateError.
func DecodeRecord[S any](data []byte, wantGame string) (*Record[S], error) {
	var r Record[S]
	if err := canon.Unmarshal(data, &r); err != nil {
		return nil, Statef("malformed game record: %v", err)
	}
	if r.Game != wantGame {
		return nil, Statef("record belongs to game %q, not %q", r.Game, wantGame)
	}
	if r.Stack.Len() == 0 {
		return nil, Statef("game record has an empty stack")
	}
	return &r, nil
}

// Fingerprint returns the content address of a record.
func (r *Record[S]) Fingerprint() (string, error) {
	return canon.Fingerprint(r)
}
