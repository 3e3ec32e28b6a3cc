// Package searcher implements Monte Carlo tree search over any game
// engine. The live instance is never mutated: every episode runs on a
// fresh clone, so search can probe hypothetical futures safely.
package searcher

import (
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"github.com/RainRat/gameslib/game"
)

const C_SQUARED = 2.0

const WIN = 1.0
const LOSS = 0.0

const defaultCutoff = 500

type Option func(m *MCTS)

// MCTS searches by repeated clone-simulate-backup episodes.
type MCTS struct {
	episodes int
	duration time.Duration
	cutoff   int
	rng      *rand.Rand
}

func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

func WithCutoff(depth int) Option {
	return func(m *MCTS) {
		if depth > 0 {
			m.cutoff = depth
		}
	}
}

// WithSeed fixes the random source, making the search deterministic.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		cutoff: defaultCutoff,
		rng:    rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
	for _, option := range options {
		option(m)
	}
	if m.episodes <= 0 && m.duration <= 0 {
		panic("Must specify search episodes or duration")
	}
	return m
}

// FindBestMove runs the configured number of episodes against clones of
// the engine and returns the most visited move.
func (m *MCTS) FindBestMove(e game.Engine) (string, error) {
	if e.GameOver() {
		return "", game.Statef("cannot search a finished game")
	}
	moves := e.Moves()
	if len(moves) == 0 {
		return "", game.Statef("no legal moves to search")
	}
	if len(moves) == 1 {
		return moves[0], nil
	}

	root := newDecision(nil, "", 0, moves)
	start := time.Now()
	episodes := 0
	for m.keepGoing(episodes, start) {
		clone, err := e.Clone()
		if err != nil {
			return "", err
		}
		if err := m.simulate(root, clone); err != nil {
			return "", err
		}
		episodes++
	}

	best := root.bestMove()
	log.Debug().
		Str("game", e.ID()).
		Int("episodes", episodes).
		Int("branching", len(moves)).
		Str("move", best).
		Msg("search complete")
	return best, nil
}

func (m *MCTS) keepGoing(episodes int, start time.Time) bool {
	if m.episodes > 0 {
		return episodes < m.episodes
	}
	return time.Since(start) < m.duration
}

// simulate runs one episode: selection, expansion, rollout, backup.
func (m *MCTS) simulate(root *decision, clone game.Engine) error {
	node := root

	// Selection: descend fully expanded nodes.
	for len(node.untried) == 0 && len(node.children) > 0 {
		node = node.selectChild()
		if err := clone.Move(node.move, game.Trusted()); err != nil {
			return err
		}
	}

	// Expansion: try one untried move.
	if len(node.untried) > 0 && !clone.GameOver() {
		i := m.rng.Intn(len(node.untried))
		move := node.untried[i]
		node.untried[i] = node.untried[len(node.untried)-1]
		node.untried = node.untried[:len(node.untried)-1]

		mover := clone.CurrPlayer()
		if err := clone.Move(move, game.Trusted()); err != nil {
			return err
		}
		child := newDecision(node, move, mover, clone.Moves())
		node.children = append(node.children, child)
		node = child
	}

	// Rollout: random play to the end or the cutoff.
	for depth := 0; !clone.GameOver() && depth < m.cutoff; depth++ {
		move, ok := game.RandomMove(clone, m.rng)
		if !ok {
			break
		}
		if err := clone.Move(move, game.Trusted()); err != nil {
			return err
		}
	}

	// Backup the outcome to the root.
	reward := rewarder(clone.Winners())
	for node != nil {
		node.update(reward)
		node = node.parent
	}
	return nil
}

// rewarder scores an episode outcome from each mover's perspective.
func rewarder(winners []int) func(player int) float64 {
	return func(player int) float64 {
		for _, w := range winners {
			if w == player {
				return WIN
			}
		}
		return LOSS
	}
}
