// Package engine runs local matches: it drives agents through the shared
// validate/move contract until a game reaches its terminal state.
package engine

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"github.com/RainRat/gameslib/game"
)

// Agent chooses a move for the current player. It must not mutate the
// engine; clone before exploring.
type Agent func(e game.Engine) (string, error)

// Local is a match between len(Agents) players on one game instance.
type Local struct {
	Game   game.Engine
	Agents []Agent
}

// NewLocal pairs a game with one agent per player.
func NewLocal(g game.Engine, agents ...Agent) (*Local, error) {
	if len(agents) != g.NumPlayers() {
		return nil, game.Statef("game wants %d players, got %d agents", g.NumPlayers(), len(agents))
	}
	return &Local{Game: g, Agents: agents}, nil
}

// Run executes the game loop until a winner is found and returns the
// winner set.
func (l *Local) Run() ([]int, error) {
	for !l.Game.GameOver() {
		player := l.Game.CurrPlayer()
		move, err := l.Agents[player-1](l.Game)
		if err != nil {
			return nil, err
		}
		if err := l.Game.Move(move); err != nil {
			return nil, err
		}
		log.Debug().
			Int("player", player).
			Str("move", move).
			Int("ply", l.Game.StackLen()-1).
			Msg("move played")
	}
	winners := l.Game.Winners()
	log.Info().
		Str("game", l.Game.ID()).
		Ints("winners", winners).
		Int("plies", l.Game.StackLen()-1).
		Msg("game over")
	return winners, nil
}

// RandomAgent plays uniformly random legal moves from a seeded source.
func RandomAgent(seed uint64) Agent {
	rng := rand.New(rand.NewSource(seed))
	return func(e game.Engine) (string, error) {
		move, ok := game.RandomMove(e, rng)
		if !ok {
			return "", game.Statef("no legal moves to pick from")
		}
		return move, nil
	}
}
