// Demo entry point: a search agent against a random agent on the tally
// reference game.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/RainRat/gameslib/engine"
	"github.com/RainRat/gameslib/game"
	"github.com/RainRat/gameslib/games/tally"
	"github.com/RainRat/gameslib/searcher"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	g, err := tally.New()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create game")
	}

	mcts := searcher.NewMCTS(
		searcher.WithDuration(100*time.Millisecond),
		searcher.WithSeed(1),
	)
	search := func(e game.Engine) (string, error) {
		return mcts.FindBestMove(e)
	}

	match, err := engine.NewLocal(g, search, engine.RandomAgent(2))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up match")
	}

	winners, err := match.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("match failed")
	}

	fingerprint, err := g.Fingerprint()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to fingerprint game")
	}
	log.Info().
		Ints("winners", winners).
		Ints("scores", g.Scores()).
		Str("fingerprint", fingerprint).
		Msg("done")
}
