// Command hangman-cli plays the game in a terminal against a local engine.
package main

import (
	"os"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/apps/go-server/internal/config"
	"github.com/robalobadob/hangman/apps/go-server/internal/game"
	"github.com/robalobadob/hangman/apps/go-server/internal/term"
	"github.com/robalobadob/hangman/apps/go-server/internal/words"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	corpus, err := words.Load(cfg.CorpusFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.CorpusFile).Msg("failed to load word corpus")
	}
	e, err := game.New(corpus, game.NewSource(cfg.Seed))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start game")
	}

	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[36mletter>\033[0m ",
		EOFPrompt:       "quit",
		InterruptPrompt: "^C",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open terminal")
	}
	defer l.Close()

	if err := term.Play(l, l.Stdout(), e); err != nil {
		log.Error().Err(err).Msg("terminal input failed")
	}
}
