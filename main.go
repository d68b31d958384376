package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/apps/go-server/internal/config"
	"github.com/robalobadob/hangman/apps/go-server/internal/httpserver"
	"github.com/robalobadob/hangman/apps/go-server/internal/store"
	"github.com/robalobadob/hangman/apps/go-server/internal/words"
)

func main() {
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
	log.Info().Interface("categories", corpus.Stats()).Msg("word corpus loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mem := store.NewMemoryStore()
	go store.RunSweeper(ctx, mem, cfg.SessionIdleTTL, cfg.SweepInterval)

	srv := httpserver.New(mem, corpus, httpserver.Options{
		ClientOrigin:   cfg.ClientOrigin,
		TokenSecret:    cfg.TokenSecret,
		TokenTTL:       cfg.TokenTTL,
		RequestTimeout: cfg.RequestTimeout,
		Seed:           cfg.Seed,
	})
	log.Info().Str("port", cfg.Port).Msg("starting go-server")
	if err := srv.Run(ctx, ":"+cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server exited")
	}
	log.Info().Msg("server stopped")
}
