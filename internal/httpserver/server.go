// apps/go-server/internal/httpserver/server.go
//
// HTTP server wiring for the hangman backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, access log).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Game endpoints: POST /game/new, then per game GET state, guess, hint, reset.
//   - Game tokens: /game/new returns a JWT bound to the game ID; every
//     /game/{id} route requires it as a bearer token.
//
// Notes:
//   - Each game is one engine in the store; the store serializes access.
//   - Engine outcomes (including rejected input) are answered with 200 and
//     an "outcome" field; only transport problems use error statuses.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/apps/go-server/internal/game"
	"github.com/robalobadob/hangman/apps/go-server/internal/store"
	"github.com/robalobadob/hangman/apps/go-server/internal/words"
)

// Options tunes a Server; zero values fall back to development defaults.
type Options struct {
	ClientOrigin   string
	TokenSecret    string
	TokenTTL       time.Duration
	RequestTimeout time.Duration
	Seed           uint64 // non-zero makes every game's randomness reproducible
}

// Server bundles router, game registry and corpus.
type Server struct {
	r      *chi.Mux
	store  store.Store
	corpus *words.Corpus
	tokens *tokenIssuer
	seed   uint64
	seq    atomic.Uint64 // per-game seed offset
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, corpus *words.Corpus, opts Options) *Server {
	s := &Server{
		r:      chi.NewRouter(),
		store:  st,
		corpus: corpus,
		tokens: newTokenIssuer(opts.TokenSecret, opts.TokenTTL),
		seed:   opts.Seed,
	}
	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	origin := opts.ClientOrigin
	if origin == "" {
		origin = "http://localhost:5173"
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)        // add X-Request-ID
	s.r.Use(chimw.RealIP)           // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(accessLog)              // one zerolog line per request
	s.r.Use(chimw.Recoverer)        // recover from panics
	s.r.Use(chimw.Timeout(timeout)) // bound handler time
	s.r.Use(jsonContentType)        // default JSON responses
	s.r.Use(cors(origin))           // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"hangman-go","endpoints":["/health","POST /game/new","GET /game/{id}","POST /game/{id}/guess","POST /game/{id}/hint","POST /game/{id}/reset"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(s.corpus.Stats())
	})

	// --- game ---
	s.r.Post("/game/new", s.handleNewGame)
	s.r.Route("/game/{id}", func(r chi.Router) {
		r.Use(s.requireGameToken)
		r.Get("/", s.handleGetGame)
		r.Post("/guess", s.handleGuess)
		r.Post("/hint", s.handleHint)
		r.Post("/reset", s.handleReset)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Run serves HTTP on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	hs := &http.Server{Addr: addr, Handler: s.r, ReadHeaderTimeout: 5 * time.Second}
	errc := make(chan error, 1)
	go func() { errc <- hs.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return hs.Shutdown(shutdownCtx)
	}
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// accessLog writes one structured line per request.
func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("reqId", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("took", time.Since(start)).
			Msg("http")
	})
}

type ctxGameKey struct{}

// requireGameToken checks that the bearer token was issued for {id}.
func (s *Server) requireGameToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		tok := bearer(r)
		if tok == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		gid, err := s.tokens.verify(tok)
		if err != nil || gid != id {
			log.Warn().Err(err).Str("gameId", id).Msg("rejected game token")
			writeError(w, http.StatusUnauthorized, "invalid_token")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxGameKey{}, id)))
	})
}

// ------------------------------ GAME ---------------------------------------

// newGameRes is the payload for POST /game/new.
type newGameRes struct {
	GameID    string        `json:"gameId"`
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expiresAt"`
	Game      game.Snapshot `json:"game"`
}

// handleNewGame creates a fresh engine, registers it and hands out its token.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	e, err := game.New(s.corpus, s.source())
	if err != nil {
		log.Error().Err(err).Msg("new game")
		writeError(w, http.StatusInternalServerError, "corpus_unavailable")
		return
	}
	if err := s.store.Save(r.Context(), e); err != nil {
		log.Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	tok, exp, err := s.tokens.sign(e.ID)
	if err != nil {
		log.Error().Err(err).Str("gameId", e.ID).Msg("sign token")
		_ = s.store.Delete(r.Context(), e.ID)
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	snap := e.Snapshot()
	log.Info().Str("gameId", e.ID).Str("category", snap.Category).Msg("game started")

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(newGameRes{GameID: e.ID, Token: tok, ExpiresAt: exp, Game: snap})
}

// source returns the randomness for a new engine.
func (s *Server) source() game.Source {
	if s.seed == 0 {
		return game.NewSource(0)
	}
	return game.NewSource(s.nextSeed())
}

// nextSeed offsets the configured seed per game, skipping 0 on wrap-around
// since a zero seed means crypto randomness.
func (s *Server) nextSeed() uint64 {
	for {
		if v := s.seed + s.seq.Add(1) - 1; v != 0 {
			return v
		}
	}
}

// handleGetGame returns the current snapshot.
func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	var snap game.Snapshot
	if !s.withGame(w, r, func(e *game.Engine) { snap = e.Snapshot() }) {
		return
	}
	_ = json.NewEncoder(w).Encode(snap)
}

// guessReq is the payload for POST /game/{id}/guess.
type guessReq struct {
	Letter string `json:"letter"`
}

// handleGuess applies one guess.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	var res game.GuessResult
	if !s.withGame(w, r, func(e *game.Engine) { res = e.GuessLetter(req.Letter) }) {
		return
	}
	if res.Status.Over() && (res.Outcome == game.OutcomeCorrect || res.Outcome == game.OutcomeIncorrect) {
		log.Info().
			Str("gameId", chi.URLParam(r, "id")).
			Str("status", string(res.Status)).
			Int("guesses", len(res.Game.UsedLetters)).
			Msg("game finished")
	}
	_ = json.NewEncoder(w).Encode(res)
}

// handleHint asks the engine for a suggestion.
func (s *Server) handleHint(w http.ResponseWriter, r *http.Request) {
	var res game.HintResult
	if !s.withGame(w, r, func(e *game.Engine) { res = e.Hint() }) {
		return
	}
	_ = json.NewEncoder(w).Encode(res)
}

// handleReset starts a new round on the same game ID; the token stays valid.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	var snap game.Snapshot
	if !s.withGame(w, r, func(e *game.Engine) { snap = e.StartNewGame() }) {
		return
	}
	_ = json.NewEncoder(w).Encode(snap)
}

// withGame runs fn against the request's engine, writing an error response
// and returning false when the game cannot be reached.
func (s *Server) withGame(w http.ResponseWriter, r *http.Request, fn func(e *game.Engine)) bool {
	id, _ := r.Context().Value(ctxGameKey{}).(string)
	err := s.store.Do(r.Context(), id, func(e *game.Engine) error {
		fn(e)
		return nil
	})
	switch {
	case err == nil:
		return true
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
	default:
		log.Error().Err(err).Str("gameId", id).Msg("game access")
		writeError(w, http.StatusServiceUnavailable, "unavailable")
	}
	return false
}

// writeError sends {"error": code} with the given status.
func writeError(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}
