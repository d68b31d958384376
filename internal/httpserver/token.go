package httpserver

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// gameClaims binds a bearer token to exactly one game.
type gameClaims struct {
	GameID string `json:"gid"`
	jwt.RegisteredClaims
}

// tokenIssuer signs and verifies HS256 game tokens.
type tokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func newTokenIssuer(secret string, ttl time.Duration) *tokenIssuer {
	if secret == "" {
		secret = "dev_secret_change_me"
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &tokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// sign creates a token for gameID, returning it with its expiry.
func (ti *tokenIssuer) sign(gameID string) (string, time.Time, error) {
	now := ti.now()
	exp := now.Add(ti.ttl)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, gameClaims{
		GameID: gameID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})
	ss, err := t.SignedString(ti.secret)
	return ss, exp, err
}

// verify checks signature and expiry and returns the game ID the token is for.
func (ti *tokenIssuer) verify(tok string) (string, error) {
	var claims gameClaims
	t, err := jwt.ParseWithClaims(tok, &claims, func(*jwt.Token) (interface{}, error) {
		return ti.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(ti.now))
	if err != nil {
		return "", err
	}
	if !t.Valid || claims.GameID == "" {
		return "", errors.New("token has no game")
	}
	return claims.GameID, nil
}

// bearer extracts a bearer token from the Authorization header.
func bearer(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	return ""
}
