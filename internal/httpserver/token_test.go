package httpserver

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	ti := newTokenIssuer("s3cret", time.Hour)
	tok, exp, err := ti.sign("abc123")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	gid, err := ti.verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "abc123", gid)
}

func TestTokenExpires(t *testing.T) {
	ti := newTokenIssuer("s3cret", time.Minute)
	base := time.Now()
	ti.now = func() time.Time { return base }
	tok, _, err := ti.sign("abc123")
	require.NoError(t, err)

	ti.now = func() time.Time { return base.Add(2 * time.Minute) }
	_, err = ti.verify(tok)
	assert.Error(t, err)
}

func TestBearer(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	assert.Empty(t, bearer(r))

	r.Header.Set("Authorization", "bearer  tok ")
	assert.Equal(t, "tok", bearer(r))

	r.Header.Set("Authorization", "Basic abc")
	assert.Empty(t, bearer(r))
}
