package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "garygeeke",
		"exp": exp.Unix(),
	}).SignedString([]byte("platform-secret"))
	require.NoError(t, err)
	return token
}

func tokenServer(t *testing.T, issue func() string) (*httptest.Server, *int32) {
	t.Helper()
	var calls int32
	router := mux.NewRouter()
	router.HandleFunc("/api/token", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		var body TokenRequestBody
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(issue()))
	}).Methods("POST")
	ts := httptest.NewServer(router)
	t.Cleanup(ts.Close)
	return ts, &calls
}

func TestPasswordTokenSourceCaches(t *testing.T) {
	token := signedToken(t, time.Now().Add(time.Hour))
	ts, calls := tokenServer(t, func() string { return token })

	src := NewPasswordTokenSource(ts.URL, "garygeeke", "secret", nil)
	ctx := context.Background()

	got, err := src.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, token, got)

	got, err = src.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, token, got)
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))

	src.Invalidate()
	_, err = src.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(calls))
}

func TestPasswordTokenSourceRefreshesNearExpiry(t *testing.T) {
	ts, calls := tokenServer(t, func() string { return signedToken(t, time.Now().Add(30*time.Second)) })

	src := NewPasswordTokenSource(ts.URL, "garygeeke", "secret", nil)
	ctx := context.Background()

	_, err := src.Token(ctx)
	require.NoError(t, err)
	_, err = src.Token(ctx)
	require.NoError(t, err)

	// Tokens inside the refresh window are never reused
	assert.Equal(t, int32(2), atomic.LoadInt32(calls))
}

func TestPasswordTokenSourceOpaqueToken(t *testing.T) {
	ts, calls := tokenServer(t, func() string { return "not-a-jwt" })

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	src := NewPasswordTokenSource(ts.URL, "garygeeke", "secret", nil)
	src.now = func() time.Time { return now }

	_, err := src.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, now.Add(opaqueTokenTTL), src.expiresAt)

	now = now.Add(opaqueTokenTTL)
	_, err = src.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(calls))
}

func TestPasswordTokenSourceRejected(t *testing.T) {
	ts, _ := tokenServer(t, func() string { return "unused" })

	src := NewPasswordTokenSource(ts.URL, "garygeeke", "wrong", nil)
	_, err := src.Token(context.Background())
	assert.ErrorContains(t, err, "rejected with status 401")
}

func TestClientSendsBearerToken(t *testing.T) {
	token := signedToken(t, time.Now().Add(time.Hour))
	tokens, _ := tokenServer(t, func() string { return token })

	router := mux.NewRouter()
	router.PathPrefix("/servers/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer "+token, r.Header.Get("Authorization"))
		respondJSON(w, http.StatusOK, map[string]any{"relatedHTTPCode": 200})
	})

	c := newTestClient(t, router, WithTokenSource(NewPasswordTokenSource(tokens.URL, "garygeeke", "secret", nil)))
	err := PostForVoid(context.Background(), c, "RemoveWidget", testBase+"/widgets/{2}/remove", nil, "garygeeke", "w-1")
	require.NoError(t, err)
}
