package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenPath = "/api/token"

	// refreshSkew renews a token this long before it expires
	refreshSkew = time.Minute

	// opaqueTokenTTL applies to tokens that carry no readable expiry
	opaqueTokenTTL = 5 * time.Minute
)

// TokenSource supplies bearer tokens for outbound requests
type TokenSource interface {
	Token(ctx context.Context) (string, error)
	// Invalidate drops any cached token so the next call fetches a new one
	Invalidate()
}

// PasswordTokenSource exchanges a user's password for a platform bearer token
// and caches it until shortly before it expires
type PasswordTokenSource struct {
	platformURL string
	userID      string
	password    string
	httpClient  *http.Client
	now         func() time.Time

	mu        sync.RWMutex
	token     string
	expiresAt time.Time
}

// NewPasswordTokenSource creates a token source for userID on the platform at platformURL
func NewPasswordTokenSource(platformURL, userID, password string, hc *http.Client) *PasswordTokenSource {
	if hc == nil {
		hc = &http.Client{Timeout: 30 * time.Second}
	}
	return &PasswordTokenSource{
		platformURL: strings.TrimRight(platformURL, "/"),
		userID:      userID,
		password:    password,
		httpClient:  hc,
		now:         time.Now,
	}
}

// Token returns the cached token or fetches a new one
func (s *PasswordTokenSource) Token(ctx context.Context) (string, error) {
	s.mu.RLock()
	if s.token != "" && s.now().Add(refreshSkew).Before(s.expiresAt) {
		token := s.token
		s.mu.RUnlock()
		return token, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Another caller may have refreshed while we waited
	if s.token != "" && s.now().Add(refreshSkew).Before(s.expiresAt) {
		return s.token, nil
	}

	token, err := s.fetch(ctx)
	if err != nil {
		return "", err
	}
	s.token = token
	s.expiresAt = s.expiry(token)
	return token, nil
}

// Invalidate drops the cached token
func (s *PasswordTokenSource) Invalidate() {
	s.mu.Lock()
	s.token = ""
	s.expiresAt = time.Time{}
	s.mu.Unlock()
}

func (s *PasswordTokenSource) fetch(ctx context.Context) (string, error) {
	payload, err := json.Marshal(TokenRequestBody{UserID: s.userID, Password: s.password})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.platformURL+tokenPath, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to request token: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read token: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token request for %s rejected with status %d", s.userID, resp.StatusCode)
	}

	token := strings.TrimSpace(string(body))
	if token == "" {
		return "", fmt.Errorf("platform returned an empty token for %s", s.userID)
	}
	return token, nil
}

// expiry reads the exp claim without verifying the signature; the platform
// verifies its own tokens
func (s *PasswordTokenSource) expiry(token string) time.Time {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return s.now().Add(opaqueTokenTTL)
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return s.now().Add(opaqueTokenTTL)
	}
	return exp.Time
}
