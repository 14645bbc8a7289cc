package admin

import (
	"crypto/subtle"
	"sync"

	"legacy/utils"
)

// Gate owns the shared admin secret and the set of live session tokens.
// It is a deterrent in front of the admin surface, not a user system: one
// password, no accounts, no rate limiting.
type Gate struct {
	password []byte

	mu       sync.RWMutex
	sessions map[string]struct{}
}

func NewGate(password string) *Gate {
	return &Gate{
		password: []byte(password),
		sessions: make(map[string]struct{}),
	}
}

// Authenticate compares the supplied password against the configured secret
// and, on match, issues a session token. A mismatch returns ok=false with no
// detail; the caller shows a generic "invalid password".
func (g *Gate) Authenticate(password string) (string, bool) {
	if len(g.password) == 0 {
		return "", false
	}
	if subtle.ConstantTimeCompare([]byte(password), g.password) != 1 {
		return "", false
	}

	token, jti, err := utils.GenerateAdminToken()
	if err != nil {
		return "", false
	}

	g.mu.Lock()
	g.sessions[jti] = struct{}{}
	g.mu.Unlock()
	return token, true
}

// IsAuthenticated reports whether the token is valid, unexpired and still
// registered (not logged out).
func (g *Gate) IsAuthenticated(token string) bool {
	jti, err := utils.ParseAdminToken(token)
	if err != nil {
		return false
	}
	g.mu.RLock()
	_, ok := g.sessions[jti]
	g.mu.RUnlock()
	return ok
}

// Logout revokes the session behind the token. Unknown or malformed tokens
// are ignored.
func (g *Gate) Logout(token string) {
	jti, err := utils.ParseAdminToken(token)
	if err != nil {
		return
	}
	g.mu.Lock()
	delete(g.sessions, jti)
	g.mu.Unlock()
}
