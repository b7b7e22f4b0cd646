// Package auth implements the access gate that authorizes every request
// except user registration and the health probes.
package auth

import (
	"log"
	"sync"

	"github.com/rromanowicz/task-list/internal/store"
)

// Gate checks tokens against a process-lifetime snapshot of the token
// store. The snapshot is taken on the first authorized request and never
// refreshed: a token revoked after startup stays accepted until the
// process restarts, and a token activated after startup stays invisible.
// This staleness is the documented contract, not a caching accident.
type Gate struct {
	store store.TokenStore

	mu     sync.Mutex
	tokens map[string]struct{}
}

func NewGate(tokenStore store.TokenStore) *Gate {
	return &Gate{store: tokenStore}
}

// Authorize reports whether the token was active when the snapshot was
// taken. A failed snapshot load denies the request and leaves the cache
// unpopulated, so the next request retries the load; once a load succeeds
// the set is frozen.
func (g *Gate) Authorize(token string) bool {
	tokens, err := g.load()
	if err != nil {
		log.Printf("auth: loading active tokens: %v", err)
		return false
	}
	_, ok := tokens[token]
	return ok
}

func (g *Gate) load() (map[string]struct{}, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.tokens != nil {
		return g.tokens, nil
	}

	active, err := g.store.ListActiveTokens()
	if err != nil {
		return nil, err
	}
	tokens := make(map[string]struct{}, len(active))
	for _, token := range active {
		tokens[token] = struct{}{}
	}
	g.tokens = tokens
	return g.tokens, nil
}
