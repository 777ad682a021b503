package utils

import (
	"context"
	"sync"
	"time"
)

const revokedKeyPrefix = "auth:revoked:"

// In-memory fallback for revoked tokens when Redis is unavailable.
// Entries die with the process, which still beats honoring a token the
// user explicitly logged out.
var (
	revokedMu sync.RWMutex
	revoked   = map[string]time.Time{}
)

// BlacklistToken revokes a token until its natural expiration.
func BlacklistToken(token string, expiresAt time.Time) {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return
	}

	if rc := GetRedis(); rc != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := rc.Set(ctx, revokedKeyPrefix+token, "1", ttl).Err(); err == nil {
			return
		}
	}

	revokedMu.Lock()
	revoked[token] = expiresAt
	pruneRevokedLocked()
	revokedMu.Unlock()
}

// IsTokenBlacklisted reports whether a token was revoked before its
// natural expiration. Redis errors fail open so an outage cannot lock
// every user out.
func IsTokenBlacklisted(token string) bool {
	if rc := GetRedis(); rc != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if n, err := rc.Exists(ctx, revokedKeyPrefix+token).Result(); err == nil {
			return n > 0
		}
	}

	revokedMu.RLock()
	expiresAt, ok := revoked[token]
	revokedMu.RUnlock()
	if !ok {
		return false
	}
	if time.Now().After(expiresAt) {
		revokedMu.Lock()
		delete(revoked, token)
		revokedMu.Unlock()
		return false
	}
	return true
}

// pruneRevokedLocked drops expired fallback entries. Caller holds the
// write lock.
func pruneRevokedLocked() {
	now := time.Now()
	for t, exp := range revoked {
		if now.After(exp) {
			delete(revoked, t)
		}
	}
}
