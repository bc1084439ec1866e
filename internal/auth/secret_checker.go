package auth

import (
	"context"
	"crypto/sha256"
	"errors"
	"sync"

	"github.com/2beens/trainprogress/pkg"
)

var ErrNoSecretHash = errors.New("app secret hash not set")

// SecretChecker validates the shared app secret against its bcrypt hash.
// Tokens that passed once are remembered (by digest) so bcrypt runs once per token.
type SecretChecker struct {
	secretHash string
	mutex      sync.RWMutex
	verified   map[[sha256.Size]byte]bool
}

func NewSecretChecker(secretHash string) *SecretChecker {
	return &SecretChecker{
		secretHash: secretHash,
		verified:   make(map[[sha256.Size]byte]bool),
	}
}

func (c *SecretChecker) IsValid(_ context.Context, token string) (bool, error) {
	if c.secretHash == "" {
		return false, ErrNoSecretHash
	}
	if token == "" {
		return false, nil
	}

	digest := sha256.Sum256([]byte(token))
	c.mutex.RLock()
	ok := c.verified[digest]
	c.mutex.RUnlock()
	if ok {
		return true, nil
	}

	if !pkg.CheckPasswordHash(token, c.secretHash) {
		return false, nil
	}

	c.mutex.Lock()
	c.verified[digest] = true
	c.mutex.Unlock()
	return true, nil
}
