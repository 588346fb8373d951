package auth

import (
	"bazaar/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher is a concrete implementation of the SecretHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.SecretHasher interface.
func NewBcryptHasher() service.SecretHasher {
	return &bcryptHasher{cost: bcrypt.DefaultCost}
}

// Hash generates a salted hash from a plaintext secret using bcrypt.
func (h *bcryptHasher) Hash(secret string) (string, error) {
	if secret == "" {
		return "", errors.New("secret must not be empty")
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash secret")
	}

	return string(bytes), nil
}

// Check compares a plaintext secret with a bcrypt hash.
// An empty hash never matches, so an unconfigured key locks the door.
func (h *bcryptHasher) Check(secret, hash string) bool {
	if secret == "" || hash == "" {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
