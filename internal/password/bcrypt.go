// Package password hashes user passwords with bcrypt.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/bookshelf-server/internal/model"
)

// MinCost is the lowest cost Bcrypt will hash with.
const MinCost = 10

// MaxLength is the longest password, in bytes, bcrypt hashes in full.
const MaxLength = 72

var _ model.PasswordHasher = (*Bcrypt)(nil)

// Bcrypt implements PasswordHasher. Each hash embeds its own random salt
// and cost, so hashes made with an older cost still verify.
type Bcrypt struct {
	cost int
}

// NewBcrypt creates a hasher with the given cost, raised to MinCost and
// capped at bcrypt.MaxCost.
func NewBcrypt(cost int) *Bcrypt {
	if cost < MinCost {
		cost = MinCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	return &Bcrypt{cost: cost}
}

// Hash returns the bcrypt hash of password. Passwords longer than
// MaxLength bytes are rejected with model.ErrPasswordTooLong.
func (b *Bcrypt) Hash(password string) (string, error) {
	if len(password) > MaxLength {
		return "", model.ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether password matches hash. A malformed hash never matches.
func (b *Bcrypt) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Cost returns the configured cost.
func (b *Bcrypt) Cost() int {
	return b.cost
}
