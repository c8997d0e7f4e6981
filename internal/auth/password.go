package auth

import (
	"context"
	"runtime"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"
)

// PasswordHasher wraps bcrypt with a bound on concurrent operations so a
// burst of registrations or logins cannot pin every CPU.
type PasswordHasher struct {
	cost      int
	sem       *semaphore.Weighted
	dummyHash []byte
}

// NewPasswordHasher creates a hasher with the given bcrypt cost. The dummy
// hash is computed once and used to equalize work on lookups that miss.
func NewPasswordHasher(cost int) (*PasswordHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	dummy, err := bcrypt.GenerateFromPassword([]byte("no-such-account"), cost)
	if err != nil {
		return nil, err
	}
	return &PasswordHasher{
		cost:      cost,
		sem:       semaphore.NewWeighted(int64(runtime.GOMAXPROCS(0))),
		dummyHash: dummy,
	}, nil
}

// Hash derives a salted bcrypt hash from the plaintext.
func (h *PasswordHasher) Hash(ctx context.Context, password string) (string, error) {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer h.sem.Release(1)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Compare reports whether candidate matches the stored hash. It never reveals
// why a comparison failed.
func (h *PasswordHasher) Compare(ctx context.Context, hash, candidate string) bool {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return false
	}
	defer h.sem.Release(1)

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate)) == nil
}

// CompareDummy burns one bcrypt verification against a fixed hash. Login uses
// it when the email resolves to no account, so "no such user" and "wrong
// password" cost the same amount of work.
func (h *PasswordHasher) CompareDummy(ctx context.Context, candidate string) {
	h.Compare(ctx, string(h.dummyHash), candidate)
}
