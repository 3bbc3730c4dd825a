package auth

import "golang.org/x/crypto/bcrypt"

// dummyHash is a bcrypt hash of a throwaway value. Login attempts for
// unknown usernames are compared against it so the failure path costs the
// same as a wrong password for a real account.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// CredentialStore hashes and verifies passwords with bcrypt. The work
// factor is configurable so verification cost can be raised as hardware
// improves.
type CredentialStore struct {
	cost int
}

func NewCredentialStore(cost int) *CredentialStore {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &CredentialStore{cost: cost}
}

func (c *CredentialStore) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), c.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Check reports whether password matches hash. The result is a plain
// boolean; callers cannot tell a wrong password from an unusable hash.
func (c *CredentialStore) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// CheckDummy burns one bcrypt comparison. Called on the unknown-user login
// path to keep its latency comparable to a wrong-password attempt.
func (c *CredentialStore) CheckDummy(password string) {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
}
