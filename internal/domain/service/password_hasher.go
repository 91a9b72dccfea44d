// Package service declares the outbound ports the use cases depend on: hashing, tokens,
// storage, messaging and the like. Implementations live under internal/infra.
package service

// PasswordHasher turns account passwords into stored hashes and checks login attempts against them.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash. A malformed hash never matches.
	Check(password, hash string) bool
}
