package entity

// Credential persists a username and the one-way hash of its password.
// The plaintext password never leaves the auth service.
type Credential struct {
	ID             uint64
	Username       string
	HashedPassword string
}
