package auth

// TokenIssuer issues and validates signed, time-limited bearer tokens
type TokenIssuer interface {
	// Issue produces a signed token embedding the subject identity and an
	// expiry a fixed number of minutes ahead of issuance
	Issue(subject string) (string, error)

	// Validate verifies signature and expiry and returns the subject.
	//
	// Possible errors:
	// - ErrTokenExpired: the token is past its embedded expiry
	// - ErrTokenInvalid: bad signature, missing subject claim or malformed token
	Validate(token string) (string, error)
}

// PasswordHasher hashes passwords one-way and verifies login attempts
type PasswordHasher interface {
	// Hash returns the one-way hash of a plaintext password
	Hash(password string) (string, error)

	// Compare checks a plaintext password against a stored hash and returns
	// an error when they do not match
	Compare(hashed, plain string) error
}
