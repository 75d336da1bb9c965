package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into salted one-way hashes and
// checks candidates against them.
//
// Implementations must embed the salt and the work factor in the returned
// hash so that verification needs nothing but the hash itself.
type PasswordHasher interface {
	// Hash returns a salted hash of plaintext.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches hash. The comparison runs in
	// constant time with respect to the password. A malformed hash yields
	// false, never an error.
	Verify(plaintext, hash string) bool

	// DummyHash returns a valid hash of a random secret. Callers verify
	// against it when no real hash exists so that both paths cost the same.
	DummyHash() string
}
