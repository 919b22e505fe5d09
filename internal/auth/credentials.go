package auth

import "golang.org/x/crypto/bcrypt"

// Verifier abstracts shared-secret storage and comparison so the plaintext
// contract can be swapped for a salted-hash comparator without changing the
// login flow.
type Verifier interface {
	Hash(plain string) (string, error)
	Verify(stored, supplied string) bool
}

// PlaintextVerifier compares credentials by exact, case-sensitive string
// equality and stores them unhashed. This is the preserved storefront
// contract; it is not password security.
type PlaintextVerifier struct{}

// NewPlaintextVerifier constructs the exact-match verifier.
func NewPlaintextVerifier() *PlaintextVerifier {
	return &PlaintextVerifier{}
}

// Hash returns the password unchanged.
func (v *PlaintextVerifier) Hash(plain string) (string, error) {
	return plain, nil
}

// Verify compares the stored and supplied values byte for byte.
func (v *PlaintextVerifier) Verify(stored, supplied string) bool {
	return stored == supplied
}

// BcryptVerifier stores bcrypt hashes and compares with constant-time checks.
type BcryptVerifier struct {
	cost int
}

// NewBcryptVerifier constructs a verifier with the given cost.
func NewBcryptVerifier(cost int) *BcryptVerifier {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptVerifier{cost: cost}
}

// Hash hashes a plaintext password with the configured cost.
func (v *BcryptVerifier) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), v.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify checks a password against its hashed value.
func (v *BcryptVerifier) Verify(stored, supplied string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
}
