package apikey

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrMismatch = errors.New("api key mismatch")

// Verifier compares a presented shared secret against its configured
// bcrypt hash. The plaintext secret is only ever held by the integration
// partner; this service stores the hash.
type Verifier struct {
	hash []byte
}

func NewVerifier(hash string) *Verifier {
	return &Verifier{hash: []byte(hash)}
}

func (v *Verifier) Verify(key string) error {
	if len(v.hash) == 0 || key == "" {
		return ErrMismatch
	}
	if err := bcrypt.CompareHashAndPassword(v.hash, []byte(key)); err != nil {
		return ErrMismatch
	}
	return nil
}

// Hash derives a bcrypt hash for a plaintext key. Used by provisioning
// scripts and tests.
func Hash(key string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
