package password

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"

	"golang.org/x/crypto/scrypt"
)

// Params holds scrypt cost parameters. Verify and Rotate always use the same
// Params so records written here verify in the auth provider and vice versa.
type Params struct {
	N       int
	R       int
	P       int
	KeyLen  int
	SaltLen int
}

// DefaultParams matches the auth provider: N=16384, r=8, p=1, 64 byte key, 16 byte salt.
func DefaultParams() Params {
	return Params{N: 16384, R: 8, P: 1, KeyLen: 64, SaltLen: 16}
}

// Hasher verifies and rotates password records.
type Hasher struct {
	params Params
	rand   io.Reader
}

// NewHasher creates a Hasher with the given parameters.
func NewHasher(params Params) *Hasher {
	return &Hasher{params: params, rand: rand.Reader}
}

// Params returns the parameters the hasher was built with.
func (h *Hasher) Params() Params {
	return h.params
}

// Verify reports whether plain matches the stored record.
// Malformed records and derivation failures are reported as a mismatch.
func (h *Hasher) Verify(plain, stored string) bool {
	record, err := Decode(stored)
	if err != nil {
		return false
	}

	derived, err := h.derive(plain, record.Salt)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(derived, record.Hash) == 1
}

// Rotate derives a record for plain with a fresh random salt.
func (h *Hasher) Rotate(plain string) (Record, error) {
	salt := make([]byte, h.params.SaltLen)
	if _, err := io.ReadFull(h.rand, salt); err != nil {
		return Record{}, fmt.Errorf("failed to generate salt: %w", err)
	}

	hash, err := h.derive(plain, salt)
	if err != nil {
		return Record{}, err
	}

	return Record{Salt: salt, Hash: hash}, nil
}

func (h *Hasher) derive(plain string, salt []byte) ([]byte, error) {
	key, err := scrypt.Key([]byte(plain), salt, h.params.N, h.params.R, h.params.P, h.params.KeyLen)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	return key, nil
}
