// Package password implements the scrypt credential format shared with the
// external auth provider: a lowercase hex salt and hash joined by ":".
package password

import (
	"encoding/hex"
	"errors"
	"strings"
)

// ErrMalformedRecord is returned when a stored credential cannot be decoded.
var ErrMalformedRecord = errors.New("malformed password record")

const separator = ":"

// Record is a decoded credential.
type Record struct {
	Salt []byte
	Hash []byte
}

// String returns the textual form persisted by the auth provider.
func (r Record) String() string {
	return Encode(r.Salt, r.Hash)
}

// Encode joins hex(salt) and hex(hash) with ":".
func Encode(salt, hash []byte) string {
	return hex.EncodeToString(salt) + separator + hex.EncodeToString(hash)
}

// Decode splits a stored credential on the first ":" and decodes both halves.
func Decode(record string) (Record, error) {
	saltHex, hashHex, ok := strings.Cut(record, separator)
	if !ok {
		return Record{}, ErrMalformedRecord
	}

	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return Record{}, ErrMalformedRecord
	}
	hash, err := hex.DecodeString(hashHex)
	if err != nil {
		return Record{}, ErrMalformedRecord
	}

	return Record{Salt: salt, Hash: hash}, nil
}
