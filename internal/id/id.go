package id

import (
	"crypto/rand"
	"encoding/hex"
)

// New returns a random hex token, used to name temporary output files.
func New() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "fallback-id"
	}
	return hex.EncodeToString(b[:])
}
