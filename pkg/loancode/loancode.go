package loancode

import (
	"crypto/rand"
	"math/big"
)

const (
	prefix = "LN-"
	// no 0/O/1/I, codes get read over the phone
	alphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
	length   = 6
)

// New returns a short human-facing loan code, e.g. LN-8F3K2Q.
// Uniqueness is enforced by the database, not here.
func New() (string, error) {
	b := make([]byte, length)
	max := big.NewInt(int64(len(alphabet)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = alphabet[n.Int64()]
	}
	return prefix + string(b), nil
}
