// Package idgen produces the short human-facing identifiers used for trades and disputes.
package idgen

import (
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/google/uuid"
)

const (
	letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits  = "0123456789"

	DisputePrefix = "DSP-"
)

// TransactionID returns two uppercase letters followed by six digits, e.g. "QX482913".
// Short enough to type into a chat command.
func TransactionID() string {
	var b strings.Builder
	b.Grow(8)
	for i := 0; i < 2; i++ {
		b.WriteByte(pick(letters))
	}
	for i := 0; i < 6; i++ {
		b.WriteByte(pick(digits))
	}
	return b.String()
}

// DisputeID returns "DSP-" followed by eight uppercase hex characters.
func DisputeID() string {
	return DisputePrefix + strings.ToUpper(uuid.NewString()[:8])
}

// MessageID is a full uuid; messages are never referenced by hand.
func MessageID() string {
	return uuid.NewString()
}

func pick(alphabet string) byte {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
	if err != nil {
		panic("crypto/rand failed: " + err.Error())
	}
	return alphabet[n.Int64()]
}
