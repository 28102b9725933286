package password

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"lifeguard/pkg/serrors"
)

const (
	// DefaultGenerateLength is used when the caller asks for length <= 0.
	DefaultGenerateLength = 16
	// MaxGenerateLength bounds generated passwords.
	MaxGenerateLength = 128
)

// Alphabet is the 70-character set generated passwords are drawn from.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789" +
	"!@#$%^&*"

// Generate returns a password of the given length whose characters are drawn
// uniformly from Alphabet using crypto/rand.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultGenerateLength
	}
	if length > MaxGenerateLength {
		return "", serrors.With(serrors.ErrBadRequest, "length must not exceed %d", MaxGenerateLength)
	}

	limit := big.NewInt(int64(len(Alphabet)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("could not read random source: %w", err)
		}
		out[i] = Alphabet[n.Int64()]
	}

	return string(out), nil
}
