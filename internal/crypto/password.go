package crypto

import (
	"crypto/rand"
	"math/big"
	"strings"
)

const (
	lowerPool  = "abcdefghijklmnopqrstuvwxyz"
	upperPool  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitPool  = "0123456789"
	symbolPool = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	DefaultPasswordLength = 16
)

// PasswordOptions select the character classes and length of a generated
// password.
type PasswordOptions struct {
	Length  int
	Lower   bool
	Upper   bool
	Digits  bool
	Symbols bool
}

// DefaultPasswordOptions enables every class at the default length.
func DefaultPasswordOptions() PasswordOptions {
	return PasswordOptions{
		Length:  DefaultPasswordLength,
		Lower:   true,
		Upper:   true,
		Digits:  true,
		Symbols: true,
	}
}

// GeneratePassword draws Length characters uniformly from the union of the
// enabled classes using crypto/rand. A non-positive length falls back to
// DefaultPasswordLength.
func GeneratePassword(opts PasswordOptions) (string, error) {
	var pool strings.Builder
	if opts.Lower {
		pool.WriteString(lowerPool)
	}
	if opts.Upper {
		pool.WriteString(upperPool)
	}
	if opts.Digits {
		pool.WriteString(digitPool)
	}
	if opts.Symbols {
		pool.WriteString(symbolPool)
	}
	if pool.Len() == 0 {
		return "", ErrEmptyPool
	}

	length := opts.Length
	if length <= 0 {
		length = DefaultPasswordLength
	}

	chars := pool.String()
	limit := big.NewInt(int64(len(chars)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		out[i] = chars[n.Int64()]
	}
	return string(out), nil
}
