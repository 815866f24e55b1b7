package utils

import (
	"crypto/rand"
	"math/big"
)

const passwordCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GeneratePassword returns a random password of the given length drawn
// from a letters-and-digits charset. Lengths below 8 are raised to 8.
func GeneratePassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}

	buf := make([]byte, length)
	max := big.NewInt(int64(len(passwordCharset)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = passwordCharset[n.Int64()]
	}

	return string(buf), nil
}
