package security

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
)

// RandomSecretSource draws session tokens and PINs from crypto/rand.
type RandomSecretSource struct{}

// SessionToken returns a 64-hex-character opaque token.
func (RandomSecretSource) SessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// PIN returns a zero-padded 6-digit code.
func (RandomSecretSource) PIN() (string, error) {
	max := big.NewInt(1000000)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	digits := []byte("000000")
	value := n.Int64()
	for i := len(digits) - 1; i >= 0 && value > 0; i-- {
		digits[i] = byte('0' + value%10)
		value /= 10
	}
	return string(digits), nil
}
