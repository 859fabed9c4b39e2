package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// GenerateSecret returns a URL-safe random string built from n bytes of
// entropy, suitable for use as a JWT signing secret.
func GenerateSecret(n int) (string, error) {
	if n < 32 {
		n = 32
	}
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating secret: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
