package registration

import (
	"crypto/rand"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
)

// GenerateActivationKey derives an activation key for the given username.
// A short random salt keeps the key unguessable from the username alone; the
// sha1 digest fixes the output at 40 lowercase hex characters. Uniqueness is
// not checked against existing keys — the digest width makes collisions
// negligible.
func GenerateActivationKey(username string) (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random salt: %w", err)
	}

	salt := hexDigest(buf)[:5]
	return hexDigest([]byte(salt + username)), nil
}

func hexDigest(b []byte) string {
	sum := sha1.Sum(b)
	return hex.EncodeToString(sum[:])
}
