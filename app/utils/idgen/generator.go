package idgen

import (
	"crypto/rand"
	"fmt"
	"strings"
)

// GenerateSecureID generates a cryptographically secure ID with the given prefix and length
func GenerateSecureID(prefix string, length int) (string, error) {
	bytes := make([]byte, length*2)
	_, err := rand.Read(bytes)
	if err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	const charset = "0123456789abcdefghijklmnopqrstuvwxyz"
	encoded := make([]byte, length)
	for i := 0; i < length; i++ {
		encoded[i] = charset[bytes[i]%36]
	}

	return fmt.Sprintf("%s_%s", prefix, string(encoded)), nil
}

// ValidateIDFormat validates that an ID has the expected format (prefix_alphanumeric)
func ValidateIDFormat(id, expectedPrefix string) bool {
	if !strings.HasPrefix(id, expectedPrefix+"_") {
		return false
	}

	suffix := id[len(expectedPrefix)+1:]
	if len(suffix) == 0 {
		return false
	}

	for _, char := range suffix {
		if !((char >= 'a' && char <= 'z') || (char >= '0' && char <= '9')) {
			return false
		}
	}

	return true
}
