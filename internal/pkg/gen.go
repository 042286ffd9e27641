package pkg

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// GenerateGameID returns a short random identifier for a new game.
func GenerateGameID() (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate game id: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
