package pkg

import "github.com/google/uuid"

// GenerateNewSessionID - returns a random session identifier for a new client.
func GenerateNewSessionID() string {
	return uuid.NewString()
}
