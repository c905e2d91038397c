package model

import "github.com/google/uuid"

// generateUUID creates a new UUID string.
func generateUUID() string {
	return uuid.New().String()
}

// GenerateUUID creates a new UUID string for callers outside the package,
// such as the importer.
func GenerateUUID() string {
	return generateUUID()
}
