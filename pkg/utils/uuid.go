package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// GenerateGuiaNumero formats a guide number from its sequence value
func GenerateGuiaNumero(n int64) string {
	return fmt.Sprintf("G-%06d", n)
}

// GenerateReciboNumero formats a receipt number from its sequence value
func GenerateReciboNumero(n int64) string {
	return fmt.Sprintf("R-%06d", n)
}
