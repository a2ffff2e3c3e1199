package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered UUID v7 strings for new records.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new UUID v7. If the v7 generator fails (it reads the
// clock and crypto/rand), a random v4 is returned instead.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
