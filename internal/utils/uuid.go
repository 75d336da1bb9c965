package utils

import "github.com/google/uuid"

// UUIDGenerator produces random (version 4) identifiers for accounts and
// tasks. Random ids carry no ordering or creation-time information.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new random UUID.
func (g *UUIDGenerator) Generate() uuid.UUID {
	return uuid.New()
}
