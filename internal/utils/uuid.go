package utils

import "github.com/google/uuid"

// UUIDGenerator produces unique string identifiers for newly created
// expenses and request traces. Version 7 UUIDs are time-ordered, which keeps
// expense listings in insertion order even across restarts.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
