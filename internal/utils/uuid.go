package utils

import "github.com/google/uuid"

// UUIDGenerator issues entry ids. The underlying source is time ordered
// (UUIDv7), so ids created later also sort later within the same second.
type UUIDGenerator func() (uuid.UUID, error)

func NewUUIDGenerator() UUIDGenerator {
	return uuid.NewV7
}

// Generate falls back to a random UUIDv4 when the time source fails.
func (g UUIDGenerator) Generate() string {
	id, err := g()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
