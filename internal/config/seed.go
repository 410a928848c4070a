package config

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// ResolveSeed returns s.Seed, or a fresh random seed when it is 0.
func (s Simulator) ResolveSeed() (int64, error) {
	if s.Seed != 0 {
		return s.Seed, nil
	}
	return NewSeed()
}
