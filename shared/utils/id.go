package utils

import (
	"github.com/google/uuid"
)

// IdGenerator returns a unique opaque suffix for entity ids.
type IdGenerator func() string

// UUIDGenerator is the production IdGenerator.
func UUIDGenerator() string {
	return uuid.NewString()
}

// NewId builds a prefixed id such as "thread-<suffix>".
func NewId(prefix string, gen IdGenerator) string {
	return prefix + gen()
}
