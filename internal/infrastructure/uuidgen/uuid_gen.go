package uuidgen

import (
	"github.com/google/uuid"
	"github.com/mveu/events-api/internal/domain/contract"
)

// Generator implements the contract.IIDGenerator interface.
type Generator struct{}

// NewGenerator creates a new UUID generator.
func NewGenerator() contract.IIDGenerator {
	return &Generator{}
}

// NewID generates a new UUID.
func (g *Generator) NewID() string {
	return uuid.New().String()
}

// IsValid reports whether s is a well-formed UUID.
func (g *Generator) IsValid(s string) bool {
	return uuid.Validate(s) == nil
}

// Ensure Generator implements the contract.IIDGenerator interface
var _ contract.IIDGenerator = (*Generator)(nil)
