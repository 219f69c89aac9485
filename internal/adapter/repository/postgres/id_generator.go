package postgres

import (
	"github.com/oklog/ulid/v2"
)

// VersionGenerator generates ULID snapshot versions. ULIDs sort by creation
// time, which Latest relies on.
type VersionGenerator struct{}

// NewVersionGenerator creates a new VersionGenerator.
func NewVersionGenerator() *VersionGenerator {
	return &VersionGenerator{}
}

// Generate generates a new ULID.
func (g *VersionGenerator) Generate() string {
	return ulid.Make().String()
}
