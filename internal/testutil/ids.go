package testutil

// FixedIDGenerator generates the same session id every time.
//
// This keeps log output deterministic across test runs.
//
// Thread-safety: FixedIDGenerator is stateless and safe for concurrent use.
type FixedIDGenerator struct {
	id string
}

// NewFixedIDGenerator creates a new fixed session id generator.
// If id is empty, Generate() returns "test-session-default".
func NewFixedIDGenerator(id string) *FixedIDGenerator {
	if id == "" {
		id = "test-session-default"
	}
	return &FixedIDGenerator{id: id}
}

// Generate returns the fixed id.
//
// Implements catalog.IDGenerator.
func (g *FixedIDGenerator) Generate() string {
	return g.id
}
