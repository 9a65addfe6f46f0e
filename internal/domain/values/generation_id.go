package values

import (
	"fmt"

	"github.com/google/uuid"
)

// GenerationID uniquely identifies one generator run. It only exists
// to correlate log lines; it never appears in generated output, which
// must stay byte-identical across runs.
type GenerationID struct {
	value uuid.UUID
}

// NewGenerationID creates a new random generation ID.
func NewGenerationID() GenerationID {
	return GenerationID{value: uuid.New()}
}

// ParseGenerationID parses a string into a GenerationID.
func ParseGenerationID(s string) (GenerationID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return GenerationID{}, fmt.Errorf("invalid generation ID: %w", err)
	}
	return GenerationID{value: id}, nil
}

func (id GenerationID) String() string {
	return id.value.String()
}
