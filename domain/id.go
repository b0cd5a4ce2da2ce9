package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// NewID builds a prefixed random identifier ("room-<uuid>", "evt-<uuid>").
// Collisions are treated as practically impossible, not retried.
func NewID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString())
}
