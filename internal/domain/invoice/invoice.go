package invoice

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const prefix = "INV"

// ID correlates one purchase event. Two purchases by the same user within the same second collide.
type ID string

func NewID(userID uuid.UUID, issuedAt time.Time) ID {
	return ID(fmt.Sprintf("%s-%s-%d", prefix, userID, issuedAt.Unix()))
}

func (id ID) String() string {
	return string(id)
}

// FileName is the artifact name keyed by this invoice.
func (id ID) FileName(ext string) string {
	return string(id) + ext
}
