package reservation

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

const idPrefix = "res_"

type IDGenerator interface {
	NewID() (string, error)
}

// UUIDv7Generator issues time-ordered ids so that lexical order follows creation order.
type UUIDv7Generator struct{}

func NewUUIDv7Generator() *UUIDv7Generator {
	return &UUIDv7Generator{}
}

func (g *UUIDv7Generator) NewID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return idPrefix + id.String(), nil
}

// SequenceGenerator yields res_<unix-millis>_<n> ids from a fixed clock reading.
type SequenceGenerator struct {
	now  func() time.Time
	next atomic.Int64
}

func NewSequenceGenerator(now func() time.Time) *SequenceGenerator {
	return &SequenceGenerator{now: now}
}

func (g *SequenceGenerator) NewID() (string, error) {
	n := g.next.Add(1)
	return fmt.Sprintf("%s%d_%d", idPrefix, g.now().UnixMilli(), n), nil
}
