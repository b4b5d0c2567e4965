package output

import (
	"context"

	"github.com/crimson-sun/logwarden/internal/model"
)

// Output defines the interface for classified-event destinations.
type Output interface {
	Write(ctx context.Context, event model.ClassifiedEvent) error
	Close() error
}
