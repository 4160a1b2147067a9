package v1handler

import (
	"context"

	"bangsafe/internal/api/specs/v1specs"
)

// Health reports that the service is up.
func (h Handler) Health(context.Context) (*v1specs.Status, error) {
	return &v1specs.Status{Status: StatusOK}, nil
}
