// Package flowservice talks to the remote flow service. The dashboard
// consumes exactly three operations: listing the names of running flow
// instances, fetching one instance's details, and deleting an instance.
//
// Service is the seam the rest of the codebase depends on; Client is the
// HTTP implementation. Tests substitute a scripted fake.
package flowservice

import (
	"context"

	"flowdeck/internal/flow"
)

// Service is the consumed surface of the remote flow service.
type Service interface {
	// ListInstanceNames returns the names of all currently running flow
	// instances. It fails on transport or service errors.
	ListInstanceNames(ctx context.Context) ([]string, error)

	// GetInstanceDetails returns the details for one named instance.
	// It fails on an unknown name or a transport error.
	GetInstanceDetails(ctx context.Context, name string) (flow.Instance, error)

	// DeleteInstance deletes the named instance. On failure the returned
	// error carries a human-readable message for the alert surface.
	DeleteInstance(ctx context.Context, name string) error
}
