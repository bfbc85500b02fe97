// Package flow defines the domain types shared across flowdeck: the flow
// instance as reported by the remote flow service, and helpers for working
// with collections of instances.
package flow

// Instance is a running execution of a pipeline, identified by a unique name.
// Instances are immutable once fetched; the dashboard never mutates one
// locally, it only replaces the value via a re-fetch or drops it on deletion.
type Instance struct {
	// Name uniquely identifies the instance for the lifetime of the session.
	Name string `json:"name"`

	// Pipeline names the pipeline template this instance was created from.
	Pipeline string `json:"pipeline"`
}

// IndexByName returns the position of the instance with the given name in
// instances, or -1 if no instance carries that name.
func IndexByName(instances []Instance, name string) int {
	for i, inst := range instances {
		if inst.Name == name {
			return i
		}
	}
	return -1
}
