// Package testutil provides testing utilities for flowdeck tests.
package testutil

import (
	"context"
	"sync"

	"flowdeck/internal/errors"
	"flowdeck/internal/flow"
)

// FakeService is a scriptable flowservice.Service double. Results are
// keyed by instance name; unscripted names fail with ErrInstanceNotFound.
// It records every call so tests can assert on what was (and was not)
// requested. Safe for concurrent use: the TUI fans out detail fetches.
type FakeService struct {
	mu sync.Mutex

	// Names and ListErr script ListInstanceNames.
	Names   []string
	ListErr error

	// Details and DetailErrs script GetInstanceDetails per name.
	Details    map[string]flow.Instance
	DetailErrs map[string]error

	// DeleteErrs scripts DeleteInstance per name; absent means success.
	DeleteErrs map[string]error

	listCalls   int
	detailCalls []string
	deleteCalls []string
}

// NewFakeService creates a FakeService listing the given instances, with
// each detail fetch succeeding.
func NewFakeService(instances ...flow.Instance) *FakeService {
	f := &FakeService{
		Details:    make(map[string]flow.Instance),
		DetailErrs: make(map[string]error),
		DeleteErrs: make(map[string]error),
	}
	for _, inst := range instances {
		f.Names = append(f.Names, inst.Name)
		f.Details[inst.Name] = inst
	}
	return f
}

// ListInstanceNames implements flowservice.Service.
func (f *FakeService) ListInstanceNames(ctx context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.listCalls++
	if f.ListErr != nil {
		return nil, errors.NewListFetchError(f.ListErr)
	}
	out := make([]string, len(f.Names))
	copy(out, f.Names)
	return out, nil
}

// GetInstanceDetails implements flowservice.Service.
func (f *FakeService) GetInstanceDetails(ctx context.Context, name string) (flow.Instance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.detailCalls = append(f.detailCalls, name)
	if err, ok := f.DetailErrs[name]; ok {
		return flow.Instance{}, errors.NewDetailFetchError(name, err)
	}
	inst, ok := f.Details[name]
	if !ok {
		return flow.Instance{}, errors.NewDetailFetchError(name, errors.ErrInstanceNotFound)
	}
	return inst, nil
}

// DeleteInstance implements flowservice.Service.
func (f *FakeService) DeleteInstance(ctx context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.deleteCalls = append(f.deleteCalls, name)
	if err, ok := f.DeleteErrs[name]; ok {
		return errors.NewDeleteError(name, "", err)
	}
	return nil
}

// ListCalls returns how many times ListInstanceNames was called.
func (f *FakeService) ListCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls
}

// DetailCalls returns the names requested via GetInstanceDetails, in call
// order.
func (f *FakeService) DetailCalls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.detailCalls))
	copy(out, f.detailCalls)
	return out
}

// DeleteCalls returns the names requested via DeleteInstance, in call order.
func (f *FakeService) DeleteCalls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.deleteCalls))
	copy(out, f.deleteCalls)
	return out
}
