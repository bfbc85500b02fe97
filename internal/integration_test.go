// Package internal contains integration tests that verify the packages
// work together: the HTTP client against the devserver, with completions
// funneled into the page store the way the TUI's update loop does.
package internal

import (
	"context"
	"net/http/httptest"
	"testing"

	"flowdeck/internal/devserver"
	"flowdeck/internal/flow"
	"flowdeck/internal/flowservice"
	"flowdeck/internal/page"
)

// loadPage performs one full load cycle against a live service: list,
// then one concurrent detail fetch per name. Completions are serialized
// through a channel before touching the store, mirroring the single
// update loop the TUI runs.
func loadPage(t *testing.T, store *page.Store, svc flowservice.Service) {
	t.Helper()
	ctx := context.Background()

	names, err := svc.ListInstanceNames(ctx)
	if err != nil {
		if applyErr := store.Apply(page.ListFailed{Err: err}); applyErr != nil {
			t.Fatalf("Apply(ListFailed) returned error: %v", applyErr)
		}
		return
	}
	if err := store.Apply(page.ListLoaded{Names: names}); err != nil {
		t.Fatalf("Apply(ListLoaded) returned error: %v", err)
	}

	events := make(chan page.Event, len(names))
	for _, name := range names {
		go func(name string) {
			inst, err := svc.GetInstanceDetails(ctx, name)
			if err != nil {
				events <- page.DetailFailed{Name: name, Err: err}
				return
			}
			events <- page.DetailArrived{Instance: inst}
		}(name)
	}
	for range names {
		if err := store.Apply(<-events); err != nil {
			t.Fatalf("Apply(detail event) returned error: %v", err)
		}
	}
}

func TestFullPageLifecycle(t *testing.T) {
	srv := devserver.New()
	srv.Add(flow.Instance{Name: "alpha", Pipeline: "nightly-etl"})
	srv.Add(flow.Instance{Name: "beta", Pipeline: "report-digest"})

	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	svc := flowservice.NewClient(ts.URL)
	store := page.NewStore(page.DetailAnnotate, nil)

	loadPage(t, store, svc)

	if store.Phase() != page.PhaseOK {
		t.Fatalf("phase = %v, want ok", store.Phase())
	}
	if store.Len() != 2 {
		t.Fatalf("collection has %d entries, want 2", store.Len())
	}

	// Confirm-then-delete: the row disappears only after the service
	// acknowledged the deletion.
	target := store.Instances()[0]
	mustApply(t, store, page.DeleteRequested{Instance: target})
	mustApply(t, store, page.DeleteConfirmed{})

	if err := svc.DeleteInstance(context.Background(), target.Name); err != nil {
		mustApply(t, store, page.DeleteFailed{Name: target.Name, Err: err})
		t.Fatalf("DeleteInstance returned error: %v", err)
	}
	mustApply(t, store, page.DeleteSucceeded{Name: target.Name})

	if store.Len() != 1 {
		t.Errorf("collection has %d entries after delete, want 1", store.Len())
	}
	if store.Instances()[0].Name == target.Name {
		t.Errorf("deleted instance %q still listed", target.Name)
	}

	// A reload against the service agrees with the local removal.
	mustApply(t, store, page.LoadStarted{})
	loadPage(t, store, svc)
	if store.Len() != 1 {
		t.Errorf("collection has %d entries after reload, want 1", store.Len())
	}
}

func TestPageLifecycleWithUnreachableService(t *testing.T) {
	svc := flowservice.NewClient("http://127.0.0.1:1")
	store := page.NewStore(page.DetailAnnotate, nil)

	loadPage(t, store, svc)

	if store.Phase() != page.PhaseError {
		t.Errorf("phase = %v, want error", store.Phase())
	}
	if store.Len() != 0 {
		t.Errorf("collection has %d entries, want 0", store.Len())
	}
}

func mustApply(t *testing.T, store *page.Store, ev page.Event) {
	t.Helper()
	if err := store.Apply(ev); err != nil {
		t.Fatalf("Apply(%T) returned error: %v", ev, err)
	}
}
