package page

import (
	"flowdeck/internal/flow"
)

// Event is a typed state-machine input. Every mutation of the page state
// goes through Store.Apply with one of the event types below, so the whole
// load and deletion lifecycle is testable without a rendering layer.
type Event interface {
	// name returns a short identifier used in logs and
	// illegal-transition errors.
	name() string
}

// LoadStarted begins a fresh load cycle: the page re-enters the loading
// phase and the collection is reset. Sent on page activation and on a
// manual reload.
type LoadStarted struct{}

func (LoadStarted) name() string { return "LoadStarted" }

// ListLoaded reports a successful instance-name list fetch.
type ListLoaded struct {
	Names []string
}

func (ListLoaded) name() string { return "ListLoaded" }

// ListFailed reports a failed instance-name list fetch. The page shows a
// generic load failure; no partial collection is ever shown.
type ListFailed struct {
	Err error
}

func (ListFailed) name() string { return "ListFailed" }

// DetailArrived reports one completed detail fetch. Arrivals are appended
// in completion order, which may differ from the name-list order because
// the fetches race.
type DetailArrived struct {
	Instance flow.Instance
}

func (DetailArrived) name() string { return "DetailArrived" }

// DetailFailed reports one failed detail fetch. How the store reacts is
// controlled by the configured DetailFailurePolicy.
type DetailFailed struct {
	Name string
	Err  error
}

func (DetailFailed) name() string { return "DetailFailed" }

// DeleteRequested records the user asking to delete an instance. No network
// call happens yet; the presentation layer shows a confirmation prompt.
type DeleteRequested struct {
	Instance flow.Instance
}

func (DeleteRequested) name() string { return "DeleteRequested" }

// DeleteConfirmed records the user confirming the pending deletion. The
// delete request goes out after this event is applied.
type DeleteConfirmed struct{}

func (DeleteConfirmed) name() string { return "DeleteConfirmed" }

// DeleteCancelled records the user dismissing the confirmation prompt.
type DeleteCancelled struct{}

func (DeleteCancelled) name() string { return "DeleteCancelled" }

// DeleteSucceeded reports a successful delete call. Exactly the row with
// the matching name is removed; the load phase is untouched.
type DeleteSucceeded struct {
	Name string
}

func (DeleteSucceeded) name() string { return "DeleteSucceeded" }

// DeleteFailed reports a failed delete call. The dialog closes regardless
// of outcome; the failure is surfaced out-of-band on the alert surface and
// the collection is left unchanged.
type DeleteFailed struct {
	Name string
	Err  error
}

func (DeleteFailed) name() string { return "DeleteFailed" }
