// Package page implements the state machine behind the flow-instance page:
// the three-phase load lifecycle, the arrival-ordered instance collection,
// and the confirm-then-delete workflow.
//
// The package performs no I/O. All state lives in a Store and every
// transition is driven by a typed Event through Store.Apply, so the page
// semantics are testable without a terminal or a network. The TUI model
// owns the only Store and applies events from its single update loop;
// the Store is therefore not synchronized.
package page

import (
	"fmt"

	"flowdeck/internal/errors"
	"flowdeck/internal/flow"
	"flowdeck/internal/logging"
)

// Phase is the page's top-level load state.
type Phase int

const (
	// PhaseLoading is the initial phase, re-entered on every reload.
	PhaseLoading Phase = iota
	// PhaseOK means the collection (possibly empty, possibly still
	// growing) is authoritative and the page is interactive.
	PhaseOK
	// PhaseError means the name-list fetch failed. No partial collection
	// is shown in this phase.
	PhaseError
)

// String returns the phase name for logs and status rendering.
func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseOK:
		return "ok"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// DetailFailurePolicy controls how the store reacts to a failed detail
// fetch. The source behavior this page replaces left such failures
// unobserved; here the behavior is an explicit choice.
type DetailFailurePolicy string

const (
	// DetailSkip logs the failure and drops the row. The visible set
	// shrinks with no per-row indication, and arrivals alone drive the
	// phase out of loading.
	DetailSkip DetailFailurePolicy = "skip"

	// DetailAnnotate records a per-row load error that the view surfaces
	// as a placeholder row. This is the default.
	DetailAnnotate DetailFailurePolicy = "annotate"
)

// ValidDetailFailurePolicy reports whether s names a known policy.
func ValidDetailFailurePolicy(s string) bool {
	switch DetailFailurePolicy(s) {
	case DetailSkip, DetailAnnotate:
		return true
	}
	return false
}

// DeletionState describes where the deletion workflow currently is.
type DeletionState int

const (
	// DeletionIdle means no deletion is pending.
	DeletionIdle DeletionState = iota
	// DeletionConfirming means a deletion awaits user confirmation.
	DeletionConfirming
	// DeletionDeleting means a confirmed delete request is in flight.
	DeletionDeleting
)

// String returns the deletion state name for logs and errors.
func (s DeletionState) String() string {
	switch s {
	case DeletionIdle:
		return "idle"
	case DeletionConfirming:
		return "confirming"
	case DeletionDeleting:
		return "deleting"
	default:
		return "unknown"
	}
}

// Pending identifies the instance awaiting confirmation or deletion.
type Pending struct {
	// Name of the instance the pending deletion targets.
	Name string
	// InFlight is true once the deletion has been confirmed and the
	// delete request has been issued.
	InFlight bool
}

// Store holds the page state and applies events to it. At most one
// deletion may be pending at a time; a second DeleteRequested while one is
// pending is rejected as an illegal transition rather than overwriting it.
type Store struct {
	phase       Phase
	instances   []flow.Instance
	pending     *Pending
	alert       string
	loadErr     error
	rowErrors   map[string]string
	outstanding int

	policy DetailFailurePolicy
	logger *logging.Logger
}

// NewStore creates a Store in the loading phase with an empty collection.
// A nil logger is replaced with a no-op logger.
func NewStore(policy DetailFailurePolicy, logger *logging.Logger) *Store {
	if logger == nil {
		logger = logging.NopLogger()
	}
	if policy == "" {
		policy = DetailAnnotate
	}
	return &Store{
		phase:     PhaseLoading,
		rowErrors: make(map[string]string),
		policy:    policy,
		logger:    logger,
	}
}

// Apply performs the transition for ev. It returns an error only for
// illegal transitions; in that case no state changes. Events that report
// remote completions never fail: a completion for a state the page has
// moved past is absorbed, because the network does not know about our
// state machine.
func (s *Store) Apply(ev Event) error {
	switch e := ev.(type) {
	case LoadStarted:
		s.applyLoadStarted()
	case ListLoaded:
		s.applyListLoaded(e)
	case ListFailed:
		s.applyListFailed(e)
	case DetailArrived:
		s.applyDetailArrived(e)
	case DetailFailed:
		s.applyDetailFailed(e)
	case DeleteRequested:
		return s.applyDeleteRequested(e)
	case DeleteConfirmed:
		return s.applyDeleteConfirmed()
	case DeleteCancelled:
		return s.applyDeleteCancelled()
	case DeleteSucceeded:
		s.applyDeleteSucceeded(e)
	case DeleteFailed:
		s.applyDeleteFailed(e)
	default:
		return fmt.Errorf("unknown page event %T", ev)
	}
	return nil
}

func (s *Store) applyLoadStarted() {
	s.phase = PhaseLoading
	s.instances = nil
	s.rowErrors = make(map[string]string)
	s.loadErr = nil
	s.alert = ""
	s.outstanding = 0

	// A confirmation prompt for a row that is about to be re-fetched is
	// stale; drop it. An in-flight deletion keeps running and reconciles
	// against whatever the reload brings back.
	if s.pending != nil && !s.pending.InFlight {
		s.pending = nil
	}

	s.logger.Debug("load cycle started")
}

func (s *Store) applyListLoaded(e ListLoaded) {
	s.instances = nil
	s.rowErrors = make(map[string]string)
	s.outstanding = len(e.Names)

	if len(e.Names) == 0 {
		// Terminal for this load cycle: an empty collection is
		// authoritative, no detail fetches follow.
		s.phase = PhaseOK
		s.logger.Info("instance list empty")
		return
	}

	s.phase = PhaseLoading
	s.logger.Info("instance list loaded", "count", len(e.Names))
}

func (s *Store) applyListFailed(e ListFailed) {
	s.phase = PhaseError
	s.loadErr = errors.NewListFetchError(e.Err)
	s.instances = nil
	s.outstanding = 0
	s.logger.Error("instance list fetch failed", "error", e.Err)
}

func (s *Store) applyDetailArrived(e DetailArrived) {
	if s.phase == PhaseError {
		// A stale completion from before the list failure; the error
		// page never shows a partial collection.
		return
	}

	if s.outstanding > 0 {
		s.outstanding--
	}

	// A double arrival for the same name replaces in place, keeping the
	// collection unique by name and the row position stable.
	if i := flow.IndexByName(s.instances, e.Instance.Name); i >= 0 {
		s.instances[i] = e.Instance
	} else {
		s.instances = append(s.instances, e.Instance)
	}
	delete(s.rowErrors, e.Instance.Name)

	// Every arrival sets the phase, not just the last one: the page
	// becomes interactive while later details are still in flight.
	s.phase = PhaseOK

	s.logger.Debug("instance detail arrived",
		"name", e.Instance.Name,
		"pipeline", e.Instance.Pipeline,
		"outstanding", s.outstanding,
	)
}

func (s *Store) applyDetailFailed(e DetailFailed) {
	if s.phase == PhaseError {
		return
	}

	if s.outstanding > 0 {
		s.outstanding--
	}

	switch s.policy {
	case DetailSkip:
		// Faithful to the behavior this page replaces: the row silently
		// disappears and only successful arrivals end the loading phase.
		s.logger.Warn("instance detail fetch failed, skipping row",
			"name", e.Name, "error", e.Err,
		)
	default:
		s.rowErrors[e.Name] = e.Err.Error()
		s.phase = PhaseOK
		s.logger.Warn("instance detail fetch failed, annotating row",
			"name", e.Name, "error", e.Err,
		)
	}
}

func (s *Store) applyDeleteRequested(e DeleteRequested) error {
	if s.pending != nil {
		err := errors.NewIllegalTransitionError("DeleteRequested", s.DeletionState().String())
		s.logger.Warn("delete request rejected",
			"name", e.Instance.Name,
			"pending", s.pending.Name,
		)
		return err
	}

	s.pending = &Pending{Name: e.Instance.Name}
	s.logger.Info("deletion requested", "name", e.Instance.Name)
	return nil
}

func (s *Store) applyDeleteConfirmed() error {
	if s.pending == nil || s.pending.InFlight {
		return errors.NewIllegalTransitionError("DeleteConfirmed", s.DeletionState().String())
	}

	s.pending.InFlight = true
	s.logger.Info("deletion confirmed", "name", s.pending.Name)
	return nil
}

func (s *Store) applyDeleteCancelled() error {
	if s.pending == nil || s.pending.InFlight {
		return errors.NewIllegalTransitionError("DeleteCancelled", s.DeletionState().String())
	}

	s.logger.Info("deletion cancelled", "name", s.pending.Name)
	s.pending = nil
	return nil
}

func (s *Store) applyDeleteSucceeded(e DeleteSucceeded) {
	if i := flow.IndexByName(s.instances, e.Name); i >= 0 {
		s.instances = append(s.instances[:i], s.instances[i+1:]...)
	}
	delete(s.rowErrors, e.Name)

	if s.pending != nil && s.pending.Name == e.Name {
		s.pending = nil
	}

	// The removal is local: the phase stays OK and no reload happens.
	s.logger.Info("instance deleted", "name", e.Name)
}

func (s *Store) applyDeleteFailed(e DeleteFailed) {
	// The dialog closes regardless of outcome; failure is surfaced
	// out-of-band on the alert surface and the row stays listed.
	if s.pending != nil && s.pending.Name == e.Name {
		s.pending = nil
	}

	s.alert = fmt.Sprintf("Could not delete flow instance: %s", deleteMessage(e.Err))
	s.logger.Error("instance deletion failed", "name", e.Name, "error", e.Err)
}

// deleteMessage extracts the human-readable message from a delete failure.
func deleteMessage(err error) string {
	if err == nil {
		return "unknown error"
	}
	var delErr *errors.DeleteError
	if errors.As(err, &delErr) && delErr.Message != "" {
		return delErr.Message
	}
	return err.Error()
}

// Phase returns the current load phase.
func (s *Store) Phase() Phase { return s.phase }

// Instances returns a copy of the collection in arrival order. Callers in
// the loading phase may observe a still-growing collection.
func (s *Store) Instances() []flow.Instance {
	out := make([]flow.Instance, len(s.instances))
	copy(out, s.instances)
	return out
}

// Len returns the number of instances currently in the collection.
func (s *Store) Len() int { return len(s.instances) }

// Pending returns the pending deletion, if any.
func (s *Store) Pending() (Pending, bool) {
	if s.pending == nil {
		return Pending{}, false
	}
	return *s.pending, true
}

// DeletionState returns the current position of the deletion workflow.
func (s *Store) DeletionState() DeletionState {
	switch {
	case s.pending == nil:
		return DeletionIdle
	case s.pending.InFlight:
		return DeletionDeleting
	default:
		return DeletionConfirming
	}
}

// IsDeleting reports whether a confirmed delete request is in flight.
func (s *Store) IsDeleting() bool { return s.DeletionState() == DeletionDeleting }

// Alert returns the current out-of-band alert message, or "".
func (s *Store) Alert() string { return s.alert }

// ClearAlert dismisses the alert surface.
func (s *Store) ClearAlert() { s.alert = "" }

// LoadError returns the error that put the page in the error phase, or nil.
func (s *Store) LoadError() error { return s.loadErr }

// RowError returns the recorded detail-fetch failure for a name, if any.
// Only populated under the annotate policy.
func (s *Store) RowError(name string) (string, bool) {
	msg, ok := s.rowErrors[name]
	return msg, ok
}

// RowErrors returns a copy of all recorded per-row failures.
func (s *Store) RowErrors() map[string]string {
	out := make(map[string]string, len(s.rowErrors))
	for k, v := range s.rowErrors {
		out[k] = v
	}
	return out
}

// Outstanding returns how many detail fetches from the current load cycle
// have not completed yet. The view uses this for the progress indicator.
func (s *Store) Outstanding() int { return s.outstanding }
