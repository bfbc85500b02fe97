package view

import (
	"fmt"
	"strings"

	"flowdeck/internal/page"
	"flowdeck/internal/tui/styles"
)

// StatusState holds the state needed to render the status and help lines.
type StatusState struct {
	// Phase is the page's load phase.
	Phase page.Phase

	// Count is the number of instances currently in the collection.
	Count int

	// Outstanding is how many detail fetches have not completed yet.
	Outstanding int

	// Spinner is the current spinner frame, shown while loading or while
	// details are still arriving.
	Spinner string

	// Alert is the out-of-band alert message, if any.
	Alert string

	// LoadError is the load failure text shown in the error phase.
	LoadError string
}

// RenderStatusLine renders the one-line page status under the title.
func RenderStatusLine(state StatusState) string {
	switch state.Phase {
	case page.PhaseLoading:
		return state.Spinner + " " + styles.Muted.Render("Loading flow instances…")
	case page.PhaseError:
		return styles.Error.Render("Could not load flow instances: " + state.LoadError)
	}

	parts := []string{
		styles.Secondary.Render(fmt.Sprintf("%d running", state.Count)),
	}
	if state.Outstanding > 0 {
		// Progressive reveal: the page is interactive while the last
		// details are still in flight.
		parts = append(parts, state.Spinner+" "+styles.Muted.Render(
			fmt.Sprintf("%d still loading", state.Outstanding)))
	}
	return strings.Join(parts, "  ")
}

// RenderAlert renders the alert surface, or empty string when clear.
func RenderAlert(state StatusState) string {
	if state.Alert == "" {
		return ""
	}
	return styles.Error.Render(state.Alert)
}

// RenderHelpBar renders the key hints appropriate for the phase.
func RenderHelpBar(state StatusState) string {
	if state.Phase == page.PhaseError {
		return styles.HelpKey.Render("[r]") + styles.Muted.Render(" retry  ") +
			styles.HelpKey.Render("[q]") + styles.Muted.Render(" quit")
	}
	return styles.HelpKey.Render("[↑/↓]") + styles.Muted.Render(" select  ") +
		styles.HelpKey.Render("[d]") + styles.Muted.Render(" delete  ") +
		styles.HelpKey.Render("[r]") + styles.Muted.Render(" reload  ") +
		styles.HelpKey.Render("[q]") + styles.Muted.Render(" quit")
}
