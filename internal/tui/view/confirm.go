package view

import (
	"fmt"

	"flowdeck/internal/tui/styles"
)

// ConfirmState holds the state needed to render the delete confirmation
// dialog.
type ConfirmState struct {
	// Name of the instance the pending deletion targets.
	Name string

	// Deleting is true once the delete request is in flight; the dialog
	// stays up with its buttons disabled until the result arrives.
	Deleting bool
}

// RenderConfirmDialog renders the confirmation modal for a pending
// deletion. Returns empty string when no deletion is pending.
func RenderConfirmDialog(state ConfirmState) string {
	if state.Name == "" {
		return ""
	}

	body := fmt.Sprintf("Delete flow instance %q?", state.Name)

	var actions string
	if state.Deleting {
		actions = styles.Muted.Render("deleting…")
	} else {
		actions = styles.HelpKey.Render("[enter]") + " delete  " +
			styles.HelpKey.Render("[esc]") + " cancel"
	}

	return styles.Dialog.Render(body + "\n\n" + actions)
}
