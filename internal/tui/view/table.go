package view

import (
	"fmt"
	"sort"
	"strings"

	"flowdeck/internal/flow"
	"flowdeck/internal/tui/styles"
)

// TableState holds the state needed to render the instance table.
type TableState struct {
	// Instances is the collection in arrival order.
	Instances []flow.Instance

	// RowErrors maps instance names whose detail fetch failed to the
	// failure text. They render as placeholder rows after the loaded ones.
	RowErrors map[string]string

	// Cursor is the index of the selected row, counting loaded instances
	// first and error placeholders after.
	Cursor int

	// Width is the available width in columns.
	Width int
}

// RowCount returns how many selectable rows the table has.
func (s TableState) RowCount() int {
	return len(s.Instances) + len(s.RowErrors)
}

// RenderInstanceTable renders the Name/Pipeline table with the cursor row
// highlighted. Returns a hint line when the collection is empty.
func RenderInstanceTable(state TableState) string {
	if state.RowCount() == 0 {
		return styles.Muted.Render("No flow instances are running.")
	}

	nameWidth := len("NAME")
	for _, inst := range state.Instances {
		if len(inst.Name) > nameWidth {
			nameWidth = len(inst.Name)
		}
	}
	for name := range state.RowErrors {
		if len(name) > nameWidth {
			nameWidth = len(name)
		}
	}

	var b strings.Builder
	b.WriteString(styles.Header.Render(fmt.Sprintf("  %-*s  %s", nameWidth, "NAME", "PIPELINE")))
	b.WriteString("\n")

	row := 0
	for _, inst := range state.Instances {
		line := fmt.Sprintf("  %-*s  %s", nameWidth, inst.Name, inst.Pipeline)
		if row == state.Cursor {
			b.WriteString(styles.Selected.Render("▸" + line[1:]))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
		row++
	}

	for _, name := range sortedNames(state.RowErrors) {
		line := fmt.Sprintf("  %-*s  %s", nameWidth, name,
			styles.Error.Render("failed to load: "+state.RowErrors[name]))
		if row == state.Cursor {
			line = styles.Selected.Render("▸") + line[1:]
		}
		b.WriteString(line)
		b.WriteString("\n")
		row++
	}

	return strings.TrimRight(b.String(), "\n")
}

// sortedNames returns map keys in a stable order so error rows don't
// shuffle between renders.
func sortedNames(m map[string]string) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
