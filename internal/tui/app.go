package tui

import (
	"strings"

	"flowdeck/internal/page"
	"flowdeck/internal/tui/styles"
	"flowdeck/internal/tui/view"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Init starts the first load cycle.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		loadNames(m.ctx, m.svc, m.gen),
	)
}

// Update applies messages to the page. Remote completions become store
// events; stale completions (wrong generation, or arriving after quit)
// are dropped before they can touch state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeypress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.quitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case namesLoadedMsg:
		if m.quitting || msg.gen != m.gen {
			return m, nil
		}
		m.apply(page.ListLoaded{Names: msg.names})

		// Fan out one detail fetch per name, concurrently, with no
		// ordering dependency between them.
		cmds := make([]tea.Cmd, 0, len(msg.names))
		for _, name := range msg.names {
			cmds = append(cmds, fetchDetail(m.ctx, m.svc, m.gen, name))
		}
		return m, tea.Batch(cmds...)

	case namesFailedMsg:
		if m.quitting || msg.gen != m.gen {
			return m, nil
		}
		m.apply(page.ListFailed{Err: msg.err})
		return m, nil

	case detailLoadedMsg:
		if m.quitting || msg.gen != m.gen {
			return m, nil
		}
		m.apply(page.DetailArrived{Instance: msg.instance})
		return m, nil

	case detailFailedMsg:
		if m.quitting || msg.gen != m.gen {
			return m, nil
		}
		m.apply(page.DetailFailed{Name: msg.name, Err: msg.err})
		return m, nil

	case deleteResultMsg:
		if m.quitting {
			return m, nil
		}
		if msg.err != nil {
			m.apply(page.DeleteFailed{Name: msg.name, Err: msg.err})
		} else {
			m.apply(page.DeleteSucceeded{Name: msg.name})
		}
		m.clampCursor()
		return m, nil
	}

	return m, nil
}

// handleKeypress routes keys. The confirmation dialog is modal: while a
// deletion is pending only its keys (and quit) are live.
func (m Model) handleKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "q" || key == "ctrl+c" {
		return m.teardown()
	}

	switch m.store.DeletionState() {
	case page.DeletionConfirming:
		switch key {
		case "enter", "y":
			pending, ok := m.store.Pending()
			if !ok {
				return m, nil
			}
			m.apply(page.DeleteConfirmed{})
			return m, deleteInstance(m.ctx, m.svc, pending.Name)
		case "esc", "n":
			m.apply(page.DeleteCancelled{})
		}
		return m, nil

	case page.DeletionDeleting:
		// Waiting for the service; nothing but quit is live.
		return m, nil
	}

	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.rowCount()-1 {
			m.cursor++
		}
	case "d", "delete":
		instances := m.store.Instances()
		if m.cursor < len(instances) {
			m.apply(page.DeleteRequested{Instance: instances[m.cursor]})
		}
	case "r":
		return m.reload()
	case "esc":
		m.store.ClearAlert()
	}

	return m, nil
}

// reload begins a fresh load cycle. Bumping the generation makes any
// still-running fetches from the previous cycle stale.
func (m Model) reload() (tea.Model, tea.Cmd) {
	m.gen++
	m.cursor = 0
	m.apply(page.LoadStarted{})
	m.logger.Info("reload requested", "load_cycle", m.gen)
	return m, tea.Batch(m.spinner.Tick, loadNames(m.ctx, m.svc, m.gen))
}

// teardown ends the page's lifetime: the context is cancelled so in-flight
// fetches stop, and the quitting flag drops any completion that already
// made it into the message queue.
func (m Model) teardown() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.cancel()
	return m, tea.Quit
}

// apply feeds one event to the store. Illegal transitions are logged and
// otherwise ignored: the modal key handling should make them unreachable
// from the keyboard.
func (m *Model) apply(ev page.Event) {
	if err := m.store.Apply(ev); err != nil {
		m.logger.Warn("rejected page event", "error", err)
	}
}

// rowCount returns how many selectable rows the table shows.
func (m Model) rowCount() int {
	return m.store.Len() + len(m.store.RowErrors())
}

// clampCursor keeps the cursor on a row after the collection shrinks.
func (m *Model) clampCursor() {
	if n := m.rowCount(); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the page for the current phase.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	status := view.StatusState{
		Phase:       m.store.Phase(),
		Count:       m.store.Len(),
		Outstanding: m.store.Outstanding(),
		Spinner:     m.spinner.View(),
	}
	if err := m.store.LoadError(); err != nil {
		status.LoadError = err.Error()
	}
	status.Alert = m.store.Alert()

	var b strings.Builder
	b.WriteString(styles.Title.Render("Flow Instances"))
	b.WriteString("\n\n")
	b.WriteString(view.RenderStatusLine(status))
	b.WriteString("\n")

	if alert := view.RenderAlert(status); alert != "" {
		b.WriteString(alert)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.store.Phase() != page.PhaseError {
		b.WriteString(view.RenderInstanceTable(view.TableState{
			Instances: m.store.Instances(),
			RowErrors: m.store.RowErrors(),
			Cursor:    m.cursor,
			Width:     m.width,
		}))
		b.WriteString("\n")
	}

	if pending, ok := m.store.Pending(); ok {
		b.WriteString("\n")
		b.WriteString(view.RenderConfirmDialog(view.ConfirmState{
			Name:     pending.Name,
			Deleting: pending.InFlight,
		}))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(view.RenderHelpBar(status))

	return b.String()
}
