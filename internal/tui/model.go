package tui

import (
	"context"

	"flowdeck/internal/flowservice"
	"flowdeck/internal/logging"
	"flowdeck/internal/page"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

// Model holds the flow-instance page state.
//
// All page semantics live in the store; the model owns the cursor, the
// spinner, and the plumbing that turns remote completions into store
// events. Store mutation happens only inside Update, on the single
// bubbletea loop, so no locking is needed.
type Model struct {
	store  *page.Store
	svc    flowservice.Service
	logger *logging.Logger

	// ctx is the page's lifetime context. cancel runs on teardown so
	// in-flight fetches cannot outlive the page; their completions are
	// additionally dropped by the quitting guard in Update.
	ctx    context.Context
	cancel context.CancelFunc

	// gen is the current load-cycle generation. Completion messages
	// carrying an older generation belong to a superseded reload and
	// are discarded.
	gen int

	spinner  spinner.Model
	cursor   int
	width    int
	height   int
	quitting bool
}

// NewModel creates the page model. A nil logger is replaced with a no-op
// logger.
func NewModel(svc flowservice.Service, policy page.DetailFailurePolicy, logger *logging.Logger) Model {
	if logger == nil {
		logger = logging.NopLogger()
	}

	ctx, cancel := context.WithCancel(context.Background())

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("135"))

	return Model{
		store:   page.NewStore(policy, logger),
		svc:     svc,
		logger:  logger,
		ctx:     ctx,
		cancel:  cancel,
		spinner: sp,
	}
}

// Store exposes the page store for tests.
func (m Model) Store() *page.Store { return m.store }
