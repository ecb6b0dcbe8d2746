// internal/tui/app.go
//
// This is the main TUI (Terminal User Interface) for hirekit.
// It uses bubbletea, which follows The Elm Architecture:
//
// 1. Model: Your application state
// 2. Update: A function that updates state based on messages
// 3. View: A function that renders state to a string
//
// The flow is: User Input -> Message -> Update -> New Model -> View -> Screen

package tui

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"

	"github.com/kingrea/hirekit/internal/export"
	"github.com/kingrea/hirekit/internal/logbook"
	"github.com/kingrea/hirekit/internal/position"
	"github.com/kingrea/hirekit/internal/questions"
	"github.com/kingrea/hirekit/internal/store"
)

// appState represents which "screen" we're on
type appState int

const (
	stateList      appState = iota // Position list with search
	stateTemplates                 // Template picker for a new draft
	stateDetail                    // Read-only tabs for the selected position
	stateEdit                      // Editing a draft on the same tabs
)

const (
	logPanelLines = 6
	defaultWidth  = 100
	defaultHeight = 30
)

// Deps are the collaborators the TUI drives. Store and Generator are
// required; the rest fall back to no-ops.
type Deps struct {
	Store     *store.Store
	Generator *questions.Generator
	Exporter  *export.Writer
	Logbook   *logbook.Logbook
	Logger    log.FieldLogger
}

// AppOption customizes App construction for tests and alternate runtimes.
type AppOption func(*App)

// WithContext sets the context used for store writes.
func WithContext(ctx context.Context) AppOption {
	return func(a *App) {
		if ctx != nil {
			a.ctx = ctx
		}
	}
}

// App is the main application model. In bubbletea, this holds ALL your state.
type App struct {
	state appState
	ctx   context.Context

	store     *store.Store
	generator *questions.Generator
	exporter  *export.Writer
	logbook   *logbook.Logbook
	logger    log.FieldLogger

	// List screen
	positions list.Model
	templates list.Model
	search    textinput.Model
	searching bool

	// Detail and edit screens
	selectedID string
	tab        tab
	draft      position.Position
	draftNew   bool
	cursor     int
	input      textinput.Model
	inputOpen  bool

	statusMsg string

	// Window size (we get this from bubbletea)
	width  int
	height int
}

// NewApp creates a new App instance around a loaded store.
func NewApp(deps Deps, opts ...AppOption) (*App, error) {
	if deps.Store == nil {
		return nil, fmt.Errorf("tui: store is required")
	}
	if !deps.Store.Ready() {
		return nil, fmt.Errorf("tui: %w", store.ErrNotReady)
	}
	if deps.Generator == nil {
		deps.Generator = questions.New()
	}
	if deps.Logger == nil {
		discard := log.New()
		discard.SetOutput(io.Discard)
		deps.Logger = discard
	}

	positions := list.New(nil, list.NewDefaultDelegate(), defaultWidth-6, defaultHeight-12)
	positions.Title = "Positions"
	positions.SetShowStatusBar(false)
	positions.SetFilteringEnabled(false)
	positions.SetShowHelp(false)

	templates := list.New(templateItems(), list.NewDefaultDelegate(), defaultWidth-6, defaultHeight-12)
	templates.Title = "Start From Template"
	templates.SetShowStatusBar(false)
	templates.SetFilteringEnabled(false)
	templates.SetShowHelp(false)

	search := textinput.New()
	search.Placeholder = "Search positions..."
	search.Prompt = "/ "
	search.CharLimit = 120

	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 500

	app := &App{
		state:     stateList,
		ctx:       context.Background(),
		store:     deps.Store,
		generator: deps.Generator,
		exporter:  deps.Exporter,
		logbook:   deps.Logbook,
		logger:    deps.Logger,
		positions: positions,
		templates: templates,
		search:    search,
		input:     input,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(app)
		}
	}
	app.refreshPositions()
	if issue := app.store.LoadIssue(); issue != nil {
		app.statusMsg = fmt.Sprintf("Saved data was unreadable and has been set aside as %s", issue.BackupKey)
	}
	app.logInfo("Session opened · %d position(s)", app.store.Len())
	return app, nil
}

func (a *App) logInfo(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Info(format, args...)
}

func (a *App) logError(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Error(format, args...)
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.positions.SetSize(max(20, msg.Width-6), max(5, msg.Height-12))
		a.templates.SetSize(max(20, msg.Width-6), max(5, msg.Height-12))
		a.input.Width = max(20, msg.Width-12)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		switch a.state {
		case stateList:
			return a.updateList(msg)
		case stateTemplates:
			return a.updateTemplates(msg)
		case stateDetail:
			return a.updateDetail(msg)
		case stateEdit:
			return a.updateEdit(msg)
		}
	}

	return a, nil
}

// View renders the current state to a string.
func (a *App) View() string {
	var content string
	switch a.state {
	case stateList:
		content = a.renderList()
	case stateTemplates:
		content = a.renderTemplates()
	case stateDetail:
		content = a.renderDetail()
	case stateEdit:
		content = a.renderEdit()
	}
	return a.renderFrame(content)
}

func (a *App) frameWidth() int {
	if a.width <= 0 {
		return defaultWidth
	}
	return a.width
}

func (a *App) renderFrame(content string) string {
	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#0D9488")).
		Render("◆ HIREKIT")
	tagline := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		Render("Hire character, train skill")
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 1).
		Width(max(20, a.frameWidth()-2)).
		Render(content)
	sections := []string{lipgloss.JoinHorizontal(lipgloss.Bottom, header, "  ", tagline), box}
	if logPanel := a.renderLogPanel(); logPanel != "" {
		sections = append(sections, logPanel)
	}
	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		MarginTop(1).
		Render(a.statusMsg)
	sections = append(sections, footer)
	return strings.Join(sections, "\n")
}

func (a *App) renderLogPanel() string {
	if a.logbook == nil {
		return ""
	}
	lines, total := a.logbook.Tail(logPanelLines)
	if len(lines) == 0 {
		return ""
	}
	fileName := filepath.Base(a.logbook.Path())
	if fileName == "." || fileName == "" {
		fileName = "log"
	}
	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5B8DEF")).
		Render(fmt.Sprintf("ACTIVITY · %s (%d)", fileName, total))
	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA")).
		Render(strings.Join(lines, "\n"))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 1).
		Render(fmt.Sprintf("%s\n%s", head, body))
}

func hint(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA")).
		MarginTop(1).
		Render(text)
}
