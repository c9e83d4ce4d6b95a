// Package viewer is the interactive terminal view of a masked document.
package viewer

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/Dicklesworthstone/envguard/internal/render"
	"github.com/Dicklesworthstone/envguard/internal/session"
	"github.com/Dicklesworthstone/envguard/internal/tui/components"
	"github.com/Dicklesworthstone/envguard/internal/tui/theme"
)

// Actions are the host commands the viewer can trigger. *session.Session
// satisfies it.
type Actions interface {
	Toggle() error
	Reload() error
}

// SnapshotMsg delivers a recomputed snapshot to the model.
type SnapshotMsg struct {
	Snapshot session.Snapshot
}

// editorDoneMsg is sent when the external editor exits.
type editorDoneMsg struct {
	err error
}

// Options configures the viewer.
type Options struct {
	// Path is the document being viewed.
	Path string
	// Actions receives toggle/reload requests.
	Actions Actions
	// Logger defaults to the discarding logger.
	Logger *log.Logger
	// Renderer holds the painted region set. Created when nil.
	Renderer *render.Renderer
}

// Model is the Bubble Tea model for the viewer.
type Model struct {
	path     string
	actions  Actions
	renderer *render.Renderer
	logger  *log.Logger
	keyMap  KeyMap
	help    help.Model

	// View state
	ready    bool
	width    int
	height   int
	viewport viewport.Model

	// Data
	snap    session.Snapshot
	hasSnap bool

	// Status line
	status  string
	lastErr error
}

// New creates a viewer model.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = render.NewRenderer(render.DefaultMaskChar)
	}
	return Model{
		path:     opts.Path,
		actions:  opts.Actions,
		renderer: renderer,
		logger:   logger,
		keyMap:   DefaultKeyMap(),
		help:     help.New(),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if !m.ready {
			m.viewport = viewport.New(msg.Width, m.bodyHeight())
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = m.bodyHeight()
		}
		m.refresh()
		return m, nil

	case SnapshotMsg:
		m.snap = msg.Snapshot
		m.hasSnap = true
		m.lastErr = msg.Snapshot.Err
		if msg.Snapshot.Status != "" {
			m.status = msg.Snapshot.Status
		}
		m.renderer.SetMaskChar(msg.Snapshot.Config.Mask.MaskChar)
		m.renderer.Set(msg.Snapshot.Document, msg.Snapshot.Regions)
		m.refresh()
		return m, nil

	case editorDoneMsg:
		if msg.err != nil {
			m.lastErr = fmt.Errorf("editor: %w", msg.err)
		}
		m.request(Actions.Reload)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keyMap.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keyMap.Toggle):
			m.request(Actions.Toggle)
			m.refresh()
			return m, nil

		case key.Matches(msg, m.keyMap.Reload):
			m.request(Actions.Reload)
			m.refresh()
			return m, nil

		case key.Matches(msg, m.keyMap.Edit):
			return m, m.editCmd()

		case key.Matches(msg, m.keyMap.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.refresh()
			return m, nil

		case key.Matches(msg, m.keyMap.Top):
			m.viewport.GotoTop()
			return m, nil

		case key.Matches(msg, m.keyMap.Bottom):
			m.viewport.GotoBottom()
			return m, nil
		}
	}

	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// request runs an action and records a failure in the status line.
func (m *Model) request(action func(Actions) error) {
	if m.actions == nil {
		return
	}
	if err := action(m.actions); err != nil {
		m.logger.Warn("action failed", "err", err)
		m.lastErr = err
	}
}

func (m Model) editCmd() tea.Cmd {
	path := m.path
	if path == "" {
		return nil
	}
	cmd, err := EditorCommand(m.snap.Config.UI.Editor, path)
	if err != nil {
		return func() tea.Msg { return editorDoneMsg{err: err} }
	}
	m.logger.Debug("launching editor", "cmd", cmd.String())
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorDoneMsg{err: err}
	})
}

// refresh resizes the viewport to the space left by the header and footer,
// which grow with status and help lines, and re-renders the document.
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	m.viewport.Height = m.bodyHeight()
	m.viewport.SetContent(m.body())
}

func (m Model) currentTheme() *theme.Theme {
	if m.hasSnap {
		return theme.ForFlavor(m.snap.Config.UI.Theme)
	}
	return theme.Current
}

func (m Model) body() string {
	th := m.currentTheme()
	dim := lipgloss.NewStyle().Foreground(th.Subtext).Italic(true)

	doc := m.renderer.Document()
	if doc == nil {
		return dim.Render("Loading...")
	}
	if len(doc.Lines) == 0 {
		return dim.Render("(empty file)")
	}

	styled := render.NewStyled(m.snap.Config.Mask.MaskChar)
	styled.Theme = th
	styled.LineNumbers = m.snap.Config.UI.LineNumbers
	styled.Width = m.width
	return styled.Render(doc.Lines, m.renderer.Regions())
}

func (m Model) bodyHeight() int {
	return max(1, m.height-lipgloss.Height(m.renderHeader())-lipgloss.Height(m.renderFooter()))
}

// View renders the model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.viewport.View(),
		m.renderFooter(),
	)
}

func (m Model) renderHeader() string {
	th := m.currentTheme()

	title := lipgloss.NewStyle().
		Foreground(th.Mauve).
		Bold(true).
		Render("envguard")

	name := filepath.Base(m.path)
	if m.hasSnap && m.snap.Document != nil {
		name = m.snap.Document.Name
	}
	file := lipgloss.NewStyle().Foreground(th.Text).Render(name)

	hidden := !m.hasSnap || m.snap.Hidden()
	state := components.StateHidden
	switch {
	case !m.hasSnap:
		state = components.StateLoading
	case !hidden:
		state = components.StateVisible
	case m.snap.Document != nil && !m.snap.Applies:
		state = components.StateUnmatched
	}
	badge := components.NewStatusBadge(state).WithTheme(th).Render()

	info := ""
	switch {
	case !m.hasSnap:
	case m.snap.Applies:
		info = fmt.Sprintf("%d masked", len(m.snap.Regions))
	case hidden:
		info = "not an env file"
	}
	infoStyled := lipgloss.NewStyle().Foreground(th.Subtext).Render(info)

	left := lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", file, "  ", badge)
	spacer := lipgloss.NewStyle().
		Width(max(0, m.width-lipgloss.Width(left)-lipgloss.Width(infoStyled)-2)).
		Render("")

	return lipgloss.NewStyle().
		Background(th.Mantle).
		Padding(0, 1).
		Width(m.width).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, left, spacer, infoStyled))
}

func (m Model) renderFooter() string {
	th := m.currentTheme()

	var status string
	switch {
	case m.lastErr != nil:
		status = lipgloss.NewStyle().Foreground(th.Red).Render("Error: " + m.lastErr.Error())
	case m.status != "":
		status = lipgloss.NewStyle().Foreground(th.Green).Render(m.status)
	}

	if status != "" && m.width > 2 {
		status = lipgloss.NewStyle().MaxWidth(m.width - 2).Render(status)
	}

	helpView := m.help.View(m.keyMap)
	if status == "" {
		return lipgloss.NewStyle().Padding(0, 1).Render(helpView)
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(
		lipgloss.JoinVertical(lipgloss.Left, status, helpView),
	)
}
