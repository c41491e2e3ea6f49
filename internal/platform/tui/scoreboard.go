package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/prism-arcade/internal/registry"
	"github.com/vovakirdan/prism-arcade/internal/storage"
)

// Scoreboard limits
const (
	maxScores = 100
	maxRuns   = 100
)

// BoardView selects what the scoreboard lists.
type BoardView int

const (
	ViewScores BoardView = iota // High scores of one game
	ViewRuns                    // Recent headless simulation runs
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PrevGame key.Binding
	NextGame key.Binding
	Switch   key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PrevGame, k.NextGame, k.Switch, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.PrevGame, k.NextGame, k.Switch},
		{k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev game"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next game"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores/runs"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the scores and runs screen.
type ScoreboardModel struct {
	games      []registry.GameInfo
	gameCursor int
	store      *storage.Store
	view       BoardView
	scores     []storage.ScoreEntry
	runs       []storage.Run
	err        error // Last load error, shown instead of the table
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	quitting   bool
}

// NewScoreboardModel creates a scoreboard starting on the given view.
func NewScoreboardModel(store *storage.Store, view BoardView, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		view:   view,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.reload()
	return m
}

// columns returns the table layout for the current view.
func (m *ScoreboardModel) columns() []table.Column {
	if m.view == ViewRuns {
		return []table.Column{
			{Title: "Run", Width: 8},
			{Title: "Level", Width: 12},
			{Title: "Ticks", Width: 7},
			{Title: "Score", Width: 7},
			{Title: "Splits", Width: 7},
			{Title: "Refl", Width: 6},
			{Title: "Date", Width: 12},
		}
	}

	dateWidth := clampInt(m.width-30, 12, 20)
	return []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 12},
		{Title: "Date", Width: dateWidth},
	}
}

// clampInt clamps v to [lo, hi].
func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// newTable creates a styled table for the current view.
func (m *ScoreboardModel) newTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// reload fetches rows for the current view and rebuilds the table.
func (m *ScoreboardModel) reload() {
	m.table = m.newTable()
	m.err = nil
	m.scores, m.runs = nil, nil

	if m.store == nil {
		return
	}

	var rows []table.Row
	switch m.view {
	case ViewRuns:
		m.runs, m.err = m.store.RecentRuns(maxRuns)
		for _, r := range m.runs {
			rows = append(rows, table.Row{
				shortID(r.ID),
				r.Level,
				fmt.Sprintf("%d", r.Ticks),
				fmt.Sprintf("%d", r.Score),
				fmt.Sprintf("%d", r.Splits),
				fmt.Sprintf("%d", r.Reflections),
				r.CreatedAt.Format("Jan 02 15:04"),
			})
		}
	default:
		if len(m.games) == 0 {
			return
		}
		m.scores, m.err = m.store.TopScores(m.games[m.gameCursor].ID, maxScores)
		for i, s := range m.scores {
			rows = append(rows, table.Row{
				fmt.Sprintf("#%d", i+1),
				fmt.Sprintf("%d", s.Score),
				s.CreatedAt.Format("Jan 02 15:04"),
			})
		}
	}

	m.table.SetRows(rows)
	m.table.GotoTop()
}

// shortID trims a UUID to its first block for display.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Switch):
			if m.view == ViewScores {
				m.view = ViewRuns
			} else {
				m.view = ViewScores
			}
			m.reload()
			return m, nil

		case key.Matches(msg, m.keys.NextGame):
			if m.view == ViewScores && len(m.games) > 0 {
				m.gameCursor = (m.gameCursor + 1) % len(m.games)
				m.reload()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevGame):
			if m.view == ViewScores && len(m.games) > 0 {
				m.gameCursor = (m.gameCursor - 1 + len(m.games)) % len(m.games)
				m.reload()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.reload()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// title returns the heading for the current view.
func (m ScoreboardModel) title() string {
	if m.view == ViewRuns {
		return "SIMULATION RUNS"
	}
	if len(m.games) == 0 {
		return "HIGH SCORES"
	}
	return fmt.Sprintf("HIGH SCORES - %s", m.games[m.gameCursor].Title)
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText(m.title(), m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tableStyle.Render(m.renderTableContent())))

	b.WriteString("\n")
	b.WriteString(footerStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or a placeholder message.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("No database open.")
	case m.err != nil:
		return emptyStyle.Render("Could not load: " + m.err.Error())
	case m.view == ViewRuns && len(m.runs) == 0:
		return emptyStyle.Render("No runs recorded yet.\nTry `prism simulate`.")
	case m.view == ViewScores && len(m.scores) == 0:
		return emptyStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
	}

	return m.table.View()
}

// IsQuitting returns true if user wants to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen until the user quits.
func RunScoreboard(store *storage.Store, view BoardView, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(store, view, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
