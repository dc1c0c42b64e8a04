package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake-eater/internal/leaderboard"
)

// Scoreboard layout constants
const (
	tableRows     = leaderboard.MaxEntries
	dateColumnFmt = "Jan 02 15:04"
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Quit}}
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
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the high score screen.
type ScoreboardModel struct {
	entries  []leaderboard.Entry
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	quitting bool
}

// NewScoreboardModel creates a scoreboard over the current leaderboard.
func NewScoreboardModel(lb *leaderboard.Leaderboard, width int) ScoreboardModel {
	m := ScoreboardModel{
		entries: lb.Entries(),
		keys:    DefaultScoreboardKeyMap(),
		help:    help.New(),
		width:   width,
	}
	m.table = newScoreTable()
	m.table.SetRows(ScoreRows(m.entries))
	return m
}

func newScoreTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Name", Width: leaderboard.MaxNameLength + 1},
		{Title: "Score", Width: 8},
		{Title: "Date", Width: len(dateColumnFmt) + 2},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(tableRows+1),
	)

	// Table styles
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

// ScoreRows formats leaderboard entries as table rows.
// Dates that fail to parse are shown as stored.
func ScoreRows(entries []leaderboard.Entry) []table.Row {
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			e.Name,
			fmt.Sprintf("%d", e.Score),
			formatDate(e.Date),
		}
	}
	return rows
}

func formatDate(date string) string {
	t, err := time.Parse(time.RFC3339Nano, date)
	if err != nil {
		return date
	}
	return t.Local().Format(dateColumnFmt)
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
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
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
	b.WriteString(titleStyle.Render(centerText("SNAKE EATER - HIGH SCORES", m.width)))
	b.WriteString("\n\n")

	if len(m.entries) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)
		b.WriteString(emptyStyle.Render("No scores yet. Play a round to get on the board."))
		b.WriteString("\n")
	} else {
		tableStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
		b.WriteString(tableStyle.Render(m.table.View()))
		b.WriteString("\n")
	}

	// Help bar
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if width <= n {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// RunScoreboard shows the scoreboard until the user quits.
func RunScoreboard(lb *leaderboard.Leaderboard, width int) error {
	p := tea.NewProgram(NewScoreboardModel(lb, width), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// PlainScores renders the leaderboard as plain text for non-interactive use.
func PlainScores(entries []leaderboard.Entry) string {
	if len(entries) == 0 {
		return "No scores yet.\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%-5s %-*s %6s  %s\n", "RANK", leaderboard.MaxNameLength, "NAME", "SCORE", "DATE")
	for _, row := range ScoreRows(entries) {
		fmt.Fprintf(&b, "%-5s %-*s %6s  %s\n", row[0], leaderboard.MaxNameLength, row[1], row[2], row[3])
	}
	return b.String()
}
