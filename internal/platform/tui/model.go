package tui

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-eater/internal/core"
	"github.com/vovakirdan/snake-eater/internal/games/snake"
	"github.com/vovakirdan/snake-eater/internal/leaderboard"
)

// phase is where the session is between rounds.
type phase int

const (
	phaseReady phase = iota
	phasePlaying
	phaseGameOver
)

// Name entry modal size.
const (
	modalWidth  = 30
	modalHeight = 7
	modalBG     = "#2c3e50"
)

// Options configures a play session.
type Options struct {
	Settings  snake.Settings
	PixelSize float64 // Canvas units per half-block pixel
	Runtime   core.RuntimeConfig
	Clock     core.Clock // nil uses the system clock
	Scores    *leaderboard.Leaderboard
	Logger    *log.Logger
}

// Model is the Bubble Tea model for a Snake Eater session.
// It owns the current round and replaces it on every restart.
type Model struct {
	settings snake.Settings
	config   core.RuntimeConfig
	clock    core.Clock
	rng      *rand.Rand
	scores   *leaderboard.Leaderboard
	logger   *log.Logger

	game   *snake.Game
	phase  phase
	rounds int
	fx     effects
	naming bool
	input  textinput.Model

	raster *core.Raster
	screen *core.Screen
	layout layout
	keys   *KeyMapper
	help   help.Model

	width    int
	height   int
	quitting bool
}

// NewModel creates a session waiting for the first start.
// The board shows a fresh round behind the start overlay.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	clock := opts.Clock
	if clock == nil {
		clock = core.SystemClock{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	scores := opts.Scores
	if scores == nil {
		scores = leaderboard.New(leaderboard.NewMemoryStore(), clock, logger)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	grid := opts.Settings.Grid
	raster := core.NewRaster(grid.Width, grid.Height, opts.PixelSize)
	l := newLayout(raster.TermSize())

	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = leaderboard.DefaultName
	input.CharLimit = leaderboard.MaxNameLength
	input.Width = leaderboard.MaxNameLength

	return Model{
		settings: opts.Settings,
		config:   cfg,
		clock:    clock,
		rng:      rng,
		scores:   scores,
		logger:   logger,
		game:     snake.New(opts.Settings, clock, rng),
		input:    input,
		raster:   raster,
		screen:   core.NewScreen(l.width, l.height),
		layout:   l,
		keys:     NewKeyMapper(),
		help:     help.New(),
		width:    cfg.ScreenW,
		height:   cfg.ScreenH,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.naming {
			return m.handleNameKey(msg)
		}
		return m.handleAction(m.keys.MapKey(msg))

	case tea.MouseMsg:
		if m.naming || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		return m.handleAction(m.layout.hit(msg.X, msg.Y))

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleAction applies a key or button action outside the name entry.
func (m Model) handleAction(a core.Action) (tea.Model, tea.Cmd) {
	switch a {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionStart:
		if m.phase != phasePlaying {
			m.start()
		}
		return m, nil
	}

	if a.IsDirection() && m.phase == phasePlaying {
		d, _ := DirectionFor(a)
		m.game.ChangeDirection(d)
	}
	return m, nil
}

// handleNameKey routes keys while the name entry is open.
func (m Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapNameEntryKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionConfirm:
		m.saveScore()
		return m, nil
	case core.ActionBack:
		m.closeNameEntry()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleTick advances the round and reacts to its events.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}

	if m.phase == phasePlaying {
		now := m.clock.Now()
		for _, ev := range m.game.Update() {
			m.fx.apply(ev, now)
			switch ev.Kind {
			case snake.EventSpeed:
				m.logger.Debug("speed changed", "interval_ms", ev.IntervalMs)
			case snake.EventBackground:
				m.logger.Debug("background changed", "theme", ev.Theme)
			case snake.EventGameOver:
				cmds = append(cmds, m.endRound(ev.Score))
			}
		}
	}

	return m, tea.Batch(cmds...)
}

// start begins a new round.
func (m *Model) start() {
	m.game = snake.New(m.settings, m.clock, m.rng)
	m.phase = phasePlaying
	m.fx = effects{}
	m.rounds++
	m.logger.Debug("round started", "round", m.rounds)
}

// endRound switches to the game over screen and opens the name entry.
func (m *Model) endRound(score int) tea.Cmd {
	m.phase = phaseGameOver
	m.naming = true
	m.input.Reset()
	m.logger.Info("game over", "score", score, "round", m.rounds, "ticks", m.game.Ticks())
	return m.input.Focus()
}

// saveScore records the finished round under the typed name.
func (m *Model) saveScore() {
	e := m.scores.Add(m.input.Value(), m.game.Score())
	m.logger.Info("score saved", "name", e.Name, "score", e.Score, "rank", m.scores.Rank(e.ID))
	m.closeNameEntry()
}

func (m *Model) closeNameEntry() {
	m.naming = false
	m.input.Blur()
	m.input.Reset()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width > 0 && m.height > 0 && (m.width < m.layout.width || m.height < m.layout.height+1) {
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d\nPress q to quit.",
			m.layout.width, m.layout.height+1, m.width, m.height)
	}

	now := m.clock.Now()
	m.screen.Clear()
	m.drawHUD(now)
	m.drawBoard(now)
	m.drawPanel()
	if m.naming {
		m.drawNameEntry()
	}

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	if m.naming {
		b.WriteString(m.help.View(m.keys.name))
	} else {
		b.WriteString(m.help.View(m.keys.game))
	}
	return b.String()
}

// drawHUD draws the score, speed bar and milestone on the top row.
func (m Model) drawHUD(now time.Time) {
	state := m.game.State()
	m.screen.DrawTextStyled(0, 0, fmt.Sprintf("Score: %d", state.Score), textColor, "")

	pct := m.game.SpeedPercentage()
	barColor := SpeedColor(pct)
	if m.fx.speedFlash(now) {
		barColor = lighten(barColor)
	}
	x := 14
	m.screen.DrawTextStyled(x, 0, "Speed ", mutedColor, "")
	x += 6
	fill := speedBarFill(pct, speedBarWidth)
	for i := 0; i < speedBarWidth; i++ {
		if i < fill {
			m.screen.SetCell(x+i, 0, core.Cell{Rune: '█', FG: barColor})
		} else {
			m.screen.SetCell(x+i, 0, core.Cell{Rune: '░', FG: mutedColor})
		}
	}
	x += speedBarWidth
	m.screen.DrawTextStyled(x, 0, fmt.Sprintf(" %3d%%", pct), barColor, "")

	if m.fx.showMilestone(now) {
		m.screen.DrawTextStyled(x+7, 0, fmt.Sprintf("%d points!", m.fx.milestone), accentColor, "")
	}
}

// drawBoard draws the framed playfield and, between rounds, its overlay.
func (m Model) drawBoard(now time.Time) {
	frame := frameColor
	if m.fx.backgroundFlash(now) {
		frame = flashColor
	}
	m.screen.DrawBoxStyled(m.layout.frame, frame)

	m.game.Draw(m.raster)
	m.raster.Blit(m.screen, m.layout.board.X, m.layout.board.Y)

	switch m.phase {
	case phaseReady:
		m.dimBoard()
		m.drawOverlay("SNAKE EATER", "", "Press space to start")
	case phaseGameOver:
		m.dimBoard()
		m.drawOverlay("GAME OVER", fmt.Sprintf("Score: %d", m.game.Score()), "Press space to restart")
	}
}

// dimBoard darkens every board cell with the overlay color.
func (m Model) dimBoard() {
	b := m.layout.board
	for y := b.Y; y < b.Bottom(); y++ {
		for x := b.X; x < b.Right(); x++ {
			c := m.screen.GetCell(x, y)
			c.FG = dim(c.FG)
			c.BG = dim(c.BG)
			m.screen.SetCell(x, y, c)
		}
	}
}

func dim(hex string) string {
	if hex == "" {
		return ""
	}
	c, err := core.ParseColor(hex)
	if err != nil {
		return hex
	}
	return core.Opaque(overlayDim.Over(c.C, 1)).Hex()
}

// drawOverlay centers lines on the board, keeping the dimmed background.
func (m Model) drawOverlay(lines ...string) {
	b := m.layout.board
	top := b.Y + (b.H-len(lines))/2
	for i, line := range lines {
		m.drawCentered(b, top+i, line, overlayText)
	}
}

func (m Model) drawCentered(r core.Rect, y int, text, fg string) {
	runes := []rune(text)
	x := r.X + (r.W-len(runes))/2
	for i, ch := range runes {
		bg := m.screen.GetCell(x+i, y).BG
		m.screen.SetCell(x+i, y, core.Cell{Rune: ch, FG: fg, BG: bg})
	}
}

// drawPanel draws the leaderboard and the on-screen controls.
func (m Model) drawPanel() {
	x := m.layout.panelX
	m.screen.DrawTextStyled(x, panelTop, "LEADERBOARD", titleColor, "")

	entries := m.scores.Entries()
	if len(entries) == 0 {
		m.screen.DrawTextStyled(x, panelTop+2, "No scores yet", mutedColor, "")
	}
	newest := m.scores.LastAddedID()
	for i, e := range entries {
		fg := textColor
		if e.ID == newest {
			fg = accentColor
		}
		line := fmt.Sprintf("%2d. %-*s %5d", i+1, leaderboard.MaxNameLength, e.Name, e.Score)
		m.screen.DrawTextStyled(x, panelTop+2+i, line, fg, "")
	}

	for _, b := range m.layout.buttons {
		fg := textColor
		if b.action == core.ActionStart && m.phase == phasePlaying {
			fg = mutedColor
		}
		m.screen.DrawTextStyled(b.rect.X, b.rect.Y, b.label, fg, frameColor)
	}
}

// drawNameEntry draws the modal asking for the player's name.
func (m Model) drawNameEntry() {
	cx, cy := m.layout.board.Center()
	r := core.NewRect(cx-modalWidth/2, cy-modalHeight/2, modalWidth, modalHeight)

	m.screen.DrawRect(r, core.Cell{Rune: ' ', BG: modalBG})
	m.screen.DrawBoxStyled(r, accentColor)
	m.drawCentered(r, r.Y+1, fmt.Sprintf("Score: %d", m.game.Score()), accentColor)

	name := m.input.Value()
	if name == "" {
		name = m.input.Placeholder
	}
	m.screen.DrawTextStyled(r.X+3, r.Y+3, "Name: ", mutedColor, modalBG)
	m.screen.DrawTextStyled(r.X+9, r.Y+3, name+"█", textColor, modalBG)

	save, skip := m.keys.name.Save.Help(), m.keys.name.Skip.Help()
	hint := fmt.Sprintf("%s %s, %s %s", save.Key, save.Desc, skip.Key, skip.Desc)
	m.drawCentered(r, r.Y+5, hint, mutedColor)
}

// Run starts the Bubble Tea program for a play session.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
