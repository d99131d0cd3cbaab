package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/sdeming/dropjack-sub000/internal/core"
)

// Game is what the model drives each tick.
type Game interface {
	ID() string
	Reset(cfg core.RuntimeConfig)
	Resize(w, h int)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
}

// helpRows is the space kept under the game for the key help line.
const helpRows = 1

// Model is the Bubble Tea model for one DropJack player.
type Model struct {
	game     Game
	screen   *core.Screen
	renderer *Renderer
	config   core.RuntimeConfig
	frame    *core.InputFrame
	state    core.GameState

	keys   KeyMap
	help   help.Model
	logger *log.Logger

	// screenshotDir receives ctrl+s captures; empty disables them.
	screenshotDir string
	quitting      bool
}

// ModelOption customizes a Model.
type ModelOption func(*Model)

// WithLogger sets the logger used for game events.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) { m.logger = l }
}

// WithRenderer sets the renderer used by View.
func WithRenderer(r *Renderer) ModelOption {
	return func(m *Model) { m.renderer = r }
}

// WithScreenshotDir enables ctrl+s screen captures into dir.
func WithScreenshotDir(dir string) ModelOption {
	return func(m *Model) { m.screenshotDir = dir }
}

// NewModel resets game with cfg and wraps it in a model.
func NewModel(game Game, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	frame := core.NewInputFrame()
	m := Model{
		game:   game,
		config: cfg,
		frame:  &frame,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.renderer == nil {
		m.renderer = NewRenderer(nil)
	}

	w, h := m.gameSize(cfg.ScreenW, cfg.ScreenH)
	m.screen = core.NewScreen(w, h)
	m.config.ScreenW, m.config.ScreenH = w, h
	game.Reset(m.config)
	return m
}

func (m Model) gameSize(w, h int) (int, int) {
	return max(w, 0), max(h-helpRows, 0)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	if m.keys.Apply(msg, m.frame) {
		m.logger.Debug("force quit", "game", m.game.ID())
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	w, h := m.gameSize(msg.Width, msg.Height)
	m.config.ScreenW, m.config.ScreenH = w, h
	m.screen.Resize(w, h)
	m.help.Width = msg.Width
	m.game.Resize(w, h)
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	res := m.game.Step(m.frame.Clone())
	m.frame.Clear()
	m.state = res.State

	for _, e := range res.Events {
		m.logger.Debug("event", "game", m.game.ID(), "event", e, "score", res.State.Score)
	}
	if res.Quit {
		m.logger.Info("player quit", "game", m.game.ID(), "score", res.State.Score)
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// State returns the game summary from the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// Quitting reports whether the model has asked the program to stop.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m *Model) saveScreenshot() {
	if m.screenshotDir == "" {
		return
	}
	m.game.Render(m.screen)
	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		m.logger.Warn("screenshot", "err", err)
		return
	}
	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(m.screenshotDir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the game above the key help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)

	var sb strings.Builder
	sb.WriteString(m.renderer.Render(m.screen))
	sb.WriteByte('\n')
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// Run plays game in the local terminal until the player quits.
func Run(game Game, cfg core.RuntimeConfig, opts ...ModelOption) error {
	p := tea.NewProgram(NewModel(game, cfg, opts...), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
