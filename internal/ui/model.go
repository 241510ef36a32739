// Package ui implements the terminal interface.
package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"taskpad/internal/config"
	"taskpad/internal/storage"
	"taskpad/internal/task"
)

// ThemeKey is the preference store key holding the dark-theme flag.
const ThemeKey = "dark"

// LoadThemeFlag reads the persisted theme flag. An absent value falls
// back to the given default; an unreadable one is an error.
func LoadThemeFlag(prefs *storage.Prefs, fallback bool) (bool, error) {
	dark, err := prefs.GetBool(ThemeKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fallback, nil
		}
		return false, err
	}
	return dark, nil
}

// Model is the root bubbletea model. It owns the application state and
// mutates it only through the store and preference operations, so every
// change is persisted before the next render.
type Model struct {
	cfg     *config.Config
	store   *task.Store
	prefs   *storage.Prefs
	logger  *log.Logger
	version string

	nav    *navStack
	theme  Theme
	keys   KeyMap
	help   help.Model
	splash splashState

	cursor int
	input  textinput.Model
	status string

	width  int
	height int
}

// New builds the root model. The first screen is the splash unless the
// configured splash durations are both zero.
func New(cfg *config.Config, store *task.Store, prefs *storage.Prefs, logger *log.Logger, dark bool, version string) *Model {
	ti := textinput.New()
	ti.Placeholder = "What needs doing?"
	ti.CharLimit = 200
	ti.Width = 40

	m := &Model{
		cfg:     cfg,
		store:   store,
		prefs:   prefs,
		logger:  logger,
		version: version,
		nav:     newNavStack(ScreenSplash),
		theme:   ThemeFor(dark),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		splash:  newSplash(cfg.SplashGrowMS, cfg.SplashHoldMS),
		input:   ti,
	}
	if m.splash.skip() {
		m.nav.Reset(ScreenHome)
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.nav.Current() == ScreenSplash {
		return m.splash.start()
	}
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case splashFrameMsg:
		if m.nav.Current() != ScreenSplash {
			return m, nil
		}
		return m, m.splash.advance()

	case splashDoneMsg:
		// Splash leaves the history entirely; back from home can
		// never return here.
		m.nav.Reset(ScreenHome)
		m.logger.Debug("splash finished")
		return m, nil

	case tea.KeyMsg:
		m.status = ""
		switch m.nav.Current() {
		case ScreenSplash:
			// The splash takes no input.
			return m, nil
		case ScreenHome:
			return m.updateHome(msg)
		case ScreenAdd:
			return m.updateAdd(msg)
		case ScreenSettings:
			return m.updateSettings(msg)
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	switch m.nav.Current() {
	case ScreenSplash:
		return m.viewSplash()
	case ScreenAdd:
		return m.viewAdd()
	case ScreenSettings:
		return m.viewSettings()
	default:
		return m.viewHome()
	}
}

// fail records an operation failure in the log and the footer status.
func (m *Model) fail(op string, err error) {
	m.logger.Error(op, "err", err)
	m.status = fmt.Sprintf("%s: %v", op, err)
}
