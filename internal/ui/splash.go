package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	splashFrameInterval = 50 * time.Millisecond
	splashMaxScale      = 1.2
	splashName          = "taskpad"
)

type splashFrameMsg struct{}

type splashDoneMsg struct{}

// splashState drives the launch animation: the wordmark grows from
// nothing to slightly past full size, then holds before the home screen
// takes over.
type splashState struct {
	hold   time.Duration
	frame  int
	frames int
}

func newSplash(growMS, holdMS int) splashState {
	grow := time.Duration(growMS) * time.Millisecond
	return splashState{
		hold:   time.Duration(holdMS) * time.Millisecond,
		frames: int(grow / splashFrameInterval),
	}
}

// skip reports whether the splash should not be shown at all.
func (s splashState) skip() bool {
	return s.frames <= 0 && s.hold <= 0
}

// start returns the command that begins the animation.
func (s splashState) start() tea.Cmd {
	if s.frames <= 0 {
		return s.holdCmd()
	}
	return frameCmd()
}

// advance handles one animation frame and returns the next command.
func (s *splashState) advance() tea.Cmd {
	s.frame++
	if s.frame >= s.frames {
		return s.holdCmd()
	}
	return frameCmd()
}

// holdCmd waits out the pause after the animation, then ends the splash.
func (s splashState) holdCmd() tea.Cmd {
	if s.hold <= 0 {
		return func() tea.Msg { return splashDoneMsg{} }
	}
	return tea.Tick(s.hold, func(time.Time) tea.Msg { return splashDoneMsg{} })
}

func frameCmd() tea.Cmd {
	return tea.Tick(splashFrameInterval, func(time.Time) tea.Msg { return splashFrameMsg{} })
}

// scale is the current wordmark scale, running 0 to splashMaxScale.
func (s splashState) scale() float64 {
	if s.frames <= 0 {
		return splashMaxScale
	}
	if s.frame >= s.frames {
		return splashMaxScale
	}
	return splashMaxScale * float64(s.frame) / float64(s.frames)
}

func (m *Model) viewSplash() string {
	logo := m.theme.Logo.Render(renderLogo(m.splash.scale()))
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, logo)
	}
	return logo
}

// renderLogo scales the wordmark: below full size it reveals characters
// proportionally, past full size it spreads the letters apart.
func renderLogo(scale float64) string {
	if scale <= 0 {
		return ""
	}
	if scale < 1 {
		n := int(scale * float64(len(splashName)))
		if n < 1 {
			n = 1
		}
		return splashName[:n]
	}
	return strings.Join(strings.Split(splashName, ""), " ")
}
