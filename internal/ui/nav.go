package ui

// Screen identifies one of the four screens.
type Screen int

const (
	ScreenSplash Screen = iota
	ScreenHome
	ScreenAdd
	ScreenSettings
)

func (s Screen) String() string {
	switch s {
	case ScreenSplash:
		return "splash"
	case ScreenHome:
		return "home"
	case ScreenAdd:
		return "add"
	case ScreenSettings:
		return "settings"
	}
	return "unknown"
}

// navStack is the visited-screen history. The current screen is the top
// of the stack; back navigation pops.
type navStack struct {
	screens []Screen
}

func newNavStack(initial Screen) *navStack {
	return &navStack{screens: []Screen{initial}}
}

// Current returns the screen on top of the stack.
func (n *navStack) Current() Screen {
	return n.screens[len(n.screens)-1]
}

// Push makes s the current screen, keeping the previous one in history.
func (n *navStack) Push(s Screen) {
	n.screens = append(n.screens, s)
}

// Pop returns to the previous screen. Popping the last remaining screen
// is a no-op; the app stays navigable until process exit.
func (n *navStack) Pop() Screen {
	if len(n.screens) > 1 {
		n.screens = n.screens[:len(n.screens)-1]
	}
	return n.Current()
}

// Reset discards all history and makes s the only screen. Used when the
// splash hands over to home so back can never reach the splash again.
func (n *navStack) Reset(s Screen) {
	n.screens = n.screens[:0]
	n.screens = append(n.screens, s)
}

// Depth returns the number of screens in the history.
func (n *navStack) Depth() int {
	return len(n.screens)
}
