package components

import (
	"github.com/rivo/tview"

	"soclicker/internal/theme"
)

// StatusComponent manages the bottom status bar. It shows the key help until a
// transient message replaces it.
type StatusComponent struct {
	wrapper    *tview.TextView
	help       string
	generation int
}

// NewStatusComponent creates a new status bar component
func NewStatusComponent(tc *theme.ThemedComponents, help string) *StatusComponent {
	sc := &StatusComponent{
		wrapper: tc.NewStatusBar(),
		help:    help,
	}
	sc.Clear(0)
	return sc
}

// GetWrapper returns the status bar TextView
func (sc *StatusComponent) GetWrapper() *tview.TextView {
	return sc.wrapper
}

// Flash shows a message and returns its generation, which Clear uses to
// avoid wiping a newer message.
func (sc *StatusComponent) Flash(msg string, isError bool) int {
	colors := theme.Current().StatusColors()
	sc.generation++
	if isError {
		sc.wrapper.SetBackgroundColor(colors.ErrorBg)
		sc.wrapper.SetTextColor(colors.ErrorFg)
	} else {
		sc.wrapper.SetBackgroundColor(colors.Background)
		sc.wrapper.SetTextColor(colors.InfoFg)
	}
	sc.wrapper.SetText(tview.Escape(msg))
	return sc.generation
}

// Clear restores the help text if no message newer than generation is showing.
// Clear(0) always restores it.
func (sc *StatusComponent) Clear(generation int) {
	if generation != 0 && generation != sc.generation {
		return
	}
	colors := theme.Current().StatusColors()
	sc.wrapper.SetBackgroundColor(colors.Background)
	sc.wrapper.SetTextColor(colors.Foreground)
	sc.wrapper.SetText(tview.Escape(sc.help))
}

// Text returns what is currently displayed
func (sc *StatusComponent) Text() string {
	return sc.wrapper.GetText(true)
}
