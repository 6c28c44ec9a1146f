package theme

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// ThemedComponents provides convenience factory functions for creating themed components
// while still allowing manual styling using theme properties
type ThemedComponents struct {
	theme Theme
}

// NewThemedComponents creates a new themed components factory
func NewThemedComponents(theme Theme) *ThemedComponents {
	return &ThemedComponents{theme: theme}
}

// Theme returns the theme backing the factory
func (tc *ThemedComponents) Theme() Theme {
	return tc.theme
}

// NewPanel creates a bordered, titled text view for a page body
func (tc *ThemedComponents) NewPanel(title string) *tview.TextView {
	colors := tc.theme.PanelColors()
	border := tc.theme.BorderStyle()

	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)
	tv.SetBackgroundColor(colors.Background)
	tv.SetTextColor(colors.Foreground)
	tv.SetBorder(true)
	tv.SetBorderColor(colors.Border)
	tv.SetTitle(" " + title + " ")
	tv.SetTitleColor(colors.Title)
	tv.SetBorderPadding(0, 0, border.Padding, border.Padding)
	return tv
}

// NewStatusBar creates the single-line status text view
func (tc *ThemedComponents) NewStatusBar() *tview.TextView {
	colors := tc.theme.StatusColors()

	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)
	tv.SetBackgroundColor(colors.Background)
	tv.SetTextColor(colors.Foreground)
	return tv
}

// NewModal creates a new modal with theme applied
func (tc *ThemedComponents) NewModal() *tview.Modal {
	modal := tview.NewModal()
	colors := tc.theme.DialogColors()

	modal.SetBackgroundColor(colors.Background)
	modal.SetTextColor(colors.Foreground)
	modal.SetButtonBackgroundColor(colors.ButtonBg)
	modal.SetButtonTextColor(colors.ButtonFg)
	modal.SetBorderColor(colors.Border)
	modal.SetTitleColor(colors.Title)

	return modal
}

// NewTabBar creates the one-line page selector
func (tc *ThemedComponents) NewTabBar() *tview.TextView {
	colors := tc.theme.DialogColors()

	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetRegions(true)
	tv.SetBackgroundColor(colors.Background)
	tv.SetTextColor(colors.Foreground)
	return tv
}

// Tag returns a tview color tag for a tcell color, e.g. "[#ff8200]"
func Tag(c tcell.Color) string {
	if c == tcell.ColorDefault {
		return "[-]"
	}
	return "[" + c.CSS() + "]"
}
