package components

import (
	"github.com/rivo/tview"

	"soclicker/internal/theme"
	"soclicker/internal/tui/views"
)

// PageComponent is one bordered screen of the application
type PageComponent struct {
	page views.Page
	view *tview.TextView
}

// NewPageComponent creates a titled panel for a page
func NewPageComponent(tc *theme.ThemedComponents, page views.Page) *PageComponent {
	view := tc.NewPanel(page.String())
	if page == views.PageHome {
		view.SetTextAlign(tview.AlignCenter)
	}
	return &PageComponent{page: page, view: view}
}

// Page returns which page this is
func (pc *PageComponent) Page() views.Page {
	return pc.page
}

// GetView returns the underlying primitive
func (pc *PageComponent) GetView() *tview.TextView {
	return pc.view
}

// SetContent replaces the rendered text
func (pc *PageComponent) SetContent(text string) {
	pc.view.SetText(text)
	pc.view.ScrollToBeginning()
}

// TabComponent is the one-line page selector at the top
type TabComponent struct {
	view    *tview.TextView
	current views.Page
}

// NewTabComponent creates a new tab bar
func NewTabComponent(tc *theme.ThemedComponents) *TabComponent {
	t := &TabComponent{view: tc.NewTabBar()}
	t.Select(views.PageHome)
	return t
}

// GetView returns the underlying primitive
func (t *TabComponent) GetView() *tview.TextView {
	return t.view
}

// Select highlights the given page
func (t *TabComponent) Select(p views.Page) {
	t.current = p
	t.view.SetText(views.Tabs(p))
}

// Current returns the highlighted page
func (t *TabComponent) Current() views.Page {
	return t.current
}
