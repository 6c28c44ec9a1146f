package tui

import (
	"fmt"
	"time"

	"github.com/rivo/tview"

	coreapi "soclicker/internal/api"
	"soclicker/internal/config"
	"soclicker/internal/log"
	"soclicker/internal/theme"
	tuiapi "soclicker/internal/tui/api"
	"soclicker/internal/tui/components"
	"soclicker/internal/tui/handlers"
	"soclicker/internal/tui/views"
)

// SoclickerApp is the terminal host: it turns keys and timer ticks into game
// events and redraws whenever the session reports a change. Everything that
// touches the session runs on the tview event loop.
type SoclickerApp struct {
	app    *tview.Application
	cfg    *config.Config
	game   coreapi.GameAPI
	themed *theme.ThemedComponents

	// Layout
	pages   *tview.Pages
	layout  *tview.Flex
	tabs    *components.TabComponent
	screens map[views.Page]*components.PageComponent
	status  *components.StatusComponent

	input  *handlers.InputHandler
	ticker *Ticker
}

// NewApplication creates and configures the tview application
func NewApplication(cfg *config.Config) *SoclickerApp {
	if err := theme.GetThemeManager().SetTheme(cfg.Theme); err != nil {
		log.Warn("unknown theme, keeping default", "theme", cfg.Theme, "error", err)
	}
	themed := theme.NewThemedComponents(theme.Current())

	sa := &SoclickerApp{
		app:     tview.NewApplication(),
		cfg:     cfg,
		themed:  themed,
		screens: make(map[views.Page]*components.PageComponent),
		input:   handlers.NewInputHandler(),
	}

	sa.setupUI()
	sa.setupInputHandling()
	return sa
}

// setupUI configures the user interface layout
func (sa *SoclickerApp) setupUI() {
	sa.tabs = components.NewTabComponent(sa.themed)
	sa.status = components.NewStatusComponent(sa.themed, views.Help)

	sa.pages = tview.NewPages()
	for _, p := range views.Pages {
		screen := components.NewPageComponent(sa.themed, p)
		sa.screens[p] = screen
		sa.pages.AddPage(p.ID(), screen.GetView(), true, p == views.PageHome)
	}

	sa.layout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(sa.tabs.GetView(), 1, 0, false).
		AddItem(sa.pages, 0, 1, true).
		AddItem(sa.status.GetWrapper(), 1, 0, false)

	sa.app.SetRoot(sa.layout, true)
}

// setupInputHandling configures input event handling
func (sa *SoclickerApp) setupInputHandling() {
	sa.input.SetCallbacks(
		sa.handleEvent,  // onEvent
		sa.navigate,     // onNavigate
		sa.selectPage,   // onSelect
		sa.back,         // onBack
		sa.exit,         // onExit
		sa.confirmReset, // onReset
	)
	sa.app.SetInputCapture(sa.input.HandleKeyEvent)
}

// Run starts the game session and the UI, and saves on the way out
func (sa *SoclickerApp) Run() error {
	game, err := coreapi.Start(coreapi.StartOptions{
		SavePath:   sa.cfg.SavePath,
		LedgerPath: sa.cfg.LedgerPath,
	}, tuiapi.NewTuiAPI(sa))
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}
	sa.game = game
	sa.renderSettings()

	sa.ticker = NewTicker(sa.cfg.TickIntervalDuration(), func() {
		sa.app.QueueUpdateDraw(sa.tick)
	})
	sa.ticker.Start()

	runErr := sa.app.Run()

	// The loop has ended, so no queued tick can reach the session any more.
	sa.ticker.Stop()
	if err := sa.game.Close(); err != nil {
		log.Error("shutdown save failed", "error", err)
	}
	return runErr
}

// HandleStateChanged redraws the pages that show the economy
func (sa *SoclickerApp) HandleStateChanged(state coreapi.StateInfo) {
	th := sa.themed.Theme()
	sa.screens[views.PageHome].SetContent(views.Home(state, th))
	sa.screens[views.PageShop].SetContent(views.Shop(state, th))
}

// HandlePurchaseRejected shows why a purchase did not happen
func (sa *SoclickerApp) HandlePurchaseRejected(reject coreapi.RejectInfo) {
	sa.flash(views.Rejection(reject), true)
}

// HandleSaveFailed reports a failed save; play continues in memory
func (sa *SoclickerApp) HandleSaveFailed(err error) {
	sa.flash("Save failed: "+err.Error(), true)
}

func (sa *SoclickerApp) tick() {
	sa.game.Handle(coreapi.EventTick)
}

func (sa *SoclickerApp) handleEvent(ev coreapi.Event) {
	sa.game.Handle(ev)
}

// flash shows a transient status message for the configured duration
func (sa *SoclickerApp) flash(msg string, isError bool) {
	gen := sa.status.Flash(msg, isError)
	go func() {
		<-time.After(sa.cfg.MessageDurationValue())
		sa.app.QueueUpdateDraw(func() {
			sa.status.Clear(gen)
		})
	}()
}

func (sa *SoclickerApp) navigate(delta int) {
	sa.showPage(sa.tabs.Current().Next(delta))
}

func (sa *SoclickerApp) selectPage(index int) {
	if index >= 0 && index < len(views.Pages) {
		sa.showPage(views.Pages[index])
	}
}

func (sa *SoclickerApp) showPage(p views.Page) {
	sa.tabs.Select(p)
	sa.pages.SwitchToPage(p.ID())
	if p == views.PageStats {
		sa.refreshStats()
	}
}

func (sa *SoclickerApp) refreshStats() {
	info, err := sa.game.Stats()
	if err != nil {
		log.Warn("stats unavailable", "error", err)
	}
	sa.screens[views.PageStats].SetContent(views.Stats(info, err))
}

func (sa *SoclickerApp) renderSettings() {
	sa.screens[views.PageSettings].SetContent(views.Settings(
		sa.game.SavePath(),
		sa.cfg.TickIntervalDuration(),
		sa.themed.Theme().Name(),
	))
}

// back returns to Home, or quits when already there
func (sa *SoclickerApp) back() {
	if sa.tabs.Current() != views.PageHome {
		sa.showPage(views.PageHome)
		return
	}
	sa.exit()
}

// Stop asks the event loop to exit; safe to call from any goroutine
func (sa *SoclickerApp) Stop() {
	sa.app.QueueUpdate(sa.exit)
}

// exit shuts down the application
func (sa *SoclickerApp) exit() {
	if sa.ticker != nil {
		sa.ticker.Stop()
	}
	sa.app.Stop()
}

// confirmReset asks before wiping progress; it only works from Settings
func (sa *SoclickerApp) confirmReset() {
	if sa.tabs.Current() != views.PageSettings {
		return
	}

	modal := sa.themed.NewModal().
		SetText("Reset all progress?\nThis cannot be undone.").
		AddButtons([]string{"Cancel", "Reset"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			sa.closeModal()
			if buttonLabel != "Reset" {
				return
			}
			if err := sa.game.Reset(); err == nil {
				sa.flash("Progress reset", false)
			}
		})

	sa.input.SetModalVisible(true)
	sa.pages.AddPage("modal", modal, true, true)
	sa.app.SetFocus(modal)
}

// closeModal closes the currently displayed modal
func (sa *SoclickerApp) closeModal() {
	sa.input.SetModalVisible(false)
	sa.pages.RemovePage("modal")
	sa.app.SetFocus(sa.pages)
}
