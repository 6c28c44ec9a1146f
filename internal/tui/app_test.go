package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreapi "soclicker/internal/api"
	"soclicker/internal/config"
	"soclicker/internal/tui/views"
)

type fakeGame struct {
	events []coreapi.Event
	resets int
	stats  coreapi.StatsInfo
}

func (f *fakeGame) Handle(ev coreapi.Event) { f.events = append(f.events, ev) }
func (f *fakeGame) State() coreapi.StateInfo { return coreapi.StateInfo{} }
func (f *fakeGame) Stats() (coreapi.StatsInfo, error) { return f.stats, nil }
func (f *fakeGame) Reset() error {
	f.resets++
	return nil
}
func (f *fakeGame) SavePath() string { return "/tmp/test.save" }
func (f *fakeGame) Close() error { return nil }

func newTestApp(t *testing.T) (*SoclickerApp, *fakeGame) {
	t.Helper()
	sa := NewApplication(config.Default())
	game := &fakeGame{}
	sa.game = game
	return sa, game
}

func press(sa *SoclickerApp, k tcell.Key, r rune) {
	sa.input.HandleKeyEvent(tcell.NewEventKey(k, r, tcell.ModNone))
}

func screenText(sa *SoclickerApp, p views.Page) string {
	return sa.screens[p].GetView().GetText(true)
}

func TestKeysReachTheGame(t *testing.T) {
	sa, game := newTestApp(t)

	press(sa, tcell.KeyEnter, 0)
	press(sa, tcell.KeyRune, 'L')
	press(sa, tcell.KeyLeft, 0)
	press(sa, tcell.KeyRight, 0)

	assert.Equal(t, []coreapi.Event{
		coreapi.EventClick,
		coreapi.EventLongPress,
		coreapi.EventUpgradeIncome,
		coreapi.EventUpgradeMultiplier,
	}, game.events)
}

func TestTickGoesThroughHandle(t *testing.T) {
	sa, game := newTestApp(t)
	sa.tick()
	assert.Equal(t, []coreapi.Event{coreapi.EventTick}, game.events)
}

func TestStateChangeRendersHomeAndShop(t *testing.T) {
	sa, _ := newTestApp(t)

	sa.HandleStateChanged(coreapi.StateInfo{
		Counter:    2_500,
		ClickValue: 10,
		Multiplier: 1,
		Shop:       []coreapi.ShopItem{{Name: "income", Cost: 20, Available: true, Affordable: true}},
	})

	assert.Contains(t, screenText(sa, views.PageHome), "2,500")
	assert.Contains(t, screenText(sa, views.PageShop), "Passive income")
}

func TestNavigationWrapsAndBackReturnsHome(t *testing.T) {
	sa, _ := newTestApp(t)

	press(sa, tcell.KeyTab, 0)
	assert.Equal(t, views.PageShop, sa.tabs.Current())

	press(sa, tcell.KeyUp, 0)
	press(sa, tcell.KeyUp, 0)
	assert.Equal(t, views.PageSettings, sa.tabs.Current())

	press(sa, tcell.KeyEscape, 0)
	assert.Equal(t, views.PageHome, sa.tabs.Current())
	name, _ := sa.pages.GetFrontPage()
	assert.Equal(t, "home", name)
}

func TestStatsPageRefreshesOnOpen(t *testing.T) {
	sa, game := newTestApp(t)
	game.stats = coreapi.StatsInfo{Enabled: true, Clicks: 1234}

	press(sa, tcell.KeyRune, '3')

	assert.Equal(t, views.PageStats, sa.tabs.Current())
	assert.Contains(t, screenText(sa, views.PageStats), "1,234")
}

func TestResetOnlyFromSettings(t *testing.T) {
	sa, _ := newTestApp(t)

	press(sa, tcell.KeyRune, 'r')
	assert.False(t, sa.pages.HasPage("modal"))

	press(sa, tcell.KeyRune, '4')
	press(sa, tcell.KeyRune, 'r')
	require.True(t, sa.pages.HasPage("modal"))

	// The modal owns the keyboard: Enter must not click.
	ev := tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)
	assert.Same(t, ev, sa.input.HandleKeyEvent(ev))

	sa.closeModal()
	assert.False(t, sa.pages.HasPage("modal"))
}

func TestRejectionIsFlashed(t *testing.T) {
	sa, _ := newTestApp(t)
	sa.HandlePurchaseRejected(coreapi.RejectInfo{Reason: coreapi.RejectInsufficientFunds, Shortfall: 5})
	assert.True(t, strings.HasPrefix(sa.status.Text(), "Not enough points"))

	sa.HandleSaveFailed(errors.New("read-only"))
	assert.Contains(t, sa.status.Text(), "read-only")
}

func TestSettingsShowSavePath(t *testing.T) {
	sa, _ := newTestApp(t)
	sa.renderSettings()
	assert.Contains(t, screenText(sa, views.PageSettings), "/tmp/test.save")
}
