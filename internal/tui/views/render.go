// Package views renders game state into tview color-tagged text. Rendering is
// kept free of widgets so it can be tested directly.
package views

import (
	"fmt"
	"strings"
	"time"

	coreapi "soclicker/internal/api"
	"soclicker/internal/format"
	"soclicker/internal/theme"
)

// Page identifies one of the application screens
type Page int

const (
	PageHome Page = iota
	PageShop
	PageStats
	PageSettings
)

// Pages lists every page in tab order
var Pages = []Page{PageHome, PageShop, PageStats, PageSettings}

func (p Page) String() string {
	switch p {
	case PageHome:
		return "Home"
	case PageShop:
		return "Shop"
	case PageStats:
		return "Stats"
	case PageSettings:
		return "Settings"
	default:
		return "?"
	}
}

// ID is the tview page name
func (p Page) ID() string {
	return strings.ToLower(p.String())
}

// Next returns the page delta steps away, wrapping around
func (p Page) Next(delta int) Page {
	n := len(Pages)
	return Page(((int(p)+delta)%n + n) % n)
}

// upgradeKeys are the key hints shown next to each upgrade
var upgradeKeys = map[string]string{
	"income":     "←",
	"multiplier": "→",
	"auto-click": "L",
}

var upgradeLabels = map[string]string{
	"income":     "Passive income +1",
	"multiplier": "Multiplier x2",
	"auto-click": "Auto-click",
}

// Tabs renders the page selector with the current page highlighted
func Tabs(current Page) string {
	var b strings.Builder
	for i, p := range Pages {
		if i > 0 {
			b.WriteString(" ")
		}
		if p == current {
			fmt.Fprintf(&b, "[::r] %d %s [::-]", i+1, p)
		} else {
			fmt.Fprintf(&b, " %d %s ", i+1, p)
		}
	}
	return b.String()
}

// Home renders the main clicker screen
func Home(st coreapi.StateInfo, th theme.Theme) string {
	accent := theme.Tag(th.DefaultColors().Accent)
	var b strings.Builder

	fmt.Fprintf(&b, "\n%s[::b]%s[::-][-] points\n\n", accent, format.Points(st.Counter))
	fmt.Fprintf(&b, "Click     %s\n", format.Signed(st.ClickValue))
	fmt.Fprintf(&b, "Per tick  %s\n", format.Signed(st.IncomePerTick))
	fmt.Fprintf(&b, "Multiplier x%d\n", st.Multiplier)
	if st.AutoClickEnabled {
		b.WriteString("Auto-click ON\n")
	} else {
		b.WriteString("Auto-click off\n")
	}
	b.WriteString("\n[::r] Enter [::-] Click!")
	return b.String()
}

// Shop renders the upgrade list with affordability colors
func Shop(st coreapi.StateInfo, th theme.Theme) string {
	colors := th.ShopColors()
	var b strings.Builder

	fmt.Fprintf(&b, "\nBalance: %s\n\n", format.Points(st.Counter))
	for _, item := range st.Shop {
		label := upgradeLabels[item.Name]
		if label == "" {
			label = item.Name
		}
		keyHint := upgradeKeys[item.Name]

		switch {
		case !item.Available:
			fmt.Fprintf(&b, "%s %-3s %-18s %s[-]\n", theme.Tag(colors.Owned), keyHint, label, ownedText(item))
		case item.Affordable:
			fmt.Fprintf(&b, "%s %-3s %-18s %s[-]\n", theme.Tag(colors.Affordable), keyHint, label, format.Points(item.Cost))
		default:
			fmt.Fprintf(&b, "%s %-3s %-18s %s[-]\n", theme.Tag(colors.Unaffordable), keyHint, label, format.Points(item.Cost))
		}
	}
	return b.String()
}

func ownedText(item coreapi.ShopItem) string {
	if item.Name == "multiplier" {
		return "MAX"
	}
	return "OWNED"
}

// Stats renders lifetime statistics
func Stats(info coreapi.StatsInfo, err error) string {
	if err != nil {
		return "\nStatistics unavailable:\n" + err.Error()
	}
	if !info.Enabled {
		return "\nStatistics are disabled.\nSet ledger_path in soclicker.yaml to enable them."
	}

	var b strings.Builder
	b.WriteString("\n")
	fmt.Fprintf(&b, "Sessions   %s\n", format.Points(info.Sessions))
	fmt.Fprintf(&b, "Clicks     %s\n", format.Points(info.Clicks))
	fmt.Fprintf(&b, "Ticks      %s\n", format.Points(info.Ticks))
	fmt.Fprintf(&b, "Earned     %s\n", format.Compact(info.Earned))
	fmt.Fprintf(&b, "Spent      %s\n", format.Compact(info.Spent))
	for _, name := range []string{"income", "multiplier", "auto-click"} {
		fmt.Fprintf(&b, "  %-10s %d\n", name, info.Purchases[name])
	}
	if !info.FirstPlay.IsZero() {
		fmt.Fprintf(&b, "Playing since %s\n", info.FirstPlay.Format(time.DateOnly))
	}
	return b.String()
}

// Settings renders the read-only configuration summary
func Settings(savePath string, tick time.Duration, themeName string) string {
	var b strings.Builder
	b.WriteString("\n")
	fmt.Fprintf(&b, "Save file  %s\n", savePath)
	fmt.Fprintf(&b, "Tick       %s\n", tick)
	fmt.Fprintf(&b, "Theme      %s\n", themeName)
	b.WriteString("\n[::r] R [::-] Reset progress\n")
	b.WriteString("[::r] Q [::-] Quit (progress is saved)")
	return b.String()
}

// Rejection renders a refused purchase for the status bar
func Rejection(r coreapi.RejectInfo) string {
	if r.Reason == coreapi.RejectInsufficientFunds && r.Shortfall > 0 {
		return fmt.Sprintf("%s: need %s more", r.Reason, format.Points(r.Shortfall))
	}
	return r.Reason.String()
}

// Help is the idle status bar text
const Help = "Enter click  ←/→ upgrades  L auto-click  Tab pages  Q quit"
