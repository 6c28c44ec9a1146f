package components

import (
	"testing"

	"soclicker/internal/theme"
	"soclicker/internal/tui/views"
)

func TestStatusFlashAndClear(t *testing.T) {
	tc := theme.NewThemedComponents(theme.Current())
	sc := NewStatusComponent(tc, "help text")

	if got := sc.Text(); got != "help text" {
		t.Fatalf("expected help text, got %q", got)
	}

	first := sc.Flash("Not enough points", true)
	second := sc.Flash("Saved", false)

	sc.Clear(first)
	if got := sc.Text(); got != "Saved" {
		t.Fatalf("stale clear must not remove newer message, got %q", got)
	}

	sc.Clear(second)
	if got := sc.Text(); got != "help text" {
		t.Fatalf("expected help text after clear, got %q", got)
	}
}

func TestTabSelect(t *testing.T) {
	tabs := NewTabComponent(theme.NewThemedComponents(theme.Current()))
	if tabs.Current() != views.PageHome {
		t.Fatalf("expected home selected")
	}
	tabs.Select(views.PageStats)
	if tabs.Current() != views.PageStats {
		t.Fatalf("expected stats selected, got %s", tabs.Current())
	}
}
