package theme

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestDefaultThemeIsDolphin(t *testing.T) {
	if got := Current().Name(); got != "dolphin" {
		t.Fatalf("expected dolphin theme, got %s", got)
	}
}

func TestAvailableThemesSorted(t *testing.T) {
	names := GetThemeManager().Available()
	if len(names) != 2 || names[0] != "dolphin" || names[1] != "mono" {
		t.Fatalf("unexpected themes: %v", names)
	}
}

func TestSetUnknownTheme(t *testing.T) {
	tm := NewThemeManager()
	if err := tm.SetTheme("telix"); err == nil {
		t.Fatalf("expected error for unknown theme")
	}
	if tm.Current().Name() != "dolphin" {
		t.Fatalf("failed SetTheme must keep the current theme")
	}
}

func TestShopColorsAreDistinct(t *testing.T) {
	for _, name := range GetThemeManager().Available() {
		tm := NewThemeManager()
		if err := tm.SetTheme(name); err != nil {
			t.Fatal(err)
		}
		shop := tm.Current().ShopColors()
		if shop.Affordable == shop.Unaffordable || shop.Affordable == shop.Owned {
			t.Errorf("%s: affordable color must differ from the others: %+v", name, shop)
		}
	}
}

func TestTag(t *testing.T) {
	if got := Tag(tcell.ColorDefault); got != "[-]" {
		t.Errorf("Tag(default) = %q", got)
	}
	if got := Tag(LCDAmber); got != "[#FF8200]" {
		t.Errorf("Tag(amber) = %q", got)
	}
}
