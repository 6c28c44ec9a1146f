package theme

import "github.com/gdamore/tcell/v2"

// Handheld LCD palette: black on amber, with a few accents
var (
	LCDAmber     = tcell.NewHexColor(0xFF8200)
	LCDDarkAmber = tcell.NewHexColor(0xA35300)
	LCDBlack     = tcell.NewHexColor(0x000000)
	LCDWhite     = tcell.NewHexColor(0xFFFFFF)
	LCDGreen     = tcell.NewHexColor(0x1B5E20)
	LCDRed       = tcell.NewHexColor(0x8B0000)
	LCDGray      = tcell.NewHexColor(0x5A3A1A)
)

// DolphinTheme mimics an amber monochrome handheld LCD
type DolphinTheme struct{}

// NewDolphinTheme creates a new amber theme instance
func NewDolphinTheme() *DolphinTheme {
	return &DolphinTheme{}
}

func (t *DolphinTheme) Name() string {
	return "dolphin"
}

func (t *DolphinTheme) DefaultColors() DefaultColors {
	return DefaultColors{
		Background: LCDAmber,
		Foreground: LCDBlack,
		Accent:     LCDWhite,
	}
}

func (t *DolphinTheme) DialogColors() DialogColors {
	return DialogColors{
		Background: LCDBlack,
		Foreground: LCDAmber,
		Border:     LCDAmber,
		Title:      LCDWhite,
		ButtonBg:   LCDAmber,
		ButtonFg:   LCDBlack,
	}
}

func (t *DolphinTheme) StatusColors() StatusColors {
	return StatusColors{
		Background: LCDBlack,
		Foreground: LCDAmber,
		ErrorBg:    LCDRed,
		ErrorFg:    LCDWhite,
		InfoFg:     LCDWhite,
	}
}

func (t *DolphinTheme) PanelColors() PanelColors {
	return PanelColors{
		Background: LCDAmber,
		Foreground: LCDBlack,
		Border:     LCDBlack,
		Title:      LCDBlack,
	}
}

func (t *DolphinTheme) ShopColors() ShopColors {
	return ShopColors{
		Affordable:   LCDGreen,
		Unaffordable: LCDGray,
		Owned:        LCDDarkAmber,
	}
}

func (t *DolphinTheme) BorderStyle() BorderStyle {
	return BorderStyle{
		Color:      LCDBlack,
		TitleColor: LCDBlack,
		Padding:    1,
	}
}

// MonoTheme uses the terminal's own default colors
type MonoTheme struct{}

// NewMonoTheme creates a theme that leaves colors to the terminal
func NewMonoTheme() *MonoTheme {
	return &MonoTheme{}
}

func (t *MonoTheme) Name() string {
	return "mono"
}

func (t *MonoTheme) DefaultColors() DefaultColors {
	return DefaultColors{
		Background: tcell.ColorDefault,
		Foreground: tcell.ColorDefault,
		Accent:     tcell.ColorWhite,
	}
}

func (t *MonoTheme) DialogColors() DialogColors {
	return DialogColors{
		Background: tcell.ColorDefault,
		Foreground: tcell.ColorDefault,
		Border:     tcell.ColorDefault,
		Title:      tcell.ColorWhite,
		ButtonBg:   tcell.ColorWhite,
		ButtonFg:   tcell.ColorBlack,
	}
}

func (t *MonoTheme) StatusColors() StatusColors {
	return StatusColors{
		Background: tcell.ColorDefault,
		Foreground: tcell.ColorDefault,
		ErrorBg:    tcell.ColorDefault,
		ErrorFg:    tcell.ColorRed,
		InfoFg:     tcell.ColorWhite,
	}
}

func (t *MonoTheme) PanelColors() PanelColors {
	return PanelColors{
		Background: tcell.ColorDefault,
		Foreground: tcell.ColorDefault,
		Border:     tcell.ColorDefault,
		Title:      tcell.ColorWhite,
	}
}

func (t *MonoTheme) ShopColors() ShopColors {
	return ShopColors{
		Affordable:   tcell.ColorGreen,
		Unaffordable: tcell.ColorGray,
		Owned:        tcell.ColorYellow,
	}
}

func (t *MonoTheme) BorderStyle() BorderStyle {
	return BorderStyle{
		Color:      tcell.ColorDefault,
		TitleColor: tcell.ColorWhite,
		Padding:    1,
	}
}
