package handlers

import (
	"github.com/gdamore/tcell/v2"

	coreapi "soclicker/internal/api"
	"soclicker/internal/log"
)

// Control is one of the device's physical buttons as mapped onto the keyboard
type Control int

const (
	ControlOk Control = iota
	ControlLeft
	ControlRight
	ControlUp
	ControlDown
	ControlBack
)

func (c Control) String() string {
	switch c {
	case ControlOk:
		return "ok"
	case ControlLeft:
		return "left"
	case ControlRight:
		return "right"
	case ControlUp:
		return "up"
	case ControlDown:
		return "down"
	case ControlBack:
		return "back"
	default:
		return "unknown"
	}
}

// PressKind distinguishes a tap from a hold
type PressKind int

const (
	PressShort PressKind = iota
	PressLong
)

// Press is a (control, press-kind) pair, the unit the game understands
type Press struct {
	Control Control
	Kind    PressKind
}

// KeyToPress maps a terminal key to a device press. Terminals report no key
// release, so a long press on Ok has its own key: L.
func KeyToPress(event *tcell.EventKey) (Press, bool) {
	switch event.Key() {
	case tcell.KeyEnter:
		return Press{ControlOk, PressShort}, true
	case tcell.KeyLeft:
		return Press{ControlLeft, PressShort}, true
	case tcell.KeyRight:
		return Press{ControlRight, PressShort}, true
	case tcell.KeyUp, tcell.KeyBacktab:
		return Press{ControlUp, PressShort}, true
	case tcell.KeyDown, tcell.KeyTab:
		return Press{ControlDown, PressShort}, true
	case tcell.KeyEscape:
		return Press{ControlBack, PressShort}, true
	case tcell.KeyRune:
		switch event.Rune() {
		case ' ':
			return Press{ControlOk, PressShort}, true
		case 'l', 'L':
			return Press{ControlOk, PressLong}, true
		case 'q', 'Q':
			return Press{ControlBack, PressShort}, true
		}
	}
	return Press{}, false
}

// EventFor returns the economy event a press triggers, if any
func EventFor(p Press) (coreapi.Event, bool) {
	switch {
	case p.Control == ControlOk && p.Kind == PressShort:
		return coreapi.EventClick, true
	case p.Control == ControlOk && p.Kind == PressLong:
		return coreapi.EventLongPress, true
	case p.Control == ControlLeft && p.Kind == PressShort:
		return coreapi.EventUpgradeIncome, true
	case p.Control == ControlRight && p.Kind == PressShort:
		return coreapi.EventUpgradeMultiplier, true
	}
	return 0, false
}

// InputHandler manages input handling for the application
type InputHandler struct {
	modalVisible bool

	// Callbacks
	onEvent    func(coreapi.Event)
	onNavigate func(delta int)
	onSelect   func(page int)
	onBack     func()
	onExit     func()
	onReset    func()
}

// NewInputHandler creates a new input handler
func NewInputHandler() *InputHandler {
	return &InputHandler{}
}

// SetCallbacks sets the callback functions
func (ih *InputHandler) SetCallbacks(
	onEvent func(coreapi.Event),
	onNavigate func(delta int),
	onSelect func(page int),
	onBack func(),
	onExit func(),
	onReset func(),
) {
	ih.onEvent = onEvent
	ih.onNavigate = onNavigate
	ih.onSelect = onSelect
	ih.onBack = onBack
	ih.onExit = onExit
	ih.onReset = onReset
}

// SetModalVisible sets the modal visibility state
func (ih *InputHandler) SetModalVisible(visible bool) {
	ih.modalVisible = visible
}

// HandleKeyEvent handles key events; it returns nil for keys it consumed
func (ih *InputHandler) HandleKeyEvent(event *tcell.EventKey) *tcell.EventKey {
	if event.Key() == tcell.KeyCtrlC {
		call(ih.onExit)
		return nil
	}

	// Modals own the keyboard while open
	if ih.modalVisible {
		return event
	}

	if event.Key() == tcell.KeyRune {
		switch r := event.Rune(); {
		case r >= '1' && r <= '4':
			if ih.onSelect != nil {
				ih.onSelect(int(r - '1'))
			}
			return nil
		case r == 'r' || r == 'R':
			call(ih.onReset)
			return nil
		}
	}

	press, ok := KeyToPress(event)
	if !ok {
		return event
	}
	log.Debug("press", "control", press.Control.String(), "long", press.Kind == PressLong)

	switch press.Control {
	case ControlUp:
		if ih.onNavigate != nil {
			ih.onNavigate(-1)
		}
		return nil
	case ControlDown:
		if ih.onNavigate != nil {
			ih.onNavigate(1)
		}
		return nil
	case ControlBack:
		call(ih.onBack)
		return nil
	}

	if ev, ok := EventFor(press); ok && ih.onEvent != nil {
		ih.onEvent(ev)
	}
	return nil
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}
