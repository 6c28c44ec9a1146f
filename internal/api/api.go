package api

import (
	"time"

	"soclicker/internal/economy"
)

// Event is an input already translated from the host's key and timer
// callbacks. The aliases let the TUI send events without importing the engine.
type Event = economy.Event

const (
	EventClick             = economy.EventClick
	EventLongPress         = economy.EventLongPress
	EventTick              = economy.EventTick
	EventUpgradeIncome     = economy.EventUpgradeIncome
	EventUpgradeMultiplier = economy.EventUpgradeMultiplier
	EventUpgradeAuto       = economy.EventUpgradeAuto
)

// GameAPI defines commands from TUI to the game session.
//
// Calls are not synchronized: the TUI must make every call from its single
// event loop goroutine.
type GameAPI interface {
	Handle(ev Event)
	State() StateInfo
	Stats() (StatsInfo, error)
	Reset() error
	SavePath() string
	Close() error
}

// TuiAPI defines notifications from the game session to the TUI.
//
// Methods are invoked synchronously from inside GameAPI calls, so they run on
// the TUI goroutine and must not call back into GameAPI.
type TuiAPI interface {
	OnStateChanged(state StateInfo)
	OnPurchaseRejected(reject RejectInfo)
	OnSaveFailed(err error)
}

// StateInfo is a read-only view of the economy for rendering.
type StateInfo struct {
	Counter          int64      `json:"counter"`
	ClickValue       int64      `json:"click_value"`
	IncomePerTick    int64      `json:"income_per_tick"`
	PassiveIncome    int64      `json:"passive_income"`
	Multiplier       int64      `json:"multiplier"`
	AutoClickEnabled bool       `json:"auto_click_enabled"`
	Shop             []ShopItem `json:"shop"`
}

// ShopItem describes one upgrade as the shop shows it.
type ShopItem struct {
	Name       string `json:"name"`
	Event      Event  `json:"event"`
	Cost       int64  `json:"cost"`
	Available  bool   `json:"available"`
	Affordable bool   `json:"affordable"`
}

// RejectReason explains why a purchase did not happen.
type RejectReason int

const (
	RejectInsufficientFunds RejectReason = iota
	RejectAlreadyUnlocked
	RejectMaxed
)

func (r RejectReason) String() string {
	switch r {
	case RejectInsufficientFunds:
		return "Not enough points"
	case RejectAlreadyUnlocked:
		return "Already unlocked"
	case RejectMaxed:
		return "Multiplier maxed"
	default:
		return "Purchase failed"
	}
}

// RejectInfo is sent when a purchase is refused.
type RejectInfo struct {
	Upgrade   string       `json:"upgrade"`
	Reason    RejectReason `json:"reason"`
	Shortfall int64        `json:"shortfall"`
}

// StatsInfo provides lifetime statistics for the stats page.
type StatsInfo struct {
	Enabled   bool             `json:"enabled"`
	Sessions  int64            `json:"sessions"`
	Clicks    int64            `json:"clicks"`
	Ticks     int64            `json:"ticks"`
	Earned    int64            `json:"earned"`
	Spent     int64            `json:"spent"`
	Purchases map[string]int64 `json:"purchases"`
	FirstPlay time.Time        `json:"first_play"`
}

// StartOptions configures a new game session.
type StartOptions struct {
	SavePath   string
	LedgerPath string
}
