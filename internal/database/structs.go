package database

import (
	"time"

	"soclicker/internal/economy"
)

// SessionTotals are the running counters of one play session.
type SessionTotals struct {
	Clicks int64
	Ticks  int64
	Earned int64
}

// Purchase is one successful upgrade purchase.
type Purchase struct {
	SessionID int64
	Upgrade   economy.Upgrade
	Cost      int64
	At        time.Time
}

// Totals are lifetime statistics across all sessions.
type Totals struct {
	Sessions  int64
	Clicks    int64
	Ticks     int64
	Earned    int64
	Spent     int64
	Purchases map[economy.Upgrade]int64
	FirstPlay time.Time
	LastPlay  time.Time
}
