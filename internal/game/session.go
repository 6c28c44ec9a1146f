package game

import (
	"errors"
	"time"

	"soclicker/internal/api"
	"soclicker/internal/database"
	"soclicker/internal/economy"
	"soclicker/internal/log"
	"soclicker/internal/save"
)

// Clock abstracts time for deterministic tests.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Store persists the economy state.
type Store interface {
	Load() (economy.State, error)
	Save(economy.State) error
	Path() string
}

// Ledger records play statistics. A session works without one.
type Ledger interface {
	StartSession(at time.Time) (int64, error)
	UpdateSession(id int64, totals database.SessionTotals) error
	EndSession(id int64, at time.Time) error
	RecordPurchase(p database.Purchase) error
	Totals() (database.Totals, error)
	Close() error
}

// Session owns the single economy state of a running game. It saves after
// every mutating event except ticks and once more on Close.
//
// A Session is not safe for concurrent use; the host serializes all calls.
type Session struct {
	state  economy.State
	store  Store
	ledger Ledger
	tui    api.TuiAPI
	clock  Clock

	sessionID int64
	totals    database.SessionTotals
	closed    bool
}

// NewSession loads the saved state (or the defaults) and opens a ledger
// session. ledger may be nil.
func NewSession(store Store, ledger Ledger, tui api.TuiAPI, clock Clock) *Session {
	if clock == nil {
		clock = realClock{}
	}
	if tui == nil {
		tui = nopTui{}
	}

	state, err := store.Load()
	switch {
	case errors.Is(err, save.ErrStorageUnavailable):
		log.Info("no save found, starting a new game", "path", store.Path())
	case errors.Is(err, save.ErrCorruptRecord):
		log.Warn("save corrupt, starting a new game", "path", store.Path(), "error", err)
	case err != nil:
		log.Warn("save load failed, starting a new game", "path", store.Path(), "error", err)
	}

	s := &Session{
		state:  state,
		store:  store,
		ledger: ledger,
		tui:    tui,
		clock:  clock,
	}

	if s.ledger != nil {
		id, err := s.ledger.StartSession(clock.Now())
		if err != nil {
			log.Warn("ledger unavailable, statistics disabled", "error", err)
			if lerr := s.ledger.Close(); lerr != nil {
				log.Warn("ledger close failed", "error", lerr)
			}
			s.ledger = nil
		} else {
			s.sessionID = id
		}
	}

	log.Info("session started", "counter", state.Counter, "session_id", s.sessionID)
	return s
}

// Handle applies one event, persists the result and notifies the TUI.
func (s *Session) Handle(ev economy.Event) {
	if s.closed {
		log.Warn("event after close ignored", "event", ev.String())
		return
	}

	out, err := economy.Handle(ev, &s.state)
	if err != nil {
		s.reject(err)
		return
	}

	s.account(out)
	if out.SaveDue {
		s.save()
		s.flushTotals()
	}
	if out.Mutated {
		s.tui.OnStateChanged(s.State())
	}
}

// State returns a rendering snapshot.
func (s *Session) State() api.StateInfo {
	return snapshot(s.state)
}

// Economy returns a copy of the raw economy state.
func (s *Session) Economy() economy.State {
	return s.state
}

// Stats returns lifetime statistics including the running session.
func (s *Session) Stats() (api.StatsInfo, error) {
	if s.ledger == nil {
		return api.StatsInfo{Enabled: false}, nil
	}
	s.flushTotals()

	totals, err := s.ledger.Totals()
	if err != nil {
		return api.StatsInfo{}, err
	}

	info := api.StatsInfo{
		Enabled:   true,
		Sessions:  totals.Sessions,
		Clicks:    totals.Clicks,
		Ticks:     totals.Ticks,
		Earned:    totals.Earned,
		Spent:     totals.Spent,
		Purchases: make(map[string]int64, len(totals.Purchases)),
		FirstPlay: totals.FirstPlay,
	}
	for u, n := range totals.Purchases {
		info.Purchases[u.String()] = n
	}
	return info, nil
}

// Reset discards all progress and saves the fresh state.
func (s *Session) Reset() error {
	s.state = economy.Defaults()
	log.Info("progress reset")
	err := s.store.Save(s.state)
	if err != nil {
		log.Error("save after reset failed", "error", err)
		s.tui.OnSaveFailed(err)
	}
	s.tui.OnStateChanged(s.State())
	return err
}

// SavePath returns where the state is persisted.
func (s *Session) SavePath() string {
	return s.store.Path()
}

// Close performs the final save and releases the ledger. Calling it again
// is a no-op.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	err := s.store.Save(s.state)
	if err != nil {
		log.Error("final save failed", "error", err)
	}

	if s.ledger != nil {
		s.flushTotals()
		if lerr := s.ledger.EndSession(s.sessionID, s.clock.Now()); lerr != nil {
			log.Warn("ledger end session failed", "error", lerr)
		}
		if lerr := s.ledger.Close(); lerr != nil {
			log.Warn("ledger close failed", "error", lerr)
		}
	}

	log.Info("session closed", "counter", s.state.Counter, "clicks", s.totals.Clicks)
	return err
}

func (s *Session) account(out economy.Outcome) {
	switch out.Event {
	case economy.EventClick:
		s.totals.Clicks++
	case economy.EventTick:
		s.totals.Ticks++
	}
	if out.Delta > 0 {
		s.totals.Earned += out.Delta
		return
	}

	u, ok := out.Event.Upgrade()
	if !ok || s.ledger == nil {
		return
	}
	p := database.Purchase{
		SessionID: s.sessionID,
		Upgrade:   u,
		Cost:      -out.Delta,
		At:        s.clock.Now(),
	}
	if err := s.ledger.RecordPurchase(p); err != nil {
		log.Warn("ledger purchase not recorded", "upgrade", u.String(), "error", err)
	}
}

func (s *Session) save() {
	if err := s.store.Save(s.state); err != nil {
		log.Error("save failed", "path", s.store.Path(), "error", err)
		s.tui.OnSaveFailed(err)
	}
}

func (s *Session) flushTotals() {
	if s.ledger == nil {
		return
	}
	if err := s.ledger.UpdateSession(s.sessionID, s.totals); err != nil {
		log.Warn("ledger totals not updated", "error", err)
	}
}

func (s *Session) reject(err error) {
	var perr *economy.PurchaseError
	if !errors.As(err, &perr) {
		log.Error("event failed", "error", err)
		return
	}

	info := api.RejectInfo{Upgrade: perr.Upgrade.String(), Shortfall: perr.Shortfall()}
	switch {
	case errors.Is(err, economy.ErrAlreadyUnlocked):
		info.Reason = api.RejectAlreadyUnlocked
	case errors.Is(err, economy.ErrMultiplierMaxed):
		info.Reason = api.RejectMaxed
	default:
		info.Reason = api.RejectInsufficientFunds
	}
	log.Debug("purchase rejected", "upgrade", info.Upgrade, "reason", info.Reason.String(), "shortfall", info.Shortfall)
	s.tui.OnPurchaseRejected(info)
}

func snapshot(st economy.State) api.StateInfo {
	info := api.StateInfo{
		Counter:          st.Counter,
		ClickValue:       st.ClickValue(),
		IncomePerTick:    st.IncomePerTick(),
		PassiveIncome:    st.PassiveIncome,
		Multiplier:       st.Multiplier,
		AutoClickEnabled: st.AutoClickEnabled,
	}
	for _, u := range economy.Upgrades {
		info.Shop = append(info.Shop, api.ShopItem{
			Name:       u.String(),
			Event:      upgradeEvent(u),
			Cost:       economy.Cost(st, u),
			Available:  economy.Available(st, u),
			Affordable: economy.Affordable(st, u),
		})
	}
	return info
}

func upgradeEvent(u economy.Upgrade) economy.Event {
	switch u {
	case economy.UpgradeMultiplier:
		return economy.EventUpgradeMultiplier
	case economy.UpgradeAutoClick:
		return economy.EventUpgradeAuto
	default:
		return economy.EventUpgradeIncome
	}
}

type nopTui struct{}

func (nopTui) OnStateChanged(api.StateInfo) {}
func (nopTui) OnPurchaseRejected(api.RejectInfo) {}
func (nopTui) OnSaveFailed(error) {}
