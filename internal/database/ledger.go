// Package database keeps lifetime play statistics in a small SQLite file.
package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"

	"soclicker/internal/economy"
	"soclicker/internal/log"
)

var ErrLedgerClosed = errors.New("ledger not open")

// Ledger records sessions and purchases. All timestamps are stored as unix
// milliseconds.
type Ledger struct {
	db       *sql.DB
	filename string
	sb       squirrel.StatementBuilderType
}

// Open opens or creates the ledger file and brings its schema up to date.
func Open(filename string) (*Ledger, error) {
	db, err := sql.Open("sqlite", filename+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(2000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger: %w", err)
	}
	// A single connection keeps writes serialized without further locking.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping ledger: %w", err)
	}

	l := &Ledger{
		db:       db,
		filename: filename,
		sb:       squirrel.StatementBuilder.RunWith(db),
	}
	if err := l.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Debug("ledger opened", "file", filename)
	return l, nil
}

// Close closes the underlying database. It is safe to call more than once.
func (l *Ledger) Close() error {
	if l == nil || l.db == nil {
		return nil
	}
	err := l.db.Close()
	l.db = nil
	if err != nil {
		return fmt.Errorf("failed to close ledger: %w", err)
	}
	return nil
}

// StartSession opens a new session row and returns its id.
func (l *Ledger) StartSession(at time.Time) (int64, error) {
	if l.db == nil {
		return 0, ErrLedgerClosed
	}
	res, err := l.sb.Insert("sessions").
		Columns("started_at").
		Values(at.UnixMilli()).
		Exec()
	if err != nil {
		return 0, fmt.Errorf("failed to start session: %w", err)
	}
	return res.LastInsertId()
}

// UpdateSession overwrites the running totals of a session.
func (l *Ledger) UpdateSession(id int64, totals SessionTotals) error {
	if l.db == nil {
		return ErrLedgerClosed
	}
	_, err := l.sb.Update("sessions").
		SetMap(map[string]any{
			"clicks": totals.Clicks,
			"ticks":  totals.Ticks,
			"earned": totals.Earned,
		}).
		Where(squirrel.Eq{"id": id}).
		Exec()
	if err != nil {
		return fmt.Errorf("failed to update session %d: %w", id, err)
	}
	return nil
}

// EndSession stamps the end time of a session.
func (l *Ledger) EndSession(id int64, at time.Time) error {
	if l.db == nil {
		return ErrLedgerClosed
	}
	_, err := l.sb.Update("sessions").
		Set("ended_at", at.UnixMilli()).
		Where(squirrel.Eq{"id": id}).
		Exec()
	if err != nil {
		return fmt.Errorf("failed to end session %d: %w", id, err)
	}
	return nil
}

// RecordPurchase appends one purchase.
func (l *Ledger) RecordPurchase(p Purchase) error {
	if l.db == nil {
		return ErrLedgerClosed
	}
	_, err := l.sb.Insert("purchases").
		Columns("session_id", "upgrade", "cost", "purchased_at").
		Values(p.SessionID, p.Upgrade.String(), p.Cost, p.At.UnixMilli()).
		Exec()
	if err != nil {
		return fmt.Errorf("failed to record %s purchase: %w", p.Upgrade, err)
	}
	return nil
}

// Totals aggregates every session and purchase in the ledger.
func (l *Ledger) Totals() (Totals, error) {
	if l.db == nil {
		return Totals{}, ErrLedgerClosed
	}

	t := Totals{Purchases: make(map[economy.Upgrade]int64)}
	var first, last int64
	err := l.sb.Select(
		"COUNT(*)",
		"COALESCE(SUM(clicks), 0)",
		"COALESCE(SUM(ticks), 0)",
		"COALESCE(SUM(earned), 0)",
		"COALESCE(MIN(started_at), 0)",
		"COALESCE(MAX(COALESCE(ended_at, started_at)), 0)",
	).
		From("sessions").
		QueryRow().
		Scan(&t.Sessions, &t.Clicks, &t.Ticks, &t.Earned, &first, &last)
	if err != nil {
		return Totals{}, fmt.Errorf("failed to sum sessions: %w", err)
	}
	if first > 0 {
		t.FirstPlay = time.UnixMilli(first)
	}
	if last > 0 {
		t.LastPlay = time.UnixMilli(last)
	}

	rows, err := l.sb.Select("upgrade", "COUNT(*)", "COALESCE(SUM(cost), 0)").
		From("purchases").
		GroupBy("upgrade").
		Query()
	if err != nil {
		return Totals{}, fmt.Errorf("failed to sum purchases: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		var count, spent int64
		if err := rows.Scan(&name, &count, &spent); err != nil {
			return Totals{}, fmt.Errorf("failed to scan purchase totals: %w", err)
		}
		t.Spent += spent
		u, ok := upgradeByName(name)
		if !ok {
			log.Warn("ledger has unknown upgrade", "upgrade", name)
			continue
		}
		t.Purchases[u] = count
	}
	return t, rows.Err()
}

func upgradeByName(name string) (economy.Upgrade, bool) {
	for _, u := range economy.Upgrades {
		if u.String() == name {
			return u, true
		}
	}
	return 0, false
}
