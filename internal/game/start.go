package game

import (
	"os"
	"path/filepath"

	"soclicker/internal/api"
	"soclicker/internal/database"
	"soclicker/internal/log"
	"soclicker/internal/save"
)

func init() {
	api.SetStartImpl(start)
}

// start wires the on-disk store and ledger into a new session. A ledger that
// cannot be opened only disables statistics.
func start(opts api.StartOptions, tuiAPI api.TuiAPI) (api.GameAPI, error) {
	store := save.NewOSStore(opts.SavePath)

	var ledger Ledger
	if opts.LedgerPath != "" {
		if l, err := openLedger(opts.LedgerPath); err != nil {
			log.Warn("ledger disabled", "path", opts.LedgerPath, "error", err)
		} else {
			ledger = l
		}
	}

	s := NewSession(store, ledger, tuiAPI, nil)
	if tuiAPI != nil {
		tuiAPI.OnStateChanged(s.State())
	}
	return s, nil
}

func openLedger(path string) (*database.Ledger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return database.Open(path)
}
