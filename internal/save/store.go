package save

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"soclicker/internal/economy"
	"soclicker/internal/log"
)

// Store reads and writes the save record at a fixed path.
type Store struct {
	fs   afero.Fs
	path string
}

// NewStore creates a store backed by the given filesystem.
func NewStore(fs afero.Fs, path string) *Store {
	return &Store{fs: fs, path: path}
}

// NewOSStore creates a store on the real filesystem.
func NewOSStore(path string) *Store {
	return NewStore(afero.NewOsFs(), path)
}

// DefaultPath returns <user config dir>/soclicker/soclicker.save, falling back
// to the working directory when no config dir is known.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "soclicker.save"
	}
	return filepath.Join(dir, "soclicker", "soclicker.save")
}

// Path returns the record location.
func (st *Store) Path() string {
	return st.path
}

// Load reads the record. It always returns a usable, normalised state: when
// the record is missing or damaged the defaults are returned together with
// ErrStorageUnavailable or ErrCorruptRecord so the caller can report it.
func (st *Store) Load() (economy.State, error) {
	data, err := afero.ReadFile(st.fs, st.path)
	if err != nil {
		log.Debug("save record not readable, using defaults", "path", st.path, "error", err)
		return Normalize(economy.Defaults()), fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	s, err := Decode(data)
	if err != nil {
		log.Warn("save record corrupt, using defaults", "path", st.path, "error", err)
		return Normalize(economy.Defaults()), err
	}

	log.Debug("save record loaded", "path", st.path, "counter", s.Counter)
	return s, nil
}

// Save rewrites the whole record, creating the parent directory if needed.
func (st *Store) Save(s economy.State) error {
	if dir := filepath.Dir(st.path); dir != "" {
		if err := st.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: create directory: %v", ErrStorageUnavailable, err)
		}
	}
	if err := afero.WriteFile(st.fs, st.path, Encode(s), 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}
