package save

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soclicker/internal/economy"
)

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	st := NewStore(afero.NewMemMapFs(), "/data/soclicker/soclicker.save")

	s, err := st.Load()

	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.Equal(t, economy.Defaults(), s)
}

func TestLoadCorruptFileFallsBackToDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/save.txt", []byte("garbage"), 0o644))
	st := NewStore(fs, "/save.txt")

	s, err := st.Load()

	assert.ErrorIs(t, err, ErrCorruptRecord)
	assert.Equal(t, economy.Defaults(), s)
}

func TestSaveCreatesDirectoryAndLoadsBack(t *testing.T) {
	fs := afero.NewMemMapFs()
	st := NewStore(fs, "/home/player/.config/soclicker/soclicker.save")

	want := economy.Defaults()
	want.Counter = 1234
	want.PassiveIncome = 3
	want.AutoClickEnabled = true
	require.NoError(t, st.Save(want))

	exists, err := afero.DirExists(fs, "/home/player/.config/soclicker")
	require.NoError(t, err)
	assert.True(t, exists)

	got, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadNormalizesStaleRecord(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/s", []byte("5000000,0,10,500,10,50,200,1\n"), 0o644))

	s, err := NewStore(fs, "/s").Load()

	require.NoError(t, err)
	assert.Equal(t, economy.MaxCounter, s.Counter)
	assert.Equal(t, economy.MaxMultiplier, s.Multiplier)
}

func TestSaveOverwritesPreviousRecord(t *testing.T) {
	fs := afero.NewMemMapFs()
	st := NewStore(fs, "/s")
	long := economy.Defaults()
	long.Counter = 999_999
	require.NoError(t, st.Save(long))
	require.NoError(t, st.Save(economy.Defaults()))

	data, err := afero.ReadFile(fs, "/s")
	require.NoError(t, err)
	assert.Equal(t, "0,0,10,1,10,50,200,0\n", string(data))
}

func TestSaveOnReadOnlyFilesystem(t *testing.T) {
	st := NewStore(afero.NewReadOnlyFs(afero.NewMemMapFs()), "/dir/s")
	err := st.Save(economy.Defaults())
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}
