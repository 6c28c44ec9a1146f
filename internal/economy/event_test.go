package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleFirstUpgradeScenario(t *testing.T) {
	s := Defaults()

	out, err := Handle(EventClick, &s)
	require.NoError(t, err)
	assert.Equal(t, int64(10), s.Counter)
	assert.True(t, out.SaveDue)

	out, err = Handle(EventUpgradeIncome, &s)
	require.NoError(t, err)
	assert.Equal(t, int64(-10), out.Delta)
	assert.Equal(t, int64(0), s.Counter)
	assert.Equal(t, int64(1), s.PassiveIncome)
	assert.Equal(t, int64(20), s.UpgradeCostIncome)

	out, err = Handle(EventTick, &s)
	require.NoError(t, err)
	assert.Equal(t, int64(1), s.Counter)
	assert.False(t, out.SaveDue, "ticks never save")
}

func TestHandleMultiplierShortByOne(t *testing.T) {
	s := Defaults()
	s.Counter = 49
	before := s

	out, err := Handle(EventUpgradeMultiplier, &s)

	require.ErrorIs(t, err, ErrInsufficientFunds)
	assert.False(t, out.Mutated)
	assert.False(t, out.SaveDue)
	assert.Equal(t, before, s)
}

func TestHandleLongPressBuysAutoClick(t *testing.T) {
	s := Defaults()
	s.Counter = 200

	out, err := Handle(EventLongPress, &s)

	require.NoError(t, err)
	assert.True(t, s.AutoClickEnabled)
	assert.Equal(t, int64(-200), out.Delta)

	_, err = Handle(EventUpgradeAuto, &s)
	assert.ErrorIs(t, err, ErrAlreadyUnlocked)
}

func TestHandleIdleTickIsNotAMutation(t *testing.T) {
	s := Defaults()
	out, err := Handle(EventTick, &s)
	require.NoError(t, err)
	assert.False(t, out.Mutated)
}

func TestEventUpgradeMapping(t *testing.T) {
	tests := []struct {
		ev   Event
		want Upgrade
		ok   bool
	}{
		{EventClick, 0, false},
		{EventTick, 0, false},
		{EventUpgradeIncome, UpgradeIncome, true},
		{EventUpgradeMultiplier, UpgradeMultiplier, true},
		{EventUpgradeAuto, UpgradeAutoClick, true},
		{EventLongPress, UpgradeAutoClick, true},
	}
	for _, tc := range tests {
		got, ok := tc.ev.Upgrade()
		assert.Equal(t, tc.ok, ok, tc.ev.String())
		if ok {
			assert.Equal(t, tc.want, got, tc.ev.String())
		}
	}
}
