// Package save converts the economy state to and from its single-line text
// record and keeps that record on disk.
package save

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"soclicker/internal/economy"
)

var (
	ErrStorageUnavailable = errors.New("save storage unavailable")
	ErrCorruptRecord      = errors.New("corrupt save record")
)

// fieldCount is the number of comma-separated fields in a record.
const fieldCount = 8

// Encode renders the state as one line of eight decimal fields:
// counter, passive income, income per click, multiplier, income upgrade cost,
// multiplier upgrade cost, auto-click cost, auto-click flag (0/1).
func Encode(s economy.State) []byte {
	auto := int64(0)
	if s.AutoClickEnabled {
		auto = 1
	}
	fields := []int64{
		s.Counter,
		s.PassiveIncome,
		s.IncomePerClick,
		s.Multiplier,
		s.UpgradeCostIncome,
		s.UpgradeCostMult,
		s.UpgradeCostAuto,
		auto,
	}

	var buf bytes.Buffer
	for i, v := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.FormatInt(v, 10))
	}
	buf.WriteByte('\n')
	return buf.Bytes()
}

// Decode parses a record produced by Encode and normalises it.
func Decode(data []byte) (economy.State, error) {
	s, err := DecodeRaw(data)
	if err != nil {
		return economy.State{}, err
	}
	return Normalize(s), nil
}

// DecodeRaw parses a record without repairing out-of-range values.
func DecodeRaw(data []byte) (economy.State, error) {
	parts := bytes.Split(bytes.TrimSpace(data), []byte{','})
	if len(parts) != fieldCount {
		return economy.State{}, fmt.Errorf("%w: want %d fields, got %d", ErrCorruptRecord, fieldCount, len(parts))
	}

	var values [fieldCount]int64
	for i, p := range parts {
		v, err := strconv.ParseInt(string(bytes.TrimSpace(p)), 10, 64)
		if err != nil {
			return economy.State{}, fmt.Errorf("%w: field %d: %v", ErrCorruptRecord, i+1, err)
		}
		if v < 0 {
			return economy.State{}, fmt.Errorf("%w: field %d is negative", ErrCorruptRecord, i+1)
		}
		values[i] = v
	}
	for i := 4; i <= 6; i++ {
		if values[i] == 0 {
			return economy.State{}, fmt.Errorf("%w: field %d: upgrade cost must be positive", ErrCorruptRecord, i+1)
		}
	}
	if values[7] > 1 {
		return economy.State{}, fmt.Errorf("%w: auto-click flag must be 0 or 1, got %d", ErrCorruptRecord, values[7])
	}

	return economy.State{
		Counter:           values[0],
		PassiveIncome:     values[1],
		IncomePerClick:    values[2],
		Multiplier:        values[3],
		UpgradeCostIncome: values[4],
		UpgradeCostMult:   values[5],
		UpgradeCostAuto:   values[6],
		AutoClickEnabled:  values[7] == 1,
	}, nil
}

// Normalize repairs values left behind by older or damaged saves.
func Normalize(s economy.State) economy.State {
	if s.Multiplier == 0 {
		s.Multiplier = 1
	}
	if s.Multiplier > economy.MaxMultiplier {
		s.Multiplier = economy.MaxMultiplier
	}
	if s.Counter > economy.MaxCounter {
		s.Counter = economy.MaxCounter
	}
	return s
}
