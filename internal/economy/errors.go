package economy

import (
	"errors"
	"fmt"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrAlreadyUnlocked   = errors.New("already unlocked")
	ErrMultiplierMaxed   = errors.New("multiplier maxed")
)

// PurchaseError describes a rejected purchase. The state is never modified when
// one is returned.
type PurchaseError struct {
	Upgrade Upgrade
	Cost    int64
	Have    int64
	Err     error
}

func (e *PurchaseError) Error() string {
	if errors.Is(e.Err, ErrInsufficientFunds) {
		return fmt.Sprintf("%s upgrade: %v (cost %d, have %d)", e.Upgrade, e.Err, e.Cost, e.Have)
	}
	return fmt.Sprintf("%s upgrade: %v", e.Upgrade, e.Err)
}

func (e *PurchaseError) Unwrap() error {
	return e.Err
}

// Shortfall returns how many points are missing for the purchase.
func (e *PurchaseError) Shortfall() int64 {
	if e.Have >= e.Cost {
		return 0
	}
	return e.Cost - e.Have
}
