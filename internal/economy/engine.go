package economy

import "math"

// Upgrade identifies one of the purchasable upgrades.
type Upgrade int

const (
	UpgradeIncome Upgrade = iota
	UpgradeMultiplier
	UpgradeAutoClick
)

func (u Upgrade) String() string {
	switch u {
	case UpgradeIncome:
		return "income"
	case UpgradeMultiplier:
		return "multiplier"
	case UpgradeAutoClick:
		return "auto-click"
	default:
		return "unknown"
	}
}

// Upgrades lists every upgrade in shop order.
var Upgrades = []Upgrade{UpgradeIncome, UpgradeMultiplier, UpgradeAutoClick}

// ApplyClick adds one manual click worth of points.
func ApplyClick(s *State) int64 {
	gain := s.ClickValue()
	s.Counter = addSat(s.Counter, gain)
	return gain
}

// ApplyTick grants passive income and, once unlocked, one auto-click.
func ApplyTick(s *State) int64 {
	gain := s.IncomePerTick()
	s.Counter = addSat(s.Counter, gain)
	return gain
}

// PurchaseIncomeUpgrade buys one more point of passive income per tick.
func PurchaseIncomeUpgrade(s *State) error {
	cost := s.UpgradeCostIncome
	if s.Counter < cost {
		return insufficient(UpgradeIncome, s, cost)
	}
	s.Counter -= cost
	s.PassiveIncome++
	s.UpgradeCostIncome = mulSat(cost, 2)
	return nil
}

// PurchaseMultiplierUpgrade doubles the click multiplier, up to MaxMultiplier.
func PurchaseMultiplierUpgrade(s *State) error {
	cost := s.UpgradeCostMult
	if s.Multiplier >= MaxMultiplier {
		return &PurchaseError{Upgrade: UpgradeMultiplier, Cost: cost, Have: s.Counter, Err: ErrMultiplierMaxed}
	}
	if s.Counter < cost {
		return insufficient(UpgradeMultiplier, s, cost)
	}
	s.Counter -= cost
	s.Multiplier = min(mulSat(s.Multiplier, 2), MaxMultiplier)
	s.UpgradeCostMult = mulSat(cost, 3)
	return nil
}

// PurchaseAutoClick unlocks auto-click. It can only succeed once.
func PurchaseAutoClick(s *State) error {
	cost := s.UpgradeCostAuto
	if s.AutoClickEnabled {
		return &PurchaseError{Upgrade: UpgradeAutoClick, Cost: cost, Have: s.Counter, Err: ErrAlreadyUnlocked}
	}
	if s.Counter < cost {
		return insufficient(UpgradeAutoClick, s, cost)
	}
	s.Counter -= cost
	s.AutoClickEnabled = true
	return nil
}

// Purchase buys the given upgrade.
func Purchase(s *State, u Upgrade) error {
	switch u {
	case UpgradeIncome:
		return PurchaseIncomeUpgrade(s)
	case UpgradeMultiplier:
		return PurchaseMultiplierUpgrade(s)
	case UpgradeAutoClick:
		return PurchaseAutoClick(s)
	}
	return nil
}

// Cost returns the current price of an upgrade.
func Cost(s State, u Upgrade) int64 {
	switch u {
	case UpgradeIncome:
		return s.UpgradeCostIncome
	case UpgradeMultiplier:
		return s.UpgradeCostMult
	case UpgradeAutoClick:
		return s.UpgradeCostAuto
	}
	return 0
}

// Available reports whether the upgrade can still be bought at all.
func Available(s State, u Upgrade) bool {
	switch u {
	case UpgradeMultiplier:
		return s.Multiplier < MaxMultiplier
	case UpgradeAutoClick:
		return !s.AutoClickEnabled
	}
	return true
}

// Affordable reports whether the upgrade is available and the counter covers its cost.
func Affordable(s State, u Upgrade) bool {
	return Available(s, u) && s.Counter >= Cost(s, u)
}

func insufficient(u Upgrade, s *State, cost int64) error {
	return &PurchaseError{Upgrade: u, Cost: cost, Have: s.Counter, Err: ErrInsufficientFunds}
}

// addSat and mulSat saturate at math.MaxInt64; all operands are non-negative.
func addSat(a, b int64) int64 {
	if a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}

func mulSat(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxInt64/b {
		return math.MaxInt64
	}
	return a * b
}
