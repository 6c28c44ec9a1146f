package economy

const (
	// MaxMultiplier is the ceiling for the per-click multiplier.
	MaxMultiplier int64 = 100
	// MaxCounter is the ceiling applied to the counter when a save is loaded.
	MaxCounter int64 = 1_000_000
	// AutoClickBase is what one auto-click earns per multiplier step.
	AutoClickBase int64 = 10
)

// State holds the complete game economy. One value exists per session and is
// mutated only through the engine functions in this package.
type State struct {
	Counter           int64
	PassiveIncome     int64
	IncomePerClick    int64
	Multiplier        int64
	UpgradeCostIncome int64
	UpgradeCostMult   int64
	UpgradeCostAuto   int64
	AutoClickEnabled  bool
}

// Defaults returns the state of a fresh game.
func Defaults() State {
	return State{
		Counter:           0,
		PassiveIncome:     0,
		IncomePerClick:    10,
		Multiplier:        1,
		UpgradeCostIncome: 10,
		UpgradeCostMult:   50,
		UpgradeCostAuto:   200,
		AutoClickEnabled:  false,
	}
}

// ClickValue is what one manual click is worth.
func (s State) ClickValue() int64 {
	return mulSat(s.IncomePerClick, s.Multiplier)
}

// IncomePerTick is the total granted by one tick.
func (s State) IncomePerTick() int64 {
	income := s.PassiveIncome
	if s.AutoClickEnabled {
		income = addSat(income, s.AutoClickValue())
	}
	return income
}

// AutoClickValue is what the unlocked auto-click adds on every tick. It does
// not depend on IncomePerClick.
func (s State) AutoClickValue() int64 {
	return mulSat(AutoClickBase, s.Multiplier)
}
