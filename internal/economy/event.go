package economy

// Event is one discrete input to the economy, already translated from the
// host's native callbacks.
type Event int

const (
	EventClick Event = iota
	EventLongPress
	EventTick
	EventUpgradeIncome
	EventUpgradeMultiplier
	EventUpgradeAuto
)

func (e Event) String() string {
	switch e {
	case EventClick:
		return "click"
	case EventLongPress:
		return "long-press"
	case EventTick:
		return "tick"
	case EventUpgradeIncome:
		return "upgrade-income"
	case EventUpgradeMultiplier:
		return "upgrade-multiplier"
	case EventUpgradeAuto:
		return "upgrade-auto"
	default:
		return "unknown"
	}
}

// Upgrade returns the upgrade an event purchases, if any.
func (e Event) Upgrade() (Upgrade, bool) {
	switch e {
	case EventUpgradeIncome:
		return UpgradeIncome, true
	case EventUpgradeMultiplier:
		return UpgradeMultiplier, true
	case EventUpgradeAuto, EventLongPress:
		return UpgradeAutoClick, true
	}
	return 0, false
}

// Outcome summarises what Handle did to the state.
type Outcome struct {
	Event Event
	// Delta is the change applied to the counter (negative for purchases).
	Delta int64
	// Mutated is false when the event was rejected.
	Mutated bool
	// SaveDue is set for every successful mutation except ticks.
	SaveDue bool
}

// Handle applies a single event to the state.
func Handle(ev Event, s *State) (Outcome, error) {
	out := Outcome{Event: ev}
	switch ev {
	case EventClick:
		out.Delta = ApplyClick(s)
		out.Mutated = true
		out.SaveDue = true
		return out, nil
	case EventTick:
		out.Delta = ApplyTick(s)
		out.Mutated = out.Delta != 0
		return out, nil
	}

	u, ok := ev.Upgrade()
	if !ok {
		return out, nil
	}
	before := s.Counter
	if err := Purchase(s, u); err != nil {
		return out, err
	}
	out.Delta = s.Counter - before
	out.Mutated = true
	out.SaveDue = true
	return out, nil
}
