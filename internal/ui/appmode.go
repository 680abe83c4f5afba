package ui

// AppMode is what currently receives input: the schedule or the detail modal.
type AppMode int

const (
	ModeSchedule AppMode = iota
	ModeDetail
)

func (m AppMode) String() string {
	switch m {
	case ModeSchedule:
		return "Schedule"
	case ModeDetail:
		return "Detail"
	default:
		return "Unknown"
	}
}

// LoadState tracks the roster fetch lifecycle. Failed is distinct from
// Loading so a failed fetch never looks like one still in flight.
type LoadState int

const (
	LoadLoading LoadState = iota
	LoadReady
	LoadFailed
)

func (s LoadState) String() string {
	switch s {
	case LoadLoading:
		return "Loading"
	case LoadReady:
		return "Ready"
	case LoadFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}
