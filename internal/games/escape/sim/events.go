package sim

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventNoteCollected EventKind = iota
	EventKeyTaken
	EventLevelAdvanced
	EventDied
	EventWon
	EventLost
)

// String returns the event name used in logs.
func (k EventKind) String() string {
	switch k {
	case EventNoteCollected:
		return "note_collected"
	case EventKeyTaken:
		return "key_taken"
	case EventLevelAdvanced:
		return "level_advanced"
	case EventDied:
		return "died"
	case EventWon:
		return "won"
	case EventLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Event is a notification for the presentation layer. Only the fields
// relevant to Kind are meaningful.
type Event struct {
	Kind      EventKind
	Level     int    // level index after the event
	LevelName string // name of that level, empty once the campaign is won
	Score     int
	Keys      int
	Lives     int
}

// HUD is the counter set published after every tick.
type HUD struct {
	Score     int
	Keys      int
	Lives     int
	Level     int
	LevelName string
	Noise     float64
	Phase     Phase
}

// StepResult is returned by World.Step.
type StepResult struct {
	Events []Event
	HUD    HUD
}

// Has reports whether an event of the given kind occurred.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
