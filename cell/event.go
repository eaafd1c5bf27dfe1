package cell

// EventKind identifies what an Input asks its container to do.
type EventKind uint8

const (
	// EventCommit stores Char in the box.
	EventCommit EventKind = iota
	// EventAdvance moves to the next box, appending one at the section end.
	EventAdvance
	// EventRetreat moves to the previous box, shrinking a blank trailing box.
	EventRetreat
	// EventSectionBreak splits the section before the current box.
	EventSectionBreak
	// EventMultiCommit inserts Chars as new boxes at the current box.
	EventMultiCommit
)

func (k EventKind) String() string {
	switch k {
	case EventCommit:
		return "commit"
	case EventAdvance:
		return "advance"
	case EventRetreat:
		return "retreat"
	case EventSectionBreak:
		return "section-break"
	case EventMultiCommit:
		return "multi-commit"
	default:
		return "unknown"
	}
}

type Event struct {
	Kind  EventKind
	Char  string
	Chars []string
}

func commitEvent(char string) Event { return Event{Kind: EventCommit, Char: char} }

var (
	advanceEvent      = Event{Kind: EventAdvance}
	retreatEvent      = Event{Kind: EventRetreat}
	sectionBreakEvent = Event{Kind: EventSectionBreak}
)

// KeyCode is the subset of keys the automaton interprets.
type KeyCode uint8

const (
	KeyOther KeyCode = iota
	KeySpace
	KeyEnter
	KeyBackspace
)

// Key is a key press with its modifier flags.
type Key struct {
	Code  KeyCode
	Ctrl  bool
	Alt   bool
	Shift bool
}
