package cell

import "github.com/iw2rmb/genko/internal/grapheme"

// State is the composition state of an Input.
type State uint8

const (
	Idle State = iota
	Composing
)

func (s State) String() string {
	if s == Composing {
		return "composing"
	}
	return "idle"
}

type Config struct {
	// SelectOnFocus selects the whole content on Focus so the next typed
	// character replaces it.
	SelectOnFocus bool

	// MultiCommit reports that the container accepts EventMultiCommit.
	// Without it a multi-grapheme composition commits its first grapheme.
	MultiCommit bool
}

// Input is the automaton for one box's character slot.
//
// The buffer (Value) is what the cell displays; Committed is the last value
// handed to the container. Committed values are at most one grapheme long.
type Input struct {
	cfg Config

	state     State
	value     string
	committed string
	selected  bool
}

// New returns an idle Input displaying the box's current character.
func New(cfg Config, char string) *Input {
	char = grapheme.First(char)
	return &Input{cfg: cfg, value: char, committed: char}
}

func (in *Input) State() State      { return in.state }
func (in *Input) Value() string     { return in.value }
func (in *Input) Committed() string { return in.committed }
func (in *Input) Selected() bool    { return in.selected }

// Focus selects the content when SelectOnFocus is configured.
func (in *Input) Focus() {
	in.selected = in.cfg.SelectOnFocus && in.value != ""
}

// Blur commits the first grapheme of a non-empty buffer.
func (in *Input) Blur() []Event {
	in.selected = false
	if in.state == Composing || in.value == "" {
		return nil
	}
	g := grapheme.First(in.value)
	in.value = g
	return in.commit(g)
}

// Change handles a new buffer value reported by the substrate.
//
// A buffer that grew past a non-empty displayed value is replacement typing:
// its last grapheme is committed and the input advances. Emptying the buffer
// commits the empty character. Any other buffer is held until Space, Enter
// or Blur.
func (in *Input) Change(buf string) []Event {
	if in.state == Composing {
		in.value = buf
		return nil
	}

	prev := in.value
	if prev != "" && grapheme.Count(buf) > grapheme.Count(prev) {
		g := grapheme.Last(buf)
		in.value = g
		return in.commit(g, advanceEvent)
	}

	in.value = buf
	if buf == "" && in.committed != "" {
		return in.commit("")
	}
	return nil
}

// Type applies typed text to the buffer, replacing a selection, and reports
// the resulting value change.
func (in *Input) Type(text string) []Event {
	if text == "" {
		return nil
	}
	if in.state == Composing {
		in.value += text
		return nil
	}
	buf := in.value + text
	if in.selected {
		buf = text
	}
	in.selected = false
	return in.Change(buf)
}

// Backspace applies the default backspace edit: the selection or the last
// grapheme of the buffer is removed.
func (in *Input) Backspace() []Event {
	if in.state == Composing {
		in.value = grapheme.DropLast(in.value)
		return nil
	}
	buf := grapheme.DropLast(in.value)
	if in.selected {
		buf = ""
	}
	in.selected = false
	return in.Change(buf)
}

// Key interprets shortcut keys. When handled is false the caller should
// apply the key's default edit (for Backspace, call Backspace).
//
// Shortcuts are suppressed while composing.
func (in *Input) Key(k Key) (events []Event, handled bool) {
	if in.state == Composing {
		return nil, false
	}

	switch k.Code {
	case KeySpace:
		if k.Ctrl || k.Alt {
			return nil, false
		}
		return append(in.commitBuffer(), advanceEvent), true

	case KeyEnter:
		// Ctrl+Enter inserts a section one level up.
		if k.Ctrl || k.Alt {
			return nil, false
		}
		return append(in.commitBuffer(), sectionBreakEvent), true

	case KeyBackspace:
		if k.Ctrl || k.Alt || in.value != "" {
			return nil, false
		}
		return []Event{retreatEvent}, true
	}
	return nil, false
}

// CompositionStart enters the Composing state.
func (in *Input) CompositionStart() {
	in.state = Composing
	in.selected = false
}

// CompositionUpdate replaces the in-progress buffer.
func (in *Input) CompositionUpdate(buf string) {
	if in.state != Composing {
		in.CompositionStart()
	}
	in.value = buf
}

// CompositionEnd leaves the Composing state and distributes the final buffer.
//
// An empty buffer cancels the composition and restores the committed value.
// One grapheme is committed and advances. More graphemes become one
// EventMultiCommit when the container supports it; otherwise only the first
// grapheme is committed.
func (in *Input) CompositionEnd(buf string) []Event {
	in.state = Idle
	in.selected = false

	chars := grapheme.Split(buf)
	switch {
	case len(chars) == 0:
		in.value = in.committed
		return nil
	case len(chars) == 1:
		in.value = chars[0]
		return in.commit(chars[0], advanceEvent)
	case in.cfg.MultiCommit:
		in.value = in.committed
		return []Event{{Kind: EventMultiCommit, Chars: chars}}
	default:
		in.value = chars[0]
		return in.commit(chars[0], advanceEvent)
	}
}

func (in *Input) commitBuffer() []Event {
	if in.value == "" {
		return nil
	}
	g := grapheme.First(in.value)
	in.value = g
	return in.commit(g)
}

func (in *Input) commit(char string, then ...Event) []Event {
	in.committed = char
	out := make([]Event, 0, 1+len(then))
	out = append(out, commitEvent(char))
	return append(out, then...)
}
