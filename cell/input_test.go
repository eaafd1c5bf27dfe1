package cell

import (
	"reflect"
	"testing"
)

func kinds(events []Event) []EventKind {
	out := make([]EventKind, 0, len(events))
	for _, ev := range events {
		out = append(out, ev.Kind)
	}
	return out
}

func wantKinds(t *testing.T, label string, events []Event, want ...EventKind) {
	t.Helper()
	if got := kinds(events); !reflect.DeepEqual(got, want) && !(len(got) == 0 && len(want) == 0) {
		t.Fatalf("%s: got %v, want %v", label, got, want)
	}
}

func TestChange_FirstTypingIsHeld(t *testing.T) {
	in := New(Config{}, "")
	wantKinds(t, "type into empty box", in.Change("A"))
	if in.Value() != "A" || in.Committed() != "" {
		t.Fatalf("held buffer: value=%q committed=%q", in.Value(), in.Committed())
	}
}

func TestChange_ReplacementTypingCommitsLastAndAdvances(t *testing.T) {
	in := New(Config{}, "A")
	events := in.Change("AB")
	wantKinds(t, "replacement typing", events, EventCommit, EventAdvance)
	if events[0].Char != "B" {
		t.Fatalf("replacement char: got %q, want %q", events[0].Char, "B")
	}
	if in.Value() != "B" || in.Committed() != "B" {
		t.Fatalf("after replacement: value=%q committed=%q", in.Value(), in.Committed())
	}
}

func TestChange_EmptyingCommitsClear(t *testing.T) {
	in := New(Config{}, "A")
	events := in.Change("")
	wantKinds(t, "clear", events, EventCommit)
	if events[0].Char != "" {
		t.Fatalf("clear commit: got %q", events[0].Char)
	}
	wantKinds(t, "clear again", in.Change(""))
}

func TestKeySpace_CommitsFirstGraphemeAndAdvances(t *testing.T) {
	in := New(Config{}, "")
	in.Change("AB")
	events, handled := in.Key(Key{Code: KeySpace})
	if !handled {
		t.Fatalf("space should be handled")
	}
	wantKinds(t, "space", events, EventCommit, EventAdvance)
	if events[0].Char != "A" || in.Value() != "A" {
		t.Fatalf("space commit: got %q value=%q", events[0].Char, in.Value())
	}
}

func TestKeySpace_EmptyBufferStillAdvances(t *testing.T) {
	in := New(Config{}, "")
	events, handled := in.Key(Key{Code: KeySpace})
	if !handled {
		t.Fatalf("space should be handled")
	}
	wantKinds(t, "space on empty", events, EventAdvance)
}

func TestKeyEnter_BreaksUnlessCtrl(t *testing.T) {
	in := New(Config{}, "")
	in.Change("x")
	events, handled := in.Key(Key{Code: KeyEnter})
	if !handled {
		t.Fatalf("enter should be handled")
	}
	wantKinds(t, "enter", events, EventCommit, EventSectionBreak)

	events, handled = in.Key(Key{Code: KeyEnter, Ctrl: true})
	if handled || events != nil {
		t.Fatalf("ctrl+enter must be left to the container: handled=%v events=%v", handled, events)
	}
}

func TestKeyBackspace_RetreatsOnlyWhenEmpty(t *testing.T) {
	in := New(Config{}, "A")
	if events, handled := in.Key(Key{Code: KeyBackspace}); handled || events != nil {
		t.Fatalf("non-empty buffer consumes backspace: handled=%v", handled)
	}
	wantKinds(t, "default backspace", in.Backspace(), EventCommit)

	events, handled := in.Key(Key{Code: KeyBackspace})
	if !handled {
		t.Fatalf("backspace on empty should be handled")
	}
	wantKinds(t, "retreat", events, EventRetreat)

	if _, handled := in.Key(Key{Code: KeyBackspace, Ctrl: true}); handled {
		t.Fatalf("ctrl+backspace belongs to the container")
	}
}

func TestComposing_SuppressesShortcutsAndCommits(t *testing.T) {
	in := New(Config{MultiCommit: true}, "")
	in.CompositionStart()
	if in.State() != Composing {
		t.Fatalf("state: got %v", in.State())
	}
	in.CompositionUpdate("さ")
	wantKinds(t, "change while composing", in.Change("さく"))

	for _, code := range []KeyCode{KeySpace, KeyEnter, KeyBackspace} {
		if events, handled := in.Key(Key{Code: code}); handled || events != nil {
			t.Fatalf("key %v while composing: handled=%v events=%v", code, handled, events)
		}
	}
	if events := in.Blur(); events != nil {
		t.Fatalf("blur while composing should not commit: %v", events)
	}
}

func TestCompositionEnd_Cancel(t *testing.T) {
	in := New(Config{MultiCommit: true}, "字")
	in.CompositionStart()
	in.CompositionUpdate("か")
	wantKinds(t, "cancel", in.CompositionEnd(""))
	if in.State() != Idle || in.Value() != "字" || in.Committed() != "字" {
		t.Fatalf("cancel restore: state=%v value=%q committed=%q", in.State(), in.Value(), in.Committed())
	}
}

func TestCompositionEnd_SingleCommitsAndAdvances(t *testing.T) {
	in := New(Config{}, "")
	in.CompositionStart()
	events := in.CompositionEnd("字")
	wantKinds(t, "single", events, EventCommit, EventAdvance)
	if events[0].Char != "字" {
		t.Fatalf("single commit: got %q", events[0].Char)
	}
}

func TestCompositionEnd_MultiCommit(t *testing.T) {
	in := New(Config{MultiCommit: true}, "Y")
	in.CompositionStart()
	events := in.CompositionEnd("さくら")
	wantKinds(t, "multi", events, EventMultiCommit)
	if want := []string{"さ", "く", "ら"}; !reflect.DeepEqual(events[0].Chars, want) {
		t.Fatalf("multi chars: got %q, want %q", events[0].Chars, want)
	}
	if in.Value() != "Y" {
		t.Fatalf("value after multi commit: got %q", in.Value())
	}
}

func TestCompositionEnd_MultiFallbackCommitsFirst(t *testing.T) {
	in := New(Config{}, "")
	in.CompositionStart()
	events := in.CompositionEnd("さくら")
	wantKinds(t, "fallback", events, EventCommit, EventAdvance)
	if events[0].Char != "さ" {
		t.Fatalf("fallback commit: got %q", events[0].Char)
	}
}

func TestBlur_CommitsFirstGrapheme(t *testing.T) {
	in := New(Config{}, "")
	in.Change("ab")
	events := in.Blur()
	wantKinds(t, "blur", events, EventCommit)
	if events[0].Char != "a" || in.Value() != "a" {
		t.Fatalf("blur normalize: got %q value=%q", events[0].Char, in.Value())
	}
	wantKinds(t, "blur empty", New(Config{}, "").Blur())
}

func TestFocus_SelectsForTypeToReplace(t *testing.T) {
	in := New(Config{SelectOnFocus: true}, "A")
	in.Focus()
	if !in.Selected() {
		t.Fatalf("focus should select content")
	}
	wantKinds(t, "type over selection", in.Type("B"))
	if in.Value() != "B" || in.Selected() {
		t.Fatalf("type to replace: value=%q selected=%v", in.Value(), in.Selected())
	}

	empty := New(Config{SelectOnFocus: true}, "")
	empty.Focus()
	if empty.Selected() {
		t.Fatalf("empty content should not be selected")
	}

	plain := New(Config{}, "A")
	plain.Focus()
	wantKinds(t, "type without selection", plain.Type("B"), EventCommit, EventAdvance)
}

func TestBackspace_ClearsSelection(t *testing.T) {
	in := New(Config{SelectOnFocus: true}, "字")
	in.Focus()
	wantKinds(t, "backspace over selection", in.Backspace(), EventCommit)
	if in.Value() != "" {
		t.Fatalf("value after backspace: got %q", in.Value())
	}
}

func TestEventKindString(t *testing.T) {
	if got := EventSectionBreak.String(); got != "section-break" {
		t.Fatalf("kind name: got %q", got)
	}
	if got := Composing.String(); got != "composing" {
		t.Fatalf("state name: got %q", got)
	}
}
