package grid

import "github.com/google/uuid"

// Box holds one displayed character and its free-length furigana reading.
type Box struct {
	Char     string `json:"char"`
	Furigana string `json:"furigana"`
}

// IsEmpty reports whether both slots are blank.
func (b Box) IsEmpty() bool {
	return b.Char == "" && b.Furigana == ""
}

// Section is an ordered run of boxes. A section always holds at least one box.
type Section struct {
	ID    string `json:"id"`
	Boxes []Box  `json:"boxes"`
}

// Item is a grid block of a worksheet. It always holds at least one section.
type Item struct {
	ID                  string    `json:"id"`
	Sections            []Section `json:"sections"`
	BoxSizeMm           float64   `json:"boxSizeMm"`
	ShowFurigana        bool      `json:"showFurigana"`
	FuriganaFontSize    float64   `json:"furiganaFontSize"`
	ShowGuides          bool      `json:"showGuides"`
	Alignment           Alignment `json:"alignment"`
	HideBorderOnContent bool      `json:"hideBorderOnContent"`
	Description         string    `json:"description"`
	PromptNumber        *int      `json:"promptNumber,omitempty"`
	ShowPromptNumber    bool      `json:"showPromptNumber,omitempty"`
}

const (
	DefaultBoxSizeMm        = 10
	DefaultFuriganaFontSize = 6
)

// NewID returns a fresh opaque identifier for sections and items.
func NewID() string {
	return uuid.NewString()
}

// NewSection returns a section holding a single empty box.
func NewSection() Section {
	return Section{ID: NewID(), Boxes: []Box{{}}}
}

// NewItem returns a grid item with one section of one empty box.
func NewItem() Item {
	return Item{
		ID:               NewID(),
		Sections:         []Section{NewSection()},
		BoxSizeMm:        DefaultBoxSizeMm,
		ShowFurigana:     true,
		FuriganaFontSize: DefaultFuriganaFontSize,
		ShowGuides:       true,
		Alignment:        AlignLeft,
	}
}

// Box returns the box at p.
func (it Item) Box(p Pos) (Box, bool) {
	if !Contains(it.Sections, p) {
		return Box{}, false
	}
	return it.Sections[p.Section].Boxes[p.Box], true
}

// BoxCount returns the number of boxes across all sections.
func BoxCount(sections []Section) int {
	n := 0
	for _, s := range sections {
		n += len(s.Boxes)
	}
	return n
}

func cloneBoxes(in []Box) []Box {
	out := make([]Box, len(in))
	copy(out, in)
	return out
}

// cloneSections copies the outer slice only; sections are replaced, never
// mutated, by the operations in this package.
func cloneSections(in []Section) []Section {
	out := make([]Section, len(in))
	copy(out, in)
	return out
}
