package editor

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/genko/cell"
	"github.com/iw2rmb/genko/focus"
	"github.com/iw2rmb/genko/grid"
)

// Model is a Bubble Tea component that edits one grid item.
type Model struct {
	cfg  Config
	item grid.Item
	log  *slog.Logger

	// focused is the grid-level selection: keys are routed only while set.
	focused bool

	hasActive bool
	active    grid.Pos
	kind      grid.CellKind

	// input is the automaton of the active character cell; nil while a
	// deferred focus transfer is pending or a furigana cell is active.
	input    *cell.Input
	furigana textinput.Model

	desc        textarea.Model
	editingDesc bool

	focusSeq uint64
	pending  *focus.Request

	dirty bool

	viewport viewport.Model
}

func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)

	fi := textinput.New()
	fi.Prompt = ""
	fi.CharLimit = 32

	desc := textarea.New()
	desc.ShowLineNumbers = false
	desc.Prompt = ""
	desc.SetHeight(3)

	m := Model{
		cfg:      cfg,
		item:     cfg.Item,
		log:      cfg.Logger.With(slog.String("grid", cfg.Item.ID)),
		furigana: fi,
		desc:     desc,
		viewport: viewport.New(0, 0),
	}
	m.rebuildContent()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// ID returns the grid item's id, used as the focus scope.
func (m Model) ID() string { return m.item.ID }

// Item returns the current grid item.
func (m Model) Item() grid.Item { return m.item }

// SetItem replaces the grid item without reporting an update. The active
// coordinate is clamped into the new shape.
func (m Model) SetItem(it grid.Item) Model {
	if !grid.Valid(it.Sections) {
		it.Sections = grid.Normalize(it.Sections)
	}
	m.item = it
	m.pending = nil
	if m.hasActive {
		m.activate(grid.ClampPos(it.Sections, m.active), m.kind)
	}
	m.rebuildContent()
	return m
}

// Active returns the active coordinate and cell kind.
func (m Model) Active() (grid.Pos, grid.CellKind, bool) {
	return m.active, m.kind, m.hasActive
}

// Input returns the automaton of the active character cell, if any.
func (m Model) Input() *cell.Input { return m.input }

// EditingDescription reports whether the description editor has the keys.
func (m Model) EditingDescription() bool { return m.editingDesc }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height
	if width > 0 {
		m.desc.SetWidth(width)
	}

	m.rebuildContent()
	m.followActive()
	return m
}

// Focus selects the grid and activates its first box when nothing is
// active yet.
func (m Model) Focus() Model {
	if m.focused {
		return m
	}
	m.focused = true
	if !m.hasActive {
		m.activate(grid.Pos{}, grid.CellChar)
	}
	m.rebuildContent()
	m.followActive()
	return m
}

// Blur deselects the grid: the active cell is committed and cleared.
func (m Model) Blur() Model {
	if !m.focused {
		return m
	}
	if m.editingDesc {
		m.finishDescription()
	}
	m.leaveCell()
	m.deactivate()
	m.focused = false
	m.flush()
	m.rebuildContent()
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case focus.Msg:
		return m.updateFocus(msg)
	case CompositionStartMsg, CompositionUpdateMsg, CompositionEndMsg:
		return m.updateComposition(msg)
	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.updateKey(msg)
		m.flush()
		m.rebuildContent()
		m.followActive()
		return m, cmd
	case tea.MouseMsg:
		var cmd tea.Cmd
		m, cmd = m.updateMouse(msg)
		m.flush()
		m.rebuildContent()
		return m, cmd
	default:
		var cmd tea.Cmd
		switch {
		case m.editingDesc:
			m.desc, cmd = m.desc.Update(msg)
		case m.hasActive && m.kind == grid.CellFurigana:
			m.furigana, cmd = m.furigana.Update(msg)
		}
		return m, cmd
	}
}

func (m Model) View() string {
	if m.viewport.Height == 0 {
		return m.renderContent()
	}
	return m.viewport.View()
}

// apply stores an applied change and marks the item dirty.
func (m *Model) apply(ch grid.Change) bool {
	if !ch.Applied {
		m.log.Debug("grid operation declined", "op", ch.Op.String())
		return false
	}
	m.item.Sections = ch.Sections
	m.dirty = true
	m.log.Debug("grid operation", "op", ch.Op.String(), "sections", len(ch.Sections))
	return true
}

// flush reports the item to the host once per input event.
func (m *Model) flush() {
	if !m.dirty {
		return
	}
	m.dirty = false
	if m.cfg.OnUpdate != nil {
		m.cfg.OnUpdate(m.item)
	}
}

func (m *Model) focusDelay() time.Duration {
	switch {
	case m.cfg.FocusDelay == 0:
		return focus.DefaultDelay
	case m.cfg.FocusDelay < 0:
		return 0
	default:
		return m.cfg.FocusDelay
	}
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followActive() {
	if !m.hasActive {
		return
	}
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}
	row, ok := m.layout().rowOf(m.active, m.kind)
	if !ok {
		return
	}

	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}
