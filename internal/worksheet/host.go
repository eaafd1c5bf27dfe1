package worksheet

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/genko/editor"
	"github.com/iw2rmb/genko/focus"
	"github.com/iw2rmb/genko/grid"
	"github.com/iw2rmb/genko/internal/config"
)

type Options struct {
	// Path is where ctrl+s saves. Empty disables saving.
	Path string

	// Config seeds new grids and the editors. Nil uses config.Default.
	Config *config.Config

	Clipboard editor.Clipboard
	KeyMap    KeyMap
	Logger    *slog.Logger
}

var (
	titleStyle       = lipgloss.NewStyle().Bold(true)
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	activeLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	statusStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Model hosts one editor per worksheet item. Focus messages are routed to
// the grid named by their scope and only one grid is selected at a time.
type Model struct {
	doc  *Document
	opts Options
	log  *slog.Logger

	grids  []editor.Model
	active int

	help     help.Model
	viewport viewport.Model
	width    int
	height   int

	// blockTops holds the content row of each grid's label line.
	blockTops []int
	body      string

	status string
}

func NewModel(doc *Document, opts Options) Model {
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if len(opts.KeyMap.Quit.Keys()) == 0 {
		opts.KeyMap = DefaultKeyMap()
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if len(doc.Items) == 0 {
		doc.Items = []grid.Item{opts.Config.NewItem()}
	}

	m := Model{
		doc:      doc,
		opts:     opts,
		log:      opts.Logger,
		help:     help.New(),
		viewport: viewport.New(0, 0),
	}
	for _, it := range doc.Items {
		m.grids = append(m.grids, m.newGrid(it))
	}
	m.grids[0] = m.grids[0].Focus()
	m.refresh()
	return m
}

func (m *Model) newGrid(it grid.Item) editor.Model {
	ec := m.opts.Config.EditorConfig(it)
	ec.KeyMap = m.opts.KeyMap.Grid
	ec.Clipboard = m.opts.Clipboard
	ec.Logger = m.log
	doc := m.doc
	ec.OnUpdate = func(it grid.Item) { doc.Replace(it) }

	g := editor.New(ec)
	if m.width > 0 {
		g = g.SetSize(m.width, 0)
	}
	return g
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Document() *Document { return m.doc }

// Active returns the index of the selected grid.
func (m Model) Active() int { return m.active }

func (m Model) Grid(i int) editor.Model { return m.grids[i] }

func (m Model) Status() string { return m.status }

func (m Model) ids() []string {
	ids := make([]string, len(m.grids))
	for i, g := range m.grids {
		ids[i] = g.ID()
	}
	return ids
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		for i := range m.grids {
			m.grids[i] = m.grids[i].SetSize(msg.Width, 0)
		}

	case focus.Msg:
		i, ok := focus.Resolve(m.ids(), msg.Scope)
		if !ok {
			m.log.Debug("focus request for unknown grid dropped", "scope", msg.Scope)
			return m, nil
		}
		if msg.Seq == 0 && i != m.active {
			m.switchTo(i)
		}
		m.grids[i], cmd = m.grids[i].Update(msg)

	case tea.KeyMsg:
		km := m.opts.KeyMap
		switch {
		case key.Matches(msg, km.Quit):
			return m, tea.Quit
		case key.Matches(msg, km.Save):
			m.save()
		case m.grids[m.active].EditingDescription():
			m.grids[m.active], cmd = m.grids[m.active].Update(msg)
		case key.Matches(msg, km.NextGrid):
			m.switchTo((m.active + 1) % len(m.grids))
		case key.Matches(msg, km.PrevGrid):
			m.switchTo((m.active + len(m.grids) - 1) % len(m.grids))
		case key.Matches(msg, km.AddGrid):
			m.addGrid()
		case key.Matches(msg, km.Help):
			m.help.ShowAll = !m.help.ShowAll
		default:
			m.grids[m.active], cmd = m.grids[m.active].Update(msg)
		}

	case tea.MouseMsg:
		if tea.MouseEvent(msg).IsWheel() {
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		i, y, ok := m.gridAt(msg.Y)
		if !ok {
			return m, nil
		}
		if i != m.active && msg.Action == tea.MouseActionPress {
			m.switchTo(i)
		}
		msg.Y = y
		m.grids[i], cmd = m.grids[i].Update(msg)

	default:
		m.grids[m.active], cmd = m.grids[m.active].Update(msg)
	}

	m.refresh()
	return m, cmd
}

func (m *Model) switchTo(i int) {
	if i == m.active || i < 0 || i >= len(m.grids) {
		return
	}
	m.grids[m.active] = m.grids[m.active].Blur()
	m.active = i
	m.grids[i] = m.grids[i].Focus()
	m.log.Debug("grid selected", "index", i, "grid", m.grids[i].ID())
}

func (m *Model) addGrid() {
	it := m.opts.Config.NewItem()
	m.doc.Append(it)
	m.grids = append(m.grids, m.newGrid(it))
	m.switchTo(len(m.grids) - 1)
}

func (m *Model) save() {
	if m.opts.Path == "" {
		m.status = "no file to save to"
		return
	}
	if err := m.doc.Save(m.opts.Path); err != nil {
		m.log.Error("save failed", "path", m.opts.Path, "err", err)
		m.status = err.Error()
		return
	}
	m.status = "saved " + m.opts.Path
}

const headerRows = 1

// gridAt maps a screen row to a grid index and a row inside that grid.
func (m Model) gridAt(y int) (int, int, bool) {
	row := y - headerRows + m.viewport.YOffset
	if y < headerRows || row < 0 {
		return 0, 0, false
	}
	for i := len(m.blockTops) - 1; i >= 0; i-- {
		if row > m.blockTops[i] {
			return i, row - m.blockTops[i] - 1, true
		}
	}
	return 0, 0, false
}

func (m Model) label(i int) string {
	text := fmt.Sprintf("#%d", i+1)
	if i == m.active {
		return activeLabelStyle.Render("▸ " + text)
	}
	return labelStyle.Render("  " + text)
}

// refresh rebuilds the scrollable body and keeps the active grid in view.
func (m *Model) refresh() {
	var blocks []string
	m.blockTops = make([]int, 0, len(m.grids))
	row := 0
	for i, g := range m.grids {
		view := g.View()
		m.blockTops = append(m.blockTops, row)
		blocks = append(blocks, m.label(i)+"\n"+view)
		row += 1 + lipgloss.Height(view) + 1
	}
	m.body = strings.Join(blocks, "\n\n")
	m.viewport.SetContent(m.body)

	if m.height > 0 {
		m.viewport.Width = m.width
		m.viewport.Height = max(1, m.height-headerRows-lipgloss.Height(m.footer()))
	}
	if m.viewport.Height > 0 && len(m.blockTops) > m.active {
		top := m.blockTops[m.active]
		if top < m.viewport.YOffset || top >= m.viewport.YOffset+m.viewport.Height {
			m.viewport.SetYOffset(top)
		}
	}
}

func (m Model) header() string {
	title := m.doc.Title
	if title == "" {
		title = "genko"
	}
	if m.opts.Path != "" {
		title += " - " + m.opts.Path
	}
	if m.doc.Modified() {
		title += " *"
	}
	return titleStyle.Render(title)
}

func (m Model) footer() string {
	out := m.help.View(m.opts.KeyMap)
	if m.status != "" {
		out = statusStyle.Render(m.status) + "\n" + out
	}
	return out
}

func (m Model) View() string {
	body := m.body
	if m.viewport.Height > 0 {
		body = m.viewport.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.header(), body, m.footer())
}
