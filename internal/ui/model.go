// Package ui renders the command panel with Bubble Tea. The model owns
// no search or selection logic of its own: keystrokes and mouse events
// are translated into calls on the cursor, index and selection
// services, and the dispatcher drives which view is mounted.
package ui

import (
	"log"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"palette/internal/dispatch"
	"palette/internal/extension"
	"palette/internal/ui/services/cursor"
	"palette/internal/ui/services/events"
	"palette/internal/ui/services/index"
	"palette/internal/ui/services/selection"
)

// Model is the Bubble Tea model for the panel.
type Model struct {
	dispatcher *dispatch.Dispatcher
	bus        events.EventBus

	cursor    *cursor.Service
	selection *selection.Service
	idx       *index.Index[extension.Item]

	input  textinput.Model
	styles *Styles

	view    extension.ViewSpec
	mounted bool
	// pendingMount marks that a freshly mounted external view still
	// needs its initial empty-query search issued.
	pendingMount bool
	// mountGen counts view mounts. In-flight search responses carry the
	// generation of the mount that issued them; a response from an
	// earlier mount is stale regardless of its sequence number.
	mountGen uint64

	width   int
	height  int
	maxRows int

	// listTop is the screen row of the first result, recomputed on
	// every render so mouse coordinates map onto result rows.
	listTop int

	help    *HelpOps
	program *tea.Program
}

// NewModel creates the panel model around the given dispatcher. The
// dispatcher's presentation callbacks are claimed by the model.
func NewModel(dispatcher *dispatch.Dispatcher, styles *Styles, maxRows int) *Model {
	if maxRows < 1 {
		maxRows = 15
	}

	bus := events.NewBus()
	cur := cursor.NewService(bus)
	cur.SetViewportHeight(maxRows)

	input := textinput.New()
	input.Placeholder = "Type to search"
	input.Prompt = "› "
	input.CharLimit = 256

	m := &Model{
		dispatcher: dispatcher,
		bus:        bus,
		cursor:     cur,
		selection:  selection.NewService(bus, cur),
		input:      input,
		styles:     styles,
		maxRows:    maxRows,
	}

	m.selection.SetCountFunction(m.resultCount)
	m.selection.SetOnSelected(m.activateRow)
	m.selection.SetRefilterFunction(func(query string) int {
		if m.idx == nil {
			return 0
		}
		return len(m.idx.SetQuery(query))
	})

	// A keyboard move leaves any mouse hover highlight pointing at a
	// row the user is no longer on; clear it so only one row reads as
	// current.
	bus.Subscribe("cursor.MovedEvent", func(e interface{}) {
		if moved, ok := e.(cursor.MovedEvent); ok && moved.Keyboard {
			m.selection.ClearHover()
		}
	})

	dispatcher.SetOnViewChanged(m.mountView)
	dispatcher.SetOnHidden(m.unmountView)
	return m
}

// SetProgram hands the model its running program, needed to release
// the terminal around the help pager.
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.help = NewHelpOps(p)
}

// Init shows the panel.
func (m *Model) Init() tea.Cmd {
	m.dispatcher.Toggle()
	return tea.Batch(textinput.Blink, m.drainMount())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.cursor.SetViewportHeight(m.visibleRows())

	case tea.KeyMsg:
		cmd, handled := m.handleKey(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		if !handled && m.mounted {
			before := m.input.Value()
			var inputCmd tea.Cmd
			m.input, inputCmd = m.input.Update(msg)
			cmds = append(cmds, inputCmd)
			if after := m.input.Value(); after != before {
				cmds = append(cmds, m.queryChanged(after))
			}
		}

	case tea.MouseMsg:
		m.handleMouse(msg)

	case externalResultsMsg:
		if msg.gen == m.mountGen && m.idx != nil && m.idx.Apply(msg.seq, msg.items) {
			m.cursor.OnResultCountChanged(len(msg.items))
		}

	case toggleMsg:
		m.dispatcher.Toggle()

	case tea.BlurMsg:
		m.dispatcher.FocusLost()

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("UI: help pager failed: %v", msg.err)
		}
	}

	if cmd := m.drainMount(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// drainMount issues the mount-time empty query for a freshly mounted
// external view so it starts populated instead of blank.
func (m *Model) drainMount() tea.Cmd {
	if !m.pendingMount {
		return nil
	}
	m.pendingMount = false
	return m.queryChanged("")
}

// handleKey consumes panel-level keys. It reports whether the key was
// handled; unhandled keys fall through to the text input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit, true
	case "ctrl+@": // terminals report ctrl+space as ctrl+@
		m.dispatcher.Toggle()
		return nil, true
	case "esc":
		m.dispatcher.Cancel()
		return nil, true
	case "up", "ctrl+p":
		m.selection.MoveUp()
		return nil, true
	case "down", "ctrl+n":
		m.selection.MoveDown()
		return nil, true
	case "enter":
		m.selection.Enter()
		return nil, true
	case "f1":
		return m.helpCmd(), true
	}

	if !m.mounted {
		switch msg.String() {
		case "q":
			return tea.Quit, true
		default:
			return nil, true // ignore typing while hidden
		}
	}
	return nil, false
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if !m.mounted {
		return
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.selection.MoveUp()
		return
	case msg.Button == tea.MouseButtonWheelDown:
		m.selection.MoveDown()
		return
	}

	row, ok := m.rowAt(msg.Y)
	switch msg.Action {
	case tea.MouseActionMotion:
		if ok {
			m.selection.Hover(row)
		} else {
			m.selection.ClearHover()
		}
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && ok {
			m.selection.Click(row)
		}
	}
}

// rowAt maps a screen line to a result row, accounting for the
// viewport scroll offset.
func (m *Model) rowAt(y int) (int, bool) {
	row := y - m.listTop + m.cursor.ViewportOffset()
	if y < m.listTop || row < 0 || row >= m.resultCount() {
		return 0, false
	}
	return row, true
}

// mountView installs a view as the search surface: fresh input, fresh
// index, cursor on the first row.
func (m *Model) mountView(view extension.ViewSpec) {
	m.view = view
	m.mounted = true
	m.mountGen++

	m.input.SetValue("")
	m.input.Focus()
	m.selection.Reset()

	if view.External() {
		m.idx = index.NewExternal(view.Search, extension.Item.MatchKey)
		m.cursor.Reset(0)
		m.pendingMount = true
		return
	}

	m.idx = index.NewStatic(view.Items, extension.Item.MatchKey)
	m.cursor.Reset(len(view.Items))
}

func (m *Model) unmountView() {
	m.mounted = false
	m.view = extension.ViewSpec{}
	m.idx = nil
	m.input.Blur()
	m.selection.Reset()
	m.cursor.Reset(0)
}

// queryChanged routes a new query. Static views re-filter
// synchronously; external views issue a sequenced search off the
// update loop.
func (m *Model) queryChanged(query string) tea.Cmd {
	if m.idx == nil {
		return nil
	}
	if m.idx.External() {
		gen := m.mountGen
		seq := m.idx.Begin(query)
		idx := m.idx
		return func() tea.Msg {
			return externalResultsMsg{gen: gen, seq: seq, items: idx.Search(query)}
		}
	}
	m.selection.QueryChanged(query)
	return nil
}

func (m *Model) resultCount() int {
	if m.idx == nil {
		return 0
	}
	return len(m.idx.Results())
}

func (m *Model) activateRow(row int) {
	results := m.idx.Results()
	if row >= len(results) {
		return
	}
	m.dispatcher.ActivateItem(results[row])
}

func (m *Model) helpCmd() tea.Cmd {
	if m.help == nil {
		return nil
	}
	help := m.help
	return func() tea.Msg {
		return helpPagerMsg{err: help.ShowHelpInPager(RenderHelpContent())}
	}
}

func (m *Model) visibleRows() int {
	rows := m.maxRows
	// title, input, blank, status lines
	if chrome := m.height - 4; m.height > 0 && chrome < rows {
		rows = chrome
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}
