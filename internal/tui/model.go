// Package tui is the terminal front end for editing the author order.
//
// Mouse gestures map onto the order controller the same way a listbox would:
// click selects, ctrl/alt-click toggles, shift-click extends, and dragging a
// selected row moves the whole selection as one block.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/lal-tools/lal/internal/clipboard"
	"github.com/lal-tools/lal/internal/order"
	"github.com/lal-tools/lal/internal/session"
)

// Rows taken by the title above the list and the status/help lines below it.
const (
	headerRows = 1
	footerRows = 2
	edgeMargin = 1
)

// Options configures the model.
type Options struct {
	Paths    session.Paths
	Cooldown time.Duration
	Logger   *zap.Logger
	// Copy writes text to the clipboard; defaults to clipboard.Copy.
	Copy func(string) error
}

// unlockMsg ends the shifting cooldown started by an edge auto-scroll.
type unlockMsg struct{}

// Model is the bubbletea model for the author list editor.
type Model struct {
	sess     *session.Session
	list     *order.List
	paths    session.Paths
	cooldown time.Duration
	log      *zap.Logger
	copy     func(string) error

	keys   keyMap
	help   help.Model
	styles styles

	width   int
	height  int
	offset  int // first visible row
	cursor  int
	pressed bool // primary button held

	status string
	failed bool
}

// New creates the editor model over sess.
func New(sess *session.Session, opts Options) Model {
	if opts.Cooldown <= 0 {
		opts.Cooldown = order.ScrollCooldown
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Copy == nil {
		opts.Copy = clipboard.Copy
	}

	return Model{
		sess:     sess,
		list:     sess.List(),
		paths:    opts.Paths,
		cooldown: opts.Cooldown,
		log:      opts.Logger,
		copy:     opts.Copy,
		keys:     defaultKeyMap(),
		help:     help.New(),
		styles:   defaultStyles(),
		height:   headerRows + footerRows + 10,
		status:   fmt.Sprintf("%d authors loaded", sess.List().Len()),
	}
}

// Run starts the editor and blocks until the user quits.
func Run(sess *session.Session, opts Options) error {
	p := tea.NewProgram(New(sess, opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.scrollTo(m.cursor)
		return m, nil

	case unlockMsg:
		m.list.Unlock()
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.scroll(-1)
		return m, nil
	case msg.Button == tea.MouseButtonWheelDown:
		m.scroll(1)
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		row, ok := m.rowAt(msg.Y)
		if !ok {
			return m, nil
		}
		m.pressed = true
		m.cursor = row
		switch {
		case msg.Ctrl || msg.Alt:
			m.list.Toggle(row)
		case msg.Shift:
			m.list.Extend(row)
		default:
			m.list.Press(row)
		}
		return m, nil

	case tea.MouseActionMotion:
		if !m.pressed {
			return m, nil
		}
		return m.drag(msg.Y)

	case tea.MouseActionRelease:
		m.pressed = false
		m.list.Release()
		return m, nil
	}
	return m, nil
}

// drag handles pointer motion with the primary button held.
func (m Model) drag(y int) (tea.Model, tea.Cmd) {
	if m.list.Len() == 0 || m.list.Toggling() {
		return m, nil
	}

	if m.list.Dragging() && !m.list.Locked() {
		if dir := order.EdgeScroll(y-headerRows, m.listHeight(), edgeMargin); dir != 0 && m.scroll(dir) {
			m.list.Lock()
			return m, tea.Tick(m.cooldown, func(time.Time) tea.Msg { return unlockMsg{} })
		}
	}

	target := m.nearestRow(y)
	moved := m.list.DragTo(target)
	if moved || !m.list.Dragging() {
		// The leading edge of a moved block sits on target.
		m.cursor = target
	}
	if moved {
		m.log.Debug("moved selection", zap.Int("target", target))
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.ExtendUp):
		m.moveCursor(-1)
		m.list.Extend(m.cursor)

	case key.Matches(msg, m.keys.ExtendDown):
		m.moveCursor(1)
		m.list.Extend(m.cursor)

	case key.Matches(msg, m.keys.MoveUp):
		m.moveSelection(-1)

	case key.Matches(msg, m.keys.MoveDown):
		m.moveSelection(1)

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		m.list.Press(m.cursor)

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		m.list.Press(m.cursor)

	case key.Matches(msg, m.keys.Toggle):
		m.list.Toggle(m.cursor)

	case key.Matches(msg, m.keys.Clear):
		m.list.Clear()

	case key.Matches(msg, m.keys.Delete):
		m.run(session.ActionDelete)
		m.cursor = min(m.cursor, max(m.list.Len()-1, 0))

	case key.Matches(msg, m.keys.SortAll):
		m.run(session.ActionSortAll)

	case key.Matches(msg, m.keys.SortSelection):
		m.run(session.ActionSortSelection)

	case key.Matches(msg, m.keys.Save):
		m.run(session.ActionSave)

	case key.Matches(msg, m.keys.Parse):
		m.run(session.ActionParse)

	case key.Matches(msg, m.keys.Copy):
		m.copyCitation()
	}
	return m, nil
}

// run dispatches a control and records the outcome on the status line.
func (m *Model) run(action session.Action) {
	status, err := m.sess.Do(action, m.paths)
	if err != nil {
		m.fail(err)
		return
	}
	m.status, m.failed = status, false
	m.log.Info("action", zap.String("action", string(action)), zap.String("status", status))
	m.scrollTo(m.cursor)
}

func (m *Model) copyCitation() {
	text, err := m.sess.Citation()
	if err == nil {
		err = m.copy(text)
	}
	if err != nil {
		m.fail(err)
		return
	}
	m.status, m.failed = "citation copied to clipboard", false
}

func (m *Model) fail(err error) {
	m.status, m.failed = "error: "+err.Error(), true
	m.log.Error("action failed", zap.Error(err))
}

func (m *Model) moveCursor(delta int) {
	if m.list.Len() == 0 {
		return
	}
	m.cursor = max(0, min(m.cursor+delta, m.list.Len()-1))
	m.scrollTo(m.cursor)
}

func (m *Model) moveSelection(delta int) {
	if !m.list.MoveSelection(delta) {
		return
	}
	lo, hi, _ := m.list.Span()
	if delta < 0 {
		m.cursor = lo
	} else {
		m.cursor = hi
	}
	m.scrollTo(m.cursor)
}

func (m *Model) listHeight() int {
	return max(m.height-headerRows-footerRows, 1)
}

// scroll shifts the view by delta rows and reports whether it moved.
func (m *Model) scroll(delta int) bool {
	maxOffset := max(m.list.Len()-m.listHeight(), 0)
	next := max(0, min(m.offset+delta, maxOffset))
	if next == m.offset {
		return false
	}
	m.offset = next
	return true
}

// scrollTo adjusts the view so row is visible.
func (m *Model) scrollTo(row int) {
	h := m.listHeight()
	if row < m.offset {
		m.offset = row
	}
	if row >= m.offset+h {
		m.offset = row - h + 1
	}
	m.offset = max(0, min(m.offset, max(m.list.Len()-h, 0)))
}

// rowAt maps a screen line to a list position.
func (m Model) rowAt(y int) (int, bool) {
	rel := y - headerRows
	if rel < 0 || rel >= m.listHeight() {
		return 0, false
	}
	row := m.offset + rel
	if row >= m.list.Len() {
		return 0, false
	}
	return row, true
}

// nearestRow maps a screen line to the closest list position, clamping
// lines above or below the list.
func (m Model) nearestRow(y int) int {
	row := m.offset + y - headerRows
	return max(0, min(row, m.list.Len()-1))
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	title := fmt.Sprintf("Long author list: %d authors", m.list.Len())
	if sel := len(m.list.Selection()); sel > 0 {
		title += fmt.Sprintf(", %d selected", sel)
	}
	b.WriteString(m.styles.Title.Render(title))
	b.WriteString("\n")

	h := m.listHeight()
	for i := m.offset; i < m.offset+h; i++ {
		if i >= m.list.Len() {
			b.WriteString("\n")
			continue
		}
		marker := "  "
		if i == m.cursor {
			marker = m.styles.Cursor.Render("> ")
		}
		style := m.styles.Row
		if m.list.Selected(i) {
			style = m.styles.Selected
		}
		b.WriteString(marker)
		b.WriteString(style.Render(m.list.At(i).Label()))
		b.WriteString("\n")
	}

	status := m.styles.Status
	if m.failed {
		status = m.styles.Error
	}
	b.WriteString(status.Render(m.status))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}
