package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/medialens/medialens/pkg/hierarchy"
	"github.com/medialens/medialens/pkg/outlet"
	"github.com/medialens/medialens/pkg/render"
	"github.com/medialens/medialens/pkg/selection"
	"github.com/medialens/medialens/pkg/view"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// Dashboard levels: the owner leaderboard, or the outlets of one owner.
const (
	levelOwners = iota
	levelOutlets
)

// =============================================================================
// DashModel - Interactive ownership dashboard
// =============================================================================

// DashModel is the bubbletea model for the interactive dashboard. It owns
// the shared selection state; moving the cursor emits hover events, enter
// emits select events, and the stats panel recomputes from the derived view
// model on every change.
type DashModel struct {
	Store     *outlet.Store
	Selection selection.State

	level  int
	cursor int
	offset int
	height int

	// derived, recomputed on every event
	model view.Model
}

// NewDashModel creates a dashboard over the given store.
func NewDashModel(store *outlet.Store) DashModel {
	m := DashModel{
		Store:  store,
		height: 15,
	}
	m.recompute()
	return m
}

// recompute refreshes the derived view model and moves the hover highlight
// to the owner under the cursor.
func (m *DashModel) recompute() {
	m.model = view.Compute(m.Store, &m.Selection)

	if m.level == levelOwners {
		if owner, ok := m.ownerUnderCursor(); ok {
			m.Selection.Hover(&owner)
		} else {
			m.Selection.Hover(nil)
		}
	}
}

// ownerUnderCursor returns the leaderboard owner at the cursor position.
func (m *DashModel) ownerUnderCursor() (string, bool) {
	if m.cursor < 0 || m.cursor >= len(m.model.Owners) {
		return "", false
	}
	return m.model.Owners[m.cursor].Owner, true
}

// selectedOutlets returns the outlet children of the selected owner, from
// the full (unfiltered) hierarchy so clearing an outlet keeps the list.
func (m *DashModel) selectedOutlets() []hierarchy.Node {
	if m.Selection.SelectedOwner == nil {
		return nil
	}
	owners := hierarchy.Build(m.Store.Records())
	node, ok := hierarchy.Find(owners, *m.Selection.SelectedOwner)
	if !ok {
		return nil
	}
	return node.Children
}

func (m DashModel) Init() tea.Cmd {
	return nil
}

func (m DashModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			m.moveCursor(-1)
		case "down", "j":
			m.moveCursor(1)
		case "enter":
			m.activate()
		case "esc":
			m.back()
		case "c":
			m.Selection.ClearAll()
			m.level = levelOwners
			m.cursor, m.offset = 0, 0
			m.recompute()
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 10
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

// moveCursor shifts the cursor and keeps it inside the visible window.
func (m *DashModel) moveCursor(delta int) {
	length := m.listLen()
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor > length-1 {
		m.cursor = length - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
	m.recompute()
}

func (m *DashModel) listLen() int {
	if m.level == levelOutlets {
		return len(m.selectedOutlets())
	}
	return len(m.model.Owners)
}

// activate handles enter: select the owner under the cursor and drill into
// its outlets, or select the outlet under the cursor.
func (m *DashModel) activate() {
	switch m.level {
	case levelOwners:
		owner, ok := m.ownerUnderCursor()
		if !ok {
			return
		}
		m.Selection.SelectOwner(&owner)
		m.level = levelOutlets
		m.cursor, m.offset = 0, 0
	case levelOutlets:
		outlets := m.selectedOutlets()
		if m.cursor < 0 || m.cursor >= len(outlets) {
			return
		}
		id := outlets[m.cursor].ID
		m.Selection.SelectOutlet(&id, m.Store)
	}
	m.recompute()
}

// back handles esc: clear the outlet selection first, then the owner
// selection, stepping back up one level at a time.
func (m *DashModel) back() {
	switch {
	case m.Selection.SelectedOutlet != nil:
		m.Selection.SelectOutlet(nil, m.Store)
	case m.level == levelOutlets:
		m.Selection.SelectOwner(nil)
		m.level = levelOwners
		m.cursor, m.offset = 0, 0
	default:
		m.Selection.ClearAll()
	}
	m.recompute()
}

func (m DashModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Media Ownership"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ hover  ⏎ select  esc back  c clear  q quit"))
	b.WriteString("\n\n")

	b.WriteString(m.statsLine())
	b.WriteString("\n\n")

	if m.level == levelOutlets {
		b.WriteString(m.outletTable())
	} else {
		b.WriteString(m.ownerTable())
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, max(m.listLen(), 1))))
	return b.String()
}

// statsLine renders the derived statistics for the visible record set.
func (m DashModel) statsLine() string {
	s := m.model.Stats
	parts := []string{
		fmt.Sprintf("%s outlets", StyleNumber.Render(formatInt(s.TotalOutlets))),
		fmt.Sprintf("%s owners", StyleNumber.Render(formatInt(s.UniqueOwners))),
		fmt.Sprintf("%s reach", StyleNumber.Render(render.FormatAudience(s.TotalAudience))),
	}
	line := "  " + strings.Join(parts, StyleDim.Render(" · "))
	if m.Selection.SelectedOwner != nil {
		line += StyleDim.Render("  filtered: ") + StyleHighlight.Render(*m.Selection.SelectedOwner)
		if m.Selection.SelectedOutlet != nil {
			line += StyleDim.Render(" / ") + StyleHighlight.Render(*m.Selection.SelectedOutlet)
		}
	}
	return line
}

func (m DashModel) ownerTable() string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	end := m.offset + m.height
	if end > len(m.model.Owners) {
		end = len(m.model.Owners)
	}

	rows := [][]string{}
	for i := m.offset; i < end; i++ {
		a := m.model.Owners[i]
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, a.Owner, formatInt(a.Outlets), render.FormatAudience(a.Audience)})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Owner", "Outlets", "Audience").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			idx := m.offset + row
			if idx >= len(m.model.Owners) {
				return lipgloss.NewStyle()
			}
			owner := m.model.Owners[idx].Owner

			base := lipgloss.NewStyle()
			if m.Selection.Highlighted(owner) {
				base = base.Foreground(colorCyan)
			}
			if idx == m.cursor {
				return base.Bold(true)
			}
			if m.Selection.SelectedOwner != nil && *m.Selection.SelectedOwner != owner {
				return base.Foreground(colorDim)
			}
			return base
		})

	return t.Render()
}

func (m DashModel) outletTable() string {
	outlets := m.selectedOutlets()

	var b strings.Builder
	for i, n := range outlets {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		span, audience := "", ""
		if n.Record != nil {
			span = n.Record.Span()
			audience = render.FormatAudience(n.Record.Audience)
		}
		line := fmt.Sprintf("%s%-25s  %-12s %s", cursor, n.Name, listDimStyle.Render(span), audience)

		selected := m.Selection.SelectedOutlet != nil && *m.Selection.SelectedOutlet == n.ID
		switch {
		case i == m.cursor:
			b.WriteString(listSelectedStyle.Render(line))
		case selected:
			b.WriteString(StyleSuccess.Render(line))
		default:
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if len(outlets) == 0 {
		b.WriteString(listDimStyle.Render("  no outlets"))
		b.WriteString("\n")
	}
	return b.String()
}
