// Package ui holds the interactive browser over the rip-result cache.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/spindle-tools/cli/internal/domain"
	"github.com/spindle-tools/cli/internal/format"
	"github.com/spindle-tools/cli/internal/ui/style"
)

// keyMap is the browser's key bindings.
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Detail key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Detail: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "toggle detail"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// browseModel is the Bubble Tea model for the cache browser.
type browseModel struct {
	results []domain.RipResult

	width  int
	height int

	cursor     int
	scroll     int
	detailOpen bool
}

func newBrowseModel(results []domain.RipResult) browseModel {
	return browseModel{results: results}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Up):
			m.moveCursor(-1)
		case key.Matches(msg, keys.Down):
			m.moveCursor(1)
		case key.Matches(msg, keys.Detail):
			m.detailOpen = !m.detailOpen
		}
		return m, nil
	}

	return m, nil
}

func (m *browseModel) moveCursor(delta int) {
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor > len(m.results)-1 {
		m.cursor = len(m.results) - 1
	}

	// Keep the cursor inside the visible window.
	visible := m.listHeight()
	if m.cursor < m.scroll {
		m.scroll = m.cursor
	}
	if m.cursor >= m.scroll+visible {
		m.scroll = m.cursor - visible + 1
	}
}

func (m browseModel) listHeight() int {
	h := m.height - 4 // header, column row, footer, spacing
	if m.detailOpen {
		h -= 7
	}
	if h < 1 {
		h = 1
	}
	return h
}

func (m browseModel) View() string {
	if len(m.results) == 0 {
		return "cache is empty\n"
	}
	if m.width == 0 {
		return "loading...\n"
	}

	var b strings.Builder

	b.WriteString(style.Header(fmt.Sprintf("rip results (%d)", len(m.results))))
	b.WriteString("\n")
	b.WriteString(style.Muted(fmt.Sprintf("  %-10s %-9s %-12s %7s  %s",
		"DISC", "STATUS", "DEVICE", "TRACKS", "WHEN")))
	b.WriteString("\n")

	end := m.scroll + m.listHeight()
	if end > len(m.results) {
		end = len(m.results)
	}
	for i := m.scroll; i < end; i++ {
		b.WriteString(m.renderRow(i))
		b.WriteString("\n")
	}

	if m.detailOpen {
		b.WriteString(m.renderDetail())
	}

	b.WriteString(style.Muted("↑/↓ move · enter detail · q quit"))
	return b.String()
}

func (m browseModel) renderRow(i int) string {
	r := m.results[i]

	marker := "  "
	if i == m.cursor {
		marker = "> "
	}

	// Pad before styling so the ANSI codes do not skew the columns.
	line := fmt.Sprintf("%s%-10s %s %-12s %3d/%-3d  %s",
		marker,
		r.DiscID,
		statusLabel(fmt.Sprintf("%-9s", r.Status), r.Status),
		r.Device,
		r.TracksRipped,
		r.TrackCount,
		format.Timestamp(r.CreatedAt),
	)
	if i == m.cursor {
		return lipgloss.NewStyle().Bold(true).Render(line)
	}
	return line
}

func (m browseModel) renderDetail() string {
	r := m.results[m.cursor]

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(style.Header("detail"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  id:          %s\n", r.ID)
	fmt.Fprintf(&b, "  disc:        %s\n", r.DiscID)
	fmt.Fprintf(&b, "  device:      %s (offset %d)\n", r.Device, r.ReadOffset)
	fmt.Fprintf(&b, "  output:      %s\n", r.OutputDir)
	fmt.Fprintf(&b, "  updated:     %s\n", format.Timestamp(r.UpdatedAt))
	b.WriteString("\n")
	return b.String()
}

// statusLabel colors an already-padded status cell.
func statusLabel(text string, s domain.RipStatus) string {
	switch s {
	case domain.StatusComplete:
		return style.Success(text)
	case domain.StatusPartial:
		return style.Warning(text)
	default:
		return style.Error(text)
	}
}

// Browse opens the interactive browser over the given results.
func Browse(results []domain.RipResult) error {
	p := tea.NewProgram(newBrowseModel(results), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
