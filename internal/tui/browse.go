// Package tui provides an interactive scrollable view of a generated
// register.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/paysim/internal/payroll"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	negStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

type Model struct {
	table  *payroll.Table
	offset int
	height int
	width  int
}

func NewModel(t *payroll.Table) Model {
	return Model{table: t, height: 24, width: 80}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.clamp()
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			m.offset--
		case "down", "j":
			m.offset++
		case "pgup", "b":
			m.offset -= m.pageSize()
		case "pgdown", "f", " ":
			m.offset += m.pageSize()
		case "g", "home":
			m.offset = 0
		case "G", "end":
			m.offset = m.table.Len() - m.pageSize()
		}
		m.clamp()
	}
	return m, nil
}

func (m *Model) pageSize() int {
	// title + header + footer take four lines
	size := m.height - 4
	if size < 1 {
		size = 1
	}
	return size
}

func (m *Model) clamp() {
	max := m.table.Len() - m.pageSize()
	if m.offset > max {
		m.offset = max
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("payroll register — %d rows", m.table.Len())))
	b.WriteString("\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-8s %-18s %-14s %-12s %4s %3s %8s %10s %10s",
		"ID", "NAME", "TITLE", "PERIOD", "REG", "OT", "RATE", "GROSS", "NET")))
	b.WriteString("\n")

	end := m.offset + m.pageSize()
	if end > m.table.Len() {
		end = m.table.Len()
	}

	for i := m.offset; i < end; i++ {
		r := m.table.Row(i)
		net := fmt.Sprintf("%10.2f", r.NetPay)
		if r.NetPay < 0 {
			net = negStyle.Render(net)
		}
		b.WriteString(fmt.Sprintf("%-8s %-18s %-14s %-12s %4d %3d %8.2f %10.2f %s\n",
			r.EmployeeID, r.EmployeeName, r.JobTitle, r.PayPeriod,
			r.RegularHours, r.OvertimeHours, r.BaseRate, r.GrossWages, net))
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render(fmt.Sprintf("rows %d-%d of %d  •  j/k scroll  f/b page  g/G jump  q quit",
		m.offset+1, end, m.table.Len())))

	return b.String()
}

// Browse opens the register viewer and blocks until the user quits.
func Browse(t *payroll.Table) error {
	p := tea.NewProgram(NewModel(t), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
