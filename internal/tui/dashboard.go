package tui

import (
	"fmt"
	"time"

	"github.com/MKhiriev/render-status/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const statusMessageTTL = 3 * time.Second

type dashboardModel struct {
	snapshot models.Snapshot
	haveData bool

	spinner spinner.Model
	cursor  int
	status  string
}

func newDashboardModel() dashboardModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return dashboardModel{spinner: s}
}

func (m dashboardModel) rowCount() int {
	return len(m.snapshot.Rows) + len(m.snapshot.CronRows)
}

// selectedLink returns what "c" copies for the row under the cursor: the
// dashboard URL when the API provided one, the service ID otherwise.
func (m dashboardModel) selectedLink() (name, link string, ok bool) {
	idx := m.cursor
	if idx < 0 || idx >= m.rowCount() {
		return "", "", false
	}
	if idx < len(m.snapshot.Rows) {
		row := m.snapshot.Rows[idx]
		return row.Name, firstNonEmpty(row.DashboardURL, row.ID), true
	}
	row := m.snapshot.CronRows[idx-len(m.snapshot.Rows)]
	return row.Name, firstNonEmpty(row.DashboardURL, row.ID), true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func (m dashboardModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		m.snapshot = msg.snapshot
		m.haveData = true
		if m.cursor >= m.rowCount() {
			m.cursor = m.rowCount() - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < m.rowCount()-1 {
				m.cursor++
			}
		case "c":
			name, link, ok := m.selectedLink()
			if !ok {
				m.status = "Nothing to copy"
				return m, m.cmdClearStatus()
			}
			if err := clipboard.WriteAll(link); err != nil {
				m.status = fmt.Sprintf("Copy failed: %v", err)
				return m, m.cmdClearStatus()
			}
			m.status = "Copied link for " + name
			return m, m.cmdClearStatus()
		}
		return m, nil
	}

	return m, nil
}

func (m dashboardModel) cmdClearStatus() tea.Cmd {
	return tea.Tick(statusMessageTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m dashboardModel) View() string {
	if !m.haveData {
		return "\n  " + m.spinner.View() + " Loading services...\n"
	}

	header := helpStyle.Render(fmt.Sprintf(
		"%s Last updated: %s (Ctrl+C to quit)",
		m.spinner.View(), clock(m.snapshot.TakenAt),
	))

	out := "\n" + header + "\n\n" + renderSnapshot(m.snapshot, m.cursor) + "\n"

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}
	out += "\n" + helpStyle.Render("up/down: select  c: copy service link  q: quit")

	return out
}
