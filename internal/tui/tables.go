package tui

import (
	"strings"

	"github.com/MKhiriev/render-status/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// errorCell is rendered in place of a status when the per-service deploy
// lookup failed. The rest of the row still renders.
const errorCell = "Error"

// renderSnapshot renders the snapshot body: the services table, a separate
// cron table when cron services exist, or a placeholder/error line.
//
// selected highlights one row across both tables (main rows first, cron
// rows after); pass -1 to disable highlighting for non-interactive output.
func renderSnapshot(snap models.Snapshot, selected int) string {
	if snap.Err != nil {
		return errorStyle.Render("Error fetching services: " + snap.Err.Error())
	}
	if snap.Empty() {
		return helpStyle.Render("No services found")
	}

	var sections []string
	if len(snap.Rows) > 0 {
		sections = append(sections, renderMainTable(snap.Rows, selected))
	}
	if len(snap.CronRows) > 0 {
		sections = append(sections, renderCronTable(snap.CronRows, selected-len(snap.Rows)))
	}

	return strings.Join(sections, "\n\n")
}

func renderMainTable(rows []models.ServiceRow, selected int) string {
	data := make([][]string, 0, len(rows))
	for _, row := range rows {
		status := row.DeployStatus
		deployedAt := FormatTimestamp(row.DeployedAt)
		if row.FetchErr != nil {
			status = errorCell
			deployedAt = notAvailable
		}
		data = append(data, []string{
			fitText(row.Name, 40),
			string(row.Type),
			status,
			deployedAt,
			FormatTimestamp(row.UpdatedAt),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("Name", "Type", "Status", "Latest Deploy", "Updated").
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return cellStyle.Inherit(headerStyle)
			case row == selected:
				return cellStyle.Inherit(selectedStyle)
			case col == 0:
				return cellStyle.Inherit(nameStyle)
			case col == 2:
				return cellStyle.Inherit(mainStatusStyle(rows[row]))
			default:
				return cellStyle
			}
		})

	return titleStyle.Render("Render Services") + "\n" + t.Render()
}

func mainStatusStyle(row models.ServiceRow) lipgloss.Style {
	if row.FetchErr != nil {
		return lipgloss.NewStyle().Bold(true).Foreground(colorFailure)
	}
	return StatusStyle(row.DeployStatus)
}

func renderCronTable(rows []models.CronRow, selected int) string {
	data := make([][]string, 0, len(rows))
	for _, row := range rows {
		data = append(data, []string{
			fitText(row.Name, 40),
			row.Schedule,
			FormatTimestamp(row.LastRun),
			row.Status,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("Name", "Schedule", "Last Run", "Status").
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return cellStyle.Inherit(headerStyle)
			case row == selected:
				return cellStyle.Inherit(selectedStyle)
			case col == 0:
				return cellStyle.Inherit(nameStyle)
			case col == 3:
				return cellStyle.Inherit(StatusStyle(rows[row].Status))
			default:
				return cellStyle
			}
		})

	return titleStyle.Render("Cron Jobs") + "\n" + t.Render()
}
