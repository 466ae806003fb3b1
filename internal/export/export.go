// Package export renders the week as a plain printable table.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/julianstephens/agenda/internal/constants"
	"github.com/julianstephens/agenda/internal/models"
	"github.com/julianstephens/agenda/internal/schedule"
)

const (
	slotHeader = "Horario"
	doneMark   = "✓"
)

// Cell formats one entry for print. Blank entries print as nothing.
func Cell(e models.Entry) string {
	if e.Blank() {
		return ""
	}
	var b strings.Builder
	if e.Done {
		b.WriteString(doneMark + " ")
	}
	b.WriteString(strings.TrimSpace(e.Text))
	if e.Priority != models.PriorityNone {
		fmt.Fprintf(&b, " (%s)", e.Priority)
	}
	return b.String()
}

// Render lays out the 9×7 grid with slot rows and day columns. Cells hidden
// by filter keep their position and print empty.
func Render(s models.Schedule, filter models.Priority) string {
	headers := []string{slotHeader}
	for _, d := range models.Days() {
		headers = append(headers, d.Label())
	}

	rows := make([][]string, 0, models.SlotsPerDay)
	for _, sl := range models.Slots() {
		row := []string{sl.Label()}
		for _, d := range models.Days() {
			e := s.Entry(d, sl)
			if !schedule.IsVisible(e, filter) {
				row = append(row, "")
				continue
			}
			row = append(row, Cell(e))
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderRow(true).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(_, _ int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		})

	p := schedule.ComputeProgress(s)
	summary := fmt.Sprintf("%s: %d%% (%d/%d)", constants.LabelProgress, p.Percent, p.Done, p.Total)
	if filter != models.PriorityNone {
		summary += fmt.Sprintf("  ·  %s: %s", constants.LabelNoPriority, filter)
	}
	return t.Render() + "\n" + summary + "\n"
}

// Write renders to w.
func Write(w io.Writer, s models.Schedule, filter models.Priority) error {
	_, err := io.WriteString(w, Render(s, filter))
	return err
}

// ToFile writes a timestamped rendering into dir and returns its path.
func ToFile(dir string, s models.Schedule, filter models.Priority, at time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	name := constants.ExportFilePrefix + at.Format(constants.TimestampFormat) + constants.ExportFileSuffix
	path := filepath.Join(dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}

	if err := Write(f, s, filter); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to sync export: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close export: %w", err)
	}
	return path, nil
}
