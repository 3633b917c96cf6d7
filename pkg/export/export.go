// Package export writes the record collections into an XLSX workbook, one
// sheet per collection.
package export

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"lifedash/entities"
)

const dateFmt = "2006-01-02"

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

func Workbook(goals []entities.Goal, metrics []entities.HealthMetric, journals []entities.Journal, posts []entities.Post) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", "Goals"); err != nil {
		return nil, err
	}
	for _, name := range []string{"Health", "Journals", "Posts"} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, err
		}
	}

	if err := writeRow(f, "Goals", 1, []any{"ID", "Title", "Category", "Start", "Target", "Progress", "Status", "Priority"}); err != nil {
		return nil, err
	}
	for i, g := range goals {
		row := []any{g.ID, g.Title, g.Category, g.StartDate.Format(dateFmt), g.TargetDate.Format(dateFmt), g.Progress, g.Status, g.Priority}
		if err := writeRow(f, "Goals", i+2, row); err != nil {
			return nil, err
		}
	}

	if err := writeRow(f, "Health", 1, []any{"ID", "Date", "Mood", "Energy", "SleepHours", "SleepQuality", "Notes"}); err != nil {
		return nil, err
	}
	for i, m := range metrics {
		row := []any{m.ID, m.Date.Format(dateFmt), m.Mood, m.EnergyLevel, m.SleepHours, m.SleepQuality, m.Notes}
		if err := writeRow(f, "Health", i+2, row); err != nil {
			return nil, err
		}
	}

	if err := writeRow(f, "Journals", 1, []any{"ID", "Date", "Title", "Content", "Tags"}); err != nil {
		return nil, err
	}
	for i, j := range journals {
		row := []any{j.ID, j.Date.Format(dateFmt), j.Title, j.Content, strings.Join(j.Tags, ",")}
		if err := writeRow(f, "Journals", i+2, row); err != nil {
			return nil, err
		}
	}

	if err := writeRow(f, "Posts", 1, []any{"ID", "Author", "Content", "Likes", "Created"}); err != nil {
		return nil, err
	}
	for i, p := range posts {
		row := []any{p.ID, p.Author, p.Content, p.Likes, p.CreatedAt.Format(dateFmt)}
		if err := writeRow(f, "Posts", i+2, row); err != nil {
			return nil, err
		}
	}

	return f, nil
}
