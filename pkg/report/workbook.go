package report

import (
	"fmt"
	"os"
	"path/filepath"

	xlsx "github.com/360EntSecGroup-Skylar/excelize/v2"

	"github.com/anrid/africa-aid-stats/pkg/stats"
)

// Sheet names of the exported workbook.
const (
	SheetAid     = "Aid"
	SheetIncome  = "Income"
	SheetRanking = "Ranking"
	SheetFocus   = "Focus"
)

// WriteWorkbook exports the cleaned tables, the ranking and the focus series.
func WriteWorkbook(path string, r *stats.Results) error {
	f := xlsx.NewFile()

	if r.Aid != nil {
		if err := writeTable(f, SheetAid, r.Aid); err != nil {
			return err
		}
	}
	if r.Income != nil {
		if err := writeTable(f, SheetIncome, r.Income); err != nil {
			return err
		}
	}

	f.NewSheet(SheetRanking)
	if err := writeRow(f, SheetRanking, 1, "Rank", "Country", "Mean Aid"); err != nil {
		return err
	}
	for i, m := range r.Ranking {
		if err := writeRow(f, SheetRanking, i+2, i+1, m.Country, m.Value); err != nil {
			return err
		}
	}

	f.NewSheet(SheetFocus)
	if err := writeRow(f, SheetFocus, 1, "Country", "Year", "Aid", "Income"); err != nil {
		return err
	}
	row := 2
	for _, s := range r.Focus {
		for i, year := range s.Years {
			if err := writeRow(f, SheetFocus, row, s.Country, year, s.Aid[i], s.Income[i]); err != nil {
				return err
			}
			row++
		}
	}

	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(f.GetSheetIndex(SheetRanking))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create workbook directory: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("could not save workbook %s: %w", path, err)
	}
	return nil
}

func writeTable(f *xlsx.File, sheet string, t *stats.Table) error {
	f.NewSheet(sheet)

	header := []interface{}{t.IDColumn}
	for _, y := range t.Years {
		header = append(header, fmt.Sprint(y))
	}
	if err := writeRow(f, sheet, 1, header...); err != nil {
		return err
	}

	for i, r := range t.Rows {
		cells := []interface{}{r.Country}
		for _, v := range r.Values {
			if v.Valid {
				cells = append(cells, v.Float)
			} else {
				cells = append(cells, "")
			}
		}
		if err := writeRow(f, sheet, i+2, cells...); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(f *xlsx.File, sheet string, row int, values ...interface{}) error {
	for i, v := range values {
		cell, err := xlsx.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("could not write %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}
