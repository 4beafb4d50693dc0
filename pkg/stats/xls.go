package stats

import (
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"os"

	xlsx "github.com/360EntSecGroup-Skylar/excelize/v2"
	"github.com/anrid/xls"
)

// ExtractDataFromFile calls handler for every row of the source,
// picking a reader from the file extension.
func ExtractDataFromFile(s Source, handler func(r []string) error) error {
	switch s.Format() {
	case "csv":
		return ExtractDataFromCSV(s, handler)
	case "xlsx":
		return ExtractDataFromXLSX(s, handler)
	case "xls":
		return ExtractDataFromXLS(s, handler)
	default:
		return newError(ErrTypeLoad, ErrUnsupportedFormat, "cannot read %s table from %q", s.Name, s.Path)
	}
}

func ExtractDataFromCSV(s Source, handler func(r []string) error) error {
	slog.Debug("Loading CSV data", slog.String("table", s.Name), slog.String("path", s.Path))

	f, err := os.Open(s.Path)
	if err != nil {
		return newError(ErrTypeLoad, err, "could not open %s table", s.Name).WithContext("path", s.Path)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows := 0
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return newError(ErrTypeParse, err, "malformed %s table at line %d", s.Name, perr.Line).
					WithContext("path", s.Path)
			}
			return newError(ErrTypeParse, err, "could not read %s table", s.Name).WithContext("path", s.Path)
		}
		if err := handler(row); err != nil {
			return err
		}
		rows++
	}

	slog.Debug("Loaded CSV data", slog.String("table", s.Name), slog.Int("rows", rows))
	return nil
}

func ExtractDataFromXLS(s Source, handler func(r []string) error) error {
	slog.Debug("Loading XLS data", slog.String("table", s.Name), slog.String("path", s.Path))

	f, err := os.Open(s.Path)
	if err != nil {
		return newError(ErrTypeLoad, err, "could not open %s table", s.Name).WithContext("path", s.Path)
	}
	defer f.Close()

	wb, err := xls.OpenReader(f, "utf-8")
	if err != nil {
		return newError(ErrTypeParse, err, "could not read XLS file for %s table", s.Name).WithContext("path", s.Path)
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil
	}

	slog.Debug("Sheet info", slog.String("sheet", sheet.Name), slog.Int("rows", int(sheet.MaxRow)))

	width := -1
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			continue
		}
		var cols []string
		for j := 0; j <= row.LastCol(); j++ {
			cols = append(cols, row.Col(j))
		}
		if width < 0 {
			width = len(cols)
		}
		if err := handler(pad(cols, width)); err != nil {
			return err
		}
	}
	return nil
}

func ExtractDataFromXLSX(s Source, handler func(r []string) error) error {
	slog.Debug("Loading XLSX data", slog.String("table", s.Name), slog.String("path", s.Path))

	wb, err := xlsx.OpenFile(s.Path)
	if err != nil {
		return newError(ErrTypeParse, err, "could not read XLSX file for %s table", s.Name).WithContext("path", s.Path)
	}

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil
	}
	defaultSheet := sheets[0]

	rows, err := wb.GetRows(defaultSheet)
	if err != nil {
		return newError(ErrTypeParse, err, "could not get rows for sheet %q", defaultSheet).WithContext("path", s.Path)
	}

	slog.Debug("Sheet info", slog.String("sheet", defaultSheet), slog.Int("rows", len(rows)))

	// Excel drops trailing empty cells, so rows are padded to the header width.
	width := -1
	for _, r := range rows {
		if width < 0 {
			width = len(r)
		}
		if err := handler(pad(r, width)); err != nil {
			return err
		}
	}
	return nil
}

func pad(row []string, width int) []string {
	for len(row) < width {
		row = append(row, "")
	}
	return row
}
