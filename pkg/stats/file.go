package stats

import (
	"os"
	"path/filepath"
	"strings"
)

// Source is a file containing a country-by-year table.
// This is typically a Gapminder CSV export, but Excel files work too.
type Source struct {
	Name string
	Path string
}

// Format returns the lower-cased file extension without the dot.
func (s Source) Format() string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(s.Path)), ".")
}

// RawTable is a table as read from a source: a header row and
// text records, all columns kept.
type RawTable struct {
	Name    string
	Header  []string
	Records [][]string
}

// Column returns the index of the named header column, or -1.
func (t *RawTable) Column(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// LoadTable reads the whole source into memory. The first row is the header.
// Rows without any content are skipped.
func LoadTable(s Source) (*RawTable, error) {
	if _, err := os.Stat(s.Path); err != nil {
		return nil, newError(ErrTypeLoad, err, "could not open %s table", s.Name).
			WithContext("path", s.Path)
	}

	t := &RawTable{Name: s.Name}

	err := ExtractDataFromFile(s, func(row []string) error {
		if t.Header == nil {
			t.Header = trimCells(row)
			if len(t.Header) > 0 {
				t.Header[0] = strings.TrimPrefix(t.Header[0], "\ufeff")
			}
			return nil
		}
		rec := trimCells(row)
		if blank(rec) {
			return nil
		}
		t.Records = append(t.Records, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(t.Header) == 0 {
		return nil, newError(ErrTypeParse, ErrEmptyFile, "%s table has no header row", s.Name).
			WithContext("path", s.Path)
	}

	return t, nil
}

func trimCells(row []string) []string {
	out := make([]string, len(row))
	for i, c := range row {
		out[i] = strings.Trim(c, " \n\t\r")
	}
	return out
}

func blank(row []string) bool {
	for _, c := range row {
		if c != "" {
			return false
		}
	}
	return true
}
