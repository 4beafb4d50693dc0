package stats

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// SelectColumns keeps the identifier column and one column per year in range,
// in ascending year order. Any other column is dropped.
func SelectColumns(raw *RawTable, idColumn string, years YearRange) (*Table, error) {
	idIdx := raw.Column(idColumn)
	if idIdx < 0 {
		return nil, newError(ErrTypeSchema, ErrMissingColumn, "%s table has no %q column", raw.Name, idColumn).
			WithContext("column", idColumn)
	}

	yearIdx := make([]int, 0, years.Last-years.First+1)
	for _, y := range years.Years() {
		name := strconv.Itoa(y)
		i := raw.Column(name)
		if i < 0 {
			return nil, newError(ErrTypeSchema, ErrMissingColumn, "%s table has no %q column", raw.Name, name).
				WithContext("column", name)
		}
		yearIdx = append(yearIdx, i)
	}

	t := &Table{
		Name:     raw.Name,
		IDColumn: idColumn,
		Years:    years.Years(),
	}

	seen := make(map[string]bool)
	for n, rec := range raw.Records {
		if len(rec) < len(raw.Header) {
			return nil, newError(ErrTypeParse, nil, "%s table: record %d has %d fields, header has %d",
				raw.Name, n+1, len(rec), len(raw.Header))
		}

		for i := len(raw.Header); i < len(rec); i++ {
			if rec[i] != "" {
				return nil, newError(ErrTypeParse, nil, "%s table: record %d has %d fields, header has %d",
					raw.Name, n+1, len(rec), len(raw.Header))
			}
		}

		country := rec[idIdx]
		if country == "" {
			return nil, newError(ErrTypeParse, nil, "%s table: record %d has no %s", raw.Name, n+1, idColumn).
				WithContext("record", n+1)
		}
		if seen[country] {
			return nil, newError(ErrTypeSchema, ErrDuplicateCountry, "%s table lists %q more than once", raw.Name, country).
				WithContext("record", n+1)
		}
		seen[country] = true

		row := &Row{Country: country, Values: make([]Value, len(yearIdx))}
		for j, i := range yearIdx {
			v, err := ParseValue(rec[i])
			if err != nil {
				return nil, newError(ErrTypeParse, err, "%s table: bad value for %s in %d", raw.Name, country, t.Years[j]).
					WithContext("value", rec[i])
			}
			row.Values[j] = v
		}
		t.Rows = append(t.Rows, row)
	}

	return t, nil
}

var suffixes = map[string]float64{
	"k": 1e3,
	"K": 1e3,
	"M": 1e6,
	"B": 1e9,
}

// ParseValue parses a table cell. Empty cells, "NaN", ".." and "-" are missing.
// Gapminder style suffixes ("12.3k", "1.5M") and the unicode minus sign are accepted.
func ParseValue(cell string) (Value, error) {
	cell = strings.TrimSpace(cell)
	switch strings.ToLower(cell) {
	case "", "nan", "na", "n/a", "..", "-":
		return Null(), nil
	}

	cell = strings.ReplaceAll(cell, "\u2212", "-")
	cell = strings.ReplaceAll(cell, ",", "")

	mult := 1.0
	for s, m := range suffixes {
		if strings.HasSuffix(cell, s) {
			mult = m
			cell = strings.TrimSuffix(cell, s)
			break
		}
	}

	f, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return Null(), err
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return Null(), fmt.Errorf("%q is not a finite number", cell)
	}
	return Known(f * mult), nil
}
