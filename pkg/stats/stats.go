package stats

import (
	"math"
	"sort"
)

// Value is a single country-year observation. Valid is false for missing data.
type Value struct {
	Float float64 `json:"value"`
	Valid bool    `json:"valid"`
}

// Known returns a present value.
func Known(f float64) Value {
	return Value{Float: f, Valid: true}
}

// Null returns a missing value.
func Null() Value {
	return Value{}
}

// Table is a country-by-year table, e.g. aid received per person
// for every country between 1995 and 2017.
type Table struct {
	Name     string `json:"name"`
	IDColumn string `json:"id_column"`
	Years    []int  `json:"years"`
	Rows     []*Row `json:"rows"`
}

type Row struct {
	Country string  `json:"country"`
	Values  []Value `json:"values"`
}

// Countries returns the country identifiers in row order.
func (t *Table) Countries() []string {
	var names []string
	for _, r := range t.Rows {
		names = append(names, r.Country)
	}
	return names
}

// Find returns the row for the given country or nil.
func (t *Table) Find(country string) *Row {
	for _, r := range t.Rows {
		if r.Country == country {
			return r
		}
	}
	return nil
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	c := &Table{
		Name:     t.Name,
		IDColumn: t.IDColumn,
		Years:    append([]int(nil), t.Years...),
		Rows:     make([]*Row, 0, len(t.Rows)),
	}
	for _, r := range t.Rows {
		c.Rows = append(c.Rows, &Row{
			Country: r.Country,
			Values:  append([]Value(nil), r.Values...),
		})
	}
	return c
}

// SortByCountry orders rows by country identifier.
func (t *Table) SortByCountry() {
	sort.SliceStable(t.Rows, func(i, j int) bool {
		return t.Rows[i].Country < t.Rows[j].Country
	})
}

// Known returns the present values of the row.
func (r *Row) Known() []float64 {
	var vals []float64
	for _, v := range r.Values {
		if v.Valid {
			vals = append(vals, v.Float)
		}
	}
	return vals
}

// Floats returns the row values, with NaN for missing ones.
func (r *Row) Floats() []float64 {
	vals := make([]float64, len(r.Values))
	for i, v := range r.Values {
		if v.Valid {
			vals[i] = v.Float
		} else {
			vals[i] = math.NaN()
		}
	}
	return vals
}

// Nulls returns the number of missing values in the row.
func (r *Row) Nulls() int {
	var n int
	for _, v := range r.Values {
		if !v.Valid {
			n++
		}
	}
	return n
}

// YearRange is an inclusive range of years.
type YearRange struct {
	First int `json:"first"`
	Last  int `json:"last"`
}

// Years lists every year in the range.
func (y YearRange) Years() []int {
	var years []int
	for year := y.First; year <= y.Last; year++ {
		years = append(years, year)
	}
	return years
}

// Mean is the average of a country's values over the year range.
type Mean struct {
	Country string  `json:"country"`
	Value   float64 `json:"value"`
}

// Series holds aid and income per person for one country, indexed by Years.
type Series struct {
	Country string    `json:"country"`
	Years   []int     `json:"years"`
	Aid     []float64 `json:"aid"`
	Income  []float64 `json:"income"`
}
