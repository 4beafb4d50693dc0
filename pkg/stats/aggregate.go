package stats

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Means computes every country's mean over its known values, in row order.
func Means(t *Table) ([]Mean, error) {
	means := make([]Mean, 0, len(t.Rows))
	for _, r := range t.Rows {
		known := r.Known()
		if len(known) == 0 {
			return nil, newError(ErrTypeDataQuality, ErrNoData, "%s table has no values for %s", t.Name, r.Country).
				WithContext("country", r.Country)
		}
		means = append(means, Mean{Country: r.Country, Value: stat.Mean(known, nil)})
	}
	return means, nil
}

// Rank sorts means from highest to lowest. Equal values are ordered by country
// so that the ranking is the same on every run.
func Rank(means []Mean) []Mean {
	ranked := append([]Mean(nil), means...)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Value != ranked[j].Value {
			return ranked[i].Value > ranked[j].Value
		}
		return ranked[i].Country < ranked[j].Country
	})
	return ranked
}

// Top returns the first n entries of a ranking.
func Top(ranked []Mean, n int) []Mean {
	n = clamp(n, len(ranked))
	return append([]Mean(nil), ranked[:n]...)
}

// Bottom returns the last n entries of a ranking, still from higher to lower.
func Bottom(ranked []Mean, n int) []Mean {
	n = clamp(n, len(ranked))
	return append([]Mean(nil), ranked[len(ranked)-n:]...)
}

// Focus picks the countries of interest: the configured ones, or the
// top n followed by the bottom n when none are configured. Each country
// is listed once.
func Focus(configured []string, ranked []Mean, n int) []string {
	if len(configured) > 0 {
		return dedupe(configured)
	}

	var countries []string
	for _, m := range append(Top(ranked, n), Bottom(ranked, n)...) {
		countries = append(countries, m.Country)
	}
	return dedupe(countries)
}

// dedupe keeps the first occurrence of every country.
func dedupe(countries []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, c := range countries {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

func clamp(n, limit int) int {
	if n < 0 {
		return 0
	}
	if n > limit {
		return limit
	}
	return n
}

// ExtractSeries returns the aid and income series of each country. Both tables
// must cover the same years. Missing values come out as NaN.
func ExtractSeries(aid, income *Table, countries []string) ([]Series, error) {
	if len(aid.Years) != len(income.Years) {
		return nil, newError(ErrTypeSchema, nil, "aid and income tables cover different years")
	}
	for i := range aid.Years {
		if aid.Years[i] != income.Years[i] {
			return nil, newError(ErrTypeSchema, nil, "aid and income tables cover different years")
		}
	}

	var out []Series
	for _, c := range countries {
		a := aid.Find(c)
		if a == nil {
			return nil, newError(ErrTypeDataQuality, ErrUnknownCountry, "%s is not in the %s table", c, aid.Name).
				WithContext("country", c)
		}
		inc := income.Find(c)
		if inc == nil {
			return nil, newError(ErrTypeDataQuality, ErrUnknownCountry, "%s is not in the %s table", c, income.Name).
				WithContext("country", c)
		}
		out = append(out, Series{
			Country: c,
			Years:   append([]int(nil), aid.Years...),
			Aid:     a.Floats(),
			Income:  inc.Floats(),
		})
	}
	return out, nil
}

// MissingSummary describes the missing values of a table before imputation.
type MissingSummary struct {
	Table          string         `json:"table"`
	Countries      int            `json:"countries"`
	Years          int            `json:"years"`
	WithNulls      int            `json:"with_nulls"`
	NullCells      int            `json:"null_cells"`
	NullsByCountry map[string]int `json:"nulls_by_country"`
}

// Summarize counts the missing values of each country.
func Summarize(t *Table) MissingSummary {
	s := MissingSummary{
		Table:          t.Name,
		Countries:      len(t.Rows),
		Years:          len(t.Years),
		NullsByCountry: make(map[string]int),
	}
	for _, r := range t.Rows {
		n := r.Nulls()
		if n == 0 {
			continue
		}
		s.WithNulls++
		s.NullCells += n
		s.NullsByCountry[r.Country] = n
	}
	return s
}
