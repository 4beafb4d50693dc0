package stats

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// ImputePolicy decides what happens to a country with no data in any year.
type ImputePolicy string

const (
	// PolicyError fails the run with ErrNoData.
	PolicyError ImputePolicy = "error"
	// PolicyDrop removes the country from the table.
	PolicyDrop ImputePolicy = "drop"
	// PolicyGlobal fills the row with the mean of the whole table.
	PolicyGlobal ImputePolicy = "global"
)

// ParseImputePolicy validates a policy name.
func ParseImputePolicy(s string) (ImputePolicy, error) {
	switch p := ImputePolicy(s); p {
	case PolicyError, PolicyDrop, PolicyGlobal:
		return p, nil
	}
	return "", newError(ErrTypeConfig, nil, "unknown imputation policy %q", s)
}

// ImputeLog records what the imputer changed.
type ImputeLog struct {
	Table   string         `json:"table"`
	Filled  map[string]int `json:"filled"`
	Dropped []string       `json:"dropped,omitempty"`
	Global  []string       `json:"global,omitempty"`
}

// Cells returns the total number of filled cells.
func (l *ImputeLog) Cells() int {
	var n int
	for _, c := range l.Filled {
		n += c
	}
	return n
}

// Impute returns a copy of t where every missing value is replaced by the
// mean of the country's known values. Known values are left untouched.
func Impute(t *Table, policy ImputePolicy) (*Table, *ImputeLog, error) {
	out := t.Clone()
	ilog := &ImputeLog{Table: t.Name, Filled: make(map[string]int)}

	var global float64
	if policy == PolicyGlobal {
		var all []float64
		for _, r := range t.Rows {
			all = append(all, r.Known()...)
		}
		if len(all) == 0 {
			return nil, nil, newError(ErrTypeDataQuality, ErrNoData, "%s table has no data at all", t.Name)
		}
		global = stat.Mean(all, nil)
	}

	rows := out.Rows[:0]
	for _, r := range out.Rows {
		known := r.Known()

		var fill float64
		switch {
		case len(known) > 0:
			fill = stat.Mean(known, nil)
		case policy == PolicyDrop:
			ilog.Dropped = append(ilog.Dropped, r.Country)
			continue
		case policy == PolicyGlobal:
			fill = global
			ilog.Global = append(ilog.Global, r.Country)
		default:
			return nil, nil, newError(ErrTypeDataQuality, ErrNoData, "%s table has no values for %s", t.Name, r.Country).
				WithContext("country", r.Country)
		}

		for i, v := range r.Values {
			if !v.Valid {
				r.Values[i] = Known(fill)
				ilog.Filled[r.Country]++
			}
		}
		rows = append(rows, r)
	}
	out.Rows = rows

	return out, ilog, nil
}

func (l *ImputeLog) String() string {
	return fmt.Sprintf("%s: %d cells filled in %d countries, %d dropped, %d from global mean",
		l.Table, l.Cells(), len(l.Filled), len(l.Dropped), len(l.Global))
}
