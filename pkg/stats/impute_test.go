package stats

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeCountries() *Table {
	return newTable("aid", []int{1995, 1996, 1997}, map[string][]*float64{
		"A": {num(10), nil, num(30)},
		"B": {num(5), num(5), num(5)},
		"C": {nil, nil, nil},
	})
}

func TestImputeAllNullPolicies(t *testing.T) {
	tests := []struct {
		name       string
		policy     ImputePolicy
		wantErr    error
		wantC      []float64
		wantRows   []string
		wantGlobal []string
		wantDrop   []string
	}{
		{
			name:    "error",
			policy:  PolicyError,
			wantErr: ErrNoData,
		},
		{
			name:     "drop",
			policy:   PolicyDrop,
			wantRows: []string{"A", "B"},
			wantDrop: []string{"C"},
		},
		{
			// (10 + 30 + 5 + 5 + 5) / 5
			name:       "global",
			policy:     PolicyGlobal,
			wantRows:   []string{"A", "B", "C"},
			wantC:      []float64{11, 11, 11},
			wantGlobal: []string{"C"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := threeCountries()
			out, ilog, err := Impute(in, tt.policy)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Equal(t, ErrTypeDataQuality, TypeOf(err))
				assert.Contains(t, err.Error(), "C")
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tt.wantRows, out.Countries())
			assert.Equal(t, []float64{10, 20, 30}, floatsOf(out.Find("A")))
			assert.Equal(t, []float64{5, 5, 5}, floatsOf(out.Find("B")))
			if tt.wantC != nil {
				assert.InDeltaSlice(t, tt.wantC, floatsOf(out.Find("C")), 1e-9)
			}
			assert.Equal(t, tt.wantDrop, ilog.Dropped)
			assert.Equal(t, tt.wantGlobal, ilog.Global)

			for _, r := range out.Rows {
				assert.Zero(t, r.Nulls(), r.Country)
			}
		})
	}
}

func TestImputeKeepsKnownValues(t *testing.T) {
	in := newTable("income", []int{2000, 2001, 2002, 2003}, map[string][]*float64{
		"Kenya": {nil, num(2), nil, num(6)},
		"Mali":  {num(1), num(2), num(3), num(4)},
	})

	out, ilog, err := Impute(in, PolicyError)
	require.NoError(t, err)

	for _, r := range in.Rows {
		for i, x := range r.Values {
			if x.Valid {
				assert.Equal(t, x, out.Find(r.Country).Values[i])
			}
		}
	}
	assert.Equal(t, []float64{4, 2, 4, 6}, floatsOf(out.Find("Kenya")))
	assert.Equal(t, map[string]int{"Kenya": 2}, ilog.Filled)
	assert.Equal(t, 2, ilog.Cells())

	// The input keeps its missing values.
	assert.Equal(t, 2, in.Find("Kenya").Nulls())
}

func TestImputeGlobalWithoutAnyData(t *testing.T) {
	in := newTable("aid", []int{2000}, map[string][]*float64{
		"Kenya": {nil},
	})

	_, _, err := Impute(in, PolicyGlobal)
	assert.True(t, errors.Is(err, ErrNoData))
}

func TestParseImputePolicy(t *testing.T) {
	for _, s := range []string{"error", "drop", "global"} {
		p, err := ParseImputePolicy(s)
		require.NoError(t, err)
		assert.Equal(t, ImputePolicy(s), p)
	}

	_, err := ParseImputePolicy("zero")
	assert.Error(t, err)
	assert.Equal(t, ErrTypeConfig, TypeOf(err))
}
