package stats

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterCountries(t *testing.T) {
	years := []int{1995, 1996}
	tbl := newTable("aid", years, map[string][]*float64{
		"Kenya":      {num(1), num(2)},
		"Brazil":     {num(3), num(4)},
		"Nigeria":    {nil, num(5)},
		"Cape Verde": {num(6), num(7)},
	})
	rs := NewReferenceSet("africa", Africa)

	filtered, missing := FilterCountries(tbl, rs)

	assert.Equal(t, []string{"Cape Verde", "Kenya", "Nigeria"}, filtered.Countries())
	assert.Equal(t, years, filtered.Years)
	for _, r := range filtered.Rows {
		assert.True(t, rs.Contains(r.Country))
	}
	assert.Equal(t, []Value{Null(), Known(5)}, filtered.Find("Nigeria").Values)

	assert.Len(t, missing, rs.Len()-3)
	assert.NotContains(t, missing, "Kenya")
	assert.Contains(t, missing, "Egypt")

	// The source table is left alone.
	assert.Len(t, tbl.Rows, 4)
}

func TestFilterCountriesPresentOnlyOnce(t *testing.T) {
	tbl := newTable("aid", []int{2000}, map[string][]*float64{
		"Kenya": {num(1)},
		"Egypt": {num(2)},
		"Chile": {num(3)},
	})
	rs := NewReferenceSet("test", []string{"Kenya", "Egypt", "Kenya", "Ghana"})

	filtered, missing := FilterCountries(tbl, rs)

	counts := make(map[string]int)
	for _, c := range filtered.Countries() {
		counts[c]++
	}
	assert.Equal(t, map[string]int{"Egypt": 1, "Kenya": 1}, counts)
	assert.Equal(t, []string{"Ghana"}, missing)
}

func TestFilterCountriesIdempotent(t *testing.T) {
	tbl := newTable("aid", []int{1995, 1996}, map[string][]*float64{
		"Togo":   {num(1), nil},
		"Mali":   {num(2), num(3)},
		"France": {num(4), num(5)},
	})
	rs := NewReferenceSet("africa", Africa)

	once, _ := FilterCountries(tbl, rs)
	twice, _ := FilterCountries(once, rs)

	assert.Equal(t, once, twice)
}

func TestFilterCountriesAbsentReferenceCountry(t *testing.T) {
	tbl := newTable("aid", []int{2010}, map[string][]*float64{
		"Kenya":  {num(1)},
		"Brazil": {num(2)},
	})
	rs := NewReferenceSet("test", []string{"Kenya", "Egypt"})

	filtered, missing := FilterCountries(tbl, rs)

	assert.Equal(t, []string{"Kenya"}, filtered.Countries())
	assert.Equal(t, []string{"Egypt"}, missing)
}

func TestFilterCountriesEmpty(t *testing.T) {
	tbl := newTable("aid", []int{2010}, map[string][]*float64{
		"Brazil": {num(2)},
	})

	filtered, _ := FilterCountries(tbl, NewReferenceSet("africa", Africa))

	assert.Empty(t, filtered.Rows)
	assert.Equal(t, []int{2010}, filtered.Years)
}

func TestAlign(t *testing.T) {
	aid := newTable("aid", []int{2000}, map[string][]*float64{
		"Kenya": {num(1)},
		"Egypt": {num(2)},
		"Chad":  {num(3)},
	})
	income := newTable("income", []int{2000}, map[string][]*float64{
		"Kenya": {num(10)},
		"Egypt": {num(20)},
		"Ghana": {num(30)},
	})

	dropped := Align(aid, income)

	assert.Equal(t, []string{"Egypt", "Kenya"}, aid.Countries())
	assert.Equal(t, []string{"Egypt", "Kenya"}, income.Countries())
	assert.Equal(t, []string{"Chad (aid)", "Ghana (income)"}, dropped)
}

func TestLoadReferenceSet(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "regions.yaml", `
regions:
  east_africa:
    - Kenya
    - Uganda
    - Kenya
  empty: []
`)

	rs, err := LoadReferenceSet(path, "east_africa")
	require.NoError(t, err)
	assert.Equal(t, "east_africa", rs.Name())
	assert.Equal(t, []string{"Kenya", "Uganda"}, rs.Countries())

	_, err = LoadReferenceSet(path, "west_africa")
	assert.Error(t, err)
	assert.Equal(t, ErrTypeConfig, TypeOf(err))

	_, err = LoadReferenceSet(path, "empty")
	assert.Error(t, err)

	_, err = LoadReferenceSet(filepath.Join(dir, "missing.yaml"), "east_africa")
	assert.Error(t, err)
}

func TestAfricaReferenceSet(t *testing.T) {
	rs := NewReferenceSet("africa", Africa)

	assert.Equal(t, len(Africa), rs.Len())
	assert.True(t, rs.Contains("Cape Verde"))
	assert.True(t, rs.Contains("Guinea-Bissau"))
	assert.False(t, rs.Contains("cape verde"))
}
