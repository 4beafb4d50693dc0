package stats

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v2"
)

// Africa lists the countries treated as African when no region file is given.
var Africa = []string{
	"Algeria", "Egypt", "Libya", "Morocco", "Tunisia",
	"Burundi", "Comoros", "Djibouti", "Eritrea", "Ethiopia",
	"Kenya", "Madagascar", "Malawi", "Mauritius", "Mayotte",
	"Mozambique", "Rwanda", "Somalia", "Sudan", "Uganda",
	"Tanzania", "Zambia", "Zimbabwe", "Angola", "Cameroon",
	"Chad", "Congo", "Equatorial Guinea", "Gabon", "Botswana",
	"Lesotho", "Namibia", "South Africa", "Swaziland", "Benin",
	"Burkina Faso", "Cape Verde", "Gambia", "Ghana", "Guinea",
	"Guinea-Bissau", "Liberia", "Mali", "Mauritania", "Niger",
	"Nigeria", "Senegal", "Sierra Leone", "Togo",
}

// ReferenceSet is a named set of countries used to filter tables.
type ReferenceSet struct {
	name    string
	members map[string]bool
}

// NewReferenceSet builds a set from country names. Duplicates collapse.
func NewReferenceSet(name string, countries []string) *ReferenceSet {
	rs := &ReferenceSet{name: name, members: make(map[string]bool, len(countries))}
	for _, c := range countries {
		rs.members[c] = true
	}
	return rs
}

func (rs *ReferenceSet) Name() string { return rs.name }

func (rs *ReferenceSet) Len() int { return len(rs.members) }

func (rs *ReferenceSet) Contains(country string) bool {
	return rs.members[country]
}

// Countries returns the members sorted by name.
func (rs *ReferenceSet) Countries() []string {
	out := make([]string, 0, len(rs.members))
	for c := range rs.members {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

type regionFile struct {
	Regions map[string][]string `yaml:"regions"`
}

// LoadReferenceSet reads the named region from a YAML file of the form
//
//	regions:
//	  africa: [Algeria, Egypt, ...]
func LoadReferenceSet(path, region string) (*ReferenceSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newError(ErrTypeConfig, err, "could not read region file")
	}

	var rf regionFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, newError(ErrTypeConfig, err, "could not parse region file %s", path)
	}

	countries, ok := rf.Regions[region]
	if !ok {
		return nil, newError(ErrTypeConfig, nil, "region %q not found in %s", region, path)
	}
	if len(countries) == 0 {
		return nil, newError(ErrTypeConfig, nil, "region %q in %s is empty", region, path)
	}

	return NewReferenceSet(region, countries), nil
}

// FilterCountries keeps the rows whose country belongs to the reference set,
// sorted by country. It also returns the reference countries the table lacks.
// An empty result is not an error here.
func FilterCountries(t *Table, rs *ReferenceSet) (filtered *Table, missing []string) {
	filtered = &Table{
		Name:     t.Name,
		IDColumn: t.IDColumn,
		Years:    append([]int(nil), t.Years...),
	}

	present := make(map[string]bool)
	for _, r := range t.Rows {
		if !rs.Contains(r.Country) || present[r.Country] {
			continue
		}
		present[r.Country] = true
		filtered.Rows = append(filtered.Rows, &Row{
			Country: r.Country,
			Values:  append([]Value(nil), r.Values...),
		})
	}
	filtered.SortByCountry()

	for _, c := range rs.Countries() {
		if !present[c] {
			missing = append(missing, c)
		}
	}

	return filtered, missing
}

// Align restricts both tables to the countries they have in common.
// It returns the countries dropped from either table.
func Align(a, b *Table) (dropped []string) {
	inA := make(map[string]bool)
	for _, r := range a.Rows {
		inA[r.Country] = true
	}
	inB := make(map[string]bool)
	for _, r := range b.Rows {
		inB[r.Country] = true
	}

	keep := func(t *Table, other map[string]bool) {
		rows := t.Rows[:0]
		for _, r := range t.Rows {
			if other[r.Country] {
				rows = append(rows, r)
			} else {
				dropped = append(dropped, fmt.Sprintf("%s (%s)", r.Country, t.Name))
			}
		}
		t.Rows = rows
	}
	keep(a, inB)
	keep(b, inA)

	sort.Strings(dropped)
	return dropped
}
