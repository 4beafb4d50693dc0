package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Results is everything a run produces. It is saved as JSON by the create
// command and read back by the show command.
type Results struct {
	Generated time.Time `json:"generated"`
	Region    string    `json:"region"`
	Years     YearRange `json:"years"`

	Aid    *Table `json:"aid"`
	Income *Table `json:"income"`

	Missing   []MissingSummary    `json:"missing"`
	Imputed   []*ImputeLog        `json:"imputed"`
	Unmatched map[string][]string `json:"unmatched"`
	Unaligned []string            `json:"unaligned,omitempty"`

	Ranking []Mean   `json:"ranking"`
	Top     []Mean   `json:"top"`
	Bottom  []Mean   `json:"bottom"`
	Focus   []Series `json:"focus"`

	Insights Insights `json:"insights"`
}

// LoadIfExists reads a saved snapshot. found is false when the file does not exist.
func LoadIfExists(path string) (r *Results, found bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, newError(ErrTypeLoad, err, "could not read results")
	}

	r = new(Results)
	if err := json.Unmarshal(data, r); err != nil {
		return nil, false, newError(ErrTypeParse, err, "could not parse results in %s", path)
	}

	return r, true, nil
}

// Save writes the snapshot as indented JSON, creating the directory if needed.
func (r *Results) Save(path string) error {
	js, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode results: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create results directory: %w", err)
	}
	if err := os.WriteFile(path, js, 0644); err != nil {
		return fmt.Errorf("could not write results: %w", err)
	}
	return nil
}

// Info prints a short description of the snapshot.
func (r *Results) Info(w io.Writer) {
	var aid, income int
	if r.Aid != nil {
		aid = len(r.Aid.Rows)
	}
	if r.Income != nil {
		income = len(r.Income.Rows)
	}

	fmt.Fprintf(w, `
	Generated    : %s
	Region       : %s
	Years        : %d - %d
	Countries    : %d aid / %d income
	Focus        : %d
	`, r.Generated.Format(time.RFC3339), r.Region, r.Years.First, r.Years.Last, aid, income, len(r.Focus))
	fmt.Fprintln(w, "")
}

// Dump prints any value as indented JSON.
func Dump(w io.Writer, o interface{}) error {
	js, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(js))
	return err
}
