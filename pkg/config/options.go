package config

import (
	"strings"

	"github.com/anrid/africa-aid-stats/pkg/stats"
)

// ReferenceSet returns the configured region, falling back to the
// compiled-in African list when no region file is set.
func (c *Config) ReferenceSet() (*stats.ReferenceSet, error) {
	if c.Regions.File == "" {
		return stats.NewReferenceSet(c.Regions.Name, stats.Africa), nil
	}
	return stats.LoadReferenceSet(c.Regions.File, c.Regions.Name)
}

// PipelineOptions translates the configuration into pipeline options.
func (c *Config) PipelineOptions() (stats.Options, error) {
	rs, err := c.ReferenceSet()
	if err != nil {
		return stats.Options{}, err
	}

	policy, err := stats.ParseImputePolicy(c.Impute.Policy)
	if err != nil {
		return stats.Options{}, err
	}

	var focus []string
	for _, f := range c.Analysis.Focus {
		if f = strings.TrimSpace(f); f != "" {
			focus = append(focus, f)
		}
	}

	return stats.Options{
		Aid:       stats.Source{Name: "aid", Path: c.Inputs.Aid},
		Income:    stats.Source{Name: "income", Path: c.Inputs.Income},
		IDColumn:  c.IDColumn,
		Years:     stats.YearRange{First: c.Years.First, Last: c.Years.Last},
		Reference: rs,
		Policy:    policy,
		TopN:      c.Analysis.TopN,
		Focus:     focus,
	}, nil
}
