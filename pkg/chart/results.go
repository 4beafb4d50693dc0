package chart

import (
	"fmt"

	"github.com/anrid/africa-aid-stats/pkg/stats"
)

// Names of the charts rendered for a run.
const (
	MeanAid        = "mean_aid"
	AidOverTime    = "aid_over_time"
	IncomeOverTime = "income_over_time"
)

// RenderResults draws the mean aid bar chart and the aid and income line
// charts of the focus countries. path maps a chart name to its file.
func RenderResults(r *stats.Results, path func(name string) string) ([]string, error) {
	region := r.Region
	span := fmt.Sprintf("%d-%d", r.Years.First, r.Years.Last)

	var written []string

	if err := BarChart(
		fmt.Sprintf("Average Aid Received per Person, %s (%s)", region, span),
		"Average Aid Received per Person (Dollars)",
		r.Ranking, path(MeanAid),
	); err != nil {
		return written, err
	}
	written = append(written, path(MeanAid))

	if err := LineChart("Aid Received over the Years", "Aid Received per Person (Dollars)",
		r.Focus, Aid, path(AidOverTime)); err != nil {
		return written, err
	}
	written = append(written, path(AidOverTime))

	if err := LineChart("Income over the Years", "Income per Person (Dollars)",
		r.Focus, Income, path(IncomeOverTime)); err != nil {
		return written, err
	}
	written = append(written, path(IncomeOverTime))

	return written, nil
}
