package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Insights are the facts the report draws its conclusions from.
type Insights struct {
	HighestAid Mean `json:"highest_aid"`
	LowestAid  Mean `json:"lowest_aid"`

	FirstYear int `json:"first_year"`
	LastYear  int `json:"last_year"`

	// Among the focus countries.
	HighestIncomeFirst string `json:"highest_income_first"`
	HighestIncomeLast  string `json:"highest_income_last"`
	LowestIncomeFirst  string `json:"lowest_income_first"`
	LowestIncomeLast   string `json:"lowest_income_last"`

	Countries []CountryInsight `json:"countries"`
}

type CountryInsight struct {
	Country          string  `json:"country"`
	IncomeFirst      float64 `json:"income_first"`
	IncomeLast       float64 `json:"income_last"`
	IncomeChange     float64 `json:"income_change"`
	IncomeChangePct  float64 `json:"income_change_pct"`
	AidTrend         float64 `json:"aid_trend"`
	AidVolatility    float64 `json:"aid_volatility"`
	IncomeIncreasing bool    `json:"income_increasing"`
}

// Analyze derives insights from a ranking and the focus series.
func Analyze(ranked []Mean, series []Series) Insights {
	var in Insights
	if len(ranked) > 0 {
		in.HighestAid = ranked[0]
		in.LowestAid = ranked[len(ranked)-1]
	}
	if len(series) == 0 || len(series[0].Years) == 0 {
		return in
	}

	years := series[0].Years
	in.FirstYear = years[0]
	in.LastYear = years[len(years)-1]

	hiFirst, hiLast := math.Inf(-1), math.Inf(-1)
	loFirst, loLast := math.Inf(1), math.Inf(1)

	for _, s := range series {
		ci := CountryInsight{Country: s.Country}

		if len(s.Income) > 0 {
			ci.IncomeFirst = s.Income[0]
			ci.IncomeLast = s.Income[len(s.Income)-1]
			ci.IncomeChange = ci.IncomeLast - ci.IncomeFirst
			if ci.IncomeFirst != 0 {
				ci.IncomeChangePct = ci.IncomeChange / ci.IncomeFirst * 100
			}
			ci.IncomeIncreasing = ci.IncomeChange > 0

			if ci.IncomeFirst > hiFirst {
				hiFirst, in.HighestIncomeFirst = ci.IncomeFirst, s.Country
			}
			if ci.IncomeLast > hiLast {
				hiLast, in.HighestIncomeLast = ci.IncomeLast, s.Country
			}
			if ci.IncomeFirst < loFirst {
				loFirst, in.LowestIncomeFirst = ci.IncomeFirst, s.Country
			}
			if ci.IncomeLast < loLast {
				loLast, in.LowestIncomeLast = ci.IncomeLast, s.Country
			}
		}

		ci.AidTrend, ci.AidVolatility = trend(s.Years, s.Aid)
		in.Countries = append(in.Countries, ci)
	}

	return in
}

// trend returns the least squares slope of values over years and their
// coefficient of variation. NaN values are skipped.
func trend(years []int, values []float64) (slope, volatility float64) {
	var xs, ys []float64
	for i, v := range values {
		if math.IsNaN(v) || i >= len(years) {
			continue
		}
		xs = append(xs, float64(years[i]))
		ys = append(ys, v)
	}
	if len(ys) < 2 {
		return 0, 0
	}

	_, slope = stat.LinearRegression(xs, ys, nil, false)

	if mean := stat.Mean(ys, nil); mean != 0 {
		volatility = stat.StdDev(ys, nil) / math.Abs(mean)
	}
	return slope, volatility
}
