package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	years := []int{2000, 2001, 2002}
	ranked := []Mean{
		{Country: "Cape Verde", Value: 250},
		{Country: "Djibouti", Value: 150},
		{Country: "Algeria", Value: 6},
	}
	series := []Series{
		{Country: "Cape Verde", Years: years, Aid: []float64{100, 200, 300}, Income: []float64{3000, 3200, 3400}},
		{Country: "Algeria", Years: years, Aid: []float64{6, 6, 6}, Income: []float64{4000, 3900, 3800}},
	}

	in := Analyze(ranked, series)

	assert.Equal(t, ranked[0], in.HighestAid)
	assert.Equal(t, ranked[2], in.LowestAid)
	assert.Equal(t, 2000, in.FirstYear)
	assert.Equal(t, 2002, in.LastYear)
	assert.Equal(t, "Algeria", in.HighestIncomeFirst)
	assert.Equal(t, "Algeria", in.HighestIncomeLast)
	assert.Equal(t, "Cape Verde", in.LowestIncomeFirst)
	assert.Equal(t, "Cape Verde", in.LowestIncomeLast)

	require.Len(t, in.Countries, 2)
	cv := in.Countries[0]
	assert.Equal(t, 400.0, cv.IncomeChange)
	assert.InDelta(t, 13.333, cv.IncomeChangePct, 1e-3)
	assert.True(t, cv.IncomeIncreasing)
	assert.InDelta(t, 100, cv.AidTrend, 1e-9)
	assert.Greater(t, cv.AidVolatility, 0.0)

	dz := in.Countries[1]
	assert.False(t, dz.IncomeIncreasing)
	assert.InDelta(t, 0, dz.AidTrend, 1e-9)
	assert.InDelta(t, 0, dz.AidVolatility, 1e-9)
}

func TestAnalyzeSkipsMissingAid(t *testing.T) {
	series := []Series{{
		Country: "Kenya",
		Years:   []int{2000, 2001, 2002},
		Aid:     []float64{1, math.NaN(), 3},
		Income:  []float64{1, 1, 1},
	}}

	in := Analyze(nil, series)

	require.Len(t, in.Countries, 1)
	assert.InDelta(t, 1, in.Countries[0].AidTrend, 1e-9)
	assert.Zero(t, in.HighestAid)
}

func TestAnalyzeEmpty(t *testing.T) {
	assert.Equal(t, Insights{}, Analyze(nil, nil))
}
