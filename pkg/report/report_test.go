package report

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	xlsx "github.com/360EntSecGroup-Skylar/excelize/v2"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anrid/africa-aid-stats/pkg/stats"
)

func testResults() *stats.Results {
	years := []int{1995, 1996}
	aid := &stats.Table{
		Name:     "aid",
		IDColumn: "country",
		Years:    years,
		Rows: []*stats.Row{
			{Country: "Egypt", Values: []stats.Value{stats.Known(5), stats.Known(5)}},
			{Country: "Kenya", Values: []stats.Value{stats.Known(10), stats.Known(30)}},
		},
	}
	income := aid.Clone()
	income.Name = "income"

	ranking := []stats.Mean{{Country: "Kenya", Value: 20}, {Country: "Egypt", Value: 5}}
	focus := []stats.Series{
		{Country: "Kenya", Years: years, Aid: []float64{10, 30}, Income: []float64{1000, 1250}},
		{Country: "Egypt", Years: years, Aid: []float64{5, 5}, Income: []float64{2000, 2100}},
	}

	return &stats.Results{
		Generated: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Region:    "africa",
		Years:     stats.YearRange{First: 1995, Last: 1996},
		Aid:       aid,
		Income:    income,
		Missing: []stats.MissingSummary{
			{Table: "aid", Countries: 2, Years: 2, WithNulls: 1, NullCells: 1, NullsByCountry: map[string]int{"Kenya": 1}},
		},
		Imputed:  []*stats.ImputeLog{{Table: "aid", Filled: map[string]int{"Kenya": 1}}},
		Ranking:  ranking,
		Top:      ranking[:1],
		Bottom:   ranking[1:],
		Focus:    focus,
		Insights: stats.Analyze(ranking, focus),
	}
}

func TestPrint(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	Print(&buf, testResults())
	out := buf.String()

	assert.Contains(t, out, "Average Aid Received per Person, africa (1995-1996)")
	assert.Contains(t, out, "Kenya")
	assert.Contains(t, out, "20.00")
	assert.Contains(t, out, "Kenya (1)")
	assert.Contains(t, out, "aid: 1 cells filled in 1 countries")
	assert.Contains(t, out, "* Kenya received the highest average aid per person (20.00)")
	assert.Contains(t, out, "* Egypt received the lowest average aid per person (5.00)")
}

func TestPrintSeriesEmpty(t *testing.T) {
	var buf bytes.Buffer
	PrintSeries(&buf, nil, nil, nil)
	assert.Equal(t, "no focus countries\n", buf.String())
}

func TestWorst(t *testing.T) {
	assert.Equal(t, "-", worst(nil))
	assert.Equal(t, "Chad (3)", worst(map[string]int{"Mali": 3, "Chad": 3, "Togo": 1}))
}

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "results.xlsx")
	require.NoError(t, WriteWorkbook(path, testResults()))

	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{SheetAid, SheetIncome, SheetRanking, SheetFocus}, f.GetSheetList())

	rows, err := f.GetRows(SheetAid)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"country", "1995", "1996"}, rows[0])
	assert.Equal(t, "Egypt", rows[1][0])
	assert.Equal(t, "Kenya", rows[2][0])

	rows, err = f.GetRows(SheetRanking)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Rank", "Country", "Mean Aid"}, rows[0])
	assert.Equal(t, "Kenya", rows[1][1])
	assert.Equal(t, "Egypt", rows[2][1])

	rows, err = f.GetRows(SheetFocus)
	require.NoError(t, err)
	// One row per country and year, plus the header.
	assert.Len(t, rows, 5)
}
