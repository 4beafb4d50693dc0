package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/anrid/africa-aid-stats/pkg/stats"
)

var heading = color.New(color.FgYellow, color.Bold)

// Print writes the full text report of a run.
func Print(w io.Writer, r *stats.Results) {
	p := message.NewPrinter(language.English)

	span := fmt.Sprintf("%d-%d", r.Years.First, r.Years.Last)

	heading.Fprintf(w, "\nAverage Aid Received per Person, %s (%s)\n", r.Region, span)
	PrintRanking(w, p, r.Ranking)

	heading.Fprintf(w, "\nTop %d and Bottom %d\n", len(r.Top), len(r.Bottom))
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Group", "Country", "Mean Aid"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, m := range r.Top {
		table.Append([]string{"top", m.Country, p.Sprintf("%.2f", m.Value)})
	}
	for _, m := range r.Bottom {
		table.Append([]string{"bottom", m.Country, p.Sprintf("%.2f", m.Value)})
	}
	table.Render()

	heading.Fprintln(w, "\nAid Received per Person over the Years")
	PrintSeries(w, p, r.Focus, func(s stats.Series) []float64 { return s.Aid })

	heading.Fprintln(w, "\nIncome per Person over the Years")
	PrintSeries(w, p, r.Focus, func(s stats.Series) []float64 { return s.Income })

	heading.Fprintln(w, "\nMissing Values before Imputation")
	PrintMissing(w, r.Missing, r.Imputed)

	heading.Fprintln(w, "\nInsights")
	PrintInsights(w, p, r.Insights)
}

// PrintRanking writes one line per country, highest mean first.
func PrintRanking(w io.Writer, p *message.Printer, ranked []stats.Mean) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Country", "Mean"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for i, m := range ranked {
		table.Append([]string{fmt.Sprintf("%02d", i+1), m.Country, p.Sprintf("%.2f", m.Value)})
	}
	table.Render()
}

// PrintSeries writes a year-by-country table.
func PrintSeries(w io.Writer, p *message.Printer, series []stats.Series, values func(stats.Series) []float64) {
	if len(series) == 0 {
		fmt.Fprintln(w, "no focus countries")
		return
	}

	header := []string{"Year"}
	for _, s := range series {
		header = append(header, s.Country)
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for i, year := range series[0].Years {
		row := []string{strconv.Itoa(year)}
		for _, s := range series {
			v := values(s)
			if i < len(v) {
				row = append(row, p.Sprintf("%.2f", v[i]))
			} else {
				row = append(row, "")
			}
		}
		table.Append(row)
	}
	table.Render()
}

// PrintMissing writes the per-table missing value counts and what imputation did.
func PrintMissing(w io.Writer, missing []stats.MissingSummary, imputed []*stats.ImputeLog) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Table", "Countries", "With Nulls", "Null Cells", "Worst"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, m := range missing {
		table.Append([]string{
			m.Table,
			strconv.Itoa(m.Countries),
			strconv.Itoa(m.WithNulls),
			strconv.Itoa(m.NullCells),
			worst(m.NullsByCountry),
		})
	}
	table.Render()

	for _, l := range imputed {
		fmt.Fprintln(w, l.String())
	}
}

// PrintInsights writes the derived conclusions.
func PrintInsights(w io.Writer, p *message.Printer, in stats.Insights) {
	p.Fprintf(w, "* %s received the highest average aid per person (%.2f)\n", in.HighestAid.Country, in.HighestAid.Value)
	p.Fprintf(w, "* %s received the lowest average aid per person (%.2f)\n", in.LowestAid.Country, in.LowestAid.Value)

	if len(in.Countries) == 0 {
		return
	}

	p.Fprintf(w, "* Highest income in %d: %s, in %d: %s\n", in.FirstYear, in.HighestIncomeFirst, in.LastYear, in.HighestIncomeLast)
	p.Fprintf(w, "* Lowest income in %d: %s, in %d: %s\n", in.FirstYear, in.LowestIncomeFirst, in.LastYear, in.LowestIncomeLast)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Country", "Income Change", "Income Change %", "Aid Trend / Year", "Aid Volatility"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, c := range in.Countries {
		table.Append([]string{
			c.Country,
			p.Sprintf("%.2f", c.IncomeChange),
			p.Sprintf("%.1f%%", c.IncomeChangePct),
			p.Sprintf("%.3f", c.AidTrend),
			p.Sprintf("%.2f", c.AidVolatility),
		})
	}
	table.Render()
}

func worst(nulls map[string]int) string {
	if len(nulls) == 0 {
		return "-"
	}
	names := make([]string, 0, len(nulls))
	for c := range nulls {
		names = append(names, c)
	}
	sort.Slice(names, func(i, j int) bool {
		if nulls[names[i]] != nulls[names[j]] {
			return nulls[names[i]] > nulls[names[j]]
		}
		return names[i] < names[j]
	})
	return fmt.Sprintf("%s (%d)", names[0], nulls[names[0]])
}
