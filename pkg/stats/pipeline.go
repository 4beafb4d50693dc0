package stats

import (
	"context"
	"log/slog"
	"time"
)

// Options configure a pipeline run.
type Options struct {
	Aid       Source
	Income    Source
	IDColumn  string
	Years     YearRange
	Reference *ReferenceSet
	Policy    ImputePolicy
	TopN      int
	Focus     []string
}

// Pipeline loads the aid and income tables, cleans them and computes the
// ranking and focus series.
type Pipeline struct {
	opts   Options
	logger *slog.Logger
}

func NewPipeline(opts Options, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Reference == nil {
		opts.Reference = NewReferenceSet("africa", Africa)
	}
	if opts.Policy == "" {
		opts.Policy = PolicyError
	}
	if opts.TopN <= 0 {
		opts.TopN = 2
	}
	return &Pipeline{opts: opts, logger: logger}
}

// Run executes every stage and stops at the first error.
func (p *Pipeline) Run(ctx context.Context) (*Results, error) {
	res := &Results{
		Generated: time.Now(),
		Region:    p.opts.Reference.Name(),
		Years:     p.opts.Years,
		Unmatched: make(map[string][]string),
	}

	aid, err := p.prepare(ctx, p.opts.Aid, res)
	if err != nil {
		return nil, err
	}
	income, err := p.prepare(ctx, p.opts.Income, res)
	if err != nil {
		return nil, err
	}

	if err := p.align(aid, income, res); err != nil {
		return nil, err
	}

	res.Missing = []MissingSummary{Summarize(aid), Summarize(income)}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	aid, err = p.impute(aid, res)
	if err != nil {
		return nil, err
	}
	income, err = p.impute(income, res)
	if err != nil {
		return nil, err
	}

	// Dropping all-null countries can leave the tables out of step again.
	if err := p.align(aid, income, res); err != nil {
		return nil, err
	}

	res.Aid, res.Income = aid, income

	means, err := Means(aid)
	if err != nil {
		return nil, err
	}
	res.Ranking = Rank(means)
	res.Top = Top(res.Ranking, p.opts.TopN)
	res.Bottom = Bottom(res.Ranking, p.opts.TopN)

	p.logger.Info("Ranked countries by mean aid",
		slog.Int("countries", len(res.Ranking)),
		slog.Any("top", countriesOf(res.Top)),
		slog.Any("bottom", countriesOf(res.Bottom)))

	focus := Focus(p.opts.Focus, res.Ranking, p.opts.TopN)
	res.Focus, err = ExtractSeries(aid, income, focus)
	if err != nil {
		return nil, err
	}

	res.Insights = Analyze(res.Ranking, res.Focus)

	return res, nil
}

func (p *Pipeline) prepare(ctx context.Context, src Source, res *Results) (*Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := LoadTable(src)
	if err != nil {
		return nil, err
	}
	p.logger.Info("Loaded table",
		slog.String("table", src.Name),
		slog.String("path", src.Path),
		slog.Int("rows", len(raw.Records)),
		slog.Int("columns", len(raw.Header)))

	t, err := SelectColumns(raw, p.opts.IDColumn, p.opts.Years)
	if err != nil {
		return nil, err
	}

	filtered, missing := FilterCountries(t, p.opts.Reference)
	res.Unmatched[src.Name] = missing
	if len(missing) > 0 {
		p.logger.Warn("Reference countries not found in table",
			slog.String("table", src.Name),
			slog.Any("countries", missing))
	}
	if len(filtered.Rows) == 0 {
		return nil, newError(ErrTypeDataQuality, ErrNoCountries, "%s table has no %s countries", src.Name, p.opts.Reference.Name()).
			WithContext("path", src.Path)
	}

	p.logger.Info("Filtered table",
		slog.String("table", src.Name),
		slog.String("region", p.opts.Reference.Name()),
		slog.Int("countries", len(filtered.Rows)))

	return filtered, nil
}

func (p *Pipeline) align(aid, income *Table, res *Results) error {
	dropped := Align(aid, income)
	if len(dropped) > 0 {
		p.logger.Warn("Dropped countries missing from the other table", slog.Any("countries", dropped))
		res.Unaligned = append(res.Unaligned, dropped...)
	}
	if len(aid.Rows) == 0 {
		return newError(ErrTypeDataQuality, ErrNoCountries, "aid and income tables have no countries in common")
	}
	return nil
}

func (p *Pipeline) impute(t *Table, res *Results) (*Table, error) {
	out, ilog, err := Impute(t, p.opts.Policy)
	if err != nil {
		return nil, err
	}
	res.Imputed = append(res.Imputed, ilog)

	p.logger.Info("Imputed missing values",
		slog.String("table", t.Name),
		slog.String("policy", string(p.opts.Policy)),
		slog.Int("cells", ilog.Cells()),
		slog.Int("countries", len(ilog.Filled)))
	if len(ilog.Dropped) > 0 {
		p.logger.Warn("Dropped countries without data", slog.String("table", t.Name), slog.Any("countries", ilog.Dropped))
	}

	return out, nil
}

func countriesOf(means []Mean) []string {
	var out []string
	for _, m := range means {
		out = append(out, m.Country)
	}
	return out
}
