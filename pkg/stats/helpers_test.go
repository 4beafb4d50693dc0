package stats

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// val builds a row value, nil meaning missing.
func val(x *float64) Value {
	if x == nil {
		return Null()
	}
	return Known(*x)
}

func num(x float64) *float64 { return &x }

func newTable(name string, years []int, rows map[string][]*float64) *Table {
	t := &Table{Name: name, IDColumn: "country", Years: years}
	for c, vals := range rows {
		r := &Row{Country: c}
		for _, x := range vals {
			r.Values = append(r.Values, val(x))
		}
		t.Rows = append(t.Rows, r)
	}
	t.SortByCountry()
	return t
}

func floatsOf(r *Row) []float64 {
	out := make([]float64, len(r.Values))
	for i, x := range r.Values {
		out[i] = x.Float
	}
	return out
}
