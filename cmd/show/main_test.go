package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anrid/africa-aid-stats/pkg/stats"
)

func TestDumpResults(t *testing.T) {
	res := &stats.Results{
		Region:  "africa",
		Ranking: []stats.Mean{{Country: "Kenya", Value: 20}},
	}

	var buf bytes.Buffer
	require.NoError(t, dumpResults(&buf, res, true))

	var decoded stats.Results
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, res.Ranking, decoded.Ranking)
	assert.Equal(t, "africa", decoded.Region)

	buf.Reset()
	require.NoError(t, dumpResults(&buf, res, false))
	assert.Contains(t, buf.String(), "Kenya")
	assert.Contains(t, buf.String(), "stats.Mean")
}
