package statistics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatistics_Empty(t *testing.T) {
	stats := &Statistics{}

	assert.Zero(t, stats.Mean())
	assert.Zero(t, stats.Variance())
	assert.Zero(t, stats.StdDev())
	assert.Zero(t, stats.StdError())
	assert.Zero(t, stats.Median())
	assert.Zero(t, stats.ShowdownEquity())
	require.NoError(t, stats.Validate())
}

func TestStatistics_SingleValue(t *testing.T) {
	stats := &Statistics{}
	stats.Add(TrialResult{WinPct: 42.5, Seed: 12345, Iterations: 1000, Showdowns: 200, ShowdownWins: 150})

	assert.Equal(t, 1, stats.Trials)
	assert.Equal(t, 42.5, stats.Mean())
	assert.Zero(t, stats.Variance())
	assert.Equal(t, 42.5, stats.Median())
	assert.Equal(t, 42.5, stats.Min)
	assert.Equal(t, 42.5, stats.Max)
	assert.Equal(t, 75.0, stats.ShowdownEquity())

	lo, hi := stats.ConfidenceInterval95()
	assert.Equal(t, 42.5, lo)
	assert.Equal(t, 42.5, hi)
}

func TestStatistics_MultipleValues(t *testing.T) {
	stats := &Statistics{}
	for _, v := range []float64{10, 20, 30, 40} {
		stats.Add(TrialResult{WinPct: v, Iterations: 10})
	}

	assert.Equal(t, 4, stats.Trials)
	assert.Equal(t, 25.0, stats.Mean())
	assert.InDelta(t, 166.6667, stats.Variance(), 1e-3)
	assert.InDelta(t, 12.9099, stats.StdDev(), 1e-3)
	assert.InDelta(t, 6.4550, stats.StdError(), 1e-3)
	assert.Equal(t, 25.0, stats.Median())
	assert.Equal(t, 10.0, stats.Min)
	assert.Equal(t, 40.0, stats.Max)
	assert.Equal(t, 40, stats.Iterations)

	lo, hi := stats.ConfidenceInterval95()
	assert.InDelta(t, 25-1.96*6.4550, lo, 1e-2)
	assert.InDelta(t, 25+1.96*6.4550, hi, 1e-2)
	require.NoError(t, stats.Validate())
}

func TestStatistics_ConfidenceIntervalClamped(t *testing.T) {
	stats := &Statistics{}
	for _, v := range []float64{100, 100, 60} {
		stats.Add(TrialResult{WinPct: v})
	}
	_, hi := stats.ConfidenceInterval95()
	assert.Equal(t, 100.0, hi)
}

func TestStatistics_Validate(t *testing.T) {
	stats := &Statistics{}
	stats.Add(TrialResult{WinPct: 150})
	assert.Error(t, stats.Validate())

	stats = &Statistics{}
	stats.Add(TrialResult{WinPct: 50, Showdowns: 1, ShowdownWins: 2})
	assert.Error(t, stats.Validate())
}
