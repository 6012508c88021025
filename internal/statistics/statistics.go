package statistics

import (
	"fmt"
	"math"
	"sort"
)

// TrialResult is the outcome of one independent search
type TrialResult struct {
	WinPct       float64 // Win probability in percent
	Seed         int64   // RNG seed for this trial (for replay)
	Iterations   int
	Showdowns    int
	ShowdownWins int
}

// Statistics aggregates win probabilities across repeated searches
type Statistics struct {
	Trials int
	Sum    float64
	Sum2   float64   // Sum of squares for variance calculation
	Values []float64 // Store all values for median/percentile calculation

	Iterations   int
	Showdowns    int
	ShowdownWins int

	Min float64
	Max float64
}

// Add incorporates a trial into the statistics
func (s *Statistics) Add(result TrialResult) {
	v := result.WinPct
	if s.Trials == 0 || v < s.Min {
		s.Min = v
	}
	if s.Trials == 0 || v > s.Max {
		s.Max = v
	}

	s.Trials++
	s.Sum += v
	s.Sum2 += v * v
	s.Values = append(s.Values, v)

	s.Iterations += result.Iterations
	s.Showdowns += result.Showdowns
	s.ShowdownWins += result.ShowdownWins
}

// Mean returns the arithmetic mean win percentage
func (s *Statistics) Mean() float64 {
	if s.Trials == 0 {
		return 0
	}
	return s.Sum / float64(s.Trials)
}

// Variance returns the sample variance of all trials
func (s *Statistics) Variance() float64 {
	if s.Trials < 2 {
		return 0
	}
	mean := s.Mean()
	v := (s.Sum2 - float64(s.Trials)*mean*mean) / float64(s.Trials-1)
	if v < 0 {
		// rounding when every trial is equal
		return 0
	}
	return v
}

// StdDev returns the sample standard deviation of all trials
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Trials == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Trials))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean,
// clamped to the valid percentage range
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return math.Max(0, mean-margin), math.Min(100, mean+margin)
}

// ShowdownEquity returns the percentage of showdowns won across all trials
func (s *Statistics) ShowdownEquity() float64 {
	if s.Showdowns == 0 {
		return 0
	}
	return float64(s.ShowdownWins) / float64(s.Showdowns) * 100
}

// Median returns the median win percentage
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Validate checks the aggregate is internally consistent
func (s *Statistics) Validate() error {
	if s.Trials != len(s.Values) {
		return fmt.Errorf("trial count mismatch: Trials=%d, Values=%d", s.Trials, len(s.Values))
	}
	if s.ShowdownWins > s.Showdowns {
		return fmt.Errorf("showdown wins %d exceed showdowns %d", s.ShowdownWins, s.Showdowns)
	}
	for i, v := range s.Values {
		if v < 0 || v > 100 || math.IsNaN(v) {
			return fmt.Errorf("trial %d has win percentage %.4f outside [0,100]", i, v)
		}
	}
	return nil
}
