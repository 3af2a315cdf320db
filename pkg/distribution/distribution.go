package distribution

import (
	"fmt"
	"math"
	"time"
)

// Profile names.
const (
	ProfileLinear      = "linear"
	ProfileFrontLoaded = "front_loaded"
	ProfileBackLoaded  = "back_loaded"
	ProfileCustom      = "custom"
)

// ShortHorizonMonths is the horizon at or below which a custom profile is
// suggested instead of linear spreading.
const ShortHorizonMonths = 3

// weightEpsilon is the tolerance when checking custom weights sum to 1.
const weightEpsilon = 1e-9

// Suggestion is the recommended distribution profile for a date range.
type Suggestion struct {
	Profile string `json:"profile"`
	Months  int    `json:"months"`
}

// MonthsBetween returns the inclusive month count between two YYYY-MM
// periods.
func MonthsBetween(start, end time.Time) int {
	return (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month()) + 1
}

// ParsePeriod parses a YYYY-MM period string.
func ParsePeriod(s string) (time.Time, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid period %q, want YYYY-MM", s)
	}
	return t, nil
}

// Suggest recommends a profile for the given horizon. Short horizons get
// "custom" because manual allocation beats any curve over a few months;
// longer horizons default to "linear".
func Suggest(start, end time.Time) (Suggestion, error) {
	if end.Before(start) {
		return Suggestion{}, fmt.Errorf("end period precedes start period")
	}
	months := MonthsBetween(start, end)
	profile := ProfileLinear
	if months <= ShortHorizonMonths {
		profile = ProfileCustom
	}
	return Suggestion{Profile: profile, Months: months}, nil
}

// Allocation is one month's share of a distributed total.
type Allocation struct {
	Month       int   `json:"month"` // 1-based
	AmountCents int64 `json:"amount_cents"`
}

// Weights returns the per-month weight curve for a profile. Custom
// profiles supply their own weights and are validated instead.
func Weights(profile string, months int) ([]float64, error) {
	if months <= 0 {
		return nil, fmt.Errorf("months must be positive, got %d", months)
	}

	weights := make([]float64, months)
	switch profile {
	case ProfileLinear:
		for i := range weights {
			weights[i] = 1 / float64(months)
		}
	case ProfileFrontLoaded:
		// Descending linear ramp: month i gets weight proportional to
		// months-i.
		total := float64(months*(months+1)) / 2
		for i := range weights {
			weights[i] = float64(months-i) / total
		}
	case ProfileBackLoaded:
		total := float64(months*(months+1)) / 2
		for i := range weights {
			weights[i] = float64(i+1) / total
		}
	default:
		return nil, fmt.Errorf("unknown profile %q", profile)
	}
	return weights, nil
}

// ValidateCustomWeights checks caller-provided weights: one per month,
// non-negative, summing to 1.
func ValidateCustomWeights(weights []float64, months int) error {
	if len(weights) != months {
		return fmt.Errorf("expected %d weights, got %d", months, len(weights))
	}
	var sum float64
	for i, w := range weights {
		if w < 0 {
			return fmt.Errorf("weight %d is negative", i)
		}
		sum += w
	}
	if math.Abs(sum-1) > weightEpsilon {
		return fmt.Errorf("weights sum to %g, want 1", sum)
	}
	return nil
}

// Allocate splits totalCents over the weight curve. Amounts are floored
// per month and the remainder lands on the last month, so the allocations
// always sum exactly to the total.
func Allocate(totalCents int64, weights []float64) []Allocation {
	allocations := make([]Allocation, len(weights))
	var assigned int64
	for i, w := range weights {
		amount := int64(math.Floor(float64(totalCents) * w))
		allocations[i] = Allocation{Month: i + 1, AmountCents: amount}
		assigned += amount
	}
	if len(allocations) > 0 {
		allocations[len(allocations)-1].AmountCents += totalCents - assigned
	}
	return allocations
}
