package distribution

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func period(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := ParsePeriod(s)
	require.NoError(t, err)
	return parsed
}

func TestParsePeriod(t *testing.T) {
	_, err := ParsePeriod("2026-03")
	assert.NoError(t, err)

	_, err = ParsePeriod("2026-3")
	assert.Error(t, err)

	_, err = ParsePeriod("March 2026")
	assert.Error(t, err)
}

func TestMonthsBetween(t *testing.T) {
	assert.Equal(t, 1, MonthsBetween(period(t, "2026-03"), period(t, "2026-03")))
	assert.Equal(t, 3, MonthsBetween(period(t, "2026-03"), period(t, "2026-05")))
	assert.Equal(t, 13, MonthsBetween(period(t, "2025-12"), period(t, "2026-12")))
}

func TestSuggestThreshold(t *testing.T) {
	// Three months or fewer: custom.
	s, err := Suggest(period(t, "2026-01"), period(t, "2026-03"))
	require.NoError(t, err)
	assert.Equal(t, ProfileCustom, s.Profile)
	assert.Equal(t, 3, s.Months)

	// Four months: linear.
	s, err = Suggest(period(t, "2026-01"), period(t, "2026-04"))
	require.NoError(t, err)
	assert.Equal(t, ProfileLinear, s.Profile)
	assert.Equal(t, 4, s.Months)

	// Single month: custom.
	s, err = Suggest(period(t, "2026-01"), period(t, "2026-01"))
	require.NoError(t, err)
	assert.Equal(t, ProfileCustom, s.Profile)
}

func TestSuggestInvertedRange(t *testing.T) {
	_, err := Suggest(period(t, "2026-05"), period(t, "2026-01"))
	assert.Error(t, err)
}

func TestWeightsLinear(t *testing.T) {
	weights, err := Weights(ProfileLinear, 4)
	require.NoError(t, err)
	require.Len(t, weights, 4)
	for _, w := range weights {
		assert.InDelta(t, 0.25, w, 1e-12)
	}
}

func TestWeightsRamps(t *testing.T) {
	front, err := Weights(ProfileFrontLoaded, 3)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, front[0], 1e-12)
	assert.InDelta(t, 1.0/3, front[1], 1e-12)
	assert.InDelta(t, 1.0/6, front[2], 1e-12)

	back, err := Weights(ProfileBackLoaded, 3)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/6, back[0], 1e-12)
	assert.InDelta(t, 0.5, back[2], 1e-12)
}

func TestWeightsErrors(t *testing.T) {
	_, err := Weights(ProfileLinear, 0)
	assert.Error(t, err)

	_, err = Weights("exponential", 6)
	assert.Error(t, err)

	// Custom profiles have no generated curve.
	_, err = Weights(ProfileCustom, 6)
	assert.Error(t, err)
}

func TestValidateCustomWeights(t *testing.T) {
	assert.NoError(t, ValidateCustomWeights([]float64{0.5, 0.3, 0.2}, 3))
	assert.Error(t, ValidateCustomWeights([]float64{0.5, 0.5}, 3))
	assert.Error(t, ValidateCustomWeights([]float64{0.7, -0.2, 0.5}, 3))
	assert.Error(t, ValidateCustomWeights([]float64{0.5, 0.3, 0.3}, 3))
}

func TestAllocateExactSum(t *testing.T) {
	weights, err := Weights(ProfileLinear, 3)
	require.NoError(t, err)

	// 100.00 split three ways leaves remainder cents on the last month.
	allocations := Allocate(10000, weights)
	require.Len(t, allocations, 3)
	assert.Equal(t, int64(3333), allocations[0].AmountCents)
	assert.Equal(t, int64(3333), allocations[1].AmountCents)
	assert.Equal(t, int64(3334), allocations[2].AmountCents)

	var total int64
	for _, a := range allocations {
		total += a.AmountCents
	}
	assert.Equal(t, int64(10000), total)
}

func TestAllocateFrontLoadedSum(t *testing.T) {
	weights, err := Weights(ProfileFrontLoaded, 7)
	require.NoError(t, err)

	allocations := Allocate(999999, weights)
	var total int64
	for _, a := range allocations {
		total += a.AmountCents
	}
	assert.Equal(t, int64(999999), total)
	assert.Greater(t, allocations[0].AmountCents, allocations[5].AmountCents)
}
