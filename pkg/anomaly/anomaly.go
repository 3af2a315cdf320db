package anomaly

import (
	"math"
	"sort"
)

// DefaultThreshold is the z-score above which a month is flagged.
const DefaultThreshold = 2.5

// MinSamples is the fewest months needed before detection runs. Below
// this a z-score is meaningless and no anomalies are reported.
const MinSamples = 3

// MonthlySpend is one month's aggregated spend.
type MonthlySpend struct {
	Month       string `json:"month"` // YYYY-MM
	AmountCents int64  `json:"amount_cents"`
}

// Anomaly is a flagged month.
type Anomaly struct {
	Month       string  `json:"month"`
	AmountCents int64   `json:"amount_cents"`
	ZScore      float64 `json:"z_score"`
	Direction   string  `json:"direction"` // "high" or "low"
}

// Detect flags months whose spend deviates from the project's monthly
// mean by more than threshold standard deviations. A non-positive
// threshold falls back to DefaultThreshold. Results are ordered by month.
func Detect(spend []MonthlySpend, threshold float64) []Anomaly {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if len(spend) < MinSamples {
		return []Anomaly{}
	}

	mean := meanOf(spend)
	var variance float64
	for _, m := range spend {
		d := float64(m.AmountCents) - mean
		variance += d * d
	}
	variance /= float64(len(spend))
	stdDev := math.Sqrt(variance)
	if stdDev == 0 {
		return []Anomaly{}
	}

	anomalies := []Anomaly{}
	for _, m := range spend {
		z := (float64(m.AmountCents) - mean) / stdDev
		if math.Abs(z) <= threshold {
			continue
		}
		direction := "high"
		if z < 0 {
			direction = "low"
		}
		anomalies = append(anomalies, Anomaly{
			Month:       m.Month,
			AmountCents: m.AmountCents,
			ZScore:      z,
			Direction:   direction,
		})
	}

	sort.Slice(anomalies, func(i, j int) bool {
		return anomalies[i].Month < anomalies[j].Month
	})
	return anomalies
}

func meanOf(spend []MonthlySpend) float64 {
	var total float64
	for _, m := range spend {
		total += float64(m.AmountCents)
	}
	return total / float64(len(spend))
}
