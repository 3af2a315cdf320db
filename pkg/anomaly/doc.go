// Package anomaly flags months whose project spend deviates sharply from
// the monthly mean.
package anomaly
