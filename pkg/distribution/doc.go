// Package distribution suggests and computes budget distribution profiles
// over monthly horizons.
package distribution
