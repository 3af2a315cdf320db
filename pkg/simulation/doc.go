// Package simulation runs Monte Carlo cost/effort risk simulations over
// three-point task estimates using triangular or beta-PERT sampling.
package simulation
