// SPDX-License-Identifier: MIT

// Package csa: tuning options and sentinel errors.
package csa

import "errors"

// Sentinel errors for approximator construction and queries.
var (
	// ErrLengthMismatch indicates coordinate, value, sigma or query slices of
	// differing lengths, or empty input.
	ErrLengthMismatch = errors.New("csa: slice lengths disagree")

	// ErrInvalidParam indicates a non-positive or inconsistent tuning
	// parameter.
	ErrInvalidParam = errors.New("csa: invalid parameter")
)

// Defaults for the neighborhood and kernel tuning.
const (
	// DefaultNPMin is the minimum neighborhood size below which a query is
	// masked.
	DefaultNPMin = 3

	// DefaultNPMax caps the neighborhood size used in one local fit.
	DefaultNPMax = 40

	// DefaultK is the kernel sensitivity; larger values narrow the distance
	// weighting around the query point.
	DefaultK = 140

	// DefaultNPPC is the target number of input points per index cell.
	DefaultNPPC = 5
)

type config struct {
	sigma []float64
	npmin int
	npmax int
	k     float64
	nppc  int
}

func defaultConfig() config {
	return config{
		npmin: DefaultNPMin,
		npmax: DefaultNPMax,
		k:     DefaultK,
		nppc:  DefaultNPPC,
	}
}

// Option tunes an Approximator at construction.
type Option func(*config)

// WithSigma attaches per-point standard deviations; samples with larger
// sigma carry less weight in each local fit. Length must match the input.
func WithSigma(sigma []float64) Option {
	return func(c *config) { c.sigma = sigma }
}

// WithNPMin sets the minimum neighborhood size (masked below it).
func WithNPMin(n int) Option {
	return func(c *config) { c.npmin = n }
}

// WithNPMax caps the neighborhood size.
func WithNPMax(n int) Option {
	return func(c *config) { c.npmax = n }
}

// WithK sets the kernel sensitivity.
func WithK(k float64) Option {
	return func(c *config) { c.k = k }
}

// WithNPPC sets the target number of points per index cell.
func WithNPPC(n int) Option {
	return func(c *config) { c.nppc = n }
}
