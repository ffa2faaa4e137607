// Package kpaths defines the options, statistics and sentinel errors of the
// k-shortest budget-feasible path enumerator.
//
// Options:
//
//	– WithMaxExpansions(n): label expansions allowed across all searches (0 = unlimited).
//	– WithMaxCandidates(n): cap on the candidate cache (0 = exact, unlimited).
//	– WithEpsilon(eps):     budget tolerance forwarded to every search.
//	– WithStats(&s):        receive enumeration counters.
//
// Errors (sentinel):
//
//	– ErrNegativeK if k < 0.
//	– rcsp.ErrNodeNotFound, rcsp.ErrNegativeBudget and wrapped
//	  core.ErrInvalidGraph, exactly as FindConstrainedPath reports them.
package kpaths

import (
	"errors"

	"github.com/katalvlaran/lvroute/rcsp"
)

// ErrNegativeK indicates a negative number of requested paths.
var ErrNegativeK = errors.New("kpaths: k must be non-negative")

// ErrBadMaxCandidates indicates a negative candidate cap.
var ErrBadMaxCandidates = errors.New("kpaths: MaxCandidates must be non-negative")

// Stats collects counters from one FindKShortestPaths call. The call
// overwrites it.
type Stats struct {
	// Searches counts constrained searches run (the first one included).
	Searches int
	// Expansions sums label expansions over all searches.
	Expansions int
	// Candidates counts distinct candidate paths generated.
	Candidates int
	// Dropped counts candidates discarded by WithMaxCandidates.
	Dropped int
	// Truncated is set when MaxExpansions cut the enumeration short.
	Truncated bool
}

// Options configures FindKShortestPaths.
//
// MaxExpansions - shared by all searches; 0 means unlimited.
// MaxCandidates - 0 keeps every useful candidate (exact); a positive cap
// drops the worst candidates beyond it and may lose results.
// Epsilon       - forwarded to rcsp.WithEpsilon.
type Options struct {
	MaxExpansions int
	MaxCandidates int
	Epsilon       float64
	Stats         *Stats
}

// Option represents a functional option for configuring FindKShortestPaths.
type Option func(*Options)

// DefaultOptions returns the defaults: no caps and rcsp.DefaultEpsilon.
func DefaultOptions() Options {
	return Options{Epsilon: rcsp.DefaultEpsilon}
}

// WithMaxExpansions caps label expansions across the whole enumeration.
// Panics on a negative value.
func WithMaxExpansions(n int) Option {
	if n < 0 {
		panic(rcsp.ErrBadMaxExpansions.Error())
	}

	return func(o *Options) {
		o.MaxExpansions = n
	}
}

// WithMaxCandidates caps the candidate cache. Panics on a negative value.
func WithMaxCandidates(n int) Option {
	if n < 0 {
		panic(ErrBadMaxCandidates.Error())
	}

	return func(o *Options) {
		o.MaxCandidates = n
	}
}

// WithEpsilon sets the budget tolerance. Panics like rcsp.WithEpsilon.
func WithEpsilon(eps float64) Option {
	rcsp.WithEpsilon(eps) // validates

	return func(o *Options) {
		o.Epsilon = eps
	}
}

// WithStats makes the enumeration report its counters into s.
func WithStats(s *Stats) Option {
	return func(o *Options) {
		o.Stats = s
	}
}
