// Package waypoint defines the options and statistics of the ordered
// waypoint router.
package waypoint

import "github.com/katalvlaran/lvroute/rcsp"

// SegmentStats describes one accepted leg of a route.
type SegmentStats struct {
	Distance   float64
	Cost       float64
	Expansions int
}

// Stats collects counters from one FindPathWithWaypoints call. The call
// overwrites it.
type Stats struct {
	// Segments holds one entry per leg searched, in route order. A failed leg
	// is the last entry and has zero metrics.
	Segments []SegmentStats
	// Expansions sums label expansions over all legs.
	Expansions int
	// Truncated is set when MaxExpansions stopped a leg.
	Truncated bool
}

// Options configures FindPathWithWaypoints.
//
// MaxExpansions - shared by all legs; 0 means unlimited.
// Epsilon       - forwarded to rcsp.WithEpsilon for every leg.
type Options struct {
	MaxExpansions int
	Epsilon       float64
	Stats         *Stats
}

// Option represents a functional option for configuring FindPathWithWaypoints.
type Option func(*Options)

// DefaultOptions returns the defaults: no cap and rcsp.DefaultEpsilon.
func DefaultOptions() Options {
	return Options{Epsilon: rcsp.DefaultEpsilon}
}

// WithMaxExpansions caps label expansions over the whole route.
// Panics on a negative value.
func WithMaxExpansions(n int) Option {
	if n < 0 {
		panic(rcsp.ErrBadMaxExpansions.Error())
	}

	return func(o *Options) {
		o.MaxExpansions = n
	}
}

// WithEpsilon sets the budget tolerance. Panics like rcsp.WithEpsilon.
func WithEpsilon(eps float64) Option {
	rcsp.WithEpsilon(eps) // validates

	return func(o *Options) {
		o.Epsilon = eps
	}
}

// WithStats makes the router report its counters into s.
func WithStats(s *Stats) Option {
	return func(o *Options) {
		o.Stats = s
	}
}
