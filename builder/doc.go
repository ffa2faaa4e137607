// Package builder generates reproducible two-metric test graphs for the
// routing packages (rcsp, kpaths, waypoint) and for the lvroute CLI.
//
// The package offers the following key components:
//
//   - Orchestration:
//     BuildGraph(bopts, cons...) creates a core.Graph[string] and applies the
//     constructors in order.
//   - Topologies (Constructor implementations):
//     Chain(n), Grid(rows, cols), Complete(n), Ladder(n), RandomSparse(n, p).
//   - Node-ID schemes (IDFn implementations):
//     DefaultIDFn ("0","1",…), ExcelColumnIDFn ("A",…,"AA"), SymbolNumberIDFn.
//   - Metric distributions (WeightFn implementations), set separately for
//     distance and cost: DefaultWeightFn, ConstantWeightFn, UniformWeightFn,
//     IntegerWeightFn.
//
// Guarantees:
//
//   - Deterministic: the same options, seed and constructor order produce the
//     same graph, including arc order within each adjacency list.
//   - Every generated graph passes core.Validate: metrics are finite and
//     non-negative, no self-loops, every arc target is a key.
//   - Option constructors panic on meaningless input; constructors return
//     sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed) wrapped with context.
//
// Example:
//
//	g, err := builder.BuildGraph(
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithIntegerMetrics(1, 9, 1, 9)},
//	    builder.RandomSparse(20, 0.2),
//	)
package builder
