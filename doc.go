// Package lvroute finds routes that are short and affordable at once: every
// arc of a graph carries a distance to minimize and a cost to keep under a
// budget.
//
// What is inside?
//
//	core/      Graph, Edge and Path types, structural validation, path helpers
//	rcsp/      the constrained shortest path: least distance with cost ≤ budget
//	kpaths/    the k best budget-feasible paths, best first
//	waypoint/  ordered routes through intermediate stops under one budget
//	builder/   reproducible synthetic graphs (chain, grid, complete, ladder, random)
//	cmd/lvroute  command-line front end over YAML graph documents
//
// Conventions shared by every package:
//
//   - Graphs are plain maps, generic over any comparable node type, and are
//     never modified by a search. Concurrent queries on one graph are safe.
//   - "No feasible route" is a nil path (or an empty slice) with a nil error.
//     Errors are reserved for invalid input and match sentinel values with
//     errors.Is.
//   - Behaviour is tuned with functional options; resource caps such as
//     WithMaxExpansions shorten or drop results instead of failing.
//
// Quick start:
//
//	g := core.Graph[string]{
//	    "A": {{To: "B", Distance: 5, Cost: 100}, {To: "C", Distance: 10, Cost: 5}},
//	    "B": {{To: "D", Distance: 1, Cost: 1}},
//	    "C": {{To: "D", Distance: 1, Cost: 1}},
//	    "D": {},
//	}
//	p, err := rcsp.FindConstrainedPath(g, "A", "D", 50) // A→C→D (distance=11, cost=6)
package lvroute
