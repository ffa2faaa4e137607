package main

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/internal/graphfile"
	"github.com/katalvlaran/lvroute/kpaths"
	"github.com/katalvlaran/lvroute/rcsp"
	"github.com/katalvlaran/lvroute/waypoint"
)

// result is the answer to one query, ready for printing.
type result struct {
	Name  string              `json:"name"`
	Kind  string              `json:"kind"`
	Paths []core.Path[string] `json:"paths"`
	Error string              `json:"error,omitempty"`
}

// runQuery answers q on g. Infeasibility gives an empty Paths list; invalid
// input gives an error.
func runQuery(g core.Graph[string], q graphfile.Query, maxExpansions int, log *slog.Logger) ([]core.Path[string], error) {
	paths := []core.Path[string]{}
	switch q.Kind {
	case graphfile.KindPath:
		var st rcsp.Stats
		p, err := rcsp.FindConstrainedPath(g, q.From, q.To, q.Budget,
			rcsp.WithMaxExpansions(maxExpansions), rcsp.WithStats(&st))
		if err != nil {
			return nil, err
		}
		log.Debug("search finished", "query", q.Name,
			"expansions", st.Expansions, "labels", st.Labels,
			"dominated", st.Dominated, "pruned", st.Pruned, "truncated", st.Truncated)
		if p != nil {
			paths = append(paths, *p)
		}

	case graphfile.KindKPaths:
		var st kpaths.Stats
		found, err := kpaths.FindKShortestPaths(g, q.From, q.To, q.Budget, q.K,
			kpaths.WithMaxExpansions(maxExpansions), kpaths.WithStats(&st))
		if err != nil {
			return nil, err
		}
		log.Debug("enumeration finished", "query", q.Name,
			"searches", st.Searches, "expansions", st.Expansions,
			"candidates", st.Candidates, "truncated", st.Truncated)
		paths = append(paths, found...)

	case graphfile.KindRoute:
		var st waypoint.Stats
		p, err := waypoint.FindPathWithWaypoints(g, q.From, q.Via, q.To, q.Budget,
			waypoint.WithMaxExpansions(maxExpansions), waypoint.WithStats(&st))
		if err != nil {
			return nil, err
		}
		log.Debug("route finished", "query", q.Name,
			"legs", len(st.Segments), "expansions", st.Expansions, "truncated", st.Truncated)
		if p != nil {
			paths = append(paths, *p)
		}

	default:
		return nil, fmt.Errorf("%w: unknown kind %q", graphfile.ErrQuery, q.Kind)
	}

	return paths, nil
}

// queryFlags are the flags shared by path, kpaths and route.
type queryFlags struct {
	from   string
	to     string
	via    []string
	budget float64
	k      int
}

// single builds a one-command query runner for kind.
func (a *app) single(kind string, qf *queryFlags) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		q := graphfile.Query{
			Name:   kind,
			Kind:   kind,
			From:   qf.from,
			To:     qf.to,
			Via:    qf.via,
			Budget: qf.budget,
			K:      qf.k,
		}
		batch := graphfile.Batch{Queries: []graphfile.Query{q}}
		if err := batch.Validate(); err != nil {
			return err
		}

		g, err := graphfile.Load(args[0])
		if err != nil {
			return err
		}
		a.logger().Debug("graph loaded", "path", args[0], "nodes", g.NodeCount(), "arcs", g.EdgeCount())

		paths, err := runQuery(g, q, a.maxExpansions, a.logger())
		if err != nil {
			return err
		}

		return a.print([]result{{Name: q.Name, Kind: q.Kind, Paths: paths}})
	}
}

func addEndpointFlags(cmd *cobra.Command, qf *queryFlags) {
	f := cmd.Flags()
	f.StringVar(&qf.from, "from", "", "start node")
	f.StringVar(&qf.to, "to", "", "end node")
	f.Float64Var(&qf.budget, "budget", math.Inf(1), "maximum total cost")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
}

func (a *app) pathCmd() *cobra.Command {
	qf := &queryFlags{}
	cmd := &cobra.Command{
		Use:   "path GRAPH",
		Short: "Find the shortest path whose cost fits the budget",
		Args:  cobra.ExactArgs(1),
		RunE:  a.single(graphfile.KindPath, qf),
	}
	addEndpointFlags(cmd, qf)

	return cmd
}

func (a *app) kpathsCmd() *cobra.Command {
	qf := &queryFlags{}
	cmd := &cobra.Command{
		Use:   "kpaths GRAPH",
		Short: "List the k shortest paths whose cost fits the budget",
		Args:  cobra.ExactArgs(1),
		RunE:  a.single(graphfile.KindKPaths, qf),
	}
	addEndpointFlags(cmd, qf)
	cmd.Flags().IntVarP(&qf.k, "k", "k", 3, "number of paths")

	return cmd
}

func (a *app) routeCmd() *cobra.Command {
	qf := &queryFlags{}
	cmd := &cobra.Command{
		Use:   "route GRAPH",
		Short: "Route through ordered waypoints within one budget",
		Args:  cobra.ExactArgs(1),
		RunE:  a.single(graphfile.KindRoute, qf),
	}
	addEndpointFlags(cmd, qf)
	cmd.Flags().StringSliceVar(&qf.via, "via", nil, "comma-separated waypoints, in order")

	return cmd
}
