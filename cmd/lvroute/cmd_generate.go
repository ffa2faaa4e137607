package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/builder"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/internal/graphfile"
)

// genFlags are the flags of the generate subcommands.
type genFlags struct {
	output  string
	seed    int64
	minDist float64
	maxDist float64
	minCost float64
	maxCost float64
	integer bool
}

// options turns the metric flags into builder options. Validation happens
// here because the builder option constructors panic on bad ranges.
func (gf *genFlags) options() ([]builder.BuilderOption, error) {
	if gf.minDist < 0 || gf.maxDist < gf.minDist || gf.minCost < 0 || gf.maxCost < gf.minCost {
		return nil, fmt.Errorf("metric ranges need 0 ≤ min ≤ max, got distance [%g,%g] cost [%g,%g]",
			gf.minDist, gf.maxDist, gf.minCost, gf.maxCost)
	}
	opts := []builder.BuilderOption{builder.WithSeed(gf.seed)}
	if gf.integer {
		opts = append(opts, builder.WithIntegerMetrics(int(gf.minDist), int(gf.maxDist), int(gf.minCost), int(gf.maxCost)))
	} else {
		opts = append(opts, builder.WithUniformMetrics(gf.minDist, gf.maxDist, gf.minCost, gf.maxCost))
	}

	return opts, nil
}

// write saves g to --output or prints it.
func (a *app) write(g core.Graph[string], gf *genFlags) error {
	a.logger().Debug("graph generated", "nodes", g.NodeCount(), "arcs", g.EdgeCount())
	if gf.output == "" {
		return graphfile.Encode(a.out, g)
	}

	return graphfile.Save(gf.output, g)
}

func (a *app) generateCmd() *cobra.Command {
	gf := &genFlags{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic graph document",
	}
	pf := cmd.PersistentFlags()
	pf.StringVarP(&gf.output, "output", "o", "", "output file (default stdout)")
	pf.Int64Var(&gf.seed, "seed", 1, "random seed for metrics and random arcs")
	pf.Float64Var(&gf.minDist, "min-distance", 1, "minimum arc distance")
	pf.Float64Var(&gf.maxDist, "max-distance", 1, "maximum arc distance")
	pf.Float64Var(&gf.minCost, "min-cost", 1, "minimum arc cost")
	pf.Float64Var(&gf.maxCost, "max-cost", 1, "maximum arc cost")
	pf.BoolVar(&gf.integer, "integer", false, "draw integral metrics")

	var (
		chainN, ladderN, randomN int
		rows, cols               int
		p                        float64
	)

	build := func(ctor func() builder.Constructor) func(*cobra.Command, []string) error {
		return func(*cobra.Command, []string) error {
			opts, err := gf.options()
			if err != nil {
				return err
			}
			g, err := builder.BuildGraph(opts, ctor())
			if err != nil {
				return err
			}

			return a.write(g, gf)
		}
	}

	chain := &cobra.Command{
		Use:   "chain",
		Short: "One-way chain 0→1→…→n-1",
		Args:  cobra.NoArgs,
		RunE:  build(func() builder.Constructor { return builder.Chain(chainN) }),
	}
	chain.Flags().IntVar(&chainN, "n", 10, "number of nodes")

	grid := &cobra.Command{
		Use:   "grid",
		Short: "rows×cols lattice with arcs both ways; node IDs are \"r,c\"",
		Args:  cobra.NoArgs,
		RunE:  build(func() builder.Constructor { return builder.Grid(rows, cols) }),
	}
	grid.Flags().IntVar(&rows, "rows", 5, "number of rows")
	grid.Flags().IntVar(&cols, "cols", 5, "number of columns")

	ladder := &cobra.Command{
		Use:   "ladder",
		Short: "Fast expensive rail F0…F(n-1) beside slow cheap rail S0…S(n-1)",
		Args:  cobra.NoArgs,
		RunE:  build(func() builder.Constructor { return builder.Ladder(ladderN) }),
	}
	ladder.Flags().IntVar(&ladderN, "n", 10, "nodes per rail")

	random := &cobra.Command{
		Use:   "random",
		Short: "Random digraph: each ordered pair gets an arc with probability p",
		Args:  cobra.NoArgs,
		RunE:  build(func() builder.Constructor { return builder.RandomSparse(randomN, p) }),
	}
	random.Flags().IntVar(&randomN, "n", 20, "number of nodes")
	random.Flags().Float64Var(&p, "p", 0.1, "arc probability")

	cmd.AddCommand(chain, grid, ladder, random)

	return cmd
}
