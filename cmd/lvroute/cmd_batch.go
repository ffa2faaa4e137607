package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvroute/internal/graphfile"
)

func (a *app) batchCmd() *cobra.Command {
	var parallel int
	cmd := &cobra.Command{
		Use:   "batch GRAPH QUERIES",
		Short: "Answer a file of queries concurrently, printing results in input order",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if parallel < 1 {
				return fmt.Errorf("--parallel must be at least 1, got %d", parallel)
			}
			g, err := graphfile.Load(args[0])
			if err != nil {
				return err
			}
			batch, err := graphfile.LoadQueries(args[1])
			if err != nil {
				return err
			}
			a.logger().Debug("batch loaded", "queries", len(batch.Queries), "nodes", g.NodeCount(), "parallel", parallel)

			results := make([]result, len(batch.Queries))
			eg, ctx := errgroup.WithContext(cmd.Context())
			eg.SetLimit(parallel)
			for i, q := range batch.Queries {
				i, q := i, q
				eg.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					r := result{Name: q.Name, Kind: q.Kind}
					paths, err := runQuery(g, q, a.maxExpansions, a.logger())
					if err != nil {
						r.Error = err.Error()
					} else {
						r.Paths = paths
					}
					results[i] = r

					return nil
				})
			}
			if err := eg.Wait(); err != nil {
				return err
			}

			if err := a.print(results); err != nil {
				return err
			}
			failed := 0
			for _, r := range results {
				if r.Error != "" {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d queries failed", graphfile.ErrQuery, failed, len(results))
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&parallel, "parallel", runtime.NumCPU(), "maximum queries run at once")

	return cmd
}
