package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/internal/graphfile"
	"github.com/katalvlaran/lvroute/rcsp"
)

// errNoNodes rejects an empty --nodes list.
var errNoNodes = errors.New("--nodes needs at least one node")

func (a *app) checkCmd() *cobra.Command {
	var nodes []string
	cmd := &cobra.Command{
		Use:   "check GRAPH",
		Short: "Measure the distance and cost of a given node sequence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(nodes) == 0 {
				return errNoNodes
			}
			g, err := graphfile.Load(args[0])
			if err != nil {
				return err
			}
			for _, n := range nodes {
				if !g.HasNode(n) {
					return fmt.Errorf("check: %w: %q", rcsp.ErrNodeNotFound, n)
				}
			}
			p, err := core.MeasurePath(g, nodes)
			if err != nil {
				return fmt.Errorf("check: %w", err)
			}

			return a.print([]result{{Name: "check", Kind: "check", Paths: []core.Path[string]{*p}}})
		},
	}
	cmd.Flags().StringSliceVar(&nodes, "nodes", nil, "comma-separated node sequence")
	_ = cmd.MarkFlagRequired("nodes")

	return cmd
}
