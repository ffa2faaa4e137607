package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/internal/graphfile"
)

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate GRAPH",
		Short: "Check that a graph document is structurally valid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graphfile.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "ok: %d nodes, %d arcs\n", g.NodeCount(), g.EdgeCount())

			return nil
		},
	}
}
