// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_grid.go - Grid(rows, cols): 4-neighbour lattice with arcs both ways.
//
// IDs are "r,c" (row, column), independent of the ID scheme, so callers can
// address cells directly. Each direction of a neighbour pair is drawn
// separately, so u→v and v→u may carry different metrics.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvroute/core"
)

const (
	methodGrid  = "Grid"
	minGridSide = 1
)

// GridID returns the node ID Grid uses for cell (r, c).
func GridID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}

// Grid returns a Constructor for a rows×cols lattice. Every cell links to its
// right and lower neighbour in both directions. rows, cols ≥ 1.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g core.Graph[string], cfg builderConfig) error {
		if rows < minGridSide || cols < minGridSide {
			return fmt.Errorf("%s: rows=%d cols=%d, min=%d: %w", methodGrid, rows, cols, minGridSide, ErrTooFewVertices)
		}
		var r, c int
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				addNode(g, GridID(r, c))
			}
		}
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				if c+1 < cols {
					addArc(g, cfg, GridID(r, c), GridID(r, c+1))
					addArc(g, cfg, GridID(r, c+1), GridID(r, c))
				}
				if r+1 < rows {
					addArc(g, cfg, GridID(r, c), GridID(r+1, c))
					addArc(g, cfg, GridID(r+1, c), GridID(r, c))
				}
			}
		}

		return nil
	}
}
