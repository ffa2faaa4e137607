package main

import (
	"encoding/json"
	"fmt"
)

// print writes results as text (one line per path) or as a JSON array.
func (a *app) print(results []result) error {
	if a.asJSON {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for _, r := range results {
		switch {
		case r.Error != "":
			fmt.Fprintf(a.out, "%s: error: %s\n", r.Name, r.Error)
		case len(r.Paths) == 0:
			fmt.Fprintf(a.out, "%s: no route\n", r.Name)
		default:
			for i := range r.Paths {
				fmt.Fprintf(a.out, "%s: %s\n", r.Name, &r.Paths[i])
			}
		}
	}

	return nil
}
