// Command lvroute answers budget-constrained routing queries over graph
// documents: single constrained paths, k alternatives, waypoint routes and
// concurrent query batches. It can also validate and generate graphs.
//
// Usage:
//
//	lvroute validate graph.yaml
//	lvroute check graph.yaml --nodes A,B,D
//	lvroute path graph.yaml --from A --to D --budget 30
//	lvroute kpaths graph.yaml --from A --to D --budget 30 -k 3
//	lvroute route graph.yaml --from A --via B,C --to D --budget 30
//	lvroute batch graph.yaml queries.yaml --parallel 4 --json
//	lvroute generate ladder --n 10 -o ladder.yaml
//
// "No route" is a normal answer; the exit status is non-zero only for
// invalid input or I/O failures.
package main

import (
	"context"
	"io"
	"os"
)

func main() {
	os.Exit(execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command tree with args and returns the process exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{out: stdout, errOut: stderr}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		a.logger().Error("command failed", "error", err)
		return 1
	}

	return 0
}
