// Command maxclique runs the exact branch-and-bound maximum clique solvers
// against a SNAP/DIMACS graph file and reports, per algorithm, the size of
// the clique found, elapsed time, and validity (spec §6.2).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	cmd := &cobra.Command{
		Use:     "maxclique",
		Short:   "maxclique benchmarks exact maximum-clique solvers over a graph file",
		Version: version,
	}

	cmd.AddCommand(runCmd())
	cmd.AddCommand(versionCmd())

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
