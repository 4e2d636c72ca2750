// Command specrun runs the specifications compiled into it and reports the
// results. Exit status: 0 when nothing failed, 1 when an example or a
// context failed, 2 when the run could not start.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/specrun/internal/cli"
	"github.com/roach88/specrun/internal/demo"
)

func main() {
	cmd := cli.NewRootCommand(demo.Registry())
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
