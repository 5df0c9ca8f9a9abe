package main

import (
	"fmt"
	"os"

	"github.com/sdejongh/dirdiff/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		// Startup and argument errors get a distinct exit code;
		// differences found exit with 1 from the diff run itself.
		os.Exit(2)
	}
}
