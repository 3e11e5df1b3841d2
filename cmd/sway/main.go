// Command sway loads a table of rows and runs the clustering and
// multi-objective pruning engine over it, or one of its self-checks.
//
//	sway cluster -f data/auto93.csv
//	sway sway --seed 1 --min 0.4
//	sway all --config sway.yaml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
