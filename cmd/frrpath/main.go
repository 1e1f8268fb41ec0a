// Command frrpath loads a topology JSON file, runs the full
// AllPaths/SPF/LFA/rLFA pipeline, and prints a summary.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
