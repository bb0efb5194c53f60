package main

import (
	"fmt"
	"os"

	"github.com/gridforge/voxelize/cmd/voxelize/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
