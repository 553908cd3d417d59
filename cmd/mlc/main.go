package main

import (
	"os"

	"github.com/mlclang/mlc/cmd/mlc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
