package main

import (
	"os"

	"github.com/kode4food/timeline/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
