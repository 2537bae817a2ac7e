package main

import (
	"os"

	"github.com/lefs/esi-util/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
