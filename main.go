package main

import (
	"os"

	"github.com/futurehub/horizon/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
