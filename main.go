package main

import (
	"os"

	"github.com/cessen/furiganagen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
