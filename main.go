package main

import (
	"os"

	"github.com/lernzeit/lernzeit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
