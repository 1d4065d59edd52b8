package main

import (
	"os"

	"github.com/sauravjha/bcabuddy/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
