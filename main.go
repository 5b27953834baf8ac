package main

import (
	"os"

	"github.com/vzahanych/wind-activity-app/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
