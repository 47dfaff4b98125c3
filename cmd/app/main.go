package main

import (
	"os"

	"github.com/aryan-26-prog/LifePulse-AI-sub000/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
