package main

import (
	"os"

	"github.com/Atchuta30/JEE-Prep-AI/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
