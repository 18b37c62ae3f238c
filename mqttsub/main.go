package main

import (
	"os"
)

func main() {
	if err := subCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
