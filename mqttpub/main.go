package main

import (
	"os"
)

func main() {
	if err := pubCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
