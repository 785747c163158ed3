package main

import (
	"os"

	"github.com/konstankino/nameit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
