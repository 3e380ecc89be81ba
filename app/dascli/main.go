package main

import (
	"os"

	"github.com/x-xyz/dasgo/app/dascli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
