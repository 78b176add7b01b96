package main

import (
	"os"

	"github.com/bmc/grizzled-go/cmd/inicat/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
