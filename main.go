package main

import (
	"os"

	"github.com/vololibero/quizvl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
