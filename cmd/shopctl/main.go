package main

import (
	"os"

	"github.com/jrsteele09/go-shop-client/cmd/shopctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
