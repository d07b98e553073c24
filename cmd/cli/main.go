package main

import (
	"os"

	"github.com/keshon/btf-bot/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
