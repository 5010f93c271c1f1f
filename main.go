package main

import (
	"os"

	"github.com/maktaba/portal-search/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
