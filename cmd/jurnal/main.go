package main

import (
	"os"

	"github.com/yayangurayan/jurnalforex/cmd/jurnal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
