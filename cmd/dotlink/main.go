package main

import (
	"os"

	"github.com/arthur-debert/dotlink/internal/cli"
)

func main() {
	os.Exit(cli.Execute(cli.NewRootCmd()))
}
