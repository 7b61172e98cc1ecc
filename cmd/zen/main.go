package main

import (
	"os"

	"github.com/AntonioJCosta/zen/internal/bootstrap"
	"github.com/AntonioJCosta/zen/internal/handlers/cli"
)

// Version is set at build time
var Version = "dev"

func main() {
	deps := bootstrap.New(bootstrap.Settings())
	rootCmd := cli.NewRootCommand(Version, deps.LoadEngine, deps.Selector, deps.NewProvider)
	os.Exit(bootstrap.Run(rootCmd))
}
