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
	rootCmd := cli.NewQuickCommand(Version, deps.LoadEngine, deps.Selector)
	os.Exit(bootstrap.Run(rootCmd))
}
