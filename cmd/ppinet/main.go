// Package main provides the ppinet CLI entry point.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tcxian/ppinet/internal/config"
	"github.com/tcxian/ppinet/internal/storage"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ppinet",
	Short: "Protein-protein interaction network analyzer",
	Long: `ppinet fetches protein-protein interaction networks from the BioGRID
and STRING databases, computes centrality measures, and highlights hub
proteins.

Fetched networks are stored locally so they can be re-analyzed and exported
offline. All commands output JSON by default for easy scripting; use --human
for readable output.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Load .env file if present (for PPINET_BIOGRID_KEY)
	_ = godotenv.Load()

	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}

// openStore opens the network store at its configured location.
func openStore() (*storage.DB, error) {
	return storage.OpenDB(config.DBPath())
}
