package main

import (
	"github.com/spf13/cobra"

	"github.com/tcxian/ppinet/internal/analysis"
	"github.com/tcxian/ppinet/internal/centrality"
	"github.com/tcxian/ppinet/internal/hubs"
)

var (
	hubsRankBy string
	hubsTop    int
)

func init() {
	hubsCmd.Flags().StringVar(&hubsRankBy, "rank-by", "degree", "Centrality used for ranking: degree, betweenness, closeness, eigenvector, pagerank")
	hubsCmd.Flags().IntVar(&hubsTop, "top", hubs.DefaultTop, "Number of hub proteins to select")
	rootCmd.AddCommand(hubsCmd)
}

var hubsCmd = &cobra.Command{
	Use:   "hubs <network>",
	Short: "List the hub proteins of a stored network",
	Long: `Rank a stored network's proteins by a centrality measure and list the
top hubs. Ties are broken by protein identifier for deterministic output.

Examples:
  ppinet hubs tp53
  ppinet hubs tp53 --rank-by pagerank`,
	Args: cobra.ExactArgs(1),
	RunE: runHubs,
}

// HubsResponse is the JSON output of the hubs command.
type HubsResponse struct {
	Network  string          `json:"network"`
	RankedBy centrality.Kind `json:"ranked_by"`
	Hubs     []hubs.Ranked   `json:"hubs"`
	Warnings []string        `json:"warnings,omitempty"`
}

func runHubs(cmd *cobra.Command, args []string) error {
	rankBy, err := centrality.ParseKind(hubsRankBy)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	meta, records, err := loadNetwork(args[0])
	if err != nil {
		exitNetworkError(err)
	}

	res, err := analysis.Run(records, rankBy, hubsTop)
	if err != nil {
		exitAnalysisError(err)
	}

	if humanOutput {
		printWarnings(res.Warnings)
		printHubsHuman(res.Network, res.Hubs)
		return nil
	}

	return outputJSON(HubsResponse{
		Network:  meta.Name,
		RankedBy: rankBy,
		Hubs:     res.Hubs.Hubs,
		Warnings: res.Warnings,
	})
}
