package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tcxian/ppinet/internal/analysis"
	"github.com/tcxian/ppinet/internal/centrality"
	"github.com/tcxian/ppinet/internal/hubs"
	"github.com/tcxian/ppinet/internal/interaction"
	"github.com/tcxian/ppinet/internal/ppigraph"
	"github.com/tcxian/ppinet/internal/storage"
)

var (
	analyzeRankBy string
	analyzeTop    int
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeRankBy, "rank-by", "degree", "Centrality used for hub ranking: degree, betweenness, closeness, eigenvector, pagerank")
	analyzeCmd.Flags().IntVar(&analyzeTop, "top", hubs.DefaultTop, "Number of hub proteins to select")
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <network>",
	Short: "Compute centrality measures and hub proteins for a stored network",
	Long: `Analyze a locally stored interaction network.

The graph is rebuilt from the stored interaction records on every run:
duplicate interactions collapse to one edge and self-interactions are
dropped. Five centrality measures are computed per protein and the top
proteins by the chosen measure are reported as hubs.

Examples:
  ppinet analyze tp53
  ppinet analyze tp53 --rank-by betweenness --top 10`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

// AnalysisResponse is the JSON output of the analyze command.
type AnalysisResponse struct {
	Network    string          `json:"network"`
	Provider   string          `json:"provider"`
	Query      string          `json:"query"`
	NumNodes   int             `json:"num_nodes"`
	NumEdges   int             `json:"num_edges"`
	RankedBy   centrality.Kind `json:"ranked_by"`
	Hubs       []hubs.Ranked   `json:"hubs"`
	Peripheral []string        `json:"peripheral"`
	Table      []CentralityRow `json:"table"`
	Warnings   []string        `json:"warnings,omitempty"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	rankBy, err := centrality.ParseKind(analyzeRankBy)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	meta, records, err := loadNetwork(args[0])
	if err != nil {
		exitNetworkError(err)
	}

	res, err := analysis.Run(records, rankBy, analyzeTop)
	if err != nil {
		exitAnalysisError(err)
	}

	if humanOutput {
		printAnalysisHuman(meta, res)
		return nil
	}

	return outputJSON(AnalysisResponse{
		Network:    meta.Name,
		Provider:   meta.Provider,
		Query:      meta.Query,
		NumNodes:   res.NumNodes,
		NumEdges:   res.NumEdges,
		RankedBy:   rankBy,
		Hubs:       res.Hubs.Hubs,
		Peripheral: res.Hubs.Peripheral,
		Table:      buildCentralityRows(res.Network, res.Table, rankBy),
		Warnings:   res.Warnings,
	})
}

// loadNetwork fetches a stored network's metadata and records.
func loadNetwork(name string) (*storage.NetworkMeta, []interaction.Record, error) {
	db, err := openStore()
	if err != nil {
		return nil, nil, fmt.Errorf("opening network store: %w", err)
	}
	defer db.Close()

	return db.GetNetwork(name)
}

// exitNetworkError exits with the store-specific code for missing networks.
func exitNetworkError(err error) {
	if errors.Is(err, storage.ErrNetworkNotFound) {
		exitWithError(ExitNotFound, "%v (fetch one first with: ppinet fetch)", err)
	}
	exitWithError(ExitError, "%v", err)
}

// exitAnalysisError exits with the right code for pipeline failures.
func exitAnalysisError(err error) {
	if errors.Is(err, ppigraph.ErrEmptyGraph) {
		exitWithError(ExitEmptyResult, "%v", err)
	}
	exitWithError(ExitError, "%v", err)
}

// printAnalysisHuman prints network statistics, hubs, and warnings.
func printAnalysisHuman(meta *storage.NetworkMeta, res *analysis.Result) {
	printWarnings(res.Warnings)

	fmt.Printf("Network %q (%s query %q)\n", meta.Name, meta.Provider, meta.Query)
	fmt.Printf("Nodes (proteins): %d\n", res.NumNodes)
	fmt.Printf("Edges (interactions): %d\n\n", res.NumEdges)
	printHubsHuman(res.Network, res.Hubs)
}
