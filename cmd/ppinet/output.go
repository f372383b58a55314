package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/tcxian/ppinet/internal/centrality"
	"github.com/tcxian/ppinet/internal/hubs"
	"github.com/tcxian/ppinet/internal/interaction"
	"github.com/tcxian/ppinet/internal/ppigraph"
	"github.com/tcxian/ppinet/internal/provider"
)

// Constants for output formatting.
const (
	// InteractionPreviewRows is how many interactions the human fetch
	// summary prints.
	InteractionPreviewRows = 10
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// exitWithError outputs an error in the appropriate format (human or JSON)
// and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// exitWithFetchError maps provider error kinds onto exit codes and exits.
func exitWithFetchError(err error) {
	code := ExitError
	switch {
	case provider.IsAuthentication(err):
		code = ExitAuthError
	case provider.IsEmptyResult(err):
		code = ExitEmptyResult
	case provider.IsUpstreamUnavailable(err):
		code = ExitUpstream
	}
	exitWithError(code, "%v", err)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is a generic response for commands that return status.
type StatusResponse struct {
	Status  string `json:"status"`
	Network string `json:"network,omitempty"`
	Path    string `json:"path,omitempty"`
}

// CentralityRow is one protein's row in the rendered score table.
type CentralityRow struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	centrality.Scores
}

// buildCentralityRows flattens a centrality table into rows sorted by the
// ranking measure descending, ties by ID ascending.
func buildCentralityRows(net *ppigraph.Network, table centrality.Table, rankBy centrality.Kind) []CentralityRow {
	rows := make([]CentralityRow, 0, len(table))
	for id, scores := range table {
		rows = append(rows, CentralityRow{ID: id, Label: net.Label(id), Scores: scores})
	}
	sort.Slice(rows, func(i, j int) bool {
		vi, _ := rows[i].Value(rankBy)
		vj, _ := rows[j].Value(rankBy)
		if vi != vj {
			return vi > vj
		}
		return rows[i].ID < rows[j].ID
	})
	return rows
}

// printHubsHuman prints the ranked hub list the way the score table names it.
func printHubsHuman(net *ppigraph.Network, set *hubs.HubSet) {
	fmt.Printf("Top %d hub proteins by %s centrality:\n", len(set.Hubs), set.RankedBy)
	for i, h := range set.Hubs {
		label := net.Label(h.ID)
		if label != "" && label != h.ID {
			fmt.Printf("%d. %s (%s) - %.3f\n", i+1, label, h.ID, h.Score)
		} else {
			fmt.Printf("%d. %s - %.3f\n", i+1, h.ID, h.Score)
		}
	}
}

// printInteractionsHuman prints a short preview of an interaction list.
func printInteractionsHuman(records []interaction.Record) {
	n := len(records)
	if n > InteractionPreviewRows {
		n = InteractionPreviewRows
	}
	for _, r := range records[:n] {
		if r.Score > 0 {
			fmt.Printf("  %s - %s (%.3f)\n", r.SourceLabel, r.TargetLabel, r.Score)
		} else {
			fmt.Printf("  %s - %s\n", r.SourceLabel, r.TargetLabel)
		}
	}
	if len(records) > n {
		fmt.Printf("  ... and %d more\n", len(records)-n)
	}
}

// printWarnings surfaces analysis warnings on stderr in human mode so they
// are never silently dropped.
func printWarnings(warnings []string) {
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
}
