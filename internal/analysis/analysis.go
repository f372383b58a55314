// Package analysis runs the full network pipeline: graph construction,
// centrality computation, and hub selection.
package analysis

import (
	"github.com/tcxian/ppinet/internal/centrality"
	"github.com/tcxian/ppinet/internal/hubs"
	"github.com/tcxian/ppinet/internal/interaction"
	"github.com/tcxian/ppinet/internal/ppigraph"
)

// Result holds everything derived from one set of interaction records.
// Derived structures are rebuilt from scratch on every run; nothing here is
// shared between invocations.
type Result struct {
	Network  *ppigraph.Network
	NumNodes int
	NumEdges int
	Table    centrality.Table
	Hubs     *hubs.HubSet
	Warnings []string
}

// Run builds the network from records, computes all centrality measures,
// and selects hubs by the given kind. Graph construction errors are fatal;
// centrality warnings (eigenvector non-convergence) are carried on the
// result with the affected column zeroed.
func Run(records []interaction.Record, rankBy centrality.Kind, top int, opts ...centrality.Option) (*Result, error) {
	net, err := ppigraph.Build(records)
	if err != nil {
		return nil, err
	}

	table, warnings := centrality.Compute(net, opts...)

	hubSet, err := hubs.Select(table, rankBy, top)
	if err != nil {
		return nil, err
	}

	return &Result{
		Network:  net,
		NumNodes: net.NumNodes(),
		NumEdges: net.NumEdges(),
		Table:    table,
		Hubs:     hubSet,
		Warnings: warnings,
	}, nil
}
