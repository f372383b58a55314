package viz

import (
	"github.com/tcxian/ppinet/internal/analysis"
)

// BuildGraph converts an analysis result into renderable GraphData, with
// hub proteins flagged for highlighting and the ranking score attached to
// every node.
func BuildGraph(res *analysis.Result) *GraphData {
	net := res.Network

	nodes := make([]Node, 0, net.NumNodes())
	for _, id := range net.Proteins() {
		score, _ := res.Table[id].Value(res.Hubs.RankedBy)
		nodes = append(nodes, Node{
			ID:         id,
			Label:      net.Label(id),
			Hub:        res.Hubs.IsHub(id),
			Degree:     net.Degree(id),
			Centrality: score,
			RankedBy:   string(res.Hubs.RankedBy),
		})
	}

	edges := make([]Edge, 0, net.NumEdges())
	for _, e := range net.Edges() {
		edges = append(edges, Edge{
			Source: e.A,
			Target: e.B,
			Score:  e.Score,
		})
	}

	return &GraphData{Nodes: nodes, Edges: edges}
}
