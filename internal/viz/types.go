// Package viz provides interaction network visualization functionality.
package viz

// GraphData contains all data needed to render the visualization.
type GraphData struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Node represents a protein in the rendered network.
type Node struct {
	ID    string `json:"id"`
	Label string `json:"label"`

	// Hub marks top-ranked proteins for highlighting.
	Hub bool `json:"hub"`

	// Degree drives node sizing.
	Degree int `json:"degree"`

	// Centrality is the score of the ranking measure, for tooltips.
	Centrality float64 `json:"centrality"`
	RankedBy   string  `json:"rankedBy"`
}

// Edge represents an interaction between two proteins.
type Edge struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Score  float64 `json:"score,omitempty"`
}

// IsEmpty returns true if the graph has no nodes.
func (g *GraphData) IsEmpty() bool {
	return len(g.Nodes) == 0
}
