// Package ppigraph builds an undirected protein interaction graph from
// normalized interaction records.
package ppigraph

import (
	"errors"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/tcxian/ppinet/internal/interaction"
)

// ErrEmptyGraph is returned when no nodes remain after filtering.
var ErrEmptyGraph = errors.New("no nodes after filtering interactions")

// Edge is a unique undirected interaction between two proteins. A and B are
// in canonical (lexicographic) order.
type Edge struct {
	A     string  `json:"a"`
	B     string  `json:"b"`
	Score float64 `json:"score,omitempty"`
}

// Network is an undirected protein interaction graph. Proteins are indexed
// by identifier; the backing gonum graph uses dense node IDs 0..n-1 assigned
// in first-seen order.
type Network struct {
	g        *simple.UndirectedGraph
	index    map[string]int64
	proteins []string
	labels   map[string]string
	edges    []Edge
}

// Build constructs a Network from interaction records. Self-interactions are
// dropped, duplicate unordered pairs collapse to a single edge, and each
// node keeps the label from the first record mentioning it. Returns
// ErrEmptyGraph if nothing remains after filtering.
func Build(records []interaction.Record) (*Network, error) {
	net := &Network{
		g:      simple.NewUndirectedGraph(),
		index:  make(map[string]int64),
		labels: make(map[string]string),
	}

	seen := make(map[[2]string]bool)
	for _, r := range records {
		if r.SourceID == "" || r.TargetID == "" || r.SelfInteraction() {
			continue
		}

		ai := net.addNode(r.SourceID, r.SourceLabel)
		bi := net.addNode(r.TargetID, r.TargetLabel)

		key := pairKey(r.SourceID, r.TargetID)
		if seen[key] {
			continue
		}
		seen[key] = true

		net.g.SetEdge(simple.Edge{F: simple.Node(ai), T: simple.Node(bi)})
		net.edges = append(net.edges, Edge{A: key[0], B: key[1], Score: r.Score})
	}

	if len(net.proteins) == 0 {
		return nil, ErrEmptyGraph
	}

	return net, nil
}

// addNode registers a protein on first sight and returns its dense node ID.
func (n *Network) addNode(id, label string) int64 {
	if idx, ok := n.index[id]; ok {
		return idx
	}
	idx := int64(len(n.proteins))
	n.index[id] = idx
	n.proteins = append(n.proteins, id)
	if label == "" {
		label = id
	}
	n.labels[id] = label
	n.g.AddNode(simple.Node(idx))
	return idx
}

// pairKey returns the canonical unordered pair key for an edge.
func pairKey(a, b string) [2]string {
	if b < a {
		a, b = b, a
	}
	return [2]string{a, b}
}

// NumNodes returns the number of proteins in the network.
func (n *Network) NumNodes() int { return len(n.proteins) }

// NumEdges returns the number of unique interactions.
func (n *Network) NumEdges() int { return len(n.edges) }

// Proteins returns protein identifiers in first-seen order. The slice index
// of each protein equals its gonum node ID.
func (n *Network) Proteins() []string {
	out := make([]string, len(n.proteins))
	copy(out, n.proteins)
	return out
}

// Label returns the display label for a protein identifier.
func (n *Network) Label(id string) string {
	return n.labels[id]
}

// Degree returns the number of interaction partners of a protein.
func (n *Network) Degree(id string) int {
	idx, ok := n.index[id]
	if !ok {
		return 0
	}
	return n.g.From(idx).Len()
}

// HasEdge reports whether two proteins interact.
func (n *Network) HasEdge(a, b string) bool {
	ai, aok := n.index[a]
	bi, bok := n.index[b]
	return aok && bok && n.g.HasEdgeBetween(ai, bi)
}

// Edges returns the unique interactions in insertion order.
func (n *Network) Edges() []Edge {
	out := make([]Edge, len(n.edges))
	copy(out, n.edges)
	return out
}

// NodeID returns the dense gonum node ID for a protein identifier.
func (n *Network) NodeID(id string) (int64, bool) {
	idx, ok := n.index[id]
	return idx, ok
}

// ProteinAt returns the protein identifier for a gonum node ID.
func (n *Network) ProteinAt(id int64) string {
	return n.proteins[id]
}

// Undirected exposes the backing gonum graph for algorithm calls.
func (n *Network) Undirected() graph.Undirected {
	return n.g
}

// Directed returns a directed mirror of the network with both arcs per
// interaction, as required by random-walk algorithms.
func (n *Network) Directed() *simple.DirectedGraph {
	dg := simple.NewDirectedGraph()
	for i := range n.proteins {
		dg.AddNode(simple.Node(int64(i)))
	}
	for _, e := range n.edges {
		ai, bi := n.index[e.A], n.index[e.B]
		dg.SetEdge(simple.Edge{F: simple.Node(ai), T: simple.Node(bi)})
		dg.SetEdge(simple.Edge{F: simple.Node(bi), T: simple.Node(ai)})
	}
	return dg
}
