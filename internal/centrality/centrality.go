// Package centrality computes standard centrality measures over a protein
// interaction network.
package centrality

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tcxian/ppinet/internal/ppigraph"
)

// ErrConvergence is returned when power iteration fails to converge within
// the configured number of steps.
var ErrConvergence = errors.New("power iteration did not converge")

// Kind names a centrality measure.
type Kind string

// The five recognized centrality kinds.
const (
	Degree      Kind = "degree"
	Betweenness Kind = "betweenness"
	Closeness   Kind = "closeness"
	Eigenvector Kind = "eigenvector"
	PageRank    Kind = "pagerank"
)

// Kinds returns all recognized centrality kinds.
func Kinds() []Kind {
	return []Kind{Degree, Betweenness, Closeness, Eigenvector, PageRank}
}

// ParseKind parses a centrality kind name.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, valid := range Kinds() {
		if k == valid {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown centrality kind %q (valid: degree, betweenness, closeness, eigenvector, pagerank)", s)
}

// Scores holds the five centrality values for a single protein. Scores are
// comparable only within the table they were computed in.
type Scores struct {
	Degree      float64 `json:"degree"`
	Betweenness float64 `json:"betweenness"`
	Closeness   float64 `json:"closeness"`
	Eigenvector float64 `json:"eigenvector"`
	PageRank    float64 `json:"pagerank"`
}

// Value returns the score for the given kind. The second return value is
// false for unrecognized kinds.
func (s Scores) Value(k Kind) (float64, bool) {
	switch k {
	case Degree:
		return s.Degree, true
	case Betweenness:
		return s.Betweenness, true
	case Closeness:
		return s.Closeness, true
	case Eigenvector:
		return s.Eigenvector, true
	case PageRank:
		return s.PageRank, true
	}
	return 0, false
}

// Table maps protein identifiers to their centrality scores. Every node of
// the source network has exactly one row.
type Table map[string]Scores

// Options configures the iterative measures.
type Options struct {
	EigenvectorMaxIter int
	EigenvectorTol     float64
	Damping            float64
	PageRankTol        float64
}

// Option overrides a computation default.
type Option func(*Options)

// WithEigenvectorIterations caps eigenvector power iteration.
func WithEigenvectorIterations(n int) Option {
	return func(o *Options) { o.EigenvectorMaxIter = n }
}

// WithDamping sets the PageRank damping factor.
func WithDamping(d float64) Option {
	return func(o *Options) { o.Damping = d }
}

// defaultOptions mirror the conventional defaults for both power iterations.
func defaultOptions() Options {
	return Options{
		EigenvectorMaxIter: 100,
		EigenvectorTol:     1e-6,
		Damping:            0.85,
		PageRankTol:        1e-6,
	}
}

// Compute calculates all five measures for every node in the network. The
// measures are independent: eigenvector non-convergence zero-fills that
// column and surfaces a warning, the other four stay valid. Single-node and
// edge-less networks produce all-zero rows, never an error.
func Compute(net *ppigraph.Network, opts ...Option) (Table, []string) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	proteins := net.Proteins()

	deg := degreeScores(net)
	btw := betweennessScores(net)
	cls := closenessScores(net)
	pr := pagerankScores(net, o.Damping, o.PageRankTol)

	var warnings []string
	eig, err := eigenvectorScores(net, o.EigenvectorMaxIter, o.EigenvectorTol)
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("eigenvector centrality: %v; scores set to 0", err))
		eig = nil
	}

	table := make(Table, len(proteins))
	for _, p := range proteins {
		table[p] = Scores{
			Degree:      deg[p],
			Betweenness: btw[p],
			Closeness:   cls[p],
			Eigenvector: eig[p],
			PageRank:    pr[p],
		}
	}

	return table, warnings
}
