package centrality

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/mat"

	"github.com/tcxian/ppinet/internal/ppigraph"
)

// degreeScores normalizes node degree by |V|-1.
func degreeScores(net *ppigraph.Network) map[string]float64 {
	n := net.NumNodes()
	scores := make(map[string]float64, n)
	for _, p := range net.Proteins() {
		if n > 1 {
			scores[p] = float64(net.Degree(p)) / float64(n-1)
		} else {
			scores[p] = 0
		}
	}
	return scores
}

// betweennessScores computes shortest-path betweenness, normalized by
// (|V|-1)(|V|-2). The gonum accumulation counts each ordered pair, which is
// twice the unordered-pair sum, so the undirected normalization 2/((n-1)(n-2))
// reduces to dividing by (n-1)(n-2).
func betweennessScores(net *ppigraph.Network) map[string]float64 {
	n := net.NumNodes()
	scores := make(map[string]float64, n)
	for _, p := range net.Proteins() {
		scores[p] = 0
	}
	if n < 3 || net.NumEdges() == 0 {
		return scores
	}

	raw := network.Betweenness(net.Undirected())
	norm := float64(n-1) * float64(n-2)
	for id, v := range raw {
		scores[net.ProteinAt(id)] = v / norm
	}
	return scores
}

// closenessScores computes closeness over reachable nodes only, scaled by
// the reachable fraction so that scores stay comparable across components of
// a disconnected network. Cross-component pairs contribute nothing; isolated
// nodes score 0.
func closenessScores(net *ppigraph.Network) map[string]float64 {
	n := net.NumNodes()
	scores := make(map[string]float64, n)
	for _, p := range net.Proteins() {
		scores[p] = 0
	}
	if n < 2 || net.NumEdges() == 0 {
		return scores
	}

	paths, _ := path.FloydWarshall(net.Undirected())
	for i := 0; i < n; i++ {
		var sum float64
		reachable := 0
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			w := paths.Weight(int64(i), int64(j))
			if math.IsInf(w, 1) {
				continue
			}
			sum += w
			reachable++
		}
		if reachable == 0 || sum == 0 {
			continue
		}
		r := float64(reachable)
		scores[net.ProteinAt(int64(i))] = (r / sum) * (r / float64(n-1))
	}
	return scores
}

// eigenvectorScores computes eigenvector centrality by power iteration on
// I+A (the shift avoids oscillation on bipartite structures), normalized by
// the Euclidean norm each step. Fails with ErrConvergence when the L1 change
// stays above n*tol for maxIter steps.
func eigenvectorScores(net *ppigraph.Network, maxIter int, tol float64) (map[string]float64, error) {
	n := net.NumNodes()
	if n < 2 || net.NumEdges() == 0 {
		scores := make(map[string]float64, n)
		for _, p := range net.Proteins() {
			scores[p] = 0
		}
		return scores, nil
	}

	adj := mat.NewDense(n, n, nil)
	for _, e := range net.Edges() {
		ai, _ := net.NodeID(e.A)
		bi, _ := net.NodeID(e.B)
		adj.Set(int(ai), int(bi), 1)
		adj.Set(int(bi), int(ai), 1)
	}

	x := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		x.SetVec(i, 1/float64(n))
	}

	var ax, next mat.VecDense
	for iter := 0; iter < maxIter; iter++ {
		ax.MulVec(adj, x)
		next.AddVec(x, &ax)

		norm := mat.Norm(&next, 2)
		if norm == 0 {
			break
		}
		next.ScaleVec(1/norm, &next)

		var change float64
		for i := 0; i < n; i++ {
			change += math.Abs(next.AtVec(i) - x.AtVec(i))
		}
		x.CopyVec(&next)

		if change < float64(n)*tol {
			scores := make(map[string]float64, n)
			for i, p := range net.Proteins() {
				scores[p] = x.AtVec(i)
			}
			return scores, nil
		}
	}

	return nil, fmt.Errorf("%w after %d iterations", ErrConvergence, maxIter)
}

// pagerankScores runs the damped random-walk score over the directed mirror
// of the network. Scores over all nodes sum to 1 for any non-empty network.
func pagerankScores(net *ppigraph.Network, damping, tol float64) map[string]float64 {
	n := net.NumNodes()
	scores := make(map[string]float64, n)
	for _, p := range net.Proteins() {
		scores[p] = 0
	}
	if n < 2 || net.NumEdges() == 0 {
		return scores
	}

	raw := network.PageRank(net.Directed(), damping, tol)
	for id, v := range raw {
		scores[net.ProteinAt(id)] = v
	}
	return scores
}
