package centrality

import (
	"math"
	"testing"

	"github.com/tcxian/ppinet/internal/interaction"
	"github.com/tcxian/ppinet/internal/ppigraph"
)

// buildNet constructs a network from identifier pairs.
func buildNet(t *testing.T, pairs [][2]string) *ppigraph.Network {
	t.Helper()
	records := make([]interaction.Record, 0, len(pairs))
	for _, p := range pairs {
		records = append(records, interaction.Record{SourceID: p[0], TargetID: p[1]})
	}
	net, err := ppigraph.Build(records)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return net
}

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Kind
		wantErr bool
	}{
		{"degree", "degree", Degree, false},
		{"mixed case", "PageRank", PageRank, false},
		{"whitespace", " betweenness ", Betweenness, false},
		{"closeness", "closeness", Closeness, false},
		{"eigenvector", "eigenvector", Eigenvector, false},
		{"unknown", "katz", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKind(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseKind(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCompute_Triangle(t *testing.T) {
	net := buildNet(t, [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}})
	table, warnings := Compute(net)

	if len(warnings) != 0 {
		t.Fatalf("Compute() warnings = %v, want none", warnings)
	}
	if len(table) != 3 {
		t.Fatalf("len(table) = %d, want 3", len(table))
	}

	invSqrt3 := 1 / math.Sqrt(3)
	for _, p := range []string{"A", "B", "C"} {
		s := table[p]
		if !approx(s.Degree, 1.0, 1e-9) {
			t.Errorf("%s degree = %v, want 1.0", p, s.Degree)
		}
		if !approx(s.Betweenness, 0, 1e-9) {
			t.Errorf("%s betweenness = %v, want 0", p, s.Betweenness)
		}
		if !approx(s.Closeness, 1.0, 1e-9) {
			t.Errorf("%s closeness = %v, want 1.0", p, s.Closeness)
		}
		if !approx(s.Eigenvector, invSqrt3, 1e-4) {
			t.Errorf("%s eigenvector = %v, want %v", p, s.Eigenvector, invSqrt3)
		}
		if !approx(s.PageRank, 1.0/3, 1e-4) {
			t.Errorf("%s pagerank = %v, want 1/3", p, s.PageRank)
		}
	}
}

func TestCompute_Star(t *testing.T) {
	net := buildNet(t, [][2]string{{"C", "L1"}, {"C", "L2"}, {"C", "L3"}, {"C", "L4"}})
	table, warnings := Compute(net)

	if len(warnings) != 0 {
		t.Fatalf("Compute() warnings = %v, want none", warnings)
	}

	center := table["C"]
	if !approx(center.Degree, 1.0, 1e-9) {
		t.Errorf("center degree = %v, want 1.0", center.Degree)
	}
	if !approx(center.Betweenness, 1.0, 1e-9) {
		t.Errorf("center betweenness = %v, want 1.0", center.Betweenness)
	}
	if !approx(center.Closeness, 1.0, 1e-9) {
		t.Errorf("center closeness = %v, want 1.0", center.Closeness)
	}

	leaf := table["L1"]
	if !approx(leaf.Degree, 0.25, 1e-9) {
		t.Errorf("leaf degree = %v, want 0.25", leaf.Degree)
	}
	if !approx(leaf.Betweenness, 0, 1e-9) {
		t.Errorf("leaf betweenness = %v, want 0", leaf.Betweenness)
	}
	// Leaf distances: 1 to the center, 2 to each other leaf.
	if want := 4.0 / 7.0; !approx(leaf.Closeness, want, 1e-9) {
		t.Errorf("leaf closeness = %v, want %v", leaf.Closeness, want)
	}
	if leaf.PageRank >= center.PageRank {
		t.Errorf("leaf pagerank %v should be below center %v", leaf.PageRank, center.PageRank)
	}
	if leaf.Eigenvector >= center.Eigenvector {
		t.Errorf("leaf eigenvector %v should be below center %v", leaf.Eigenvector, center.Eigenvector)
	}
}

func TestCompute_Path(t *testing.T) {
	net := buildNet(t, [][2]string{{"A", "B"}, {"B", "C"}})
	table, _ := Compute(net)

	if want := 2.0 / 3.0; !approx(table["A"].Closeness, want, 1e-9) {
		t.Errorf("endpoint closeness = %v, want %v", table["A"].Closeness, want)
	}
	if !approx(table["B"].Betweenness, 1.0, 1e-9) {
		t.Errorf("middle betweenness = %v, want 1.0", table["B"].Betweenness)
	}
	if !approx(table["A"].Betweenness, 0, 1e-9) {
		t.Errorf("endpoint betweenness = %v, want 0", table["A"].Betweenness)
	}
}

func TestCompute_TwoNodes(t *testing.T) {
	net := buildNet(t, [][2]string{{"A", "B"}})
	table, warnings := Compute(net)

	if len(warnings) != 0 {
		t.Fatalf("Compute() warnings = %v, want none", warnings)
	}
	for _, p := range []string{"A", "B"} {
		s := table[p]
		if !approx(s.Degree, 1.0, 1e-9) {
			t.Errorf("%s degree = %v, want 1.0", p, s.Degree)
		}
		if !approx(s.Betweenness, 0, 1e-9) {
			t.Errorf("%s betweenness = %v, want 0 for n < 3", p, s.Betweenness)
		}
		if !approx(s.Closeness, 1.0, 1e-9) {
			t.Errorf("%s closeness = %v, want 1.0", p, s.Closeness)
		}
		if !approx(s.PageRank, 0.5, 1e-4) {
			t.Errorf("%s pagerank = %v, want 0.5", p, s.PageRank)
		}
	}
}

func TestCompute_DisconnectedComponents(t *testing.T) {
	// Triangle A-B-C plus a separate D-E edge.
	net := buildNet(t, [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}, {"D", "E"}})
	table, warnings := Compute(net)

	if len(warnings) != 0 {
		t.Fatalf("Compute() warnings = %v, want none", warnings)
	}

	// Closeness over reachable nodes, scaled by the reachable fraction.
	if want := 0.5; !approx(table["A"].Closeness, want, 1e-9) {
		t.Errorf("triangle closeness = %v, want %v", table["A"].Closeness, want)
	}
	if want := 0.25; !approx(table["D"].Closeness, want, 1e-9) {
		t.Errorf("pair closeness = %v, want %v", table["D"].Closeness, want)
	}

	var sum float64
	for _, s := range table {
		sum += s.PageRank
	}
	if !approx(sum, 1.0, 1e-4) {
		t.Errorf("pagerank sum = %v, want 1.0", sum)
	}
}

func TestCompute_EigenvectorNonConvergence(t *testing.T) {
	net := buildNet(t, [][2]string{{"C", "L1"}, {"C", "L2"}, {"C", "L3"}})
	table, warnings := Compute(net, WithEigenvectorIterations(1))

	if len(warnings) != 1 {
		t.Fatalf("Compute() warnings = %v, want one convergence warning", warnings)
	}
	for p, s := range table {
		if s.Eigenvector != 0 {
			t.Errorf("%s eigenvector = %v, want 0 after non-convergence", p, s.Eigenvector)
		}
	}
	// The failure is isolated: other measures stay valid.
	if !approx(table["C"].Degree, 1.0, 1e-9) {
		t.Errorf("center degree = %v, want 1.0 despite eigenvector failure", table["C"].Degree)
	}
	if !approx(table["C"].Betweenness, 1.0, 1e-9) {
		t.Errorf("center betweenness = %v, want 1.0 despite eigenvector failure", table["C"].Betweenness)
	}
}

func TestScores_Value(t *testing.T) {
	s := Scores{Degree: 1, Betweenness: 2, Closeness: 3, Eigenvector: 4, PageRank: 5}

	tests := []struct {
		kind Kind
		want float64
		ok   bool
	}{
		{Degree, 1, true},
		{Betweenness, 2, true},
		{Closeness, 3, true},
		{Eigenvector, 4, true},
		{PageRank, 5, true},
		{Kind("katz"), 0, false},
	}

	for _, tt := range tests {
		got, ok := s.Value(tt.kind)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Value(%q) = %v, %v, want %v, %v", tt.kind, got, ok, tt.want, tt.ok)
		}
	}
}
