package similarity

import (
	"math"
	"testing"
)

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 0}, []float32{1, 0}, 1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1},
		{"length mismatch", []float32{1, 0}, []float32{1}, 0},
		{"zero vector", []float32{0, 0}, []float32{1, 0}, 0},
		{"empty", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cosine(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Cosine() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCosineScaleInvariant(t *testing.T) {
	a := []float32{3, 4}
	b := []float32{6, 8}
	if got := Cosine(a, b); math.Abs(got-1) > 1e-6 {
		t.Errorf("Cosine of parallel vectors = %v, want 1", got)
	}
}

// Vectors engineered so cosine(0,1) and cosine(2,3) are high while the
// pairs stay nearly orthogonal to each other.
func clusterFixture() [][]float32 {
	return [][]float32{
		{1, 0.1, 0, 0},
		{1, 0, 0.1, 0},
		{0, 0.1, 0, 1},
		{0, 0, 0.1, 1},
	}
}

func TestClusterPairs(t *testing.T) {
	clusters := Cluster(clusterFixture(), 0.7)

	if len(clusters) != 2 {
		t.Fatalf("got %d clusters, want 2: %v", len(clusters), clusters)
	}
	assertCluster(t, clusters[0], []int{0, 1})
	assertCluster(t, clusters[1], []int{2, 3})
}

func TestClusterExhaustive(t *testing.T) {
	embeddings := clusterFixture()
	clusters := Cluster(embeddings, 0.7)

	seen := make(map[int]int)
	for _, cluster := range clusters {
		for _, idx := range cluster {
			seen[idx]++
		}
	}
	for i := range embeddings {
		if seen[i] != 1 {
			t.Errorf("index %d appears %d times across clusters, want exactly 1", i, seen[i])
		}
	}
}

func TestClusterAllSingletons(t *testing.T) {
	embeddings := [][]float32{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}

	clusters := Cluster(embeddings, 0.5)

	if len(clusters) != 3 {
		t.Fatalf("got %d clusters, want 3 singletons", len(clusters))
	}
}

func TestClusterNonTransitive(t *testing.T) {
	// 1 is similar to both 0 and 2, but 0 and 2 are not similar. The
	// anchor-based pass puts 1 into 0's cluster; 2 gets its own.
	embeddings := [][]float32{
		{1, 0},
		{0.8, 0.6},
		{0, 1},
	}

	clusters := Cluster(embeddings, 0.75)

	if len(clusters) != 2 {
		t.Fatalf("got %d clusters, want 2: %v", len(clusters), clusters)
	}
	assertCluster(t, clusters[0], []int{0, 1})
	assertCluster(t, clusters[1], []int{2})
}

func TestClusterEmpty(t *testing.T) {
	if clusters := Cluster(nil, 0.7); len(clusters) != 0 {
		t.Errorf("got %v, want no clusters", clusters)
	}
}

func assertCluster(t *testing.T, got, want []int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("cluster = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("cluster = %v, want %v", got, want)
		}
	}
}

func TestBuildGraphExample(t *testing.T) {
	// sim(A,B)=0.8, sim(A,C)=0.5, sim(B,C)=0.2 within float tolerance.
	names := []string{"A", "B", "C"}
	embeddings := [][]float32{
		{1, 0, 0},
		{0.8, 0.6, 0},
		{0.5, -0.2, 0.843},
	}

	g := BuildGraph(names, embeddings, 0.3)

	a := g.Related("A")
	if len(a) != 2 || a[0].Target != "B" || a[1].Target != "C" {
		t.Fatalf("A links = %v, want [B C]", a)
	}
	if math.Abs(a[0].Similarity-0.8) > 0.01 || math.Abs(a[1].Similarity-0.5) > 0.01 {
		t.Errorf("A similarities = %v, want [0.8 0.5]", a)
	}

	b := g.Related("B")
	if len(b) != 1 || b[0].Target != "A" {
		t.Fatalf("B links = %v, want [A]", b)
	}

	c := g.Related("C")
	if len(c) != 1 || c[0].Target != "A" {
		t.Fatalf("C links = %v, want [A]", c)
	}
}

func TestBuildGraphThresholdInclusive(t *testing.T) {
	names := []string{"x", "y"}
	embeddings := [][]float32{
		{1, 0},
		{1, 0},
	}

	g := BuildGraph(names, embeddings, 1.0)

	if len(g.Related("x")) != 1 {
		t.Error("similarity exactly at threshold must be included")
	}
}

func TestGraphTopK(t *testing.T) {
	names := []string{"a", "b", "c", "d"}
	embeddings := [][]float32{
		{1, 0},
		{0.9, 0.1},
		{0.8, 0.2},
		{0.7, 0.3},
	}

	g := BuildGraph(names, embeddings, 0.1)

	top := g.TopK("a", 2)
	if len(top) != 2 {
		t.Fatalf("TopK returned %d links, want 2", len(top))
	}
	if top[0].Similarity < top[1].Similarity {
		t.Error("TopK results not sorted descending")
	}

	full := g.Related("a")
	if len(full) != 3 {
		t.Errorf("full link list has %d entries, want all 3", len(full))
	}
}
