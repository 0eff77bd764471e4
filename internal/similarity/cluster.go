package similarity

// Cluster partitions the indices 0..len(embeddings)-1 into disjoint
// clusters by greedy thresholded similarity. Indices are processed in
// ascending order; each unassigned index opens a new cluster and absorbs
// every later unassigned index whose similarity to the anchor meets the
// threshold.
//
// The pass is anchor-based, not transitive connected components: two items
// each similar to a common third may land in different clusters when that
// third item was already claimed by an earlier anchor. Callers depend on
// that anchor-order behavior; changing it to transitive closure changes
// the output contract.
func Cluster(embeddings [][]float32, threshold float64) [][]int {
	n := len(embeddings)
	if n == 0 {
		return nil
	}

	visited := make([]bool, n)
	var clusters [][]int

	for i := 0; i < n; i++ {
		if visited[i] {
			continue
		}

		cluster := []int{i}
		visited[i] = true

		for j := i + 1; j < n; j++ {
			if visited[j] {
				continue
			}
			if Cosine(embeddings[i], embeddings[j]) >= threshold {
				cluster = append(cluster, j)
				visited[j] = true
			}
		}

		clusters = append(clusters, cluster)
	}

	return clusters
}
