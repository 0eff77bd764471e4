package similarity

import "sort"

// Link is a directional similarity relation from one named item to another.
type Link struct {
	Target     string
	Similarity float64
}

// Graph holds the full backlink graph for one set of named embeddings.
// Order preserves embedding generation order so iteration stays
// deterministic; Links maps each name to its related items sorted by
// descending similarity.
type Graph struct {
	Order []string
	Links map[string][]Link
}

// BuildGraph computes, for every named item, all other items whose cosine
// similarity meets the threshold, sorted descending by similarity. Ties
// keep input order (stable sort); self links are excluded. The graph is
// recomputed from scratch on every call and never cached.
func BuildGraph(names []string, embeddings [][]float32, threshold float64) *Graph {
	g := &Graph{
		Order: append([]string(nil), names...),
		Links: make(map[string][]Link, len(names)),
	}

	for i, name := range names {
		var links []Link
		for j, other := range names {
			if i == j {
				continue
			}
			sim := Cosine(embeddings[i], embeddings[j])
			if sim >= threshold {
				links = append(links, Link{Target: other, Similarity: sim})
			}
		}

		sort.SliceStable(links, func(a, b int) bool {
			return links[a].Similarity > links[b].Similarity
		})

		g.Links[name] = links
	}

	return g
}

// Related returns the ranked links for a name.
func (g *Graph) Related(name string) []Link {
	return g.Links[name]
}

// TopK returns at most k of the highest-ranked links for a name. The
// underlying graph always holds the full sorted list; truncation is a
// rendering concern.
func (g *Graph) TopK(name string, k int) []Link {
	links := g.Links[name]
	if k <= 0 || len(links) <= k {
		return links
	}
	return links[:k]
}
