// FILE: pkg/rag/rank.go
// PURPOSE: Score-ordered selection of primary context documents

package rag

import (
	"sort"

	"policy-rag-be/pkg/store"
)

// TopByScore splits candidates into the primary context set (first n by
// descending similarity) and the remainder used for the reference list.
// The sort is stable: documents with tied scores keep retrieval order, and
// documents without a score rank as 0. Retrievers are not guaranteed to
// return score-sorted results, so this runs before every prompt build.
func TopByScore(docs []store.Document, n int) (top []store.Document, rest []store.Document) {
	if n < 0 {
		n = 0
	}

	sorted := make([]store.Document, len(docs))
	copy(sorted, docs)

	sort.SliceStable(sorted, func(i, j int) bool {
		return scoreOf(sorted[i]) > scoreOf(sorted[j])
	})

	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n], sorted[n:]
}

func scoreOf(d store.Document) float64 {
	if !d.HasScore {
		return 0
	}
	return d.Score
}
