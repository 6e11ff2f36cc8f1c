// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gyrus Contributors

package memory

import (
	"math"
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Hybrid scoring weights. The keyword boost is additive, so a total score
// can exceed 1.0; scores are a ranking key, not a probability.
const (
	SemanticWeight = 0.7
	FuzzyWeight    = 0.3
	KeywordBoost   = 0.5
)

// CosineSimilarity returns the cosine of the angle between a and b in
// [-1, 1]. Degenerate inputs (empty, mismatched lengths, zero magnitude)
// return 0 rather than an error; the sentinel is uniform across every
// ranking pass, including the store's similarity scan.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, magA, magB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		magA += float64(a[i]) * float64(a[i])
		magB += float64(b[i]) * float64(b[i])
	}
	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}

// HybridScore blends three signals for ranking node against query:
// cosine similarity of the vectors (only when the query vector is present
// and both sides were produced by the same model), a case-insensitive
// Ratcliff/Obershelp ratio between the strings, and a fixed boost when
// the query is a literal substring of the content.
func HybridScore(query string, node *Node, queryVec []float32, queryModelID string) float64 {
	q := strings.ToLower(query)
	content := strings.ToLower(node.Content)

	var semantic float64
	if len(queryVec) > 0 && node.VectorModelID == queryModelID {
		semantic = CosineSimilarity(queryVec, node.Vector)
	}

	score := semantic*SemanticWeight + fuzzyRatio(q, content)*FuzzyWeight
	if strings.Contains(content, q) {
		score += KeywordBoost
	}
	return score
}

// Rank orders nodes by descending HybridScore. Ties keep their original
// relative order, an empty query returns the original order untouched,
// and the input slice is never mutated, so the function is safe to call
// on every keystroke of a live query.
func Rank(query string, nodes []*Node, queryVec []float32, queryModelID string) []*Node {
	out := make([]*Node, len(nodes))
	copy(out, nodes)
	if query == "" {
		return out
	}

	type scored struct {
		node  *Node
		score float64
	}
	ranked := make([]scored, len(out))
	for i, n := range out {
		ranked[i] = scored{node: n, score: HybridScore(query, n, queryVec, queryModelID)}
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })
	for i, s := range ranked {
		out[i] = s.node
	}
	return out
}

// fuzzyRatio is the Ratcliff/Obershelp longest-matching-blocks ratio over
// runes, in [0, 1]. Inputs are already lowercased by the caller.
func fuzzyRatio(a, b string) float64 {
	return difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, "")).Ratio()
}
