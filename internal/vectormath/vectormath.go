// Package vectormath provides pure numeric helpers for comparing embedding vectors.
package vectormath

import (
	"fmt"
	"math"
)

// CosineSimilarity computes the cosine similarity between two equal-length vectors,
// returning a value in [-1, 1]. Mismatched lengths are a programmer error and panic;
// embedding vectors from one deployment always share one dimensionality.
// If either vector has zero magnitude the similarity is defined as 0.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) {
		panic(fmt.Sprintf("vectormath: dimension mismatch: %d vs %d", len(a), len(b)))
	}

	var dot, normA, normB float64
	for i := range a {
		x := float64(a[i])
		y := float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))

	// Guard against floating drift pushing the result outside [-1, 1]
	if sim > 1 {
		sim = 1
	}
	if sim < -1 {
		sim = -1
	}
	return sim
}

// ToPercentScore maps a similarity in [-1, 1] onto an integer score in [0, 100].
// Out-of-range inputs are clamped before mapping.
func ToPercentScore(similarity float64) int {
	if similarity > 1 {
		similarity = 1
	}
	if similarity < -1 {
		similarity = -1
	}

	score := int(math.Round((similarity + 1) * 50))
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}
