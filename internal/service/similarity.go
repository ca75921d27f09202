package service

import (
	"math"
	"sort"

	"github.com/kingrain94/vehicle-assess-api/internal/domain"
)

// CosineSimilarity returns 0 when either vector has no magnitude. Callers
// must pass vectors of equal length.
func CosineSimilarity(a, b []float32) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// TopMatches scores candidates against query and keeps the best k. Vectors
// of a different dimension are skipped.
func TopMatches(query []float32, candidates []domain.Embedding, k int) []domain.SimilarityMatch {
	matches := make([]domain.SimilarityMatch, 0, len(candidates))
	for _, c := range candidates {
		if len(c.Vector) != len(query) || len(query) == 0 {
			continue
		}
		matches = append(matches, domain.SimilarityMatch{
			SourceType: c.SourceType,
			SourceID:   c.SourceID,
			Score:      CosineSimilarity(query, c.Vector),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if k > 0 && len(matches) > k {
		matches = matches[:k]
	}
	return matches
}
