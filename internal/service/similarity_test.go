package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kingrain94/vehicle-assess-api/internal/domain"
)

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, CosineSimilarity([]float32{1, 2}, []float32{2, 4}), 1e-9)
	assert.InDelta(t, 0.0, CosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.Equal(t, 0.0, CosineSimilarity([]float32{0, 0}, []float32{1, 1}))
}

func TestTopMatches_LimitsAndOrders(t *testing.T) {
	candidates := []domain.Embedding{
		{SourceID: "a", Vector: []float32{0, 1}},
		{SourceID: "b", Vector: []float32{1, 0}},
		{SourceID: "c", Vector: []float32{1, 1}},
		{SourceID: "d", Vector: []float32{1}},
	}

	matches := TopMatches([]float32{1, 0}, candidates, 2)

	assert.Len(t, matches, 2)
	assert.Equal(t, "b", matches[0].SourceID)
	assert.Equal(t, "c", matches[1].SourceID)
}

func TestTopMatches_EmptyQuery(t *testing.T) {
	assert.Empty(t, TopMatches(nil, []domain.Embedding{{Vector: nil}}, 5))
}
