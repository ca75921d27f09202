package mock

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingrain94/vehicle-assess-api/internal/llm"
)

func TestNewMockProvider(t *testing.T) {
	p := NewMockProvider()

	completion, err := p.ChatCompletion(context.Background(), llm.ChatRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Mock reply", completion.Message.Content)

	emb, err := p.Embed(context.Background(), "x")
	require.NoError(t, err)
	assert.Len(t, emb.Vector, 3)
}

func TestNewFailingProvider(t *testing.T) {
	p := NewFailingProvider(llm.ErrProviderUnavailable)

	_, err := p.ChatCompletion(context.Background(), llm.ChatRequest{})
	assert.ErrorIs(t, err, llm.ErrProviderUnavailable)
	_, err = p.Embed(context.Background(), "x")
	assert.ErrorIs(t, err, llm.ErrProviderUnavailable)
}
