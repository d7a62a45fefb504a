package embedding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosineSimilarity(t *testing.T) {
	sim, err := CosineSimilarity([]float32{1, 0}, []float32{1, 0})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, sim, 1e-9)

	sim, err = CosineSimilarity([]float32{1, 0}, []float32{0, 1})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, sim, 1e-9)

	sim, err = CosineSimilarity([]float32{1, 0}, []float32{-1, 0})
	require.NoError(t, err)
	assert.InDelta(t, -1.0, sim, 1e-9)
}

func TestCosineSimilarity_DimensionMismatch(t *testing.T) {
	_, err := CosineSimilarity([]float32{1, 0}, []float32{1, 0, 0})
	assert.Error(t, err)
}

func TestCosineSimilarity_ZeroVector(t *testing.T) {
	sim, err := CosineSimilarity([]float32{0, 0}, []float32{1, 0})
	require.NoError(t, err)
	assert.Zero(t, sim)
}

func TestFindTopK(t *testing.T) {
	corpus := [][]float32{
		{0, 1},        // orthogonal
		{1, 0},        // identical
		{0.9, 0.1},    // close
		{-1, 0},       // opposite
	}

	results, err := FindTopK([]float32{1, 0}, corpus, 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, 1, results[0].Index)
	assert.Equal(t, 2, results[1].Index)
}

func TestFindTopK_StableOnTies(t *testing.T) {
	corpus := [][]float32{
		{1, 0},
		{1, 0},
		{1, 0},
	}
	results, err := FindTopK([]float32{1, 0}, corpus, 3)
	require.NoError(t, err)
	require.Len(t, results, 3)
	for i, r := range results {
		assert.Equal(t, i, r.Index)
	}
}

func TestFindTopK_KLargerThanCorpus(t *testing.T) {
	results, err := FindTopK([]float32{1, 0}, [][]float32{{1, 0}}, 10)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}
