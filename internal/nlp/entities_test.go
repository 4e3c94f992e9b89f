package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityExtractor_Extract(t *testing.T) {
	e := NewEntityExtractor()

	t.Run("email", func(t *testing.T) {
		entities := e.Extract("reach me at jane.doe+test@example.co.uk please")
		require.Contains(t, entities, "EMAIL")
		assert.Equal(t, []string{"jane.doe+test@example.co.uk"}, entities["EMAIL"])
	})

	t.Run("url", func(t *testing.T) {
		entities := e.Extract("docs live at https://example.com/docs?v=2")
		require.Contains(t, entities, "URL")
		assert.Equal(t, []string{"https://example.com/docs?v=2"}, entities["URL"])
	})

	t.Run("time", func(t *testing.T) {
		entities := e.Extract("meeting at 10:30 AM sharp")
		require.Contains(t, entities, "TIME")
		assert.Equal(t, "10:30 AM", entities["TIME"][0])
	})

	t.Run("currency symbol", func(t *testing.T) {
		entities := e.Extract("it costs $1,299.99 total")
		require.Contains(t, entities, "CURRENCY")
		assert.Equal(t, "$1,299.99", entities["CURRENCY"][0])
	})

	t.Run("currency word", func(t *testing.T) {
		entities := e.Extract("paid 500 dollars for it")
		require.Contains(t, entities, "CURRENCY")
		assert.Equal(t, "500 dollars", entities["CURRENCY"][0])
	})

	t.Run("person with honorific", func(t *testing.T) {
		entities := e.Extract("I spoke to Dr. Jane Smith yesterday")
		require.Contains(t, entities, "PERSON")
		assert.Equal(t, "Dr. Jane Smith", entities["PERSON"][0])
	})

	t.Run("city", func(t *testing.T) {
		entities := e.Extract("flying from New York to Tokyo")
		require.Contains(t, entities, "CITY")
		assert.Equal(t, []string{"New York", "Tokyo"}, entities["CITY"])
	})

	t.Run("lowercase city not matched", func(t *testing.T) {
		entities := e.Extract("flying to tokyo")
		assert.NotContains(t, entities, "CITY")
	})

	t.Run("multiple types", func(t *testing.T) {
		entities := e.Extract("email a@b.com about the London trip at 9:00")
		assert.Contains(t, entities, "EMAIL")
		assert.Contains(t, entities, "CITY")
		assert.Contains(t, entities, "TIME")
	})

	t.Run("duplicates collapsed in order", func(t *testing.T) {
		entities := e.Extract("a@b.com then c@d.com then a@b.com again")
		require.Contains(t, entities, "EMAIL")
		assert.Equal(t, []string{"a@b.com", "c@d.com"}, entities["EMAIL"])
	})

	t.Run("empty types omitted", func(t *testing.T) {
		entities := e.Extract("nothing interesting here")
		assert.Empty(t, entities)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, e.Extract(""))
	})
}

func TestEntityTypes(t *testing.T) {
	types := EntityTypes()
	assert.Equal(t, []string{"EMAIL", "PHONE", "URL", "DATE", "TIME", "CURRENCY", "PERSON", "CITY"}, types)
}
