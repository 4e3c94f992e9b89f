package analytics

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "analytics.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleRecord(intent, polarity, emotion string) Record {
	return Record{
		UserText:       "hello",
		BotText:        "hi there",
		Intent:         intent,
		IntentConf:     0.95,
		Polarity:       polarity,
		PolarityConf:   0.8,
		Emotion:        emotion,
		EmotionConf:    0.7,
		ResponseTimeMs: 120.0,
	}
}

func TestStore_RecordAndRecent(t *testing.T) {
	store := newTestStore(t)

	rec := sampleRecord("greeting", "positive", "joy")
	rec.Entities = map[string][]string{"EMAIL": {"a@b.com"}}
	require.NoError(t, store.Record(rec))

	records, err := store.Recent(10)
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	assert.NotEmpty(t, got.ID)
	assert.False(t, got.Timestamp.IsZero())
	assert.Equal(t, "greeting", got.Intent)
	assert.Equal(t, 0.95, got.IntentConf)
	assert.Equal(t, map[string][]string{"EMAIL": {"a@b.com"}}, got.Entities)
	assert.Equal(t, 120.0, got.ResponseTimeMs)
}

func TestStore_ResponseTimeRounding(t *testing.T) {
	store := newTestStore(t)

	rec := sampleRecord("general", "neutral", "neutral")
	rec.ResponseTimeMs = 123.456
	require.NoError(t, store.Record(rec))

	records, err := store.Recent(1)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 123.5, records[0].ResponseTimeMs)
}

func TestStore_Counts(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Record(sampleRecord("greeting", "positive", "joy")))
	require.NoError(t, store.Record(sampleRecord("greeting", "neutral", "neutral")))
	require.NoError(t, store.Record(sampleRecord("weather", "neutral", "neutral")))

	intents, err := store.IntentCounts()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"greeting": 2, "weather": 1}, intents)

	polarities, err := store.PolarityCounts()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"positive": 1, "neutral": 2}, polarities)

	emotions, err := store.EmotionCounts()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"joy": 1, "neutral": 2}, emotions)

	total, err := store.TotalInteractions()
	require.NoError(t, err)
	assert.Equal(t, 3, total)
}

func TestStore_AvgResponseTime(t *testing.T) {
	store := newTestStore(t)

	avg, err := store.AvgResponseTime()
	require.NoError(t, err)
	assert.Zero(t, avg)

	a := sampleRecord("general", "neutral", "neutral")
	a.ResponseTimeMs = 100
	b := sampleRecord("general", "neutral", "neutral")
	b.ResponseTimeMs = 200
	require.NoError(t, store.Record(a))
	require.NoError(t, store.Record(b))

	avg, err = store.AvgResponseTime()
	require.NoError(t, err)
	assert.InDelta(t, 150.0, avg, 1e-9)
}

func TestStore_EntitySummary(t *testing.T) {
	store := newTestStore(t)

	a := sampleRecord("general", "neutral", "neutral")
	a.Entities = map[string][]string{"EMAIL": {"a@b.com", "c@d.com"}, "CITY": {"Paris"}}
	b := sampleRecord("general", "neutral", "neutral")
	b.Entities = map[string][]string{"EMAIL": {"x@y.com"}}
	c := sampleRecord("general", "neutral", "neutral")

	require.NoError(t, store.Record(a))
	require.NoError(t, store.Record(b))
	require.NoError(t, store.Record(c))

	// Counts are per turn, not per entity mention.
	summary, err := store.EntitySummary()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"EMAIL": 2, "CITY": 1}, summary)
}

func TestStore_Clear(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Record(sampleRecord("greeting", "positive", "joy")))
	require.NoError(t, store.Clear())

	total, err := store.TotalInteractions()
	require.NoError(t, err)
	assert.Zero(t, total)

	records, err := store.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestStore_Reopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "analytics.db")

	store, err := NewStore(dbPath)
	require.NoError(t, err)
	rec := sampleRecord("greeting", "positive", "joy")
	rec.Timestamp = time.Now().Add(-time.Minute)
	require.NoError(t, store.Record(rec))
	require.NoError(t, store.Close())

	reopened, err := NewStore(dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	total, err := reopened.TotalInteractions()
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}
