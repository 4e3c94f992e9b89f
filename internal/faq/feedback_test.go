package faq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSink_Feedback(t *testing.T) {
	s := NewSink()

	s.Feedback("What is the weather?", true)
	s.Feedback("what is   the WEATHER?", true)
	s.Feedback("What is the weather?", false)
	s.Feedback("Tell me a joke", true)

	snapshot := s.Snapshot()
	require.Len(t, snapshot, 2)

	assert.Equal(t, "What is the weather?", snapshot[0].Question)
	assert.Equal(t, 2, snapshot[0].Positive)
	assert.Equal(t, 1, snapshot[0].Negative)

	assert.Equal(t, "Tell me a joke", snapshot[1].Question)
	assert.Equal(t, 1, snapshot[1].Positive)
	assert.Zero(t, snapshot[1].Negative)
}

func TestSink_IgnoresEmptyInput(t *testing.T) {
	s := NewSink()

	s.Feedback("", true)
	s.Feedback("   ", false)

	assert.Empty(t, s.Snapshot())
}

func TestSink_SnapshotIsCopy(t *testing.T) {
	s := NewSink()
	s.Feedback("question", true)

	snapshot := s.Snapshot()
	snapshot[0].Positive = 99

	assert.Equal(t, 1, s.Snapshot()[0].Positive)
}
