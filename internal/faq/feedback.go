// Package faq collects user feedback on answers. Feedback is recorded
// per normalised question so recurring ones can be surfaced later; the
// sink never participates in answering.
package faq

import (
	"strings"
	"sync"

	"dynamichat/internal/logging"
)

// Stats holds the vote tally for one question.
type Stats struct {
	Question string
	Positive int
	Negative int
}

// Sink accumulates feedback in memory for the lifetime of the process.
// Safe for concurrent use.
type Sink struct {
	mu      sync.Mutex
	entries map[string]*Stats
	order   []string
}

// NewSink creates an empty feedback sink.
func NewSink() *Sink {
	return &Sink{entries: make(map[string]*Stats)}
}

// Feedback records one vote for the question.
func (s *Sink) Feedback(text string, positive bool) {
	key := normalise(text)
	if key == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok {
		entry = &Stats{Question: strings.TrimSpace(text)}
		s.entries[key] = entry
		s.order = append(s.order, key)
	}
	if positive {
		entry.Positive++
	} else {
		entry.Negative++
	}

	logging.SessionDebug("Feedback recorded: positive=%t question=%q", positive, key)
}

// Snapshot returns the tallies in first-seen order.
func (s *Sink) Snapshot() []Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Stats, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, *s.entries[key])
	}
	return out
}

// normalise collapses case and interior whitespace so trivially
// different phrasings tally together.
func normalise(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}
