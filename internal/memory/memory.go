// Package memory implements the sliding-window conversation memory.
// It keeps the most recent turns for backend context, an intent trail
// for topic tracking, and an append-only audit of entities seen during
// the session.
package memory

import (
	"fmt"
	"sort"
	"time"

	"dynamichat/internal/logging"
)

// Turn is one utterance in the conversation.
type Turn struct {
	Role      string              `json:"role"` // "user" or "model"
	Text      string              `json:"text"`
	Intent    string              `json:"intent,omitempty"`
	Entities  map[string][]string `json:"entities,omitempty"`
	Timestamp time.Time           `json:"timestamp"`
}

// ConversationMemory holds the last window turns of a single session.
// It is not safe for concurrent use; each session owns its own instance
// and the pipeline processes one message at a time.
type ConversationMemory struct {
	window int
	turns  []Turn

	// topicHistory records the intent of every user turn, oldest first.
	// It survives window eviction so the dominant intent reflects the
	// whole session.
	topicHistory []string

	// entitiesSeen accumulates every extracted entity without
	// deduplication; entityOrder preserves first-seen type order.
	entitiesSeen map[string][]string
	entityOrder  []string
}

// DefaultWindow is the number of turns retained when none is configured.
const DefaultWindow = 20

// New creates a conversation memory with the given window size.
// Non-positive windows fall back to the default.
func New(window int) *ConversationMemory {
	if window <= 0 {
		window = DefaultWindow
	}
	return &ConversationMemory{
		window:       window,
		entitiesSeen: make(map[string][]string),
	}
}

// AddTurn appends a turn, evicting the oldest when the window is full.
// Intent feeds the topic trail only for user turns; entities are
// accumulated for either role.
func (m *ConversationMemory) AddTurn(role, text, intent string, entities map[string][]string) {
	turn := Turn{
		Role:      role,
		Text:      text,
		Intent:    intent,
		Entities:  entities,
		Timestamp: time.Now(),
	}

	if len(m.turns) >= m.window {
		m.turns = append(m.turns[1:], turn)
	} else {
		m.turns = append(m.turns, turn)
	}

	if intent != "" && role == "user" {
		m.topicHistory = append(m.topicHistory, intent)
	}

	for _, entityType := range entityTypesInOrder(entities) {
		if _, seen := m.entitiesSeen[entityType]; !seen {
			m.entityOrder = append(m.entityOrder, entityType)
		}
		m.entitiesSeen[entityType] = append(m.entitiesSeen[entityType], entities[entityType]...)
	}

	logging.MemoryDebug("Turn added: role=%s intent=%s turns=%d", role, intent, len(m.turns))
}

// Turns returns the retained turns, oldest first. The slice is a copy.
func (m *ConversationMemory) Turns() []Turn {
	out := make([]Turn, len(m.turns))
	copy(out, m.turns)
	return out
}

// Len returns the number of retained turns.
func (m *ConversationMemory) Len() int {
	return len(m.turns)
}

// EntitiesSeen returns the accumulated entity audit trail.
func (m *ConversationMemory) EntitiesSeen() map[string][]string {
	out := make(map[string][]string, len(m.entitiesSeen))
	for k, v := range m.entitiesSeen {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// Summary returns a one-line context summary. The dominant intent is
// the mode of the topic trail with ties resolved to the first-seen
// intent; entity types are listed in first-seen order.
func (m *ConversationMemory) Summary() string {
	dominant := "N/A"
	if len(m.topicHistory) > 0 {
		counts := make(map[string]int, len(m.topicHistory))
		for _, intent := range m.topicHistory {
			counts[intent]++
		}
		best := -1
		for _, intent := range m.topicHistory {
			if counts[intent] > best {
				best = counts[intent]
				dominant = intent
			}
		}
	}
	return fmt.Sprintf("%d turns · dominant intent: %s · entities seen: %v",
		len(m.turns), dominant, m.entityOrder)
}

// Clear resets the memory to its initial state.
func (m *ConversationMemory) Clear() {
	m.turns = nil
	m.topicHistory = nil
	m.entitiesSeen = make(map[string][]string)
	m.entityOrder = nil
	logging.Memory("Conversation memory cleared")
}

// entityTypesInOrder returns the entity map keys in a stable order so
// the audit trail does not depend on map iteration.
func entityTypesInOrder(entities map[string][]string) []string {
	if len(entities) == 0 {
		return nil
	}
	// Prefer the extractor's catalogue order for known types; any other
	// keys follow sorted by name.
	ordered := make([]string, 0, len(entities))
	seen := make(map[string]struct{}, len(entities))
	for _, t := range knownEntityOrder {
		if _, ok := entities[t]; ok {
			ordered = append(ordered, t)
			seen[t] = struct{}{}
		}
	}
	var rest []string
	for t := range entities {
		if _, ok := seen[t]; !ok {
			rest = append(rest, t)
		}
	}
	sort.Strings(rest)
	return append(ordered, rest...)
}

var knownEntityOrder = []string{
	"EMAIL", "PHONE", "URL", "DATE", "TIME", "CURRENCY", "PERSON", "CITY",
}
