package gateway

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dynamichat/internal/logging"
	"dynamichat/internal/sentiment"
)

// Reply sources.
const (
	SourceGenerated = "generated"
	SourceFallback  = "fallback"
)

// emptyResponseMarker replaces backend output that cleans down to nothing.
const emptyResponseMarker = "*(empty response)*"

// Request carries one user message plus the NLP context used to enrich
// the prompt and to pick a fallback.
type Request struct {
	Text           string
	Intent         string
	IntentConf     float64
	Entities       map[string][]string
	Sentiment      *sentiment.Result
	ContextSummary string
}

// Reply is the gateway's answer for one request.
type Reply struct {
	Text     string
	Source   string // generated | fallback
	Attempts int
}

// intentFallbacks are the canned responses used when the backend is
// unreachable.
var intentFallbacks = map[string]string{
	"greeting":  "Hello! 👋 I'm DynamiChat. How can I help you today?",
	"farewell":  "Goodbye! 👋 It was great chatting with you. Feel free to come back anytime!",
	"thanks":    "You're welcome! 😊 Happy to help. Let me know if there's anything else.",
	"help":      "I can chat, answer questions, analyse sentiment, tell jokes, and more. Just ask away!",
	"joke":      "Why did the AI go to therapy? It had too many unresolved dependencies! 😄",
	"weather":   "I don't have live weather data, but you can check a weather service for the latest forecast!",
	"time_date": "I don't have direct access to your clock, but your device should show the current time.",
}

const genericFallback = "I'm here to help! Could you rephrase your question so I can assist better?"

const negativePolarityPrefix = "I'm sorry you're having a tough time. "

// Gateway wraps a backend with retry, backoff, and fallback behaviour.
type Gateway struct {
	backend     Backend
	maxAttempts int
	backoff     time.Duration

	// sleep is replaced in tests.
	sleep func(ctx context.Context, d time.Duration)
}

// New creates a gateway around the backend. maxAttempts is the total
// number of tries per request; backoff is the base delay, multiplied by
// the number of failures so far.
func New(backend Backend, maxAttempts int, backoff time.Duration) *Gateway {
	if maxAttempts <= 0 {
		maxAttempts = 3
	}
	if backoff <= 0 {
		backoff = 1500 * time.Millisecond
	}
	return &Gateway{
		backend:     backend,
		maxAttempts: maxAttempts,
		backoff:     backoff,
		sleep:       sleepContext,
	}
}

// Respond sends the enriched prompt to the backend and returns the
// reply. Transient failures are retried with linear backoff; a fatal
// failure or exhausted retries yield the canned fallback, so a reply is
// always produced.
func (g *Gateway) Respond(ctx context.Context, req Request) Reply {
	prompt := buildEnrichedPrompt(req)

	var lastErr error
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		result := g.backend.Send(ctx, prompt)

		switch result.Kind {
		case ResultSuccess:
			return Reply{
				Text:     postProcess(result.Text),
				Source:   SourceGenerated,
				Attempts: attempt,
			}
		case ResultFatal:
			logging.GatewayError("Backend failed permanently on attempt %d: %v", attempt, result.Err)
			return g.fallback(req, attempt)
		default:
			lastErr = result.Err
			logging.GatewayWarn("Backend attempt %d failed: %v", attempt, result.Err)
			if attempt < g.maxAttempts {
				g.sleep(ctx, g.backoff*time.Duration(attempt))
			}
		}

		if ctx.Err() != nil {
			logging.GatewayWarn("Request cancelled after attempt %d: %v", attempt, ctx.Err())
			return g.fallback(req, attempt)
		}
	}

	logging.GatewayError("Backend exhausted %d attempts: %v", g.maxAttempts, lastErr)
	return g.fallback(req, g.maxAttempts)
}

// Reset starts a fresh backend conversation.
func (g *Gateway) Reset() {
	g.backend.Reset()
}

func (g *Gateway) fallback(req Request, attempts int) Reply {
	return Reply{
		Text:     fallbackResponse(req.Intent, req.Sentiment),
		Source:   SourceFallback,
		Attempts: attempts,
	}
}

// buildEnrichedPrompt prepends the NLP context block to the user
// message. Optional lines are omitted when their signal is absent.
func buildEnrichedPrompt(req Request) string {
	lines := []string{
		"[NLP Context]",
		fmt.Sprintf("  Detected intent : %s (confidence %v)", req.Intent, req.IntentConf),
	}
	if len(req.Entities) > 0 {
		lines = append(lines, fmt.Sprintf("  Entities         : %s", formatEntities(req.Entities)))
	}
	if s := req.Sentiment; s != nil {
		lines = append(lines, fmt.Sprintf("  Sentiment        : %s (%v) | Emotion: %s %s",
			s.Polarity, s.PolarityConf, s.Emotion, s.Emoji))
	}
	if req.ContextSummary != "" {
		lines = append(lines, fmt.Sprintf("  Context          : %s", req.ContextSummary))
	}

	lines = append(lines, "", fmt.Sprintf("[User Message]\n%s", req.Text))
	return strings.Join(lines, "\n")
}

// formatEntities renders the entity map in catalogue order so prompts
// are stable across runs.
func formatEntities(entities map[string][]string) string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for _, entityType := range orderedEntityTypes(entities) {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%s: %v", entityType, entities[entityType])
	}
	b.WriteByte('}')
	return b.String()
}

var promptEntityOrder = []string{
	"EMAIL", "PHONE", "URL", "DATE", "TIME", "CURRENCY", "PERSON", "CITY",
}

func orderedEntityTypes(entities map[string][]string) []string {
	ordered := make([]string, 0, len(entities))
	for _, t := range promptEntityOrder {
		if _, ok := entities[t]; ok {
			ordered = append(ordered, t)
		}
	}
	if len(ordered) == len(entities) {
		return ordered
	}
	seen := make(map[string]struct{}, len(ordered))
	for _, t := range ordered {
		seen[t] = struct{}{}
	}
	for t := range entities {
		if _, ok := seen[t]; !ok {
			ordered = append(ordered, t)
		}
	}
	return ordered
}

// postProcess trims each line and the whole text; output that cleans
// down to nothing is replaced with a visible marker.
func postProcess(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	cleaned := strings.TrimSpace(strings.Join(lines, "\n"))
	if cleaned == "" {
		return emptyResponseMarker
	}
	return cleaned
}

// fallbackResponse picks the canned response for the intent, with an
// empathy prefix when the user's polarity is negative.
func fallbackResponse(intent string, s *sentiment.Result) string {
	prefix := ""
	if s != nil && s.Polarity == sentiment.PolarityNegative {
		prefix = negativePolarityPrefix
	}
	if canned, ok := intentFallbacks[intent]; ok {
		return prefix + canned
	}
	return prefix + genericFallback
}

func sleepContext(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
