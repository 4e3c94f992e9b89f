package gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"dynamichat/internal/sentiment"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeBackend replays a scripted sequence of results.
type fakeBackend struct {
	script  []Result
	calls   int
	prompts []string
	resets  int
}

func (f *fakeBackend) Send(_ context.Context, prompt string) Result {
	f.prompts = append(f.prompts, prompt)
	idx := f.calls
	f.calls++
	if idx >= len(f.script) {
		idx = len(f.script) - 1
	}
	return f.script[idx]
}

func (f *fakeBackend) Reset() { f.resets++ }

func newTestGateway(backend Backend) (*Gateway, *[]time.Duration) {
	g := New(backend, 3, 1500*time.Millisecond)
	var slept []time.Duration
	g.sleep = func(_ context.Context, d time.Duration) {
		slept = append(slept, d)
	}
	return g, &slept
}

func TestGateway_SuccessFirstAttempt(t *testing.T) {
	backend := &fakeBackend{script: []Result{Success("Hi there!")}}
	g, slept := newTestGateway(backend)

	reply := g.Respond(context.Background(), Request{Text: "hello", Intent: "greeting"})

	assert.Equal(t, "Hi there!", reply.Text)
	assert.Equal(t, SourceGenerated, reply.Source)
	assert.Equal(t, 1, reply.Attempts)
	assert.Empty(t, *slept)
}

func TestGateway_RetryThenSuccess(t *testing.T) {
	backend := &fakeBackend{script: []Result{
		Transient(errors.New("rate limit exceeded (429)")),
		Success("recovered"),
	}}
	g, slept := newTestGateway(backend)

	reply := g.Respond(context.Background(), Request{Text: "hello", Intent: "greeting"})

	assert.Equal(t, "recovered", reply.Text)
	assert.Equal(t, SourceGenerated, reply.Source)
	assert.Equal(t, 2, reply.Attempts)
	assert.Equal(t, []time.Duration{1500 * time.Millisecond}, *slept)
}

func TestGateway_ExhaustedRetriesFallBack(t *testing.T) {
	backend := &fakeBackend{script: []Result{
		Transient(errors.New("boom")),
		Transient(errors.New("boom")),
		Transient(errors.New("boom")),
	}}
	g, slept := newTestGateway(backend)

	reply := g.Respond(context.Background(), Request{Text: "hello", Intent: "greeting"})

	assert.Equal(t, intentFallbacks["greeting"], reply.Text)
	assert.Equal(t, SourceFallback, reply.Source)
	assert.Equal(t, 3, reply.Attempts)
	// Linear backoff: base, then base times two. No sleep after the last try.
	assert.Equal(t, []time.Duration{1500 * time.Millisecond, 3000 * time.Millisecond}, *slept)
}

func TestGateway_FatalSkipsRetries(t *testing.T) {
	backend := &fakeBackend{script: []Result{Fatal(errors.New("bad request"))}}
	g, slept := newTestGateway(backend)

	reply := g.Respond(context.Background(), Request{Text: "tell me a joke", Intent: "joke"})

	assert.Equal(t, intentFallbacks["joke"], reply.Text)
	assert.Equal(t, SourceFallback, reply.Source)
	assert.Equal(t, 1, reply.Attempts)
	assert.Equal(t, 1, backend.calls)
	assert.Empty(t, *slept)
}

func TestGateway_FallbackResponses(t *testing.T) {
	negative := &sentiment.Result{Polarity: sentiment.PolarityNegative}

	tests := []struct {
		name      string
		intent    string
		sentiment *sentiment.Result
		want      string
	}{
		{"known intent", "farewell", nil, intentFallbacks["farewell"]},
		{"unknown intent", "general", nil, genericFallback},
		{"negative polarity prefix", "weather", negative,
			negativePolarityPrefix + intentFallbacks["weather"]},
		{"negative polarity generic", "general", negative,
			negativePolarityPrefix + genericFallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fallbackResponse(tt.intent, tt.sentiment))
		})
	}
}

func TestGateway_EnrichedPrompt(t *testing.T) {
	backend := &fakeBackend{script: []Result{Success("ok")}}
	g, _ := newTestGateway(backend)

	g.Respond(context.Background(), Request{
		Text:       "my email is a@b.com",
		Intent:     "general",
		IntentConf: 0.5,
		Entities:   map[string][]string{"EMAIL": {"a@b.com"}},
		Sentiment: &sentiment.Result{
			Polarity:     sentiment.PolarityNeutral,
			PolarityConf: 0.8,
			Emotion:      sentiment.EmotionNeutral,
			Emoji:        "😐",
		},
		ContextSummary: "1 turns · dominant intent: general · entities seen: [EMAIL]",
	})

	require.Len(t, backend.prompts, 1)
	prompt := backend.prompts[0]
	assert.Contains(t, prompt, "[NLP Context]")
	assert.Contains(t, prompt, "Detected intent : general (confidence 0.5)")
	assert.Contains(t, prompt, "Entities         : {EMAIL: [a@b.com]}")
	assert.Contains(t, prompt, "Sentiment        : neutral (0.8) | Emotion: neutral 😐")
	assert.Contains(t, prompt, "Context          : 1 turns")
	assert.Contains(t, prompt, "[User Message]\nmy email is a@b.com")
}

func TestGateway_PromptOmitsEmptySections(t *testing.T) {
	backend := &fakeBackend{script: []Result{Success("ok")}}
	g, _ := newTestGateway(backend)

	g.Respond(context.Background(), Request{Text: "hi", Intent: "greeting", IntentConf: 0.95})

	require.Len(t, backend.prompts, 1)
	prompt := backend.prompts[0]
	assert.NotContains(t, prompt, "Entities")
	assert.NotContains(t, prompt, "Sentiment")
	assert.NotContains(t, prompt, "Context ")
}

func TestPostProcess(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trims lines", "  hello  \n  world  ", "hello\nworld"},
		{"trims overall", "\n\nanswer\n\n", "answer"},
		{"empty", "", emptyResponseMarker},
		{"whitespace only", "   \n \t ", emptyResponseMarker},
		{"plain", "fine as is", "fine as is"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, postProcess(tt.in))
		})
	}
}

func TestGateway_Reset(t *testing.T) {
	backend := &fakeBackend{script: []Result{Success("ok")}}
	g, _ := newTestGateway(backend)

	g.Reset()
	g.Reset()
	assert.Equal(t, 2, backend.resets)
}
