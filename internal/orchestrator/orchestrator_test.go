package orchestrator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dynamichat/internal/analytics"
	"dynamichat/internal/config"
	"dynamichat/internal/gateway"
	"dynamichat/internal/sentiment"
)

type scriptedBackend struct {
	result gateway.Result
	calls  int
	resets int
}

func (b *scriptedBackend) Send(_ context.Context, _ string) gateway.Result {
	b.calls++
	return b.result
}

func (b *scriptedBackend) Reset() { b.resets++ }

type recordingSink struct {
	records []analytics.Record
	fail    error
	cleared int
}

func (s *recordingSink) Record(rec analytics.Record) error {
	if s.fail != nil {
		return s.fail
	}
	s.records = append(s.records, rec)
	return nil
}

func (s *recordingSink) Clear() error {
	s.cleared++
	return nil
}

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Gemini.APIKey = "test-key"
	return cfg
}

func newTestOrchestrator(t *testing.T, backend gateway.Backend, opts ...Option) *Orchestrator {
	t.Helper()
	opts = append(opts, WithBackendFactory(func(*config.Config) (gateway.Backend, error) {
		return backend, nil
	}))
	return New(testConfig(), opts...)
}

func TestOrchestrator_ProcessMessage(t *testing.T) {
	backend := &scriptedBackend{result: gateway.Success("Hi! Noted your email.")}
	sink := &recordingSink{}
	o := newTestOrchestrator(t, backend, WithAnalytics(sink))

	env, err := o.ProcessMessage(context.Background(), "Hello there, my email is a@b.com")
	require.NoError(t, err)

	assert.Equal(t, "Hi! Noted your email.", env.Text)
	assert.Equal(t, "greeting", env.Intent)
	assert.Equal(t, 0.95, env.IntentConf)
	assert.Equal(t, map[string][]string{"EMAIL": {"a@b.com"}}, env.Entities)
	assert.Equal(t, gateway.SourceGenerated, env.Source)
	assert.GreaterOrEqual(t, env.ResponseTimeMs, 0.0)
	assert.Contains(t, env.ContextSummary, "dominant intent: greeting")
	assert.Contains(t, env.ContextSummary, "entities seen: [EMAIL]")

	require.NotEmpty(t, env.MultiIntents)
	assert.Equal(t, "greeting", env.MultiIntents[0].Label)

	// The user turn is counted before the summary is taken.
	assert.Contains(t, env.ContextSummary, "1 turns")

	require.Len(t, sink.records, 1)
	rec := sink.records[0]
	assert.Equal(t, "Hello there, my email is a@b.com", rec.UserText)
	assert.Equal(t, "greeting", rec.Intent)
	assert.Equal(t, env.Sentiment.Polarity, rec.Polarity)
}

func TestOrchestrator_EmptyMessage(t *testing.T) {
	backend := &scriptedBackend{result: gateway.Success("Anything on your mind?")}
	o := newTestOrchestrator(t, backend)

	env, err := o.ProcessMessage(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, "general", env.Intent)
	assert.Equal(t, 0.50, env.IntentConf)
	assert.Empty(t, env.Entities)
	assert.Equal(t, sentiment.PolarityNeutral, env.Sentiment.Polarity)
	assert.Equal(t, 0.5, env.Sentiment.PolarityConf)
	assert.Equal(t, sentiment.Objective, env.Sentiment.Subjectivity)
}

func TestOrchestrator_FallbackSource(t *testing.T) {
	backend := &scriptedBackend{result: gateway.Fatal(errors.New("bad request"))}
	o := newTestOrchestrator(t, backend)

	env, err := o.ProcessMessage(context.Background(), "tell me a joke")
	require.NoError(t, err)

	assert.Equal(t, gateway.SourceFallback, env.Source)
	assert.NotEmpty(t, env.Text)
}

func TestOrchestrator_BackendMisconfiguration(t *testing.T) {
	factoryErr := errors.New("api key missing")
	o := New(testConfig(), WithBackendFactory(func(*config.Config) (gateway.Backend, error) {
		return nil, factoryErr
	}))

	_, err := o.ProcessMessage(context.Background(), "hello")
	assert.ErrorIs(t, err, factoryErr)
}

func TestOrchestrator_AnalyticsFailureDoesNotAbort(t *testing.T) {
	backend := &scriptedBackend{result: gateway.Success("ok")}
	sink := &recordingSink{fail: errors.New("disk full")}
	o := newTestOrchestrator(t, backend, WithAnalytics(sink))

	env, err := o.ProcessMessage(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "ok", env.Text)
}

func TestOrchestrator_ClearConversation(t *testing.T) {
	backend := &scriptedBackend{result: gateway.Success("ok")}
	o := newTestOrchestrator(t, backend)

	_, err := o.ProcessMessage(context.Background(), "hello")
	require.NoError(t, err)

	o.ClearConversation()
	assert.Equal(t, 1, backend.resets)

	env, err := o.ProcessMessage(context.Background(), "what's the weather")
	require.NoError(t, err)
	// Memory restarted: only the fresh user turn is counted.
	assert.Contains(t, env.ContextSummary, "1 turns")
	assert.Contains(t, env.ContextSummary, "dominant intent: weather")
}

func TestOrchestrator_ClearConversationBeforeBackend(t *testing.T) {
	o := New(testConfig())
	// No backend yet; must not panic.
	o.ClearConversation()
}

func TestOrchestrator_Feedback(t *testing.T) {
	backend := &scriptedBackend{result: gateway.Success("ok")}
	o := newTestOrchestrator(t, backend)

	o.Feedback("what is the weather?", true)
	o.Feedback("what is the weather?", false)

	snapshot := o.FeedbackSnapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, 1, snapshot[0].Positive)
	assert.Equal(t, 1, snapshot[0].Negative)
}

func TestOrchestrator_ClearAnalytics(t *testing.T) {
	backend := &scriptedBackend{result: gateway.Success("ok")}
	sink := &recordingSink{}
	o := newTestOrchestrator(t, backend, WithAnalytics(sink))

	require.NoError(t, o.ClearAnalytics())
	assert.Equal(t, 1, sink.cleared)

	// Without a sink this is a no-op.
	bare := newTestOrchestrator(t, backend)
	assert.NoError(t, bare.ClearAnalytics())
}

func TestOrchestrator_ConversationSummaryAccumulates(t *testing.T) {
	backend := &scriptedBackend{result: gateway.Success("ok")}
	o := newTestOrchestrator(t, backend)

	_, err := o.ProcessMessage(context.Background(), "hello")
	require.NoError(t, err)

	env, err := o.ProcessMessage(context.Background(), "hi again")
	require.NoError(t, err)

	// Two user turns plus the first model turn.
	assert.Contains(t, env.ContextSummary, "3 turns")
	assert.Contains(t, env.ContextSummary, "dominant intent: greeting")
}
