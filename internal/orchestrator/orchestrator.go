// Package orchestrator runs the full understanding pipeline for each
// user message: intent recognition, entity extraction, sentiment,
// memory, the generative gateway, and analytics.
package orchestrator

import (
	"context"
	"math"
	"time"

	"dynamichat/internal/analytics"
	"dynamichat/internal/config"
	"dynamichat/internal/faq"
	"dynamichat/internal/gateway"
	"dynamichat/internal/logging"
	"dynamichat/internal/memory"
	"dynamichat/internal/nlp"
	"dynamichat/internal/sentiment"
)

// ResponseEnvelope is the full result of one processed message.
type ResponseEnvelope struct {
	Text           string              `json:"text"`
	Intent         string              `json:"intent"`
	IntentConf     float64             `json:"intent_conf"`
	MultiIntents   []nlp.Prediction    `json:"multi_intents"`
	Entities       map[string][]string `json:"entities"`
	Sentiment      sentiment.Result    `json:"sentiment"`
	Source         string              `json:"source"` // generated | fallback
	ResponseTimeMs float64             `json:"response_time_ms"`
	ContextSummary string              `json:"context_summary"`
}

// AnalyticsSink receives one record per processed turn. Sink failures
// never abort a turn.
type AnalyticsSink interface {
	Record(analytics.Record) error
	Clear() error
}

// BackendFactory builds the generative backend on first use.
type BackendFactory func(*config.Config) (gateway.Backend, error)

// Option customises an Orchestrator.
type Option func(*Orchestrator)

// WithBackendFactory replaces the default Gemini backend factory.
func WithBackendFactory(f BackendFactory) Option {
	return func(o *Orchestrator) { o.backendFactory = f }
}

// WithAnalytics attaches an analytics sink.
func WithAnalytics(sink AnalyticsSink) Option {
	return func(o *Orchestrator) { o.analytics = sink }
}

// Orchestrator wires the pipeline together for one session. The
// pipeline is sequential: one message at a time per instance.
type Orchestrator struct {
	cfg *config.Config

	intents  *nlp.IntentClassifier
	entities *nlp.EntityExtractor
	analyser *sentiment.Analyser
	memory   *memory.ConversationMemory
	feedback *faq.Sink

	analytics      AnalyticsSink
	backendFactory BackendFactory
	gateway        *gateway.Gateway
}

// New builds the offline pipeline. The generative backend is not
// touched here; it is created on first use so a missing API key only
// surfaces when a message actually needs it.
func New(cfg *config.Config, opts ...Option) *Orchestrator {
	timer := logging.StartTimer(logging.CategorySession, "orchestrator.New")
	defer timer.Stop()

	o := &Orchestrator{
		cfg: cfg,
		intents: nlp.NewIntentClassifier(nlp.IntentClassifierConfig{
			MinSimilarity:      cfg.NLP.MinSimilarity,
			MinMultiSimilarity: cfg.NLP.MinMultiSimilarity,
		}),
		entities: nlp.NewEntityExtractor(),
		analyser: sentiment.NewAnalyser(),
		memory:   memory.New(cfg.Memory.Window),
		feedback: faq.NewSink(),
		backendFactory: func(cfg *config.Config) (gateway.Backend, error) {
			return gateway.NewGeminiBackend(cfg)
		},
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// EnsureBackend creates the generative backend if it does not exist
// yet. The only error is fatal misconfiguration, such as a missing API
// key.
func (o *Orchestrator) EnsureBackend() error {
	if o.gateway != nil {
		return nil
	}

	backend, err := o.backendFactory(o.cfg)
	if err != nil {
		return err
	}

	o.gateway = gateway.New(backend, o.cfg.Gemini.MaxRetries, o.cfg.RetryBackoff())
	return nil
}

// ProcessMessage runs the full pipeline for one user message. The only
// error is fatal backend misconfiguration on first use; everything else
// degrades inside the gateway.
func (o *Orchestrator) ProcessMessage(ctx context.Context, text string) (*ResponseEnvelope, error) {
	t0 := time.Now()

	if err := o.EnsureBackend(); err != nil {
		return nil, err
	}

	intent, intentConf := o.intents.Predict(text)
	multiIntents := o.intents.PredictMulti(text, o.cfg.NLP.MultiIntentTopK)
	entities := o.entities.Extract(text)
	sent := o.analyser.Analyse(text)

	logging.Session("Message understood: intent=%s conf=%v polarity=%s emotion=%s entities=%d",
		intent, intentConf, sent.Polarity, sent.Emotion, len(entities))

	o.memory.AddTurn("user", text, intent, entities)
	contextSummary := o.memory.Summary()

	reply := o.gateway.Respond(ctx, gateway.Request{
		Text:           text,
		Intent:         intent,
		IntentConf:     intentConf,
		Entities:       entities,
		Sentiment:      &sent,
		ContextSummary: contextSummary,
	})

	o.memory.AddTurn("model", reply.Text, "", nil)

	elapsedMs := float64(time.Since(t0)) / float64(time.Millisecond)

	if o.analytics != nil {
		if err := o.analytics.Record(analytics.Record{
			UserText:       text,
			BotText:        reply.Text,
			Intent:         intent,
			IntentConf:     intentConf,
			Entities:       entities,
			Polarity:       sent.Polarity,
			PolarityConf:   sent.PolarityConf,
			Emotion:        sent.Emotion,
			EmotionConf:    sent.EmotionConf,
			ResponseTimeMs: elapsedMs,
		}); err != nil {
			logging.AnalyticsWarn("Failed to record turn: %v", err)
		}
	}

	return &ResponseEnvelope{
		Text:           reply.Text,
		Intent:         intent,
		IntentConf:     intentConf,
		MultiIntents:   multiIntents,
		Entities:       entities,
		Sentiment:      sent,
		Source:         reply.Source,
		ResponseTimeMs: math.Round(elapsedMs*10) / 10,
		ContextSummary: contextSummary,
	}, nil
}

// Feedback forwards a vote on the last answer to the feedback sink.
func (o *Orchestrator) Feedback(text string, positive bool) {
	o.feedback.Feedback(text, positive)
}

// FeedbackSnapshot returns the accumulated feedback tallies.
func (o *Orchestrator) FeedbackSnapshot() []faq.Stats {
	return o.feedback.Snapshot()
}

// ClearConversation wipes the memory and, if a backend exists, starts a
// fresh conversation with it.
func (o *Orchestrator) ClearConversation() {
	o.memory.Clear()
	if o.gateway != nil {
		o.gateway.Reset()
	}
	logging.Session("Conversation cleared")
}

// ClearAnalytics removes all recorded turns.
func (o *Orchestrator) ClearAnalytics() error {
	if o.analytics == nil {
		return nil
	}
	return o.analytics.Clear()
}
