// Package gateway mediates between the understanding pipeline and the
// generative backend. It enriches prompts with NLP context, retries
// transient backend failures, and degrades to canned responses so a
// turn always produces an answer.
package gateway

import "context"

// ResultKind classifies a backend outcome.
type ResultKind int

const (
	// ResultSuccess carries generated text.
	ResultSuccess ResultKind = iota
	// ResultTransient is a retryable failure (network, 429, 5xx).
	ResultTransient
	// ResultFatal is a non-retryable failure (bad request, auth).
	ResultFatal
)

// Result is the outcome of one backend call.
type Result struct {
	Kind ResultKind
	Text string
	Err  error
}

// Success wraps generated text.
func Success(text string) Result {
	return Result{Kind: ResultSuccess, Text: text}
}

// Transient wraps a retryable error.
func Transient(err error) Result {
	return Result{Kind: ResultTransient, Err: err}
}

// Fatal wraps a non-retryable error.
func Fatal(err error) Result {
	return Result{Kind: ResultFatal, Err: err}
}

// Backend generates a reply for an enriched prompt. Implementations own
// their conversation history; Reset starts a fresh conversation.
type Backend interface {
	Send(ctx context.Context, prompt string) Result
	Reset()
}
