// Package llm provides the chat gateway used by every LLM-driven component.
package llm

import (
	"context"
	"errors"
	"fmt"
)

// Message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of a chat conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Options are the per-call generation knobs. All call sites pass them
// explicitly; there are no hidden defaults. A nil Temperature leaves the
// provider default in place.
type Options struct {
	Temperature *float64
	MaxTokens   int
}

// Client is the provider-agnostic chat contract. Implementations return the
// assistant text of the first candidate; partial or unparseable provider
// responses yield an empty string, not an error. The gateway never retries.
type Client interface {
	Chat(ctx context.Context, messages []Message, opts Options) (string, error)
}

// ChatFunc adapts a plain function to the Client interface.
type ChatFunc func(ctx context.Context, messages []Message, opts Options) (string, error)

// Chat implements Client.
func (f ChatFunc) Chat(ctx context.Context, messages []Message, opts Options) (string, error) {
	return f(ctx, messages, opts)
}

// ErrorKind classifies gateway failures.
type ErrorKind string

// Gateway failure kinds.
const (
	KindTransport    ErrorKind = "transport"
	KindUnauthorized ErrorKind = "unauthorized"
	KindRateLimited  ErrorKind = "rate_limited"
	KindBadResponse  ErrorKind = "bad_response"
)

// Error is a typed gateway failure.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("llm %s error: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// IsError reports whether err is a gateway error, optionally of a given kind.
func IsError(err error, kind ErrorKind) bool {
	var le *Error
	if !errors.As(err, &le) {
		return false
	}
	return kind == "" || le.Kind == kind
}
