// Package llm defines the chat-completion message types and the client
// interface the rest of the bot is written against.
package llm

import (
	"context"
	"time"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

type Result struct {
	Text     string
	Usage    Usage
	Duration time.Duration
}

type Request struct {
	Model    string
	Messages []Message
}

// Client is a single-attempt chat-completion caller. Implementations do not
// retry; callers decide what a failure means for the user.
type Client interface {
	Chat(ctx context.Context, req Request) (Result, error)
}
