// Package chat backs the assistant widget: an in-memory conversation whose
// replies come from a generative-language model.
package chat

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNoAPIKey is returned by generators built without credentials.
var ErrNoAPIKey = errors.New("no API key configured")

const (
	Greeting        = "Hi! I'm " + Owner + "'s AI Assistant. Ask me anything about their projects, skills, or experience! ✨"
	NoKeyReply      = "I'm sorry, I seem to be missing my API key brain! Please configure it to talk to me."
	ErrorReply      = "Oops! My AI circuits got a bit tangled. Try again later!"
	SpeechlessReply = "I'm speechless! (No response text returned)"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

type Message struct {
	ID        string
	Role      Role
	Text      string
	Timestamp time.Time
}

// Generator produces one reply for one user message.
type Generator interface {
	Generate(ctx context.Context, userMessage string) (string, error)
}

// Conversation is the message list of one widget session. It is not
// persisted and the model sees only the latest user message.
type Conversation struct {
	gen Generator
	log *zap.Logger
	now func() time.Time

	messages []Message
}

// NewConversation starts a conversation seeded with the greeting. A nil
// generator answers every message with NoKeyReply.
func NewConversation(gen Generator, log *zap.Logger) *Conversation {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Conversation{gen: gen, log: log, now: time.Now}
	c.append(RoleModel, Greeting)
	return c
}

// Messages returns a copy of the transcript.
func (c *Conversation) Messages() []Message {
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Send records text, asks the generator and records the reply. Blank input
// is ignored and returns false.
func (c *Conversation) Send(ctx context.Context, text string) (Message, bool) {
	if strings.TrimSpace(text) == "" {
		return Message{}, false
	}
	c.append(RoleUser, text)
	return c.append(RoleModel, c.reply(ctx, text)), true
}

func (c *Conversation) reply(ctx context.Context, text string) string {
	if c.gen == nil {
		return NoKeyReply
	}
	answer, err := c.gen.Generate(ctx, text)
	switch {
	case errors.Is(err, ErrNoAPIKey):
		return NoKeyReply
	case err != nil:
		c.log.Error("chat generation failed", zap.Error(err))
		return ErrorReply
	case strings.TrimSpace(answer) == "":
		return SpeechlessReply
	}
	return answer
}

func (c *Conversation) append(role Role, text string) Message {
	m := Message{
		ID:        uuid.NewString(),
		Role:      role,
		Text:      text,
		Timestamp: c.now(),
	}
	c.messages = append(c.messages, m)
	return m
}
