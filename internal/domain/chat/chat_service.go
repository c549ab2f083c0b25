package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"jan-chat/internal/domain/message"
	"jan-chat/internal/domain/session"
	"jan-chat/internal/utils/platformerrors"
)

// MaxHistoryMessages bounds how much prior conversation is forwarded, not
// counting the leading system message.
const MaxHistoryMessages = 40

// Completer sends one chat request to the language model and returns its text.
type Completer interface {
	Complete(ctx context.Context, messages []message.Message) (string, error)
}

// ReplyRequest is one user turn.
type ReplyRequest struct {
	UserMessage    string
	History        []message.Message
	AIMood         string
	AIInstructions string
}

// Service proxies a user turn to the language model.
type Service struct {
	completer Completer
	log       zerolog.Logger
}

func NewService(completer Completer, log zerolog.Logger) *Service {
	return &Service{
		completer: completer,
		log:       log.With().Str("component", "chat-service").Logger(),
	}
}

// Reply returns the assistant text for req.
func (s *Service) Reply(ctx context.Context, req ReplyRequest) (string, error) {
	userMessage := strings.TrimSpace(req.UserMessage)
	if userMessage == "" {
		return "", platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"userMessage is required", nil, "1d2e3f4a-5b6c-4d7e-8f9a-0b1c2d3e4f5a")
	}

	reply, err := s.completer.Complete(ctx, BuildPrompt(req))
	if err != nil {
		s.log.Error().Err(err).Msg("chat completion failed")
		return "", platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "chat completion failed")
	}
	return reply, nil
}

// BuildPrompt assembles the outbound messages: the system preamble, the persona
// instructions, the bounded history and finally the user turn.
func BuildPrompt(req ReplyRequest) []message.Message {
	history := make([]message.Message, 0, len(req.History))
	for _, m := range req.History {
		if m.Role.IsValid() && strings.TrimSpace(m.Content) != "" {
			history = append(history, message.Message{Role: m.Role, Content: m.Content})
		}
	}

	head := session.PreambleMessage()
	if len(history) > 0 && history[0].Role == message.RoleSystem {
		head = history[0]
		history = history[1:]
	}
	if len(history) > MaxHistoryMessages {
		history = history[len(history)-MaxHistoryMessages:]
	}
	// The client may already have appended the user turn to its history.
	if n := len(history); n > 0 && history[n-1].Role == message.RoleUser && strings.TrimSpace(history[n-1].Content) == strings.TrimSpace(req.UserMessage) {
		history = history[:n-1]
	}

	out := []message.Message{head}
	if persona := personaInstruction(req.AIMood, req.AIInstructions); persona != "" {
		out = append(out, message.Message{Role: message.RoleSystem, Content: persona})
	}
	out = append(out, history...)
	return append(out, message.Message{Role: message.RoleUser, Content: strings.TrimSpace(req.UserMessage)})
}

func personaInstruction(mood, instructions string) string {
	mood = strings.TrimSpace(mood)
	instructions = strings.TrimSpace(instructions)
	var parts []string
	if mood != "" {
		parts = append(parts, fmt.Sprintf("Respond in a %s tone.", mood))
	}
	if instructions != "" {
		parts = append(parts, "Follow these user instructions: "+instructions)
	}
	return strings.Join(parts, " ")
}
