package title

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"jan-chat/internal/domain/message"
	"jan-chat/internal/utils/stringutils"
)

const (
	// WindowSize is how many trailing messages are sent to the model.
	WindowSize = 10
	// MaxTitleLength bounds the stored title.
	MaxTitleLength = 80

	SystemInstruction = "You generate chat titles. Produce a 3-6 word descriptive title for the conversation above. " +
		"Reply with the title only, no quotes and no punctuation at the end."
	UserInstruction = "Write the title for this conversation now."
)

var errEmptyTitle = errors.New("model returned an empty title")

// Completer sends one chat request to the language model and returns its text.
type Completer interface {
	Complete(ctx context.Context, messages []message.Message) (string, error)
}

// Generator asks the language model for a short conversation title.
type Generator struct {
	completer Completer
	log       zerolog.Logger
}

func NewGenerator(completer Completer, log zerolog.Logger) *Generator {
	return &Generator{
		completer: completer,
		log:       log.With().Str("component", "title-generator").Logger(),
	}
}

// Window returns the request payload for messages: the last WindowSize
// messages, oldest first, followed by the two instruction messages.
func Window(messages []message.Message) []message.Message {
	start := 0
	if len(messages) > WindowSize {
		start = len(messages) - WindowSize
	}
	out := make([]message.Message, 0, len(messages)-start+2)
	for _, m := range messages[start:] {
		out = append(out, message.Message{Role: m.Role, Content: m.Content})
	}
	return append(out,
		message.Message{Role: message.RoleSystem, Content: SystemInstruction},
		message.Message{Role: message.RoleUser, Content: UserInstruction},
	)
}

// Generate returns a trimmed title. Any failure is logged and yields
// message.DefaultTitle; it never returns an error.
func (g *Generator) Generate(ctx context.Context, messages []message.Message) string {
	raw, err := g.completer.Complete(ctx, Window(messages))
	if err != nil {
		g.log.Error().Err(err).Int("messages", len(messages)).Msg("title generation failed")
		return message.DefaultTitle
	}

	title := stringutils.TruncateTitle(stringutils.CleanGeneratedTitle(raw), MaxTitleLength)
	if title == "" {
		g.log.Warn().Err(errEmptyTitle).Msg("title generation returned nothing usable")
		return message.DefaultTitle
	}
	return title
}
