package chat

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"

	"paco/internal/model"
)

// Completer envía la conversación armada al servicio de completions y
// regresa el texto de la respuesta tal cual (sin post-procesar: el formato
// es asunto de la capa de presentación). No reintenta ni toca el historial.
type Completer interface {
	Complete(ctx context.Context, systemPrompt string, history []model.ChatMessage, userText string) (string, error)
}

type OpenAICompleter struct {
	Client      *openai.Client
	Model       string
	Temperature float32
}

func (c *OpenAICompleter) Complete(ctx context.Context, systemPrompt string, history []model.ChatMessage, userText string) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)

	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})

	for _, m := range history {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: userText,
	})

	resp, err := c.Client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model:       c.Model,
			Messages:    messages,
			Temperature: c.Temperature,
		},
	)
	if err != nil {
		return "", &CompletionError{Err: err, Message: GenericUserMessage}
	}
	if len(resp.Choices) == 0 {
		return "", &CompletionError{
			Err:     errors.New("respuesta del servicio sin choices"),
			Message: GenericUserMessage,
		}
	}
	return resp.Choices[0].Message.Content, nil
}
