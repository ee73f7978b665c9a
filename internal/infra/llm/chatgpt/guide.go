package chatgpt

import (
	"context"
	"errors"

	"github.com/yanqian/travel-planner/internal/domain/culture"
	"github.com/yanqian/travel-planner/pkg/metrics"
)

// Guide adapts the ChatGPT client to the culture chat.
type Guide struct {
	client      *Client
	model       string
	temperature float32
}

// NewGuide constructs the adapter.
func NewGuide(client *Client, model string, temperature float32) *Guide {
	return &Guide{client: client, model: model, temperature: temperature}
}

// Reply implements culture.ChatClient.
func (g *Guide) Reply(ctx context.Context, prompt culture.ChatPrompt) (culture.ChatReply, error) {
	messages := make([]Message, 0, len(prompt.History)+2)
	if prompt.System != "" {
		messages = append(messages, Message{Role: "system", Content: prompt.System})
	}
	for _, turn := range prompt.History {
		role := "user"
		if turn.Role == "model" {
			role = "assistant"
		}
		messages = append(messages, Message{Role: role, Content: turn.Text})
	}
	messages = append(messages, Message{Role: "user", Content: prompt.Message})

	resp, err := g.client.CreateChatCompletion(ctx, ChatCompletionRequest{
		Model:       g.model,
		Messages:    messages,
		Temperature: g.temperature,
	})
	if err != nil {
		return culture.ChatReply{}, err
	}
	if len(resp.Choices) == 0 {
		return culture.ChatReply{}, errors.New("chatgpt returned no choices")
	}
	return culture.ChatReply{
		Text: resp.Choices[0].Message.Content,
		Usage: metrics.TokenUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}.WithTotal(),
	}, nil
}

var _ culture.ChatClient = (*Guide)(nil)
