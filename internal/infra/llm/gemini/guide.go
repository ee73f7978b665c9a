package gemini

import (
	"context"
	"errors"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/yanqian/travel-planner/internal/domain/culture"
	"github.com/yanqian/travel-planner/pkg/metrics"
)

const defaultModel = "gemini-2.5-flash-lite"

// Guide answers culture chat questions with Gemini.
type Guide struct {
	client      *genai.Client
	model       string
	temperature float32
}

// NewGuide opens a Gemini client for the given API key.
func NewGuide(ctx context.Context, apiKey, model string, temperature float32) (*Guide, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("gemini api key cannot be empty")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(model) == "" {
		model = defaultModel
	}
	return &Guide{client: client, model: model, temperature: temperature}, nil
}

// Close releases the underlying client.
func (g *Guide) Close() error {
	return g.client.Close()
}

// Reply implements culture.ChatClient.
func (g *Guide) Reply(ctx context.Context, prompt culture.ChatPrompt) (culture.ChatReply, error) {
	model := g.client.GenerativeModel(g.model)
	if prompt.System != "" {
		model.SystemInstruction = genai.NewUserContent(genai.Text(prompt.System))
	}
	model.SetTemperature(g.temperature)

	cs := model.StartChat()
	cs.History = toHistory(prompt.History)

	res, err := cs.SendMessage(ctx, genai.Text(prompt.Message))
	if err != nil {
		return culture.ChatReply{}, err
	}
	reply := culture.ChatReply{Text: responseText(res)}
	if res.UsageMetadata != nil {
		reply.Usage = metrics.TokenUsage{
			PromptTokens:     int(res.UsageMetadata.PromptTokenCount),
			CompletionTokens: int(res.UsageMetadata.CandidatesTokenCount),
			TotalTokens:      int(res.UsageMetadata.TotalTokenCount),
		}.WithTotal()
	}
	return reply, nil
}

func toHistory(turns []culture.ChatTurn) []*genai.Content {
	history := make([]*genai.Content, 0, len(turns))
	for _, turn := range turns {
		role := "user"
		if turn.Role == "model" {
			role = "model"
		}
		history = append(history, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(turn.Text)},
		})
	}
	return history
}

func responseText(res *genai.GenerateContentResponse) string {
	if res == nil || len(res.Candidates) == 0 || res.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range res.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	return b.String()
}

var _ culture.ChatClient = (*Guide)(nil)
