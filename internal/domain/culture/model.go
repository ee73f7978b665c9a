package culture

import "github.com/yanqian/travel-planner/pkg/metrics"

// Event is a dated cultural happening in a city.
type Event struct {
	Title string `json:"title"`
	Date  string `json:"date"`
	City  string `json:"city"`
}

// EventsResponse lists events for a city and month.
type EventsResponse struct {
	City   string  `json:"city"`
	Month  int     `json:"month"`
	Events []Event `json:"events"`
}

// Sight is a recommended landmark with its review score.
type Sight struct {
	Name    string  `json:"name"`
	Score   float64 `json:"score"`
	Reviews int     `json:"reviews"`
}

// RecommendationsResponse lists sights for a city.
type RecommendationsResponse struct {
	City            string  `json:"city"`
	Recommendations []Sight `json:"recommendations"`
}

// ChatTurn is one message of the conversation so far.
type ChatTurn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// ChatRequest is the payload accepted by the culture chat.
type ChatRequest struct {
	Message string     `json:"message"`
	History []ChatTurn `json:"history,omitempty"`
}

// ChatResponse echoes the message with the assistant reply.
type ChatResponse struct {
	Message    string              `json:"message"`
	Reply      string              `json:"reply"`
	Source     string              `json:"source"`
	TokenUsage *metrics.TokenUsage `json:"token_usage,omitempty"`
}

// ARFilter is an augmented-reality camera filter.
type ARFilter struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ChatPrompt is what the service hands to an LLM client.
type ChatPrompt struct {
	System  string
	History []ChatTurn
	Message string
}

// ChatReply is the LLM answer plus optional token accounting.
type ChatReply struct {
	Text  string
	Usage metrics.TokenUsage
}

// Config wires runtime knobs for the culture domain.
type Config struct {
	Prompt     string
	MaxHistory int
}

const (
	// ReplySourceLLM marks replies produced by the configured model.
	ReplySourceLLM = "llm"
	// ReplySourceStub marks the built-in canned replies.
	ReplySourceStub = "stub"
)
