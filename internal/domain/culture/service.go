package culture

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	apperrors "github.com/yanqian/travel-planner/pkg/errors"
	"github.com/yanqian/travel-planner/pkg/util"
)

const (
	defaultCity    = "Пекин"
	greetingReply  = "Здравствуйте! Чем помочь с культурной программой?"
	fallbackReply  = "Рекомендую Запретный город утром и парк Бейхай вечером."
	defaultPrompt  = "Ты опытный гид по Китаю. Отвечай кратко и по-русски."
	defaultHistory = 10
)

// Service exposes the culture section: events, sights, chat and AR filters.
type Service interface {
	Events(ctx context.Context, city string, month int) (EventsResponse, error)
	Recommendations(ctx context.Context, city string) (RecommendationsResponse, error)
	Chat(ctx context.Context, req ChatRequest) (ChatResponse, error)
	ARFilters(ctx context.Context) ([]ARFilter, error)
}

// SightRepository lists landmarks for a city.
type SightRepository interface {
	Sights(ctx context.Context, city string) ([]Sight, error)
}

// ChatClient answers tour-guide questions. A nil client disables LLM replies.
type ChatClient interface {
	Reply(ctx context.Context, prompt ChatPrompt) (ChatReply, error)
}

type service struct {
	cfg    Config
	sights SightRepository
	client ChatClient
	logger *slog.Logger
	now    util.Clock
}

// NewService wires up the culture domain.
func NewService(cfg Config, sights SightRepository, client ChatClient, logger *slog.Logger) Service {
	return &service{
		cfg:    cfg,
		sights: sights,
		client: client,
		logger: logger.With("component", "culture.service"),
		now:    util.NowUTC,
	}
}

func (s *service) Events(_ context.Context, city string, month int) (EventsResponse, error) {
	city = cityOrDefault(city)
	now := s.now()
	month = util.MonthOrCurrent(month, now)
	year := now.Year()

	titles := []struct {
		title string
		day   int
	}{
		{"Чуньцзе — Парад драконов", 10},
		{"Фестиваль фонарей", 15},
		{"Пекинская опера", 22},
	}
	events := make([]Event, 0, len(titles))
	for _, t := range titles {
		events = append(events, Event{
			Title: t.title,
			Date:  fmt.Sprintf("%d-%02d-%02d", year, month, t.day),
			City:  city,
		})
	}
	return EventsResponse{City: city, Month: month, Events: events}, nil
}

func (s *service) Recommendations(ctx context.Context, city string) (RecommendationsResponse, error) {
	city = cityOrDefault(city)
	sights, err := s.sights.Sights(ctx, city)
	if err != nil {
		return RecommendationsResponse{}, apperrors.Wrap(apperrors.CodeCatalogError, "failed to load sights", err)
	}
	if sights == nil {
		sights = []Sight{}
	}
	return RecommendationsResponse{City: city, Recommendations: sights}, nil
}

func (s *service) Chat(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return ChatResponse{Message: req.Message, Reply: greetingReply, Source: ReplySourceStub}, nil
	}
	if s.client == nil {
		return ChatResponse{Message: message, Reply: fallbackReply, Source: ReplySourceStub}, nil
	}

	reply, err := s.client.Reply(ctx, ChatPrompt{
		System:  s.systemPrompt(),
		History: s.trimHistory(req.History),
		Message: message,
	})
	text := strings.TrimSpace(reply.Text)
	if err != nil || text == "" {
		s.logger.Warn("culture chat falling back to stub reply", "error", err)
		return ChatResponse{Message: message, Reply: fallbackReply, Source: ReplySourceStub}, nil
	}

	resp := ChatResponse{Message: message, Reply: text, Source: ReplySourceLLM}
	if !reply.Usage.IsZero() {
		usage := reply.Usage
		resp.TokenUsage = &usage
	}
	return resp, nil
}

func (s *service) ARFilters(_ context.Context) ([]ARFilter, error) {
	return []ARFilter{
		{ID: "forbidden-city-mask", Title: "Запретный город — AR гид"},
		{ID: "great-wall-portal", Title: "Великая стена — портал"},
	}, nil
}

func (s *service) systemPrompt() string {
	if p := strings.TrimSpace(s.cfg.Prompt); p != "" {
		return p
	}
	return defaultPrompt
}

// trimHistory keeps the most recent non-empty turns, normalizing roles to
// "user" and "model".
func (s *service) trimHistory(history []ChatTurn) []ChatTurn {
	limit := s.cfg.MaxHistory
	if limit <= 0 {
		limit = defaultHistory
	}
	out := make([]ChatTurn, 0, len(history))
	for _, turn := range history {
		text := strings.TrimSpace(turn.Text)
		if text == "" {
			continue
		}
		role := "user"
		if turn.Role == "model" || turn.Role == "assistant" {
			role = "model"
		}
		out = append(out, ChatTurn{Role: role, Text: text})
	}
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out
}

func cityOrDefault(city string) string {
	if c := strings.TrimSpace(city); c != "" {
		return c
	}
	return defaultCity
}
