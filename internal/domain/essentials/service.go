package essentials

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	apperrors "github.com/yanqian/travel-planner/pkg/errors"
)

const (
	defaultTargetLang = "ru"
	vatRate           = 0.13
	minRefundPurchase = 500
)

var phrasebook = map[string]string{
	"hello":     "привет",
	"thank you": "спасибо",
	"how much":  "сколько стоит",
	"where is":  "где находится",
	"food":      "еда",
	"hotel":     "отель",
	"taxi":      "такси",
}

// Service exposes the traveller's pocket tools.
type Service interface {
	Translate(ctx context.Context, req TranslateRequest) (Translation, error)
	TaxRefund(ctx context.Context, req TaxRefundRequest) (TaxRefund, error)
}

type service struct {
	logger *slog.Logger
}

// NewService wires up the essentials domain.
func NewService(logger *slog.Logger) Service {
	return &service{logger: logger.With("component", "essentials.service")}
}

func (s *service) Translate(_ context.Context, req TranslateRequest) (Translation, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return Translation{}, apperrors.Wrap(apperrors.CodeInvalidInput, "text cannot be empty", nil)
	}
	target := strings.TrimSpace(req.TargetLang)
	if target == "" {
		target = defaultTargetLang
	}

	translated, ok := phrasebook[strings.ToLower(text)]
	if !ok {
		translated = fmt.Sprintf("[Переведено: %s]", text)
	}
	return Translation{Original: text, Translated: translated, TargetLanguage: target}, nil
}

func (s *service) TaxRefund(_ context.Context, req TaxRefundRequest) (TaxRefund, error) {
	amount := req.Amount
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return TaxRefund{}, apperrors.Wrap(apperrors.CodeInvalidInput, "purchase amount must be positive", nil)
	}
	refund := TaxRefund{
		PurchaseAmount: amount,
		TaxRate:        fmt.Sprintf("%g%%", vatRate*100),
		RefundAmount:   amount * vatRate,
		Eligible:       amount >= minRefundPurchase,
		Requirements:   fmt.Sprintf("Минимальная покупка: %d юаней", minRefundPurchase),
	}
	s.logger.Debug("tax refund calculated", "amount", amount, "eligible", refund.Eligible)
	return refund, nil
}
