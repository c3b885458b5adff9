package ports

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sustainalink/platform/internal/core/domain"
)

// TextGenerator produces a completion for a single prompt.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// AIResult wraps a completion. Structured is set when the model answered
// with valid JSON; otherwise Text holds the raw completion.
type AIResult struct {
	Structured  json.RawMessage
	Text        string
	GeneratedAt time.Time
}

type ChatMessage struct {
	Role    string
	Content string
}

type RecommendationInput struct {
	Category string
	Budget   float64
	Goals    []string
}

type AIService interface {
	Recommendations(ctx context.Context, user *domain.User, input RecommendationInput) (*AIResult, error)
	Chat(ctx context.Context, user *domain.User, message string, history []ChatMessage) (*AIResult, error)
	AnalyzeProduct(ctx context.Context, productID string) (*domain.Product, *AIResult, error)
	GenerateESGReport(ctx context.Context, supplierID, timeframe string) (*domain.Supplier, *AIResult, error)
	OptimizeSupplyChain(ctx context.Context, supplyChain, constraints json.RawMessage) (*AIResult, error)
}
