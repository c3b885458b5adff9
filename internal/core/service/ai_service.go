package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/rs/zerolog"

	"github.com/sustainalink/platform/internal/core/domain"
	"github.com/sustainalink/platform/internal/core/ports"
)

const maxChatHistory = 10

var prompts = template.Must(template.New("ai").Funcs(template.FuncMap{
	"join": strings.Join,
}).Parse(`
{{define "recommendations"}}You are a sustainability advisor for {{.User.FullName}}.
Sustainability score: {{.User.ESGMetrics.SustainabilityScore}}/100. Carbon footprint: {{.User.ESGMetrics.CarbonFootprint}}.
Goals: {{join .Goals ", "}}.
{{if .Input.Category}}Focus category: {{.Input.Category}}.
{{end}}{{if gt .Input.Budget 0.0}}Budget: {{.Input.Budget}}.
{{end}}Suggest five practical, sustainable product or lifestyle changes with expected impact.
Format as structured JSON with a "recommendations" array.{{end}}

{{define "chat"}}You are SustainaLink's sustainability assistant talking to {{.User.FullName}}.
{{range .History}}{{.Role}}: {{.Content}}
{{end}}user: {{.Message}}
Answer concisely with actionable sustainability guidance.{{end}}

{{define "analyze-product"}}Analyze the sustainability of this product:
Name: {{.Product.Name}}
Brand: {{.Product.Brand}}
Category: {{.Product.Category}}
Carbon footprint: {{.Product.SustainabilityMetrics.CarbonFootprint}}
Recyclability: {{.Product.SustainabilityMetrics.RecyclabilityScore}}/100
Rating: {{.Product.SustainabilityMetrics.SustainabilityRating}}/5
Certifications: {{join .Product.SustainabilityMetrics.Certifications ", "}}
Origin: {{.Product.SupplyChain.OriginCountry}} via {{.Product.SupplyChain.TransportationMode}}
Renewable energy: {{.Product.ESGData.RenewableEnergyPercentage}}%
Provide strengths, weaknesses, alternatives and an overall score.
Format as structured JSON.{{end}}

{{define "esg-report"}}Generate a {{.Timeframe}} ESG report for this supplier:
Company: {{.Supplier.CompanyName}}
Industry: {{.Supplier.Industry}}
Overall ESG score: {{.Supplier.OverallESGScore}}/100 (risk {{.Supplier.RiskLevel}})
Verified: {{.Supplier.IsVerified}}
Environmental: {{printf "%+v" .Supplier.ESGMetrics.Environmental}}
Social: {{printf "%+v" .Supplier.ESGMetrics.Social}}
Governance: {{printf "%+v" .Supplier.ESGMetrics.Governance}}
Certifications: {{range $i, $c := .Supplier.Certifications}}{{if $i}}, {{end}}{{$c.Name}}{{end}}
Include an executive summary, pillar analysis, risk assessment and recommendations.
Format as structured JSON with clear sections.{{end}}

{{define "optimize-supply-chain"}}Analyze and optimize this supply chain for sustainability:
Current supply chain data:
{{.SupplyChain}}
Constraints:
{{.Constraints}}
Cover carbon reduction, supplier ESG improvement, transport impact and traceability, with expected impact and timeline.
Format as structured JSON with actionable recommendations.{{end}}
`))

// AIService renders prompts and delegates completion to a TextGenerator.
type AIService struct {
	gen       ports.TextGenerator
	products  ports.ProductRepository
	suppliers ports.SupplierRepository
	log       zerolog.Logger
	now       func() time.Time
}

func NewAIService(gen ports.TextGenerator, products ports.ProductRepository, suppliers ports.SupplierRepository, log zerolog.Logger) *AIService {
	return &AIService{gen: gen, products: products, suppliers: suppliers, log: log, now: time.Now}
}

func (s *AIService) Recommendations(ctx context.Context, user *domain.User, input ports.RecommendationInput) (*ports.AIResult, error) {
	goals := input.Goals
	if len(goals) == 0 {
		goals = user.Profile.Preferences.SustainabilityGoals
	}
	return s.complete(ctx, "recommendations", map[string]any{
		"User":  user,
		"Input": input,
		"Goals": goals,
	})
}

func (s *AIService) Chat(ctx context.Context, user *domain.User, message string, history []ports.ChatMessage) (*ports.AIResult, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("%w: message is required", domain.ErrValidation)
	}
	if len(history) > maxChatHistory {
		history = history[len(history)-maxChatHistory:]
	}
	return s.complete(ctx, "chat", map[string]any{
		"User":    user,
		"Message": message,
		"History": history,
	})
}

func (s *AIService) AnalyzeProduct(ctx context.Context, productID string) (*domain.Product, *ports.AIResult, error) {
	if productID == "" {
		return nil, nil, fmt.Errorf("%w: product id is required", domain.ErrValidation)
	}
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, nil, err
	}
	res, err := s.complete(ctx, "analyze-product", map[string]any{"Product": product})
	if err != nil {
		return nil, nil, err
	}
	return product, res, nil
}

func (s *AIService) GenerateESGReport(ctx context.Context, supplierID, timeframe string) (*domain.Supplier, *ports.AIResult, error) {
	if supplierID == "" {
		return nil, nil, fmt.Errorf("%w: supplier id is required", domain.ErrValidation)
	}
	if timeframe == "" {
		timeframe = "quarterly"
	}
	supplier, err := s.suppliers.FindByID(ctx, supplierID)
	if err != nil {
		return nil, nil, err
	}
	res, err := s.complete(ctx, "esg-report", map[string]any{
		"Supplier":  supplier,
		"Timeframe": timeframe,
	})
	if err != nil {
		return nil, nil, err
	}
	return supplier, res, nil
}

func (s *AIService) OptimizeSupplyChain(ctx context.Context, supplyChain, constraints json.RawMessage) (*ports.AIResult, error) {
	if len(bytes.TrimSpace(supplyChain)) == 0 {
		return nil, fmt.Errorf("%w: supply chain data is required", domain.ErrValidation)
	}
	if len(bytes.TrimSpace(constraints)) == 0 {
		constraints = json.RawMessage("{}")
	}
	return s.complete(ctx, "optimize-supply-chain", map[string]any{
		"SupplyChain": indent(supplyChain),
		"Constraints": indent(constraints),
	})
}

func (s *AIService) complete(ctx context.Context, name string, data any) (*ports.AIResult, error) {
	var prompt bytes.Buffer
	if err := prompts.ExecuteTemplate(&prompt, name, data); err != nil {
		return nil, fmt.Errorf("render %s prompt: %w", name, err)
	}

	text, err := s.gen.Generate(ctx, prompt.String())
	if err != nil {
		s.log.Error().Err(err).Str("operation", name).Msg("ai completion failed")
		return nil, err
	}
	return parseCompletion(text, s.now().UTC()), nil
}

// parseCompletion keeps JSON answers structured and falls back to plain text.
func parseCompletion(text string, at time.Time) *ports.AIResult {
	trimmed := strings.TrimSpace(text)
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)

	if json.Valid([]byte(trimmed)) && (strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[")) {
		return &ports.AIResult{Structured: json.RawMessage(trimmed), GeneratedAt: at}
	}
	return &ports.AIResult{Text: text, GeneratedAt: at}
}

func indent(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}
