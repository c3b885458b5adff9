package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sustainalink/platform/internal/api/metrics"
	"github.com/sustainalink/platform/internal/core/ports"
)

// AIHandler exposes the AI assistants. Every route requires authentication.
type AIHandler struct {
	service ports.AIService
}

func NewAIHandler(service ports.AIService) *AIHandler {
	return &AIHandler{service: service}
}

type recommendationsRequest struct {
	Category string   `json:"category" validate:"max=50"`
	Budget   float64  `json:"budget" validate:"gte=0"`
	Goals    []string `json:"goals" validate:"omitempty,max=20,dive,max=100"`
}

type chatMessageRequest struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required,max=2000"`
}

type chatRequest struct {
	Message string               `json:"message" validate:"required,max=2000"`
	History []chatMessageRequest `json:"history" validate:"omitempty,dive"`
}

type analyzeProductRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

type esgReportRequest struct {
	SupplierID string `json:"supplierId" validate:"required"`
	Timeframe  string `json:"timeframe" validate:"omitempty,oneof=monthly quarterly annual"`
}

type optimizeSupplyChainRequest struct {
	SupplyChain json.RawMessage `json:"supplyChain" validate:"required"`
	Constraints json.RawMessage `json:"constraints"`
}

// observe records the outcome and latency of one assistant call.
func observe(operation string, start time.Time, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	metrics.AIRequestsTotal.WithLabelValues(operation, result).Inc()
	metrics.AIRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// aiPayload places the completion under key: structured JSON as-is, anything
// else as text flagged with type "text".
func aiPayload(res *ports.AIResult, key string) map[string]any {
	out := map[string]any{"generatedAt": res.GeneratedAt}
	if res.Structured != nil {
		out[key] = res.Structured
	} else {
		out[key] = res.Text
		out["type"] = "text"
	}
	return out
}

// Recommendations handles POST /api/ai/recommendations.
//
// @Summary      Personalised sustainability recommendations
// @Tags         ai
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      recommendationsRequest  false  "Optional focus"
// @Success      200   {object}  dataResponse
// @Failure      401   {object}  messageResponse
// @Failure      503   {object}  messageResponse
// @Router       /ai/recommendations [post]
func (h *AIHandler) Recommendations(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	var req recommendationsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	start := time.Now()
	res, err := h.service.Recommendations(c.Request().Context(), actor, ports.RecommendationInput{
		Category: req.Category,
		Budget:   req.Budget,
		Goals:    req.Goals,
	})
	observe("recommendations", start, err)
	if err != nil {
		return err
	}
	if res.Structured != nil {
		return respondData(c, http.StatusOK, res.Structured)
	}
	return respondData(c, http.StatusOK, aiPayload(res, "recommendations"))
}

// Chat handles POST /api/ai/chat.
//
// @Summary      Chat with the sustainability assistant
// @Tags         ai
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      chatRequest  true  "Message and recent history"
// @Success      200   {object}  dataResponse
// @Failure      400   {object}  messageResponse
// @Failure      503   {object}  messageResponse
// @Router       /ai/chat [post]
func (h *AIHandler) Chat(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	var req chatRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	history := make([]ports.ChatMessage, 0, len(req.History))
	for _, m := range req.History {
		history = append(history, ports.ChatMessage{Role: m.Role, Content: m.Content})
	}

	start := time.Now()
	res, err := h.service.Chat(c.Request().Context(), actor, req.Message, history)
	observe("chat", start, err)
	if err != nil {
		return err
	}

	var reply any = res.Text
	if res.Structured != nil {
		reply = res.Structured
	}
	return respondData(c, http.StatusOK, map[string]any{
		"response":  reply,
		"timestamp": res.GeneratedAt,
	})
}

// AnalyzeProduct handles POST /api/ai/analyze-product.
//
// @Summary      Sustainability analysis of a product
// @Tags         ai
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      analyzeProductRequest  true  "Product to analyse"
// @Success      200   {object}  dataResponse
// @Failure      404   {object}  messageResponse
// @Failure      503   {object}  messageResponse
// @Router       /ai/analyze-product [post]
func (h *AIHandler) AnalyzeProduct(c echo.Context) error {
	var req analyzeProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	start := time.Now()
	product, res, err := h.service.AnalyzeProduct(c.Request().Context(), req.ProductID)
	observe("analyze_product", start, err)
	if err != nil {
		return err
	}

	payload := aiPayload(res, "analysis")
	payload["productId"] = product.ID
	return respondData(c, http.StatusOK, payload)
}

// GenerateESGReport handles POST /api/ai/generate-esg-report.
//
// @Summary      Draft an ESG report for a supplier
// @Tags         ai
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      esgReportRequest  true  "Supplier and timeframe"
// @Success      200   {object}  dataResponse
// @Failure      404   {object}  messageResponse
// @Failure      503   {object}  messageResponse
// @Router       /ai/generate-esg-report [post]
func (h *AIHandler) GenerateESGReport(c echo.Context) error {
	var req esgReportRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	timeframe := req.Timeframe
	if timeframe == "" {
		timeframe = "quarterly"
	}

	start := time.Now()
	supplier, res, err := h.service.GenerateESGReport(c.Request().Context(), req.SupplierID, timeframe)
	observe("generate_esg_report", start, err)
	if err != nil {
		return err
	}

	payload := aiPayload(res, "report")
	payload["supplierId"] = supplier.ID
	payload["supplier"] = supplier.CompanyName
	payload["timeframe"] = timeframe
	return respondData(c, http.StatusOK, payload)
}

// OptimizeSupplyChain handles POST /api/ai/optimize-supply-chain.
//
// @Summary      Supply chain optimisation suggestions
// @Tags         ai
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      optimizeSupplyChainRequest  true  "Supply chain data and constraints"
// @Success      200   {object}  dataResponse
// @Failure      400   {object}  messageResponse
// @Failure      503   {object}  messageResponse
// @Router       /ai/optimize-supply-chain [post]
func (h *AIHandler) OptimizeSupplyChain(c echo.Context) error {
	var req optimizeSupplyChainRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	start := time.Now()
	res, err := h.service.OptimizeSupplyChain(c.Request().Context(), req.SupplyChain, req.Constraints)
	observe("optimize_supply_chain", start, err)
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, aiPayload(res, "optimization"))
}
