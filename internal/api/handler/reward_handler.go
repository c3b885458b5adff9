package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sustainalink/platform/internal/core/domain"
	"github.com/sustainalink/platform/internal/core/ports"
)

type RewardHandler struct {
	service ports.RewardService
}

func NewRewardHandler(service ports.RewardService) *RewardHandler {
	return &RewardHandler{service: service}
}

type createRewardRequest struct {
	Name         string                    `json:"name" validate:"required,max=100"`
	Description  string                    `json:"description" validate:"required,max=500"`
	Type         string                    `json:"type" validate:"required,oneof=badge nft points discount certification"`
	Requirements domain.RewardRequirements `json:"requirements"`
	Value        domain.RewardValue        `json:"value"`
	ImageURL     string                    `json:"imageUrl" validate:"omitempty,url"`
	Rarity       string                    `json:"rarity" validate:"omitempty,oneof=common rare epic legendary"`
}

// List handles GET /api/rewards.
//
// @Summary      List active rewards
// @Tags         rewards
// @Produce      json
// @Param        type    query     string  false  "Reward type"
// @Param        rarity  query     string  false  "Reward rarity"
// @Success      200     {object}  listResponse
// @Failure      400     {object}  messageResponse
// @Router       /rewards [get]
func (h *RewardHandler) List(c echo.Context) error {
	rewards, err := h.service.List(c.Request().Context(), ports.RewardFilter{
		Type:   domain.RewardType(c.QueryParam("type")),
		Rarity: domain.Rarity(c.QueryParam("rarity")),
	})
	if err != nil {
		return err
	}
	return respondList(c, rewards)
}

// Stats handles GET /api/rewards/stats.
//
// @Summary      Reward standing of the caller
// @Tags         rewards
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dataResponse
// @Failure      401  {object}  messageResponse
// @Router       /rewards/stats [get]
func (h *RewardHandler) Stats(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	stats, err := h.service.Stats(c.Request().Context(), actor.ID)
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, stats)
}

// Create handles POST /api/rewards.
//
// @Summary      Create a reward
// @Tags         rewards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRewardRequest  true  "Reward definition"
// @Success      201   {object}  dataResponse
// @Failure      400   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Router       /rewards [post]
func (h *RewardHandler) Create(c echo.Context) error {
	var req createRewardRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	reward, err := h.service.Create(c.Request().Context(), &domain.Reward{
		Name:         req.Name,
		Description:  req.Description,
		Type:         domain.RewardType(req.Type),
		Requirements: req.Requirements,
		Value:        req.Value,
		ImageURL:     req.ImageURL,
		Rarity:       domain.Rarity(req.Rarity),
	})
	if err != nil {
		return err
	}
	return respondData(c, http.StatusCreated, reward)
}
