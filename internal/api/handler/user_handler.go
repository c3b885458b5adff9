package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sustainalink/platform/internal/core/domain"
	"github.com/sustainalink/platform/internal/core/ports"
)

type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type preferencesRequest struct {
	SustainabilityGoals []string `json:"sustainabilityGoals" validate:"omitempty,max=20,dive,max=100"`
	Notifications       struct {
		Email bool `json:"email"`
		Push  bool `json:"push"`
	} `json:"notifications"`
}

type profileRequest struct {
	Avatar      string             `json:"avatar" validate:"omitempty,url"`
	Bio         string             `json:"bio" validate:"max=500"`
	Location    string             `json:"location" validate:"max=100"`
	Preferences preferencesRequest `json:"preferences"`
}

type updateUserRequest struct {
	FirstName *string         `json:"firstName" validate:"omitempty,max=50"`
	LastName  *string         `json:"lastName" validate:"omitempty,max=50"`
	Profile   *profileRequest `json:"profile"`
	Role      *string         `json:"role" validate:"omitempty,oneof=consumer supplier admin"`
	IsActive  *bool           `json:"isActive"`
}

func (r updateUserRequest) input() ports.UpdateUserInput {
	in := ports.UpdateUserInput{FirstName: r.FirstName, LastName: r.LastName, IsActive: r.IsActive}
	if r.Profile != nil {
		in.Profile = &domain.Profile{
			Avatar:   r.Profile.Avatar,
			Bio:      r.Profile.Bio,
			Location: r.Profile.Location,
			Preferences: domain.Preferences{
				SustainabilityGoals: r.Profile.Preferences.SustainabilityGoals,
				Notifications: domain.NotificationPreferences{
					Email: r.Profile.Preferences.Notifications.Email,
					Push:  r.Profile.Preferences.Notifications.Push,
				},
			},
		}
	}
	if r.Role != nil {
		role := domain.Role(*r.Role)
		in.Role = &role
	}
	return in
}

// List handles GET /api/users.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        role    query     string  false  "Filter by role"
// @Param        active  query     bool    false  "Filter by active flag"
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Page size (default 10, max 100)"
// @Success      200     {object}  listResponse
// @Failure      401     {object}  messageResponse
// @Failure      403     {object}  messageResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	page, err := bindPage(c)
	if err != nil {
		return err
	}

	active, err := optionalBool(c, "active")
	if err != nil {
		return err
	}
	filter := ports.UserFilter{Role: domain.Role(c.QueryParam("role")), Active: active, Page: page}

	users, total, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return respondPage(c, users, total, page)
}

// Get handles GET /api/users/:id.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  dataResponse
// @Failure      401  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, user)
}

// Update handles PUT /api/users/:id.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  dataResponse
// @Failure      400   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	var req updateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), req.input())
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, user)
}

// Deactivate handles PATCH /api/users/:id/deactivate.
//
// @Summary      Deactivate a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  dataResponse
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /users/{id}/deactivate [patch]
func (h *UserHandler) Deactivate(c echo.Context) error {
	user, err := h.service.Deactivate(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, user)
}
