package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"starmarket/internal/domain/entity"
	"starmarket/internal/usecase"
	"starmarket/internal/view"
	"starmarket/pkg/errors"
	"starmarket/pkg/response"
)

type AuthHandler struct {
	authUseCase     *usecase.AuthUseCase
	identityUseCase *usecase.IdentityUseCase
	controller      *view.Controller
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase, identityUseCase *usecase.IdentityUseCase, controller *view.Controller) *AuthHandler {
	return &AuthHandler{
		authUseCase:     authUseCase,
		identityUseCase: identityUseCase,
		controller:      controller,
	}
}

type registerRequest struct {
	Nickname      string `json:"nickname" validate:"required"`
	Email         string `json:"email" validate:"required"`
	Secret        string `json:"secret" validate:"required"`
	SecretConfirm string `json:"secret_confirm" validate:"required"`
}

type loginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Secret     string `json:"secret" validate:"required"`
}

type externalRequest struct {
	Assertion string `json:"assertion" validate:"required"`
}

type userResponse struct {
	ID             string     `json:"id"`
	Nickname       string     `json:"nickname"`
	Email          string     `json:"email"`
	Avatar         string     `json:"avatar,omitempty"`
	FirstName      string     `json:"first_name,omitempty"`
	LastName       string     `json:"last_name,omitempty"`
	Stars          int        `json:"stars"`
	Energy         int        `json:"energy"`
	Level          int        `json:"level"`
	Rating         float64    `json:"rating"`
	ExternalHandle string     `json:"external_handle,omitempty"`
	IsExternal     bool       `json:"is_external"`
	CreatedAt      time.Time  `json:"created_at"`
	LastLogin      time.Time  `json:"last_login"`
	LastBonus      *time.Time `json:"last_bonus,omitempty"`
}

func toUserResponse(user *entity.User) userResponse {
	return userResponse{
		ID:             user.ID,
		Nickname:       user.Nickname,
		Email:          user.Email,
		Avatar:         user.Avatar,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Stars:          user.Stars,
		Energy:         user.Energy,
		Level:          user.Level,
		Rating:         user.Rating,
		ExternalHandle: user.ExternalHandle,
		IsExternal:     user.IsExternal,
		CreatedAt:      user.CreatedAt,
		LastLogin:      user.LastLogin,
		LastBonus:      user.LastBonus,
	}
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.authUseCase.Register(c.Request().Context(), usecase.RegisterInput{
		Nickname:      req.Nickname,
		Email:         req.Email,
		Secret:        req.Secret,
		SecretConfirm: req.SecretConfirm,
	})
	if err != nil {
		return response.Error(c, err)
	}

	h.controller.OnLogin()
	return response.Created(c, toUserResponse(user))
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.authUseCase.Login(c.Request().Context(), req.Identifier, req.Secret)
	if err != nil {
		return response.Error(c, err)
	}

	h.controller.OnLogin()
	return response.Success(c, toUserResponse(user))
}

func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authUseCase.Logout(c.Request().Context()); err != nil {
		return response.Error(c, errors.Internal("Failed to clear session", err))
	}

	h.controller.OnLogout()
	return response.Success(c, map[string]string{
		"message": "Signed out",
	})
}

// External consumes a federated identity assertion and signs the resolved
// account in, provisioning it on first contact.
func (h *AuthHandler) External(c echo.Context) error {
	var req externalRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	ident, err := h.identityUseCase.VerifyAssertion(req.Assertion)
	if err != nil {
		return response.Error(c, err)
	}

	user := h.identityUseCase.Resolve(c.Request().Context(), ident)
	if user == nil {
		return response.Error(c, errors.Unauthorized("Could not resolve identity", nil))
	}

	h.controller.OnLogin()
	return response.Success(c, toUserResponse(user))
}
