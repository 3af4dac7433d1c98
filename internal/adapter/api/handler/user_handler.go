package handler

import (
	"github.com/labstack/echo/v4"

	"starmarket/internal/usecase"
	"starmarket/pkg/errors"
	"starmarket/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{userUseCase: userUseCase}
}

type updateProfileRequest struct {
	Nickname       string `json:"nickname" validate:"required"`
	Email          string `json:"email" validate:"required"`
	ExternalHandle string `json:"external_handle"`
}

func (h *UserHandler) Me(c echo.Context) error {
	uid := c.Get("uid").(string)

	user, err := h.userUseCase.GetByID(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, toUserResponse(user))
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), uid, usecase.UpdateProfileInput{
		Nickname:       req.Nickname,
		Email:          req.Email,
		ExternalHandle: req.ExternalHandle,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, toUserResponse(user))
}
