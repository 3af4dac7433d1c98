package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"starmarket/internal/usecase"
	"starmarket/pkg/errors"
	"starmarket/pkg/response"
)

type WalletHandler struct {
	walletUseCase *usecase.WalletUseCase
}

func NewWalletHandler(walletUseCase *usecase.WalletUseCase) *WalletHandler {
	return &WalletHandler{walletUseCase: walletUseCase}
}

type bonusResponse struct {
	Stars   int `json:"stars"`
	Energy  int `json:"energy"`
	Balance int `json:"balance"`
}

func (h *WalletHandler) ClaimBonus(c echo.Context) error {
	uid := c.Get("uid").(string)

	result, err := h.walletUseCase.ClaimBonus(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, bonusResponse{
		Stars:   result.Stars,
		Energy:  result.Energy,
		Balance: result.Balance,
	})
}

func (h *WalletHandler) Transactions(c echo.Context) error {
	uid := c.Get("uid").(string)

	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return response.Error(c, errors.BadRequest("limit must be a non-negative number", err))
		}
		limit = n
	}

	transactions, err := h.walletUseCase.RecentTransactions(c.Request().Context(), uid, limit)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, transactions)
}
