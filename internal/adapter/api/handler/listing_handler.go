package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"starmarket/internal/domain/entity"
	"starmarket/internal/domain/repository"
	"starmarket/internal/usecase"
	"starmarket/internal/view"
	"starmarket/pkg/errors"
	"starmarket/pkg/response"
)

type ListingHandler struct {
	listingUseCase *usecase.ListingUseCase
	controller     *view.Controller
}

func NewListingHandler(listingUseCase *usecase.ListingUseCase, controller *view.Controller) *ListingHandler {
	return &ListingHandler{
		listingUseCase: listingUseCase,
		controller:     controller,
	}
}

type publishRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Stars       int    `json:"stars" validate:"required,gt=0"`
	Contact     string `json:"contact" validate:"required"`
}

func (h *ListingHandler) Publish(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req publishRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	listing, err := h.listingUseCase.Publish(c.Request().Context(), uid, usecase.PublishInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    entity.Category(req.Category),
		Stars:       req.Stars,
		Contact:     req.Contact,
	})
	if err != nil {
		return response.Error(c, err)
	}

	// The sell flow lands on buy with the fresh category pre-selected.
	h.controller.CompletePublish(listing.Category)
	return response.Created(c, listing)
}

func (h *ListingHandler) List(c echo.Context) error {
	filter := repository.ListingFilter{
		Category: entity.Category(c.QueryParam("category")),
		Search:   c.QueryParam("q"),
		SellerID: c.QueryParam("seller_id"),
		SortBy:   entity.SortKey(c.QueryParam("sort")),
	}
	if v := c.QueryParam("min_stars"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return response.Error(c, errors.BadRequest("min_stars must be a number", err))
		}
		filter.MinStars = n
	}
	if v := c.QueryParam("max_stars"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return response.Error(c, errors.BadRequest("max_stars must be a number", err))
		}
		filter.MaxStars = n
	}

	listings, err := h.listingUseCase.Browse(c.Request().Context(), filter)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, listings)
}

func (h *ListingHandler) Mine(c echo.Context) error {
	uid := c.Get("uid").(string)

	listings, err := h.listingUseCase.MyListings(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, listings)
}

type interestResponse struct {
	ListingID string `json:"listing_id"`
	Views     int    `json:"views"`
	Interest  int    `json:"interest"`
	Contact   string `json:"contact"`
}

func (h *ListingHandler) Interest(c echo.Context) error {
	uid := c.Get("uid").(string)
	listingID := c.Param("id")

	result, err := h.listingUseCase.ShowInterest(c.Request().Context(), uid, listingID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, interestResponse{
		ListingID: result.Listing.ID,
		Views:     result.Views,
		Interest:  result.Interest,
		Contact:   result.Contact,
	})
}
