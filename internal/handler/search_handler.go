package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/octobees/product-advisor/internal/dto"
)

// RecommendationCaller resolves a search request into a recommendation,
// typically by invoking the getdata tool over MCP.
type RecommendationCaller interface {
	GetRecommendation(ctx context.Context, req dto.SearchRequest) (string, error)
}

// SearchHandler serves the recommendation API.
type SearchHandler struct {
	caller RecommendationCaller
}

// NewSearchHandler wires the handler.
func NewSearchHandler(caller RecommendationCaller) *SearchHandler {
	return &SearchHandler{caller: caller}
}

// Search handles POST /api/search: validate, invoke the tool, return the
// recommendation text. Tool failures come back with success=false and the
// upstream error message intact.
func (h *SearchHandler) Search(c echo.Context) error {
	var req dto.SearchRequest
	if err := c.Bind(&req); err != nil {
		return RecommendationError(c, http.StatusBadRequest, "invalid payload")
	}

	req.Product = strings.TrimSpace(req.Product)
	req.SpecificFeatures = strings.TrimSpace(req.SpecificFeatures)
	if req.Product == "" {
		return RecommendationError(c, http.StatusBadRequest, "product is required")
	}
	if req.MinPrice < 0 {
		return RecommendationError(c, http.StatusBadRequest, "min_price must not be negative")
	}
	req.ApplyDefaults()
	if req.MaxPrice < req.MinPrice {
		return RecommendationError(c, http.StatusBadRequest, "max_price must not be below min_price")
	}

	recommendation, err := h.caller.GetRecommendation(c.Request().Context(), req)
	if err != nil {
		return RecommendationError(c, http.StatusBadGateway, err.Error())
	}
	return RecommendationSuccess(c, recommendation)
}

// Health handles GET /healthz.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"status": "ok"})
}
