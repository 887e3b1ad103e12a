package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/product-advisor/internal/dto"
)

// RecommendationSuccess sends a successful recommendation payload.
func RecommendationSuccess(c echo.Context, recommendation string) error {
	return c.JSON(http.StatusOK, dto.SearchResponse{
		Success:        true,
		Recommendation: recommendation,
	})
}

// RecommendationError sends an error payload with the given status.
func RecommendationError(c echo.Context, status int, message string) error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return c.JSON(status, dto.SearchResponse{
		Success: false,
		Error:   message,
	})
}
