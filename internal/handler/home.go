package handler

import (
	_ "embed"
	"net/http"

	"github.com/labstack/echo/v4"
)

//go:embed static/index.html
var homePage []byte

// Home serves the search form.
func Home(c echo.Context) error {
	return c.HTMLBlob(http.StatusOK, homePage)
}
