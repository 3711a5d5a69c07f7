// Package webapp serves the Telegram Web App: the order form and the menu
// JSON it is built from.
package webapp

import (
	_ "embed"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/OtabekMamajonov/choyxona-bot/internal/menu"
)

//go:embed index.html
var indexHTML []byte

type Handler struct {
	Catalogue *menu.Catalogue
}

func (h *Handler) Index(c echo.Context) error {
	return c.HTMLBlob(http.StatusOK, indexHTML)
}

// Menu returns the catalogue grouped into sections for the form.
func (h *Handler) Menu(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"sections": h.Catalogue.Sections(),
		"currency": menu.Currency,
	})
}

type Deps struct {
	Catalogue *menu.Catalogue
}

func Register(e *echo.Echo, d *Deps) {
	h := &Handler{Catalogue: d.Catalogue}

	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.GET("/", h.Index)
	e.GET("/menu", h.Menu)
}
