package clip

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Ctrl struct{ cl *Clipper }

func NewCtrl(cl *Clipper) *Ctrl { return &Ctrl{cl} }

func (h *Ctrl) Clip(c echo.Context) error {
	var body struct {
		URL string `json:"url"`
	}
	if err := c.Bind(&body); err != nil || body.URL == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "url required"})
	}
	title, content, err := h.cl.Clip(body.URL)
	if err != nil {
		switch {
		case errors.Is(err, ErrDomainNotAllowed):
			return c.JSON(http.StatusForbidden, map[string]string{"error": err.Error()})
		case errors.Is(err, ErrUnsupportedContent), errors.Is(err, ErrPageTooLarge):
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		default:
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		}
	}
	return c.JSON(http.StatusOK, map[string]string{"title": title, "content": content})
}
