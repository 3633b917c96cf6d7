package layout

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Ctrl struct{ m *Manager }

func NewCtrl(m *Manager) *Ctrl { return &Ctrl{m} }

type moveReq struct {
	Panel  string `json:"panel"`
	From   string `json:"from"`
	Before string `json:"before"`
	To     string `json:"to"`
}

func (h *Ctrl) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, h.m.Layout())
}

// Move tolerates malformed drag payloads: a bad body or unknown panel id is
// a no-op, not an error.
func (h *Ctrl) Move(c echo.Context) error {
	var req moveReq
	if err := c.Bind(&req); err == nil {
		h.m.MovePanel(req.Panel, req.Before, req.To)
	}
	return c.JSON(http.StatusOK, h.m.Layout())
}

func (h *Ctrl) MoveEnd(c echo.Context) error {
	var req moveReq
	if err := c.Bind(&req); err == nil {
		h.m.MovePanelToColumnEnd(req.Panel, req.To)
	}
	return c.JSON(http.StatusOK, h.m.Layout())
}

func (h *Ctrl) Reset(c echo.Context) error {
	h.m.Reset()
	return c.JSON(http.StatusOK, h.m.Layout())
}
