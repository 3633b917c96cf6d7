package export

import (
	"net/http"

	"github.com/labstack/echo/v4"

	goalSvc "lifedash/pkg/goal/service"
	healthSvc "lifedash/pkg/health/service"
	journalSvc "lifedash/pkg/journal/service"
	postSvc "lifedash/pkg/social/service"
)

type Ctrl struct {
	goals    goalSvc.GoalService
	health   healthSvc.HealthService
	journals journalSvc.JournalService
	posts    postSvc.PostService
}

func NewCtrl(g goalSvc.GoalService, h healthSvc.HealthService, j journalSvc.JournalService, p postSvc.PostService) *Ctrl {
	return &Ctrl{goals: g, health: h, journals: j, posts: p}
}

func (h *Ctrl) Download(c echo.Context) error {
	journals := h.journals.Search(journalSvc.Query{PageSize: 1 << 20}).Items
	f, err := Workbook(h.goals.List("all"), h.health.List(), journals, h.posts.List())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="lifedash.xlsx"`)
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response())
}
