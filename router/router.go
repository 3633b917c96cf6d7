package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lifedash/pkg/clip"
	"lifedash/pkg/dashboard"
	"lifedash/pkg/export"
	"lifedash/pkg/layout"
	"lifedash/pkg/system"

	goalCtrl "lifedash/pkg/goal/controller"
	healthCtrl "lifedash/pkg/health/controller"
	journalCtrl "lifedash/pkg/journal/controller"
	mealCtrl "lifedash/pkg/meal/controller"
	postCtrl "lifedash/pkg/social/controller"
)

func New(
	e *echo.Echo,
	dashCtrl *dashboard.Ctrl,
	goals goalCtrl.GoalController,
	health healthCtrl.HealthController,
	journals journalCtrl.JournalController,
	meals mealCtrl.MealController,
	posts postCtrl.PostController,
	layoutCtrl *layout.Ctrl,
	clipCtrl *clip.Ctrl,
	exportCtrl *export.Ctrl,
	healthz *system.HealthzCtrl,
) *echo.Echo {
	e.GET("/healthz", healthz.Healthz)

	api := e.Group("/api")
	api.GET("/dashboard", dashCtrl.Summary)

	api.POST("/goals", goals.Create)
	api.GET("/goals", goals.List)
	api.GET("/goals/:id", goals.Get)
	api.PUT("/goals/:id", goals.Update)
	api.PATCH("/goals/:id/status", goals.PatchStatus)
	api.DELETE("/goals/:id", goals.Delete)
	api.POST("/goals/:id/milestones", goals.AddMilestone)
	api.PATCH("/goals/:id/milestones/:mid", goals.ToggleMilestone)

	api.PUT("/health", health.Upsert)
	api.GET("/health", health.List)
	api.GET("/health/summary", health.Summary)
	api.DELETE("/health/:id", health.Delete)

	api.POST("/journals", journals.Create)
	api.GET("/journals", journals.Search)
	api.GET("/journals/:id", journals.Get)
	api.PUT("/journals/:id", journals.Update)
	api.DELETE("/journals/:id", journals.Delete)

	api.POST("/meals", meals.Create)
	api.GET("/meals", meals.List)
	api.DELETE("/meals/:id", meals.Delete)

	api.GET("/posts", posts.List)
	api.POST("/posts", posts.Create)
	api.POST("/posts/:id/like", posts.Like)
	api.DELETE("/posts/:id", posts.Delete)

	api.GET("/layout", layoutCtrl.Get)
	api.POST("/layout/move", layoutCtrl.Move)
	api.POST("/layout/move-end", layoutCtrl.MoveEnd)
	api.POST("/layout/reset", layoutCtrl.Reset)

	api.POST("/clip", clipCtrl.Clip)
	api.GET("/export", exportCtrl.Download)

	// Unknown routes go home.
	e.RouteNotFound("/*", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/api/dashboard")
	})

	return e
}
