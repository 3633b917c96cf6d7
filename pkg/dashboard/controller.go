// Package dashboard composes the home view: headline stats plus the content
// of each panel.
package dashboard

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"lifedash/entities"
	"lifedash/pkg/layout"

	goalSvc "lifedash/pkg/goal/service"
	healthSvc "lifedash/pkg/health/service"
	journalSvc "lifedash/pkg/journal/service"
)

type Ctrl struct {
	goals    goalSvc.GoalService
	health   healthSvc.HealthService
	journals journalSvc.JournalService
	layout   *layout.Manager
}

func NewCtrl(g goalSvc.GoalService, h healthSvc.HealthService, j journalSvc.JournalService, l *layout.Manager) *Ctrl {
	return &Ctrl{goals: g, health: h, journals: j, layout: l}
}

type summary struct {
	Stats          stats                      `json:"stats"`
	VisibleGoals   []entities.Goal            `json:"visible_goals"`
	RecentJournals []entities.Journal         `json:"recent_journals"`
	TodayHealth    *entities.HealthMetric     `json:"today_health"`
	Performance    healthSvc.PerformanceSummary `json:"performance"`
	Layout         entities.PanelLayout       `json:"layout"`
}

type stats struct {
	ActiveGoals      int `json:"active_goals"`
	CompletedGoals   int `json:"completed_goals"`
	AverageProgress  int `json:"average_progress"`
	CurrentMoodScore int `json:"current_mood_score"`
}

func (h *Ctrl) Summary(c echo.Context) error {
	now := time.Now()
	gs := h.goals.Stats()
	today, _ := h.health.Today(now)
	out := summary{
		Stats: stats{
			ActiveGoals:      gs.ActiveGoals,
			CompletedGoals:   gs.CompletedGoals,
			AverageProgress:  gs.AverageProgress,
			CurrentMoodScore: h.health.CurrentMoodScore(),
		},
		VisibleGoals:   h.goals.Visible(),
		RecentJournals: h.journals.Recent(now),
		TodayHealth:    today,
		Performance:    h.health.Summary(),
		Layout:         h.layout.Layout(),
	}
	return c.JSON(http.StatusOK, out)
}
