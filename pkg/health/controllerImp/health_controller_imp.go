package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"lifedash/pkg/health/service"
)

type HealthCtrl struct{ svc service.HealthService }

func New(svc service.HealthService) *HealthCtrl { return &HealthCtrl{svc} }

type metricReq struct {
	Date         string  `json:"date"`
	Mood         int     `json:"mood"`
	EnergyLevel  int     `json:"energy_level"`
	SleepHours   float64 `json:"sleep_hours"`
	SleepQuality *int    `json:"sleep_quality"`
	Notes        string  `json:"notes"`
}

func (h *HealthCtrl) Upsert(c echo.Context) error {
	var req metricReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	d := time.Now()
	if req.Date != "" {
		dd, err := time.Parse("2006-01-02", req.Date)
		if err == nil {
			d = dd
		}
	}
	m, created, err := h.svc.Upsert(service.MetricDraft{
		Date:         d,
		Mood:         req.Mood,
		EnergyLevel:  req.EnergyLevel,
		SleepHours:   req.SleepHours,
		SleepQuality: req.SleepQuality,
		Notes:        req.Notes,
	})
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if created {
		return c.JSON(http.StatusCreated, m)
	}
	return c.JSON(http.StatusOK, m)
}

func (h *HealthCtrl) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.List())
}

func (h *HealthCtrl) Summary(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Summary())
}

func (h *HealthCtrl) Delete(c echo.Context) error {
	h.svc.Delete(c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}
