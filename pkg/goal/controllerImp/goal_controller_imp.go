package controllerImp

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	repo "lifedash/pkg/goal/repository"
	"lifedash/pkg/goal/service"
)

type GoalCtrl struct{ svc service.GoalService }

func New(svc service.GoalService) *GoalCtrl { return &GoalCtrl{svc} }

type goalReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	StartDate   string `json:"start_date"`
	TargetDate  string `json:"target_date"`
	Progress    int    `json:"progress"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
}

func (r goalReq) draft() service.GoalDraft {
	sd, _ := time.Parse("2006-01-02", r.StartDate)
	td, _ := time.Parse("2006-01-02", r.TargetDate)
	return service.GoalDraft{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		StartDate:   sd,
		TargetDate:  td,
		Progress:    r.Progress,
		Status:      r.Status,
		Priority:    r.Priority,
	}
}

func (h *GoalCtrl) Create(c echo.Context) error {
	var req goalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	g, err := h.svc.Add(req.draft())
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, g)
}

func (h *GoalCtrl) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.List(c.QueryParam("status")))
}

func (h *GoalCtrl) Get(c echo.Context) error {
	g, err := h.svc.Get(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, g)
}

func (h *GoalCtrl) Update(c echo.Context) error {
	var req goalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	g, err := h.svc.Update(c.Param("id"), req.draft())
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, g)
}

func (h *GoalCtrl) PatchStatus(c echo.Context) error {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	g, err := h.svc.ChangeStatus(c.Param("id"), body.Status)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, g)
}

func (h *GoalCtrl) Delete(c echo.Context) error {
	h.svc.Delete(c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}

type milestoneReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
}

func (h *GoalCtrl) AddMilestone(c echo.Context) error {
	var req milestoneReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	dd, _ := time.Parse("2006-01-02", req.DueDate)
	g, err := h.svc.AddMilestone(c.Param("id"), service.MilestoneDraft{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dd,
	})
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, g)
}

func (h *GoalCtrl) ToggleMilestone(c echo.Context) error {
	g, err := h.svc.ToggleMilestone(c.Param("id"), c.Param("mid"))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, g)
}
