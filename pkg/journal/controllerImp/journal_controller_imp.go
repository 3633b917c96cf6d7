package controllerImp

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	repo "lifedash/pkg/journal/repository"
	"lifedash/pkg/journal/service"
)

type JournalCtrl struct{ svc service.JournalService }

func New(svc service.JournalService) *JournalCtrl { return &JournalCtrl{svc} }

type journalReq struct {
	Date    string   `json:"date"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Mood    int      `json:"mood"`
	Tags    []string `json:"tags"`
	GoalIDs []string `json:"goal_ids"`
}

func (r journalReq) draft() service.JournalDraft {
	var d time.Time
	if r.Date != "" {
		if dd, err := time.Parse("2006-01-02", r.Date); err == nil {
			d = dd
		} else if dd, err := time.Parse(time.RFC3339, r.Date); err == nil {
			d = dd
		}
	}
	return service.JournalDraft{
		Date:    d,
		Title:   r.Title,
		Content: r.Content,
		Mood:    r.Mood,
		Tags:    r.Tags,
		GoalIDs: r.GoalIDs,
	}
}

func (h *JournalCtrl) Create(c echo.Context) error {
	var req journalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	j, err := h.svc.Add(req.draft())
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, j)
}

func (h *JournalCtrl) Search(c echo.Context) error {
	q := service.Query{Text: c.QueryParam("q")}
	if v := c.QueryParam("tags"); v != "" {
		for _, t := range strings.Split(v, ",") {
			if t = strings.TrimSpace(t); t != "" {
				q.Tags = append(q.Tags, t)
			}
		}
	}
	if v := c.QueryParam("from"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			q.From = &t
		}
	}
	if v := c.QueryParam("to"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			q.To = &t
		}
	}
	q.Page, _ = strconv.Atoi(c.QueryParam("page"))
	q.PageSize, _ = strconv.Atoi(c.QueryParam("page_size"))
	return c.JSON(http.StatusOK, h.svc.Search(q))
}

func (h *JournalCtrl) Get(c echo.Context) error {
	j, err := h.svc.Get(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, j)
}

func (h *JournalCtrl) Update(c echo.Context) error {
	var req journalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	j, err := h.svc.Update(c.Param("id"), req.draft())
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, j)
}

func (h *JournalCtrl) Delete(c echo.Context) error {
	h.svc.Delete(c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}
