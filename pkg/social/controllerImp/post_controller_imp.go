package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lifedash/pkg/social/service"
)

type PostCtrl struct{ svc service.PostService }

func New(svc service.PostService) *PostCtrl { return &PostCtrl{svc} }

type postReq struct {
	Author  string   `json:"author"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

func (h *PostCtrl) Create(c echo.Context) error {
	var req postReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	p, err := h.svc.Add(service.PostDraft{Author: req.Author, Content: req.Content, Tags: req.Tags})
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *PostCtrl) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.List())
}

func (h *PostCtrl) Like(c echo.Context) error {
	p, err := h.svc.Like(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PostCtrl) Delete(c echo.Context) error {
	h.svc.Delete(c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}
