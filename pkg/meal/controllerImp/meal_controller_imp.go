package controllerImp

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"lifedash/entities"
	repo "lifedash/pkg/meal/repository"
)

type MealCtrl struct{ repo repo.MealRepository }

func New(repo repo.MealRepository) *MealCtrl { return &MealCtrl{repo} }

type mealReq struct {
	Date        string              `json:"date"`
	MealType    string              `json:"meal_type"`
	Description string              `json:"description"`
	Nutrition   *entities.Nutrition `json:"nutrition"`
}

func validMealType(t string) bool {
	return t == "breakfast" || t == "lunch" || t == "dinner" || t == "snack"
}

func (h *MealCtrl) Create(c echo.Context) error {
	var req mealReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Description == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "description is required"})
	}
	if !validMealType(req.MealType) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid meal type"})
	}
	d := time.Now()
	if req.Date != "" {
		if dd, err := time.Parse("2006-01-02", req.Date); err == nil {
			d = dd
		}
	}
	m := &entities.MealRecord{
		ID:          uuid.New().String(),
		Date:        d,
		MealType:    req.MealType,
		Description: req.Description,
		Nutrition:   req.Nutrition,
		CreatedAt:   time.Now(),
	}
	if err := h.repo.Insert(m); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *MealCtrl) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.repo.All())
}

func (h *MealCtrl) Delete(c echo.Context) error {
	h.repo.Delete(c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}
