package controller

import "github.com/labstack/echo/v4"

type GoalController interface {
	Create(c echo.Context) error
	List(c echo.Context) error
	Get(c echo.Context) error
	Update(c echo.Context) error
	PatchStatus(c echo.Context) error
	Delete(c echo.Context) error
	AddMilestone(c echo.Context) error
	ToggleMilestone(c echo.Context) error
}
