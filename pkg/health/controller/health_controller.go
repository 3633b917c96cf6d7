package controller

import "github.com/labstack/echo/v4"

type HealthController interface {
	Upsert(c echo.Context) error
	List(c echo.Context) error
	Summary(c echo.Context) error
	Delete(c echo.Context) error
}
