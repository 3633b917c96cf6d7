package controller

import "github.com/labstack/echo/v4"

type PostController interface {
	Create(c echo.Context) error
	List(c echo.Context) error
	Like(c echo.Context) error
	Delete(c echo.Context) error
}
