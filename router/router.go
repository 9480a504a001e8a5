package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

func New(
	e *echo.Echo,
	db *gorm.DB,
	importCtrl interface{ Register(*echo.Echo) },
	recipeCtrl interface {
		List(echo.Context) error
		Get(echo.Context) error
	},
) *echo.Echo {
	importCtrl.Register(e)

	e.GET("/api/recipes", recipeCtrl.List)
	e.GET("/api/recipes/:slug", recipeCtrl.Get)

	e.GET("/health", func(c echo.Context) error {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "down", "error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	return e
}
