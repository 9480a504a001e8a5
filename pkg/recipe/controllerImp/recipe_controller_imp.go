package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"cookitsimple/pkg/recipe/repository"
)

type RecipeCtrl struct{ repo repository.RecipeRepository }

func New(repo repository.RecipeRepository) *RecipeCtrl { return &RecipeCtrl{repo} }

func (h *RecipeCtrl) List(c echo.Context) error {
	out, err := h.repo.List(c.QueryParam("category"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *RecipeCtrl) Get(c echo.Context) error {
	rec, err := h.repo.FindBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "recipe not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rec)
}
