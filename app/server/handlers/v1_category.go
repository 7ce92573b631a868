package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"playlist-catalog/app/server/store"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (a *App) CategoryList(c echo.Context) error {
	rctx := c.Request().Context()

	categories, err := store.ListCategories(rctx, a.db)
	if err != nil {
		a.l.Error("failed to get category list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	resCategories := []CategoryResponse{}
	for i := range categories {
		resCategories = append(resCategories, *mapCategory(&categories[i]))
	}

	return c.JSON(http.StatusOK, resCategories)
}

func (a *App) CategoryGet(c echo.Context) error {
	rctx := c.Request().Context()

	name := c.Param("name")
	category, err := store.GetCategoryByName(rctx, a.db, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.erm(c, http.StatusNotFound, fmt.Sprintf("No category found with name %s", name))
		}
		a.l.Error("failed to get category", zap.String("name", name), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, mapCategory(category))
}
