package handlers

import (
	"net/http"

	"playlist-catalog/app/server/store"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (a *App) TrackList(c echo.Context) error {
	rctx := c.Request().Context()

	limit, offset := parsePagination(c.QueryParam("page"), c.QueryParam("limit"))
	items, err := store.ListItems(rctx, a.db, limit, offset)
	if err != nil {
		a.l.Error("failed to get track list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	resItems := []ItemResponse{}
	for i := range items {
		resItems = append(resItems, *mapItem(&items[i]))
	}

	return c.JSON(http.StatusOK, resItems)
}
