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

func (a *App) PlaylistList(c echo.Context) error {
	rctx := c.Request().Context()

	limit, offset := parsePagination(c.QueryParam("page"), c.QueryParam("limit"))
	playlists, err := store.ListPlaylists(rctx, a.db, limit, offset)
	if err != nil {
		a.l.Error("failed to get playlist list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	resPlaylists := []PlaylistResponse{}
	for i := range playlists {
		resPlaylists = append(resPlaylists, *mapPlaylist(&playlists[i]))
	}

	return c.JSON(http.StatusOK, resPlaylists)
}

func (a *App) PlaylistGet(c echo.Context) error {
	rctx := c.Request().Context()

	id := c.Param("id")
	playlist, err := store.GetPlaylistByEntityID(rctx, a.db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.erm(c, http.StatusNotFound, fmt.Sprintf("No playlist found with id %s", id))
		}
		a.l.Error("failed to get playlist", zap.String("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, mapPlaylist(playlist))
}

func (a *App) PlaylistTracks(c echo.Context) error {
	rctx := c.Request().Context()

	id := c.Param("id")
	playlist, err := store.GetPlaylistByEntityID(rctx, a.db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.erm(c, http.StatusNotFound, fmt.Sprintf("No playlist found with id %s", id))
		}
		a.l.Error("failed to get playlist", zap.String("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	resItems := []ItemResponse{}
	for i := range playlist.Items {
		resItems = append(resItems, *mapItem(&playlist.Items[i]))
	}

	return c.JSON(http.StatusOK, resItems)
}
