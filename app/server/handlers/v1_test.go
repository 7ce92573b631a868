package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"playlist-catalog/app/server/models"
	"playlist-catalog/app/server/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCatalog(t *testing.T, a *App) *models.Playlist {
	t.Helper()
	ctx := context.Background()

	category, err := store.GetOrCreateCategory(ctx, a.db, "Rock")
	require.NoError(t, err)

	itemA, err := store.GetOrCreateItem(ctx, a.db, "Song A", "Artist A")
	require.NoError(t, err)
	itemB, err := store.GetOrCreateItem(ctx, a.db, "Song B", "Artist B")
	require.NoError(t, err)

	playlist, err := store.CreatePlaylist(ctx, a.db, &store.PlaylistInput{
		Name:     "Mixtape",
		Spotify:  "https://spotify.example/mixtape",
		Category: category,
		Items:    []models.Item{*itemA, *itemB},
	})
	require.NoError(t, err)
	return playlist
}

func TestCategoryEndpoints(t *testing.T) {
	a := newTestApp(t)
	seedCatalog(t, a)

	rec := doRequest(a, a.CategoryList, testRequest{method: http.MethodGet, target: "/v1/category"})
	require.Equal(t, http.StatusOK, rec.Code)

	var categories []CategoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categories))
	require.Len(t, categories, 1)
	assert.Equal(t, "Rock", categories[0].Name)
	assert.Len(t, categories[0].Playlists, 1)

	rec = doRequest(a, a.CategoryGet, testRequest{
		method:  http.MethodGet,
		target:  "/v1/category/Jazz",
		pathKey: "name",
		pathVal: "Jazz",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPlaylistEndpoints(t *testing.T) {
	a := newTestApp(t)
	playlist := seedCatalog(t, a)

	rec := doRequest(a, a.PlaylistList, testRequest{method: http.MethodGet, target: "/v1/playlist"})
	require.Equal(t, http.StatusOK, rec.Code)

	var playlists []PlaylistResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &playlists))
	require.Len(t, playlists, 1)
	assert.Equal(t, playlist.EntityID, playlists[0].EntityID)
	assert.Equal(t, "Rock", playlists[0].Category)
	assert.Len(t, playlists[0].Items, 2)

	rec = doRequest(a, a.PlaylistGet, testRequest{
		method:  http.MethodGet,
		target:  "/v1/playlist/" + playlist.EntityID,
		pathKey: "id",
		pathVal: playlist.EntityID,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(a, a.PlaylistTracks, testRequest{
		method:  http.MethodGet,
		target:  "/v1/playlist/" + playlist.EntityID + "/tracks",
		pathKey: "id",
		pathVal: playlist.EntityID,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var items []ItemResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	assert.Len(t, items, 2)

	rec = doRequest(a, a.PlaylistGet, testRequest{
		method:  http.MethodGet,
		target:  "/v1/playlist/unknown",
		pathKey: "id",
		pathVal: "no-such-entity",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTrackList(t *testing.T) {
	a := newTestApp(t)
	seedCatalog(t, a)

	rec := doRequest(a, a.TrackList, testRequest{method: http.MethodGet, target: "/v1/tracks"})
	require.Equal(t, http.StatusOK, rec.Code)

	var items []ItemResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	assert.Len(t, items, 2)

	// 分页参数生效
	rec = doRequest(a, a.TrackList, testRequest{method: http.MethodGet, target: "/v1/tracks?page=2&limit=1"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	assert.Len(t, items, 1)
	assert.Equal(t, "Song B", items[0].Title)
}

func TestVersionEndpoints(t *testing.T) {
	a := newTestApp(t)

	rec := doRequest(a, a.VersionList, testRequest{method: http.MethodGet, target: "/versions"})
	require.Equal(t, http.StatusOK, rec.Code)

	var versions []VersionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &versions))
	require.Len(t, versions, 1)
	assert.Equal(t, "v1", versions[0].Version)
	assert.Equal(t, "Initial Version", versions[0].Changelog)

	rec = doRequest(a, a.VersionLatest, testRequest{method: http.MethodGet, target: "/version"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `"v1"`, rec.Body.String())
}
