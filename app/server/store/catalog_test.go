package store

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"playlist-catalog/app/server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itemsOf(items ...*models.Item) []models.Item {
	out := make([]models.Item, 0, len(items))
	for _, item := range items {
		out = append(out, *item)
	}
	return out
}

func TestGetOrCreateItem_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	first, err := GetOrCreateItem(ctx, db, "Bohemian Rhapsody", "Queen")
	require.NoError(t, err)

	second, err := GetOrCreateItem(ctx, db, "Bohemian Rhapsody", "Queen")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	// 同名不同歌手是另一条记录
	other, err := GetOrCreateItem(ctx, db, "Bohemian Rhapsody", "Somebody Else")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)

	items, err := ListItems(ctx, db, -1, 0)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestGetOrCreateCategory_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	first, err := GetOrCreateCategory(ctx, db, "Rock")
	require.NoError(t, err)

	second, err := GetOrCreateCategory(ctx, db, "Rock")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	categories, err := ListCategories(ctx, db)
	require.NoError(t, err)
	assert.Len(t, categories, 1)
}

func TestGetOrCreateImage_ByFileName(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	content := base64.StdEncoding.EncodeToString([]byte("png-bytes"))
	first, err := GetOrCreateImage(ctx, db, "cover.png", content, "image/png")
	require.NoError(t, err)
	assert.NotEmpty(t, first.EntityID)

	// 同名图片返回已有记录，内容不被覆盖
	second, err := GetOrCreateImage(ctx, db, "cover.png", "different", "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, content, second.Image)
	assert.Equal(t, "image/png", second.MimeType)

	found, err := GetImageByEntityID(ctx, db, first.EntityID)
	require.NoError(t, err)
	assert.Equal(t, "cover.png", found.FileName)
}

func TestCreatePlaylist_GetOrCreateByName(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	itemA, err := GetOrCreateItem(ctx, db, "Song A", "Artist A")
	require.NoError(t, err)
	itemB, err := GetOrCreateItem(ctx, db, "Song B", "Artist B")
	require.NoError(t, err)

	first, err := CreatePlaylist(ctx, db, &PlaylistInput{
		Name:  "Best of 2020",
		Items: itemsOf(itemA, itemB),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, first.EntityID)
	assert.Len(t, first.Items, 2)

	second, err := CreatePlaylist(ctx, db, &PlaylistInput{
		Name:  "Best of 2020",
		Items: itemsOf(itemA),
	})
	require.NoError(t, err)
	assert.Equal(t, first.EntityID, second.EntityID)
}

func TestCreatePlaylist_ReplacesRelations(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	rock, err := GetOrCreateCategory(ctx, db, "Rock")
	require.NoError(t, err)
	pop, err := GetOrCreateCategory(ctx, db, "Pop")
	require.NoError(t, err)

	itemA, err := GetOrCreateItem(ctx, db, "Song A", "Artist A")
	require.NoError(t, err)
	itemB, err := GetOrCreateItem(ctx, db, "Song B", "Artist B")
	require.NoError(t, err)
	itemC, err := GetOrCreateItem(ctx, db, "Song C", "Artist C")
	require.NoError(t, err)

	releaseDate := time.Date(2020, 5, 1, 12, 30, 0, 0, time.UTC)
	first, err := CreatePlaylist(ctx, db, &PlaylistInput{
		Name:        "Mixtape",
		Spotify:     "https://spotify.example/mixtape",
		ReleaseDate: &releaseDate,
		Category:    rock,
		Items:       itemsOf(itemA, itemB),
	})
	require.NoError(t, err)
	require.NotNil(t, first.Category)
	assert.Equal(t, "Rock", first.Category.Name)

	// 同名重建：关联被整体替换而不是合并
	second, err := CreatePlaylist(ctx, db, &PlaylistInput{
		Name:     "Mixtape",
		Category: pop,
		Items:    itemsOf(itemB, itemC),
	})
	require.NoError(t, err)
	assert.Equal(t, first.EntityID, second.EntityID)
	require.NotNil(t, second.Category)
	assert.Equal(t, "Pop", second.Category.Name)
	assert.Nil(t, second.ReleaseDate)
	assert.Empty(t, second.Spotify)

	titles := make([]string, 0, len(second.Items))
	for _, item := range second.Items {
		titles = append(titles, item.Title)
	}
	assert.ElementsMatch(t, []string{"Song B", "Song C"}, titles)
}

func TestGetOrCreateItem_EmptyArtistIsDistinct(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	seeded, err := GetOrCreateItem(ctx, db, "Song A", "Artist A")
	require.NoError(t, err)

	// 空 artist 不能退化成匹配已有的 (title, artist) 记录
	blank, err := GetOrCreateItem(ctx, db, "Song A", "")
	require.NoError(t, err)
	assert.NotEqual(t, seeded.ID, blank.ID)
	assert.Empty(t, blank.Artist)

	items, err := ListItems(ctx, db, -1, 0)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestCreatePlaylist_EmptyNameIsDistinct(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	item, err := GetOrCreateItem(ctx, db, "Song A", "Artist A")
	require.NoError(t, err)

	mixtape, err := CreatePlaylist(ctx, db, &PlaylistInput{
		Name:  "Mixtape",
		Items: itemsOf(item),
	})
	require.NoError(t, err)

	// 空歌单名不能命中已有歌单并覆盖它的关联
	blank, err := CreatePlaylist(ctx, db, &PlaylistInput{Name: ""})
	require.NoError(t, err)
	assert.NotEqual(t, mixtape.EntityID, blank.EntityID)

	playlists, err := ListPlaylists(ctx, db, -1, 0)
	require.NoError(t, err)
	assert.Len(t, playlists, 2)

	reloaded, err := GetPlaylistByEntityID(ctx, db, mixtape.EntityID)
	require.NoError(t, err)
	assert.Len(t, reloaded.Items, 1)
}
