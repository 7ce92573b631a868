package handlers

import (
	"time"

	"playlist-catalog/app/server/models"
)

// 响应模型与存储模型之间逐字段显式映射，
// 避免把内部字段（主键、密码 hash ）带进序列化结果

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type UserResponse struct {
	EntityID  string     `json:"entity_id"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login"`
	Admin     bool       `json:"admin"`
}

func mapUser(user *models.User) *UserResponse {
	return &UserResponse{
		EntityID:  user.EntityID,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
		LastLogin: user.LastLogin,
		Admin:     user.Admin,
	}
}

type ItemResponse struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
}

func mapItem(item *models.Item) *ItemResponse {
	return &ItemResponse{
		Title:  item.Title,
		Artist: item.Artist,
	}
}

type CategoryResponse struct {
	Name      string   `json:"name"`
	Playlists []string `json:"playlists"` // 歌单的 entity id 列表
}

func mapCategory(category *models.Category) *CategoryResponse {
	playlists := make([]string, 0, len(category.Playlists))
	for i := range category.Playlists {
		playlists = append(playlists, category.Playlists[i].EntityID)
	}
	return &CategoryResponse{
		Name:      category.Name,
		Playlists: playlists,
	}
}

type PlaylistResponse struct {
	EntityID    string         `json:"entity_id"`
	Name        string         `json:"name"`
	Spotify     string         `json:"spotify,omitempty"`
	Amazon      string         `json:"amazon,omitempty"`
	AppleMusic  string         `json:"apple_music,omitempty"`
	ReleaseDate *time.Time     `json:"release_date"`
	Category    string         `json:"category,omitempty"` // 分类名
	Image       string         `json:"image,omitempty"`    // 封面图的 entity id
	Items       []ItemResponse `json:"items"`
}

func mapPlaylist(playlist *models.Playlist) *PlaylistResponse {
	items := make([]ItemResponse, 0, len(playlist.Items))
	for i := range playlist.Items {
		items = append(items, *mapItem(&playlist.Items[i]))
	}

	res := &PlaylistResponse{
		EntityID:    playlist.EntityID,
		Name:        playlist.Name,
		Spotify:     playlist.Spotify,
		Amazon:      playlist.Amazon,
		AppleMusic:  playlist.AppleMusic,
		ReleaseDate: playlist.ReleaseDate,
		Items:       items,
	}
	if playlist.Category != nil {
		res.Category = playlist.Category.Name
	}
	if playlist.Image != nil {
		res.Image = playlist.Image.EntityID
	}
	return res
}

type VersionResponse struct {
	Version   string `json:"version"`
	Changelog string `json:"changelog"`
}
