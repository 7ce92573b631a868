package store

import (
	"context"
	"fmt"
	"time"

	"playlist-catalog/app/server/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlaylistInput 创建（或重建）歌单时的完整载荷
type PlaylistInput struct {
	Name        string
	Spotify     string
	Amazon      string
	AppleMusic  string
	ReleaseDate *time.Time
	Category    *models.Category
	Image       *models.Image
	Items       []models.Item
}

// CreatePlaylist 以歌单名为键 get-or-create ；无论新建还是已存在，
// 曲目、分类、封面与发布日期都会被载荷完整覆盖（last-write-wins）
func CreatePlaylist(ctx context.Context, db *gorm.DB, in *PlaylistInput) (*models.Playlist, error) {
	var playlist models.Playlist

	if err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// map 条件：空歌单名是自己的键，不退化成匹配任意一行
		if err := tx.
			Where(map[string]any{"name": in.Name}).
			Attrs(&models.Playlist{EntityID: uuid.NewString()}).
			FirstOrCreate(&playlist).Error; err != nil {
			return fmt.Errorf("get or create playlist %q: %w", in.Name, err)
		}

		// 覆盖所有可选字段与关联
		playlist.Spotify = in.Spotify
		playlist.Amazon = in.Amazon
		playlist.AppleMusic = in.AppleMusic
		playlist.ReleaseDate = in.ReleaseDate

		playlist.CategoryID = nil
		if in.Category != nil {
			playlist.CategoryID = &in.Category.ID
		}

		playlist.ImageID = nil
		if in.Image != nil {
			playlist.ImageID = &in.Image.ID
		}

		if err := tx.Save(&playlist).Error; err != nil {
			return fmt.Errorf("save playlist %q: %w", in.Name, err)
		}

		// 整体替换曲目关联，不做合并
		items := make([]*models.Item, 0, len(in.Items))
		for i := range in.Items {
			items = append(items, &in.Items[i])
		}
		if err := tx.Model(&playlist).Association("Items").Replace(items); err != nil {
			return fmt.Errorf("replace playlist items %q: %w", in.Name, err)
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return GetPlaylistByEntityID(ctx, db, playlist.EntityID)
}

func GetPlaylistByEntityID(ctx context.Context, db *gorm.DB, entityID string) (*models.Playlist, error) {
	var playlist models.Playlist
	if err := db.WithContext(ctx).
		Preload("Items").
		Preload("Category").
		Preload("Image").
		First(&playlist, "entity_id = ?", entityID).Error; err != nil {
		return nil, err
	}
	return &playlist, nil
}

func ListPlaylists(ctx context.Context, db *gorm.DB, limit, offset int) ([]models.Playlist, error) {
	query := db.WithContext(ctx).
		Preload("Items").
		Preload("Category").
		Preload("Image").
		Order("id ASC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var playlists []models.Playlist
	if err := query.Find(&playlists).Error; err != nil {
		return nil, err
	}
	return playlists, nil
}
