package store

import (
	"context"
	"fmt"

	"playlist-catalog/app/server/models"

	"gorm.io/gorm"
)

// GetOrCreateItem 以 (title, artist) 为键，重复创建时返回已有记录。
// struct 条件会丢弃零值字段，这里用 map 保证空串也参与匹配
func GetOrCreateItem(ctx context.Context, db *gorm.DB, title, artist string) (*models.Item, error) {
	var item models.Item
	if err := db.WithContext(ctx).
		Where(map[string]any{"title": title, "artist": artist}).
		FirstOrCreate(&item).Error; err != nil {
		return nil, fmt.Errorf("get or create item %q/%q: %w", title, artist, err)
	}
	return &item, nil
}

func ListItems(ctx context.Context, db *gorm.DB, limit, offset int) ([]models.Item, error) {
	query := db.WithContext(ctx).Order("id ASC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var items []models.Item
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
