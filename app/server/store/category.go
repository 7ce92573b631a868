package store

import (
	"context"
	"fmt"

	"playlist-catalog/app/server/models"

	"gorm.io/gorm"
)

func GetOrCreateCategory(ctx context.Context, db *gorm.DB, name string) (*models.Category, error) {
	var category models.Category
	if err := db.WithContext(ctx).
		Where(map[string]any{"name": name}).
		FirstOrCreate(&category).Error; err != nil {
		return nil, fmt.Errorf("get or create category %q: %w", name, err)
	}
	return &category, nil
}

func GetCategoryByName(ctx context.Context, db *gorm.DB, name string) (*models.Category, error) {
	var category models.Category
	if err := db.WithContext(ctx).
		Preload("Playlists").
		Preload("Playlists.Items").
		Preload("Playlists.Image").
		First(&category, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func ListCategories(ctx context.Context, db *gorm.DB) ([]models.Category, error) {
	var categories []models.Category
	if err := db.WithContext(ctx).
		Preload("Playlists").
		Preload("Playlists.Items").
		Preload("Playlists.Image").
		Order("id ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
