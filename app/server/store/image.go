package store

import (
	"context"
	"fmt"

	"playlist-catalog/app/server/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrCreateImage 以文件名为键，重复导入同名图片时返回已有记录
func GetOrCreateImage(ctx context.Context, db *gorm.DB, fileName, imageBase64, mimeType string) (*models.Image, error) {
	var image models.Image
	if err := db.WithContext(ctx).
		Where(map[string]any{"file_name": fileName}).
		Attrs(&models.Image{
			EntityID: uuid.NewString(),
			Image:    imageBase64,
			MimeType: mimeType,
		}).
		FirstOrCreate(&image).Error; err != nil {
		return nil, fmt.Errorf("get or create image %q: %w", fileName, err)
	}
	return &image, nil
}

func GetImageByEntityID(ctx context.Context, db *gorm.DB, entityID string) (*models.Image, error) {
	var image models.Image
	if err := db.WithContext(ctx).First(&image, "entity_id = ?", entityID).Error; err != nil {
		return nil, err
	}
	return &image, nil
}
