package handlers

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"playlist-catalog/app/server/constants"
	"playlist-catalog/app/server/models"
	"playlist-catalog/app/server/store"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// getImage 以 entity id 取图，Redis 作为旁路缓存
func (a *App) getImage(c echo.Context, entityID string) (*models.Image, error, int) {
	rctx := c.Request().Context()

	var image models.Image

	// 查询缓存
	cacheKey := fmt.Sprintf(constants.CacheKeyImageInfo, entityID)
	if cacheBytes, err := a.rdb.Get(rctx, cacheKey).Bytes(); err != nil {
		if !errors.Is(err, redis.Nil) {
			a.l.Error("failed to query cache for image info", zap.String("id", entityID), zap.Error(err))
		}
	} else if err = json.Unmarshal(cacheBytes, &image); err != nil {
		a.l.Error("failed to unmarshal image info", zap.String("id", entityID), zap.Error(err))
		// 可能是无效的缓存，清理掉
		a.rdb.Del(rctx, cacheKey)
	} else {
		// 成功拉取到并格式化
		return &image, nil, http.StatusOK
	}

	// 查询数据库
	imagePtr, err := store.GetImageByEntityID(rctx, a.db, entityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("no such image"), http.StatusNotFound
		}
		return nil, fmt.Errorf("error query image: %w", err), http.StatusInternalServerError
	}

	// 格式化并加入缓存，方便下一次查询
	if cacheBytes, err := json.Marshal(imagePtr); err != nil {
		a.l.Error("failed to marshal image info", zap.String("id", entityID), zap.Error(err))
	} else {
		a.rdb.Set(rctx, cacheKey, cacheBytes, constants.CacheExpireImageInfo)
	}

	return imagePtr, nil, http.StatusOK
}

func (a *App) ImageGet(c echo.Context) error {
	id := c.Param("id")

	image, err, statusCode := a.getImage(c, id)
	if err != nil {
		if statusCode == http.StatusNotFound {
			return a.erm(c, http.StatusNotFound, fmt.Sprintf("No image found with id %s", id))
		}
		a.l.Error("failed to get image", zap.String("id", id), zap.Error(err))
		return a.er(c, statusCode)
	}

	// 解码后按原始 MIME 类型返回
	raw, decodeErr := base64.StdEncoding.DecodeString(image.Image)
	if decodeErr != nil {
		a.l.Error("failed to decode image content", zap.String("id", id), zap.Error(decodeErr))
		return a.er(c, http.StatusInternalServerError)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%s", image.FileName))
	return c.Blob(http.StatusOK, image.MimeType, raw)
}
