package sync

import (
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"playlist-catalog/app/server/models"
	"playlist-catalog/app/server/store"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Import 把描述文件目录树同步进数据库：每个子目录是一个分类，
// 目录内的每个 yaml 文件是一个歌单。根目录不存在时直接失败。
// 整个导入不在一个事务里，中途出错时已处理的歌单保持已提交状态
func Import(ctx context.Context, db *gorm.DB, l *zap.Logger, root string) error {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("playlist path %q does not exist", root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return fmt.Errorf("read playlist path: %w", err)
	}

	imported := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		category, err := store.GetOrCreateCategory(ctx, db, entry.Name())
		if err != nil {
			return err
		}

		categoryPath := filepath.Join(root, entry.Name())
		files, err := os.ReadDir(categoryPath)
		if err != nil {
			return fmt.Errorf("read category dir %q: %w", entry.Name(), err)
		}

		for _, file := range files {
			name := file.Name()
			if file.IsDir() || (!strings.HasSuffix(name, ".yml") && !strings.HasSuffix(name, ".yaml")) {
				continue
			}

			if err := importPlaylist(ctx, db, categoryPath, name, category); err != nil {
				return err
			}
			imported++
		}
	}

	l.Info("playlist import finished", zap.Int("playlists", imported))
	return nil
}

func importPlaylist(ctx context.Context, db *gorm.DB, categoryPath, fileName string, category *models.Category) error {
	raw, err := os.ReadFile(filepath.Join(categoryPath, fileName))
	if err != nil {
		return fmt.Errorf("read descriptor %q: %w", fileName, err)
	}

	var desc Descriptor
	if err := yaml.Unmarshal(raw, &desc); err != nil {
		return fmt.Errorf("parse descriptor %q: %w", fileName, err)
	}

	// 歌单名与每首曲目的 title/artist 都是身份字段，缺失视为损坏的描述文件
	if desc.Name == "" {
		return fmt.Errorf("malformed descriptor %q: missing name", fileName)
	}
	for _, item := range desc.Items {
		if item.Title == "" || item.Artist == "" {
			return fmt.Errorf("malformed item in %q: title and artist are required", fileName)
		}
	}

	in := store.PlaylistInput{
		Name:       desc.Name,
		Spotify:    desc.Spotify,
		Amazon:     desc.Amazon,
		AppleMusic: desc.AppleMusic,
		Category:   category,
	}

	if desc.ReleaseDate != "" {
		releaseDate, err := time.Parse(ReleaseDateLayout, desc.ReleaseDate)
		if err != nil {
			return fmt.Errorf("parse release date of %q: %w", fileName, err)
		}
		in.ReleaseDate = &releaseDate
	}

	// 封面图：按文件名引用的同目录文件，base64 编码落库
	if desc.Image != "" {
		imageBytes, err := os.ReadFile(filepath.Join(categoryPath, desc.Image))
		if err != nil {
			return fmt.Errorf("read image %q of %q: %w", desc.Image, fileName, err)
		}

		image, err := store.GetOrCreateImage(ctx, db, desc.Image,
			base64.StdEncoding.EncodeToString(imageBytes), detectMimeType(desc.Image, imageBytes))
		if err != nil {
			return err
		}
		in.Image = image
	}

	for _, item := range desc.Items {
		resolved, err := store.GetOrCreateItem(ctx, db, item.Title, item.Artist)
		if err != nil {
			return err
		}
		in.Items = append(in.Items, *resolved)
	}

	if _, err := store.CreatePlaylist(ctx, db, &in); err != nil {
		return err
	}
	return nil
}

func detectMimeType(fileName string, content []byte) string {
	if mimeType := mime.TypeByExtension(filepath.Ext(fileName)); mimeType != "" {
		return mimeType
	}
	return http.DetectContentType(content)
}
