package sync

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	"playlist-catalog/app/server/models"
	"playlist-catalog/app/server/store"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Export 把数据库内容写回描述文件目录树：每个分类一个目录，
// 每个歌单一个 yaml 文件，已有文件总是被覆盖
func Export(ctx context.Context, db *gorm.DB, l *zap.Logger, root string) error {
	categories, err := store.ListCategories(ctx, db)
	if err != nil {
		return fmt.Errorf("list categories: %w", err)
	}

	exported := make(map[uint]string, len(categories))
	for i := range categories {
		if err := os.MkdirAll(filepath.Join(root, categories[i].Name), 0o755); err != nil {
			return fmt.Errorf("create category dir %q: %w", categories[i].Name, err)
		}
		exported[categories[i].ID] = categories[i].Name
	}

	playlists, err := store.ListPlaylists(ctx, db, -1, 0)
	if err != nil {
		return fmt.Errorf("list playlists: %w", err)
	}

	for i := range playlists {
		if err := exportPlaylist(root, exported, &playlists[i]); err != nil {
			return err
		}
	}

	l.Info("playlist export finished", zap.Int("playlists", len(playlists)))
	return nil
}

func exportPlaylist(root string, exported map[uint]string, playlist *models.Playlist) error {
	// 歌单必须属于一个已导出的分类
	if playlist.CategoryID == nil {
		return fmt.Errorf("playlist %q has no category", playlist.Name)
	}
	categoryName, ok := exported[*playlist.CategoryID]
	if !ok {
		return fmt.Errorf("playlist %q references a category that was not exported", playlist.Name)
	}

	desc := Descriptor{
		Name:       playlist.Name,
		Spotify:    playlist.Spotify,
		Amazon:     playlist.Amazon,
		AppleMusic: playlist.AppleMusic,
	}

	for i := range playlist.Items {
		desc.Items = append(desc.Items, DescriptorItem{
			Title:  playlist.Items[i].Title,
			Artist: playlist.Items[i].Artist,
		})
	}

	if playlist.ReleaseDate != nil {
		desc.ReleaseDate = playlist.ReleaseDate.Format(ReleaseDateLayout)
	}

	// 封面图解码后写到描述文件旁边
	if playlist.Image != nil {
		raw, err := base64.StdEncoding.DecodeString(playlist.Image.Image)
		if err != nil {
			return fmt.Errorf("decode image of playlist %q: %w", playlist.Name, err)
		}
		imagePath := filepath.Join(root, categoryName, playlist.Image.FileName)
		if err := os.WriteFile(imagePath, raw, 0o644); err != nil {
			return fmt.Errorf("write image of playlist %q: %w", playlist.Name, err)
		}
		desc.Image = playlist.Image.FileName
	}

	out, err := yaml.Marshal(&desc)
	if err != nil {
		return fmt.Errorf("serialize playlist %q: %w", playlist.Name, err)
	}

	descPath := filepath.Join(root, categoryName, playlist.Name+".yml")
	if err := os.WriteFile(descPath, out, 0o644); err != nil {
		return fmt.Errorf("write playlist %q: %w", playlist.Name, err)
	}
	return nil
}
