package models

import "time"

type Playlist struct {
	ID uint `gorm:"primaryKey"`

	// 基础信息
	EntityID string `gorm:"column:entity_id;uniqueIndex"` // 对外暴露的不透明标识
	Name     string `gorm:"column:name;uniqueIndex"`      // 歌单名，同时是描述文件的文件名

	// 外部平台链接，均可为空
	Spotify    string `gorm:"column:spotify"`
	Amazon     string `gorm:"column:amazon"`
	AppleMusic string `gorm:"column:apple_music"`

	ReleaseDate *time.Time `gorm:"column:release_date"` // 发布日期，可为空

	CategoryID *uint `gorm:"column:category_id;index"` // 所属分类 ID ，可为空
	ImageID    *uint `gorm:"column:image_id;index"`    // 封面图 ID ，可为空

	// 连接模型时使用
	Category *Category `gorm:"foreignKey:CategoryID"`
	Image    *Image    `gorm:"foreignKey:ImageID"`
	Items    []Item    `gorm:"many2many:playlist_item_link"` // 多对多：曲目可被多个歌单共享
}
