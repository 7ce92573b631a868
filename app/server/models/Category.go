package models

type Category struct {
	ID uint `gorm:"primaryKey"`

	Name string `gorm:"column:name;uniqueIndex"` // 分类名，对应描述文件树中的目录名

	// 连接模型时使用
	Playlists []Playlist `gorm:"foreignKey:CategoryID"` // 属于此分类的歌单
}
