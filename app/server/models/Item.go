package models

type Item struct {
	ID uint `gorm:"primaryKey"`

	// (title, artist) 组合唯一，重复创建时返回已有记录
	Title  string `gorm:"column:title;uniqueIndex:idx_item_title_artist"`
	Artist string `gorm:"column:artist;uniqueIndex:idx_item_title_artist"`
}
