package models

type Image struct {
	ID uint `gorm:"primaryKey"`

	EntityID string `gorm:"column:entity_id;uniqueIndex"`  // 对外暴露的不透明标识，同时作为取图的键
	Image    string `gorm:"column:image_base64;unique"`    // 图片内容，base64 编码落库
	FileName string `gorm:"column:file_name;uniqueIndex"`  // 原始文件名，导出时写回描述文件旁边
	MimeType string `gorm:"column:mime_type"`              // MIME 类型，响应时使用
}
