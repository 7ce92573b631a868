package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey"`

	// 基础信息
	EntityID string `gorm:"column:entity_id;uniqueIndex"` // 对外暴露的不透明标识，与内部主键区分
	Name     string `gorm:"column:name;uniqueIndex"`      // 用户名，全局唯一
	Admin    bool   `gorm:"column:admin"`                 // 是否为管理员：管理员可以管理用户，非管理员只能操作自己

	// 登录与授权认证相关
	Password  string     `gorm:"column:password"`   // 密码，使用 argon2id 储存
	CreatedAt time.Time  `gorm:"column:created_at"` // 创建时间
	LastLogin *time.Time `gorm:"column:last_login"` // 最近一次登录，从未登录过时为 NULL
}
