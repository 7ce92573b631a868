package inits

import (
	"context"
	"fmt"

	"playlist-catalog/app/server/models"
	"playlist-catalog/app/server/store"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func DB(conn string, adminUser, adminPassword string) (db *gorm.DB, err error) {
	// 打开连接
	if db, err = gorm.Open(postgres.Open(conn), &gorm.Config{}); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// 迁移
	if err = mig(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// 初始化启动数据
	if err = initData(db, adminUser, adminPassword); err != nil {
		return nil, fmt.Errorf("failed to init data into database: %w", err)
	}

	// 返回
	return db, nil
}

func mig(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Playlist{},
		&models.Item{},
		&models.Image{},
	)
}

func initData(db *gorm.DB, adminUser, adminPassword string) error {
	// 没有任何用户时创建超级管理员，之后的所有启动这里都是空操作
	if _, err := store.EnsureSuperAdmin(context.Background(), db, adminUser, adminPassword); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	return nil
}
