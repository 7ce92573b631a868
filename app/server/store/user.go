package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"playlist-catalog/app/server/models"

	"github.com/alexedwards/argon2id"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func CreateUser(ctx context.Context, db *gorm.DB, name, password string, admin bool) (*models.User, error) {
	// 用户名全局唯一
	var count int64
	if err := db.WithContext(ctx).Model(&models.User{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("count users by name: %w", err)
	} else if count > 0 {
		return nil, ErrNameConflict
	}

	user := models.User{
		EntityID:  uuid.NewString(),
		Name:      name,
		Admin:     admin,
		CreatedAt: time.Now().UTC(),
	}

	if password != "" {
		hash, err := argon2id.CreateHash(password, argon2id.DefaultParams)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.Password = hash
	}

	if err := db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return &user, nil
}

func GetUserByName(ctx context.Context, db *gorm.DB, name string) (*models.User, error) {
	var user models.User
	if err := db.WithContext(ctx).First(&user, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func GetUserByEntityID(ctx context.Context, db *gorm.DB, entityID string) (*models.User, error) {
	var user models.User
	if err := db.WithContext(ctx).First(&user, "entity_id = ?", entityID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetSuperAdmin 返回最早创建的用户（按惯例 id 为 1）
func GetSuperAdmin(ctx context.Context, db *gorm.DB) (*models.User, error) {
	var user models.User
	if err := db.WithContext(ctx).Order("id ASC").First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func ListUsers(ctx context.Context, db *gorm.DB) ([]models.User, error) {
	var users []models.User
	if err := db.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UserUpdate 部分字段更新：只有非 nil 的字段会写入
type UserUpdate struct {
	Name      *string
	Password  *string
	LastLogin *time.Time
	Admin     *bool
}

func UpdateUser(ctx context.Context, db *gorm.DB, user *models.User, upd UserUpdate) error {
	changed := false

	if upd.Name != nil && *upd.Name != "" {
		// 改名前检查是否与其他用户冲突
		var check models.User
		err := db.WithContext(ctx).First(&check, "name = ?", *upd.Name).Error
		if err == nil && check.ID != user.ID {
			return ErrNameConflict
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("check name: %w", err)
		}
		user.Name = *upd.Name
		changed = true
	}

	if upd.Password != nil && *upd.Password != "" {
		hash, err := argon2id.CreateHash(*upd.Password, argon2id.DefaultParams)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		user.Password = hash
		changed = true
	}

	if upd.LastLogin != nil {
		user.LastLogin = upd.LastLogin
		changed = true
	}

	if upd.Admin != nil {
		user.Admin = *upd.Admin
		changed = true
	}

	// 没有任何字段变化时不产生写入
	if !changed {
		return nil
	}

	if err := db.WithContext(ctx).Save(user).Error; err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

func DeleteUser(ctx context.Context, db *gorm.DB, user *models.User) error {
	// 超级管理员与自删除的保护在接口层处理
	return db.WithContext(ctx).Delete(&models.User{}, user.ID).Error
}

// EnsureSuperAdmin 在空库上创建初始管理员，返回是否发生了创建
func EnsureSuperAdmin(ctx context.Context, db *gorm.DB, name, password string) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&models.User{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	if _, err := CreateUser(ctx, db, name, password, true); err != nil {
		return false, err
	}
	return true, nil
}
