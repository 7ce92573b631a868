package handlers

import (
	"playlist-catalog/app/server/config"
	"playlist-catalog/app/server/jwt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	l     *zap.Logger    // 日志
	db    *gorm.DB       // 数据库
	rdb   *redis.Client  // Redis
	jwt   *jwt.JWT       // JWT ，用于无状态验证
	cfg   *config.Config // 配置，重置流程与令牌有效期需要
	reset *ResetSlot     // 管理员密码重置的单槽令牌
}

func NewApp(l *zap.Logger, db *gorm.DB, rdb *redis.Client, j *jwt.JWT, cfg *config.Config) *App {
	return &App{
		l:     l,
		db:    db,
		rdb:   rdb,
		jwt:   j,
		cfg:   cfg,
		reset: &ResetSlot{},
	}
}
