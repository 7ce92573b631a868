package inits

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"playlist-catalog/app/server/config"
	"playlist-catalog/app/server/constants"

	"github.com/joho/godotenv"
)

func Config() (cfg *config.Config, err error) {
	// 尝试加载 .env ，不存在时直接使用进程环境变量
	_ = godotenv.Load()

	cfg = &config.Config{}

	// 手动配置映射
	{
		mode, exist := os.LookupEnv("MODE")
		cfg.System.IsProd = exist && strings.HasPrefix(strings.ToLower(mode), "p")
	}

	if listen, exist := os.LookupEnv("LISTEN"); !exist {
		cfg.System.Listen = ":1323" // 默认监听地址
	} else {
		cfg.System.Listen = listen
	}

	if dbconn, exist := os.LookupEnv("DB_CONN"); !exist {
		return nil, fmt.Errorf("DB_CONN environment variable not set")
	} else {
		cfg.System.DBConnectionString = dbconn
	}

	if redisconn, exist := os.LookupEnv("REDIS_CONN"); !exist {
		return nil, fmt.Errorf("REDIS_CONN environment variable not set")
	} else {
		cfg.System.RedisConnectionString = redisconn
	}

	if playlistPath, exist := os.LookupEnv("PLAYLIST_PATH"); !exist {
		return nil, fmt.Errorf("PLAYLIST_PATH environment variable not set")
	} else {
		cfg.System.PlaylistPath = playlistPath
	}

	// CORS 域名可选，为空时不启用
	cfg.System.CORSDomain = os.Getenv("CORS_DOMAIN")

	if sigsk, exist := os.LookupEnv("SIGNATURE_SECRET_KEY"); !exist {
		return nil, fmt.Errorf("SIGNATURE_SECRET_KEY environment variable not set")
	} else {
		cfg.Security.SignatureSecretKey = sigsk
	}

	if adminUser, exist := os.LookupEnv("ADMIN_USER"); !exist {
		cfg.Security.AdminUser = "admin"
	} else {
		cfg.Security.AdminUser = adminUser
	}

	if adminPassword, exist := os.LookupEnv("ADMIN_PASSWORD"); !exist {
		cfg.Security.AdminPassword = "password"
	} else {
		cfg.Security.AdminPassword = adminPassword
	}

	if expireMinutes, exist := os.LookupEnv("TOKEN_EXPIRE_MINUTES"); !exist {
		cfg.Security.TokenExpire = constants.DefaultTokenDuration
	} else if minutes, err := strconv.Atoi(expireMinutes); err != nil || minutes <= 0 {
		return nil, fmt.Errorf("invalid TOKEN_EXPIRE_MINUTES: %s", expireMinutes)
	} else {
		cfg.Security.TokenExpire = time.Duration(minutes) * time.Minute
	}

	return cfg, nil
}
