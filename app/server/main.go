package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"playlist-catalog/app/server/handlers"
	"playlist-catalog/app/server/inits"
	"playlist-catalog/app/server/jwt"
	"playlist-catalog/app/server/sync"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// 初始化配置
	cfg, err := inits.Config()
	if err != nil {
		log.Fatal(fmt.Errorf("error loading config: %w", err))
	}

	// 初始化日志
	l, err := inits.Logger(!cfg.System.IsProd)
	if err != nil {
		log.Fatal(fmt.Errorf("error initializing logger: %w", err))
	}

	// 切换日志系统
	l.Debug("logger initialized")

	// 初始化数据库连接
	db, err := inits.DB(cfg.System.DBConnectionString, cfg.Security.AdminUser, cfg.Security.AdminPassword)
	if err != nil {
		l.Fatal("error initializing DB connection", zap.Error(err))
	}

	// 初始化 redis 连接
	rdb, err := inits.Redis(cfg.System.RedisConnectionString)
	if err != nil {
		l.Fatal("error initializing Redis connection", zap.Error(err))
	}

	// 初始化 JWT
	j, err := jwt.New(cfg.Security.SignatureSecretKey)
	if err != nil {
		l.Fatal("error initializing JWT", zap.Error(err))
	}

	// 启动监听前先导入描述文件目录树，导入失败直接终止
	if err := sync.Import(context.Background(), db, l, cfg.System.PlaylistPath); err != nil {
		l.Fatal("error importing playlists", zap.Error(err))
	}

	// 准备 handler app
	handlerApp := handlers.NewApp(l, db, rdb, j, cfg)

	// 准备 echo 服务
	e := echo.New()
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			l.Info("request",
				zap.String("URI", v.URI),
				zap.Int("status", v.Status),
			)

			return nil
		},
	}))
	e.Use(middleware.Recover())

	if cfg.System.CORSDomain != "" {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: []string{
				"http://" + cfg.System.CORSDomain,
				"https://" + cfg.System.CORSDomain,
			},
			AllowMethods:     []string{echo.GET, echo.POST, echo.PUT, echo.DELETE},
			AllowCredentials: true,
		}))
	}

	// 绑定路由
	e.GET("/healthcheck", handlerApp.HealthCheck)

	e.POST("/login", handlerApp.Login)

	e.GET("/admin/user", handlerApp.UserList)
	e.GET("/admin/user/current", handlerApp.UserGetCurrent)
	e.GET("/admin/user/:id", handlerApp.UserGet)
	e.POST("/admin/user", handlerApp.UserCreate)
	e.PUT("/admin/user/:id", handlerApp.UserUpdate)
	e.DELETE("/admin/user/:id", handlerApp.UserDelete)
	e.GET("/admin/reset/master", handlerApp.ResetMaster)
	e.POST("/admin/reset", handlerApp.PasswordChange)

	e.GET("/v1/category", handlerApp.CategoryList)
	e.GET("/v1/category/:name", handlerApp.CategoryGet)
	e.GET("/v1/playlist", handlerApp.PlaylistList)
	e.GET("/v1/playlist/:id", handlerApp.PlaylistGet)
	e.GET("/v1/playlist/:id/tracks", handlerApp.PlaylistTracks)
	e.GET("/v1/tracks", handlerApp.TrackList)
	e.GET("/v1/images/:id", handlerApp.ImageGet)

	e.GET("/versions", handlerApp.VersionList)
	e.GET("/version", handlerApp.VersionLatest)

	// 启动 echo 服务，收到退出信号后先停监听再导出
	go func() {
		if err := e.Start(cfg.System.Listen); err != nil && err != http.ErrServerClosed {
			l.Fatal("shutting down the server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		l.Error("error shutting down the server", zap.Error(err))
	}

	// 监听停止后把数据库内容写回描述文件目录树
	if err := sync.Export(context.Background(), db, l, cfg.System.PlaylistPath); err != nil {
		l.Fatal("error exporting playlists", zap.Error(err))
	}
}
