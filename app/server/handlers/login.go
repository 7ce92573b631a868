package handlers

import (
	"errors"
	"net/http"
	"time"

	"playlist-catalog/app/server/jwt"
	"playlist-catalog/app/server/store"

	"github.com/alexedwards/argon2id"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (a *App) Login(c echo.Context) error {
	rctx := c.Request().Context()

	username := c.FormValue("username")
	password := c.FormValue("password")
	if username == "" {
		return a.erm(c, http.StatusBadRequest, "Incorrect username or password")
	}

	// 空库时透明地创建初始管理员，首次登录即可用配置的凭据进入
	if created, err := store.EnsureSuperAdmin(rctx, a.db, a.cfg.Security.AdminUser, a.cfg.Security.AdminPassword); err != nil {
		a.l.Error("failed to bootstrap admin user", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	} else if created {
		a.l.Info("created initial admin user", zap.String("name", a.cfg.Security.AdminUser))
	}

	user, err := store.GetUserByName(rctx, a.db, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.erm(c, http.StatusBadRequest, "Incorrect username or password")
		}
		a.l.Error("failed to find user", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 没有设置过密码的账户不能通过登录进入
	if user.Password == "" {
		return a.erm(c, http.StatusBadRequest, "Incorrect username or password")
	}

	// 提取密码 hash 并进行校验
	if match, _, err := argon2id.CheckHash(password, user.Password); err != nil {
		a.l.Error("failed to check password", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	} else if !match {
		// 密码不一致
		return a.erm(c, http.StatusBadRequest, "Incorrect username or password")
	}

	// 记录登录时间
	now := time.Now().UTC()
	if err := store.UpdateUser(rctx, a.db, user, store.UserUpdate{LastLogin: &now}); err != nil {
		a.l.Error("failed to update last login", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 签出 JWT
	expires := now.Add(a.cfg.Security.TokenExpire)
	token, err := a.jwt.SignToken(&jwt.Session{
		Subject: user.EntityID,
		Expires: expires.Unix(),
	})
	if err != nil {
		a.l.Error("failed to sign token", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 返回
	return c.JSON(http.StatusOK, &TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
