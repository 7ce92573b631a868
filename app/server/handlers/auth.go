package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"playlist-catalog/app/server/models"
	"playlist-catalog/app/server/store"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// authUser 从 Bearer 令牌解析出当前用户；返回 401 时附带质询头
func (a *App) authUser(c echo.Context, requireAdminRole bool) (*models.User, error, int) {
	// 提取 token
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		a.challenge(c)
		return nil, fmt.Errorf("missing auth token"), http.StatusUnauthorized
	}

	splits := strings.Split(authHeader, " ")
	if len(splits) != 2 {
		a.challenge(c)
		return nil, fmt.Errorf("invalid auth header: %s", authHeader), http.StatusUnauthorized
	}

	if strings.ToLower(splits[0]) != "bearer" {
		a.challenge(c)
		return nil, fmt.Errorf("unknown auth method: %s", splits[0]), http.StatusUnauthorized
	}

	// 验证 token ，签名、过期与载荷错误都在这里拦下
	session, err := a.jwt.ParseSession(splits[1])
	if err != nil {
		a.challenge(c)
		return nil, fmt.Errorf("failed to parse token: %w", err), http.StatusUnauthorized
	}

	// 令牌主体必须能解析到已知用户
	user, err := store.GetUserByEntityID(c.Request().Context(), a.db, session.Subject)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			a.challenge(c)
			return nil, fmt.Errorf("token subject does not resolve to a user"), http.StatusUnauthorized
		}
		return nil, fmt.Errorf("error query user: %w", err), http.StatusInternalServerError
	}

	// 验证权限
	if requireAdminRole && !user.Admin {
		return nil, fmt.Errorf("requires admin role"), http.StatusForbidden
	}

	return user, nil, http.StatusOK
}

func (a *App) challenge(c echo.Context) {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
}
