package handlers

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"playlist-catalog/app/server/constants"
	"playlist-catalog/app/server/store"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ResetSlot 进程级的单槽重置令牌：同一时间最多只有一个待用令牌，
// 猜错一次就作废换新。低频的运维恢复路径，不追求并发隔离
type ResetSlot struct {
	mu      sync.Mutex
	pending string
}

// Rotate 生成并记住一个新令牌
func (s *ResetSlot) Rotate() (string, error) {
	buf := make([]byte, 64)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate reset token: %w", err)
	}

	token := base64.RawURLEncoding.EncodeToString(buf)

	s.mu.Lock()
	s.pending = token
	s.mu.Unlock()

	return token, nil
}

// Pending 返回当前待用令牌，没有时为空串
func (s *ResetSlot) Pending() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Clear 清空待用令牌
func (s *ResetSlot) Clear() {
	s.mu.Lock()
	s.pending = ""
	s.mu.Unlock()
}

type PasswordChangeRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// ResetMaster 管理员密码的带外恢复流程，无需事先认证。
// 无令牌请求生成一个新令牌并只写入日志；携带正确令牌的请求把
// 超级管理员密码重置为配置的默认值；猜错则旋转令牌并拒绝
func (a *App) ResetMaster(c echo.Context) error {
	rctx := c.Request().Context()

	token := c.QueryParam("token")

	if a.reset.Pending() == "" || token == "" {
		if _, err := a.reset.Rotate(); err != nil {
			a.l.Error("failed to generate reset token", zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
		// 日志是运维拿到令牌的唯一渠道，令牌本身不走响应
		a.l.Warn("ADMIN PASSWORD RESET TOKEN", zap.String("token", a.reset.Pending()))
		return c.JSON(http.StatusOK, &ErrorMessage{
			Message: "A new reset token was generated. Check the logs of this server",
		})
	}

	if token != a.reset.Pending() {
		// 一次猜错就换新令牌，旧令牌随之作废
		if _, err := a.reset.Rotate(); err != nil {
			a.l.Error("failed to generate reset token", zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
		a.l.Warn("ADMIN PASSWORD RESET TOKEN", zap.String("token", a.reset.Pending()))
		return a.erm(c, http.StatusUnauthorized, "Invalid reset token. A new token has been generated")
	}

	admin, err := store.GetSuperAdmin(rctx, a.db)
	if err != nil {
		a.l.Error("failed to get super admin", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	defaultPassword := a.cfg.Security.AdminPassword
	if err := store.UpdateUser(rctx, a.db, admin, store.UserUpdate{Password: &defaultPassword}); err != nil {
		a.l.Error("failed to reset admin password", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	a.reset.Clear()

	return c.JSON(http.StatusOK, &ErrorMessage{
		Message: fmt.Sprintf("Admin password is now set to: '%s' Change this immediately", defaultPassword),
	})
}

// PasswordChange 已认证用户修改密码：本人或管理员代为操作
func (a *App) PasswordChange(c echo.Context) error {
	requestUser, err, statusCode := a.authUser(c, false)
	if err != nil {
		a.l.Error("failed to get user", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req PasswordChangeRequest
	if err = c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	// 非管理员只能改自己的密码
	if req.Name != requestUser.Name && !requestUser.Admin {
		return a.erm(c, http.StatusForbidden, "Operation not permitted")
	}

	if !passwordValid(req.Password) {
		return a.erm(c, http.StatusBadRequest,
			"The password must have at least 8 characters, including a digit, a lowercase, an uppercase and a special character")
	}

	user, err := store.GetUserByName(rctx, a.db, req.Name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.erm(c, http.StatusNotFound, "User not found")
		}
		a.l.Error("failed to get user", zap.String("name", req.Name), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	if err := store.UpdateUser(rctx, a.db, user, store.UserUpdate{Password: &req.Password}); err != nil {
		a.l.Error("failed to update password", zap.String("id", user.EntityID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.NoContent(http.StatusNoContent)
}

// passwordValid 检查密码策略：至少 8 个字符，含数字、小写、大写与特殊字符
func passwordValid(password string) bool {
	// 按字符而不是字节计数
	if utf8.RuneCountInString(password) < constants.PasswordMinLength {
		return false
	}

	var hasDigit, hasLower, hasUpper, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case strings.ContainsRune(constants.PasswordSpecialChars, r):
			hasSpecial = true
		}
	}

	return hasDigit && hasLower && hasUpper && hasSpecial
}
