package handlers

import (
	"errors"
	"net/http"

	"playlist-catalog/app/server/store"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type UserCreateRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type UserUpdateRequest struct {
	Name  *string `json:"name"`
	Admin *bool   `json:"admin"`
}

func (a *App) UserList(c echo.Context) error {
	// 抓取 user 信息（认证）
	_, err, statusCode := a.authUser(c, true)
	if err != nil {
		a.l.Error("failed to get user", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	users, err := store.ListUsers(rctx, a.db)
	if err != nil {
		a.l.Error("failed to get user list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	resUsers := []UserResponse{}
	for i := range users {
		resUsers = append(resUsers, *mapUser(&users[i]))
	}

	return c.JSON(http.StatusOK, resUsers)
}

func (a *App) UserGetCurrent(c echo.Context) error {
	// 任何已认证用户都可以查看自己
	user, err, statusCode := a.authUser(c, false)
	if err != nil {
		a.l.Error("failed to get user", zap.Error(err))
		return a.er(c, statusCode)
	}

	return c.JSON(http.StatusOK, mapUser(user))
}

func (a *App) UserGet(c echo.Context) error {
	// 抓取 user 信息（认证）
	_, err, statusCode := a.authUser(c, true)
	if err != nil {
		a.l.Error("failed to get user", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	user, err := store.GetUserByEntityID(rctx, a.db, c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.erm(c, http.StatusNotFound, "User not found")
		}
		a.l.Error("failed to get user", zap.String("id", c.Param("id")), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, mapUser(user))
}

func (a *App) UserCreate(c echo.Context) error {
	// 抓取 user 信息（认证）
	_, err, statusCode := a.authUser(c, true)
	if err != nil {
		a.l.Error("failed to get user", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req UserCreateRequest
	if err = c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}
	if req.Name == "" {
		return a.er(c, http.StatusBadRequest)
	}

	user, err := store.CreateUser(rctx, a.db, req.Name, req.Password, false)
	if err != nil {
		if errors.Is(err, store.ErrNameConflict) {
			return a.erm(c, http.StatusConflict, "User already exists")
		}
		a.l.Error("failed to create user", zap.String("name", req.Name), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, mapUser(user))
}

func (a *App) UserUpdate(c echo.Context) error {
	// 抓取 user 信息（认证）
	_, err, statusCode := a.authUser(c, true)
	if err != nil {
		a.l.Error("failed to get user", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req UserUpdateRequest
	if err = c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	// 从数据库中获得指定的用户
	user, err := store.GetUserByEntityID(rctx, a.db, c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.erm(c, http.StatusNotFound, "User not found")
		}
		a.l.Error("failed to get user", zap.String("id", c.Param("id")), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 超级管理员不允许被任何更新路径改动
	superAdmin, err := store.GetSuperAdmin(rctx, a.db)
	if err != nil {
		a.l.Error("failed to get super admin", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}
	if user.ID == superAdmin.ID {
		return a.erm(c, http.StatusForbidden, "Operation not permitted")
	}

	if err := store.UpdateUser(rctx, a.db, user, store.UserUpdate{
		Name:  req.Name,
		Admin: req.Admin,
	}); err != nil {
		if errors.Is(err, store.ErrNameConflict) {
			return a.erm(c, http.StatusConflict, "Invalid username")
		}
		a.l.Error("failed to update user", zap.String("id", user.EntityID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, mapUser(user))
}

func (a *App) UserDelete(c echo.Context) error {
	// 抓取 user 信息（认证）
	requestUser, err, statusCode := a.authUser(c, true)
	if err != nil {
		a.l.Error("failed to get user", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	// 自删除保护，与管理员身份无关
	if c.Param("id") == requestUser.EntityID {
		return a.erm(c, http.StatusConflict, "User can not be deleted by same user")
	}

	user, err := store.GetUserByEntityID(rctx, a.db, c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.erm(c, http.StatusNotFound, "User not found")
		}
		a.l.Error("failed to get user", zap.String("id", c.Param("id")), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 超级管理员不可删除
	superAdmin, err := store.GetSuperAdmin(rctx, a.db)
	if err != nil {
		a.l.Error("failed to get super admin", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}
	if user.ID == superAdmin.ID {
		return a.erm(c, http.StatusConflict, "Superadmin can not be deleted")
	}

	if err := store.DeleteUser(rctx, a.db, user); err != nil {
		a.l.Error("failed to delete user", zap.String("id", user.EntityID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.NoContent(http.StatusNoContent)
}
