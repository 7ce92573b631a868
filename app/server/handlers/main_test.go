package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"playlist-catalog/app/server/config"
	"playlist-catalog/app/server/jwt"
	"playlist-catalog/app/server/models"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Playlist{},
		&models.Item{},
		&models.Image{},
	))

	j, err := jwt.New("test-signature-key")
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Security.AdminUser = "admin"
	cfg.Security.AdminPassword = "password"
	cfg.Security.TokenExpire = 30 * time.Minute

	return NewApp(zap.NewNop(), db, nil, j, cfg)
}

// tokenFor 为已有用户签发一个测试令牌
func tokenFor(t *testing.T, a *App, user *models.User) string {
	t.Helper()

	token, err := a.jwt.SignToken(&jwt.Session{
		Subject: user.EntityID,
		Expires: time.Now().Add(15 * time.Minute).Unix(),
	})
	require.NoError(t, err)
	return token
}

type testRequest struct {
	method  string
	target  string
	body    string
	isForm  bool
	token   string
	pathKey string
	pathVal string
}

func doRequest(a *App, handler echo.HandlerFunc, r testRequest) *httptest.ResponseRecorder {
	e := echo.New()

	req := httptest.NewRequest(r.method, r.target, strings.NewReader(r.body))
	if r.body != "" {
		if r.isForm {
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		} else {
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		}
	}
	if r.token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+r.token)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if r.pathKey != "" {
		c.SetParamNames(r.pathKey)
		c.SetParamValues(r.pathVal)
	}

	_ = handler(c)
	return rec
}
