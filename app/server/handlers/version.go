package handlers

import (
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"
)

// 每个 API 版本对应一条变更记录
var versionChangelogs = map[string]string{
	"v1": "Initial Version",
}

func listVersions() []VersionResponse {
	versions := make([]VersionResponse, 0, len(versionChangelogs))
	for version, changelog := range versionChangelogs {
		versions = append(versions, VersionResponse{
			Version:   version,
			Changelog: changelog,
		})
	}
	sort.Slice(versions, func(i, j int) bool {
		return versions[i].Version < versions[j].Version
	})
	return versions
}

func (a *App) VersionList(c echo.Context) error {
	return c.JSON(http.StatusOK, listVersions())
}

// VersionLatest 返回字典序最小的版本号作为 "latest" 。
// 注意对 v1/v10/v2 这类版本串，字典序并不等于发布顺序
func (a *App) VersionLatest(c echo.Context) error {
	versions := listVersions()
	if len(versions) == 0 {
		return a.er(c, http.StatusNotFound)
	}

	return c.JSON(http.StatusOK, versions[0].Version)
}
