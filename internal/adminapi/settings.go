package adminapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tripdeskhq/tripdesk/internal/prefs"
	"github.com/tripdeskhq/tripdesk/internal/webserver"
)

type themePayload struct {
	Theme string `json:"theme" validate:"required"`
}

func registerSettingsRoutes() {
	webserver.ApiGET("/system/settings", getSettings)
	webserver.ApiPUT("/system/settings", updateSettings)
	webserver.ApiGET("/system/theme", getTheme)
	webserver.ApiPUT("/system/theme", setTheme)
	webserver.ApiGET("/system/auditlog", getAuditLog)
}

func getSettings(c echo.Context) error {
	return ok(c, GetAppContext(c).Settings().Current())
}

// updateSettings merges the posted keys into the settings document. Unknown
// keys are ignored by the decoder.
func updateSettings(c echo.Context) error {
	fields := map[string]interface{}{}
	if err := c.Bind(&fields); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse settings", err.Error())
	}
	settings, err := GetAppContext(c).Settings().Update(fields)
	if err != nil {
		return failStore(c, err, "Settings")
	}
	return ok(c, settings)
}

// getTheme reads the persisted UI theme, defaulting to light.
func getTheme(c echo.Context) error {
	theme := GetAppContext(c).Prefs().GetString(prefs.KeyTheme)
	if theme == "" {
		theme = "light"
	}
	return ok(c, map[string]string{"theme": theme})
}

func setTheme(c echo.Context) error {
	var payload themePayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse theme", err.Error())
	}
	theme := strings.TrimSpace(payload.Theme)
	if theme != "light" && theme != "dark" {
		return fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "Theme must be light or dark", theme)
	}
	if err := GetAppContext(c).Prefs().SetString(prefs.KeyTheme, theme); err != nil {
		return fail(c, http.StatusInternalServerError, "PREFS_ERROR", "Unable to persist theme", err.Error())
	}
	return ok(c, map[string]string{"theme": theme})
}

func getAuditLog(c echo.Context) error {
	_, pageSize := parsePagination(c)
	return ok(c, GetStore(c).AuditLog(pageSize))
}
