package adminapi

import (
	"github.com/labstack/echo/v4"

	"github.com/tripdeskhq/tripdesk/internal/webserver"
)

func registerDashboardRoutes() {
	webserver.ApiGET("/dashboard/stats", getDashboardStats)
}

func getDashboardStats(c echo.Context) error {
	return ok(c, GetStore(c).Stats())
}
