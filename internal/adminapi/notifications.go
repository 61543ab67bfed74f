package adminapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tripdeskhq/tripdesk/internal/webserver"
)

func registerNotificationRoutes() {
	webserver.ApiGET("/system/notifications", listNotifications)
	webserver.ApiGET("/system/notifications/unread-count", unreadNotificationCount)
	webserver.ApiPUT("/system/notifications/:id/read", markNotificationRead)
	webserver.ApiPUT("/system/notifications/read-all", markAllNotificationsRead)
	webserver.ApiDELETE("/system/notifications/read", clearReadNotifications)
}

func listNotifications(c echo.Context) error {
	unreadOnly, _ := strconv.ParseBool(c.QueryParam("unread"))
	return ok(c, GetStore(c).Notifications(unreadOnly))
}

func unreadNotificationCount(c echo.Context) error {
	return ok(c, map[string]int{"count": GetStore(c).UnreadCount()})
}

func markNotificationRead(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid notification ID", nil)
	}
	if err := GetStore(c).MarkNotificationRead(id); err != nil {
		return failStore(c, err, "Notification")
	}
	return ok(c, nil)
}

func markAllNotificationsRead(c echo.Context) error {
	n := GetStore(c).MarkAllNotificationsRead()
	return ok(c, map[string]int{"marked": n})
}

func clearReadNotifications(c echo.Context) error {
	n := GetStore(c).ClearReadNotifications()
	return ok(c, map[string]int{"cleared": n})
}
