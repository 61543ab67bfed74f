package adminapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tripdeskhq/tripdesk/internal/domain"
	"github.com/tripdeskhq/tripdesk/internal/store"
	"github.com/tripdeskhq/tripdesk/internal/webserver"
)

type adminUserPayload struct {
	Realname    *string   `json:"realname"`
	Username    *string   `json:"username"`
	Email       *string   `json:"email"`
	Role        *string   `json:"role"`
	Permissions *[]string `json:"permissions"`
	Status      *string   `json:"status"`
}

func registerUserRoutes() {
	webserver.ApiGET("/system/users", listAdminUsers)
	webserver.ApiGET("/system/users/:id", getAdminUser)
	webserver.ApiPOST("/system/users", createAdminUser)
	webserver.ApiPUT("/system/users/:id", updateAdminUser)
	webserver.ApiDELETE("/system/users/:id", deleteAdminUser)
}

func listAdminUsers(c echo.Context) error {
	return ok(c, GetStore(c).AdminUsers())
}

func getAdminUser(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID", nil)
	}
	row, err := GetStore(c).AdminUserByID(id)
	if err != nil {
		return failStore(c, err, "User")
	}
	return ok(c, row)
}

func createAdminUser(c echo.Context) error {
	var payload adminUserPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse user", err.Error())
	}
	if payload.Username == nil || strings.TrimSpace(*payload.Username) == "" {
		return fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "Username is required", nil)
	}
	if _, exists := GetStore(c).FindAdminByUsername(*payload.Username); exists {
		return fail(c, http.StatusConflict, "USERNAME_TAKEN", "Username already exists", *payload.Username)
	}
	if payload.Role != nil && !domain.ValidRole(*payload.Role) {
		return fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown role", *payload.Role)
	}
	row := domain.AdminUser{
		Username: strings.TrimSpace(*payload.Username),
		Role:     domain.RoleAgent,
		Status:   domain.UserActive,
	}
	if payload.Realname != nil {
		row.Realname = *payload.Realname
	}
	if payload.Email != nil {
		row.Email = strings.TrimSpace(*payload.Email)
	}
	if payload.Role != nil {
		row.Role = *payload.Role
	}
	if payload.Permissions != nil {
		row.Permissions = *payload.Permissions
	}
	if payload.Status != nil && *payload.Status != "" {
		row.Status = *payload.Status
	}
	return ok(c, GetStore(c).AddAdminUser(row))
}

func updateAdminUser(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID", nil)
	}
	var payload adminUserPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse user", err.Error())
	}
	if payload.Role != nil && !domain.ValidRole(*payload.Role) {
		return fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown role", *payload.Role)
	}
	row, err := GetStore(c).UpdateAdminUser(id, store.AdminUserPatch{
		Realname:    payload.Realname,
		Email:       payload.Email,
		Role:        payload.Role,
		Permissions: payload.Permissions,
		Status:      payload.Status,
	})
	if err != nil {
		return failStore(c, err, "User")
	}
	return ok(c, row)
}

// deleteAdminUser refuses to remove the signed-in account.
func deleteAdminUser(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID", nil)
	}
	sess := currentUser(c)
	if err := GetStore(c).DeleteAdminUser(id, sess.ID); err != nil {
		return failStore(c, err, "User")
	}
	return ok(c, nil)
}
