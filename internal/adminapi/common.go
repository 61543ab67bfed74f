package adminapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"github.com/tripdeskhq/tripdesk/internal/app"
	"github.com/tripdeskhq/tripdesk/internal/store"
	"github.com/tripdeskhq/tripdesk/internal/webserver"
)

type apiError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Detail  interface{} `json:"detail,omitempty"`
}

type apiResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *apiError   `json:"error,omitempty"`
	Total   *int        `json:"total,omitempty"`
	Page    *int        `json:"page,omitempty"`
	PerPage *int        `json:"perPage,omitempty"`
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, apiResponse{Success: true, Data: data})
}

func fail(c echo.Context, status int, code, message string, detail interface{}) error {
	return c.JSON(status, apiResponse{
		Success: false,
		Error:   &apiError{Code: code, Message: message, Detail: detail},
	})
}

func paged(c echo.Context, rows interface{}, total, page, pageSize int) error {
	return c.JSON(http.StatusOK, apiResponse{
		Success: true,
		Data:    rows,
		Total:   &total,
		Page:    &page,
		PerPage: &pageSize,
	})
}

// failStore maps store errors onto the API envelope.
func failStore(c echo.Context, err error, entity string) error {
	switch errors.Cause(err) {
	case store.ErrNotFound:
		return fail(c, http.StatusNotFound, "NOT_FOUND", entity+" not found", nil)
	case store.ErrInvalidTransition:
		return fail(c, http.StatusConflict, "INVALID_TRANSITION", err.Error(), nil)
	case store.ErrInvalidAmount:
		return fail(c, http.StatusBadRequest, "INVALID_AMOUNT", err.Error(), nil)
	case store.ErrSelfDelete:
		return fail(c, http.StatusConflict, "SELF_DELETE", err.Error(), nil)
	case store.ErrUnknownSection:
		return fail(c, http.StatusBadRequest, "UNKNOWN_SECTION", err.Error(), nil)
	default:
		return fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil)
	}
}

// GetAppContext returns the application handle injected by the web server.
func GetAppContext(c echo.Context) app.AppContext {
	return c.Get(webserver.AppContextKey).(app.AppContext)
}

// GetStore returns the domain store for the request.
func GetStore(c echo.Context) *store.Store {
	return GetAppContext(c).Store()
}

func parseIDParam(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// parsePagination accepts both perPage (front-end) and pageSize (legacy).
func parsePagination(c echo.Context) (page, pageSize int) {
	page = 1
	if p, err := strconv.Atoi(c.QueryParam("page")); err == nil && p > 0 {
		page = p
	}
	pageSize = 20
	raw := c.QueryParam("perPage")
	if raw == "" {
		raw = c.QueryParam("pageSize")
	}
	if ps, err := strconv.Atoi(raw); err == nil && ps > 0 && ps <= 500 {
		pageSize = ps
	}
	return page, pageSize
}

// parseListOptions bundles pagination with the sort parameters.
func parseListOptions(c echo.Context) store.ListOptions {
	page, pageSize := parsePagination(c)
	order := strings.ToUpper(strings.TrimSpace(c.QueryParam("order")))
	if order != "ASC" && order != "DESC" {
		order = "DESC"
	}
	return store.ListOptions{
		Page:    page,
		PerPage: pageSize,
		Sort:    strings.TrimSpace(c.QueryParam("sort")),
		Order:   order,
	}
}

type sessionUser struct {
	ID       int64
	Username string
	Level    string
}

// currentUser extracts the signed-in account from the verified token.
func currentUser(c echo.Context) sessionUser {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return sessionUser{}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return sessionUser{}
	}
	return sessionUser{
		ID:       cast.ToInt64(claims["uid"]),
		Username: cast.ToString(claims["usr"]),
		Level:    cast.ToString(claims["lvl"]),
	}
}

// InitRouter registers every admin and public route. Call after webserver.Init.
func InitRouter() {
	registerAuthRoutes()
	registerCustomerRoutes()
	registerBookingRoutes()
	registerRequestRoutes()
	registerPackageRoutes()
	registerPaymentRoutes()
	registerNotificationRoutes()
	registerUserRoutes()
	registerCmsRoutes()
	registerSettingsRoutes()
	registerDashboardRoutes()
	registerReportRoutes()
	registerSiteRoutes()
}
