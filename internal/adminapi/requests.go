package adminapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tripdeskhq/tripdesk/internal/domain"
	"github.com/tripdeskhq/tripdesk/internal/store"
	"github.com/tripdeskhq/tripdesk/internal/webserver"
)

type requestPayload struct {
	Type       *string `json:"type"`
	CustomerID *int64  `json:"customer_id,string"`
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	Country    *string `json:"country"`
	Details    *string `json:"details"`
	Priority   *string `json:"priority"`
	AssignedTo *string `json:"assigned_to"`
}

func registerRequestRoutes() {
	webserver.ApiGET("/crm/requests", listRequests)
	webserver.ApiGET("/crm/requests/:id", getRequest)
	webserver.ApiPOST("/crm/requests", createRequest)
	webserver.ApiPUT("/crm/requests/:id", updateRequest)
	webserver.ApiPUT("/crm/requests/:id/status", setRequestStatus)
	webserver.ApiDELETE("/crm/requests/:id", deleteRequest)
}

func listRequests(c echo.Context) error {
	filter := store.RequestFilter{
		Query:    strings.TrimSpace(c.QueryParam("q")),
		Type:     strings.TrimSpace(c.QueryParam("type")),
		Status:   strings.TrimSpace(c.QueryParam("status")),
		Priority: strings.TrimSpace(c.QueryParam("priority")),
	}
	opt := parseListOptions(c)
	rows, total := GetStore(c).QueryServiceRequests(filter, opt)
	return paged(c, rows, total, opt.Page, opt.PerPage)
}

func getRequest(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid request ID", nil)
	}
	row, err := GetStore(c).ServiceRequestByID(id)
	if err != nil {
		return failStore(c, err, "Service request")
	}
	return ok(c, row)
}

func createRequest(c echo.Context) error {
	var payload requestPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse service request", err.Error())
	}
	if payload.Name == nil || strings.TrimSpace(*payload.Name) == "" {
		return fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "Requester name is required", nil)
	}
	if payload.Type != nil && !domain.ValidRequestType(*payload.Type) {
		return fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown request type", *payload.Type)
	}
	if payload.Priority != nil && !domain.ValidPriority(*payload.Priority) {
		return fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown priority", *payload.Priority)
	}
	row := domain.ServiceRequest{Name: strings.TrimSpace(*payload.Name)}
	if payload.Type != nil {
		row.Type = *payload.Type
	}
	if payload.CustomerID != nil {
		row.CustomerID = *payload.CustomerID
	}
	if payload.Email != nil {
		row.Email = strings.TrimSpace(*payload.Email)
	}
	if payload.Phone != nil {
		row.Phone = strings.TrimSpace(*payload.Phone)
	}
	if payload.Country != nil {
		row.Country = *payload.Country
	}
	if payload.Details != nil {
		row.Details = *payload.Details
	}
	if payload.Priority != nil {
		row.Priority = *payload.Priority
	}
	if payload.AssignedTo != nil {
		row.AssignedTo = *payload.AssignedTo
	}
	return ok(c, GetStore(c).AddServiceRequest(row))
}

func updateRequest(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid request ID", nil)
	}
	var payload requestPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse service request", err.Error())
	}
	if payload.Priority != nil && !domain.ValidPriority(*payload.Priority) {
		return fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown priority", *payload.Priority)
	}
	row, err := GetStore(c).UpdateServiceRequest(id, store.RequestPatch{
		Name:       payload.Name,
		Email:      payload.Email,
		Phone:      payload.Phone,
		Country:    payload.Country,
		Details:    payload.Details,
		Priority:   payload.Priority,
		AssignedTo: payload.AssignedTo,
	})
	if err != nil {
		return failStore(c, err, "Service request")
	}
	return ok(c, row)
}

func setRequestStatus(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid request ID", nil)
	}
	var payload statusPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse status", err.Error())
	}
	if !domain.ValidRequestStatus(payload.Status) {
		return fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown request status", payload.Status)
	}
	row, err := GetStore(c).SetRequestStatus(id, payload.Status)
	if err != nil {
		return failStore(c, err, "Service request")
	}
	return ok(c, row)
}

func deleteRequest(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid request ID", nil)
	}
	if err := GetStore(c).DeleteServiceRequest(id); err != nil {
		return failStore(c, err, "Service request")
	}
	return ok(c, nil)
}
