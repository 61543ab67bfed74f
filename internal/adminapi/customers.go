package adminapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tripdeskhq/tripdesk/internal/domain"
	"github.com/tripdeskhq/tripdesk/internal/store"
	"github.com/tripdeskhq/tripdesk/internal/webserver"
)

type customerPayload struct {
	Name    *string   `json:"name" validate:"omitempty,min=1,max=200"`
	Email   *string   `json:"email"`
	Phone   *string   `json:"phone"`
	Address *string   `json:"address"`
	Status  *string   `json:"status"`
	Tags    *[]string `json:"tags"`
	Remark  *string   `json:"remark"`
}

func registerCustomerRoutes() {
	webserver.ApiGET("/crm/customers", listCustomers)
	webserver.ApiGET("/crm/customers/:id", getCustomer)
	webserver.ApiPOST("/crm/customers", createCustomer)
	webserver.ApiPUT("/crm/customers/:id", updateCustomer)
	webserver.ApiDELETE("/crm/customers/:id", deleteCustomer)
}

func listCustomers(c echo.Context) error {
	filter := store.CustomerFilter{
		Query:  strings.TrimSpace(c.QueryParam("q")),
		Status: strings.TrimSpace(c.QueryParam("status")),
		Tag:    strings.TrimSpace(c.QueryParam("tag")),
	}
	opt := parseListOptions(c)
	rows, total := GetStore(c).QueryCustomers(filter, opt)
	return paged(c, rows, total, opt.Page, opt.PerPage)
}

func getCustomer(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid customer ID", nil)
	}
	row, err := GetStore(c).CustomerByID(id)
	if err != nil {
		return failStore(c, err, "Customer")
	}
	return ok(c, row)
}

func createCustomer(c echo.Context) error {
	var payload customerPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse customer", err.Error())
	}
	if payload.Name == nil || strings.TrimSpace(*payload.Name) == "" {
		return fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "Customer name is required", nil)
	}
	row := domain.Customer{
		Name:   strings.TrimSpace(*payload.Name),
		Status: domain.CustomerActive,
	}
	if payload.Email != nil {
		row.Email = strings.TrimSpace(*payload.Email)
	}
	if payload.Phone != nil {
		row.Phone = strings.TrimSpace(*payload.Phone)
	}
	if payload.Address != nil {
		row.Address = *payload.Address
	}
	if payload.Status != nil && *payload.Status != "" {
		row.Status = *payload.Status
	}
	if payload.Tags != nil {
		row.Tags = *payload.Tags
	}
	if payload.Remark != nil {
		row.Remark = *payload.Remark
	}
	return ok(c, GetStore(c).AddCustomer(row))
}

func updateCustomer(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid customer ID", nil)
	}
	var payload customerPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse customer", err.Error())
	}
	row, err := GetStore(c).UpdateCustomer(id, store.CustomerPatch{
		Name:    payload.Name,
		Email:   payload.Email,
		Phone:   payload.Phone,
		Address: payload.Address,
		Status:  payload.Status,
		Tags:    payload.Tags,
		Remark:  payload.Remark,
	})
	if err != nil {
		return failStore(c, err, "Customer")
	}
	return ok(c, row)
}

func deleteCustomer(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid customer ID", nil)
	}
	if err := GetStore(c).DeleteCustomer(id); err != nil {
		return failStore(c, err, "Customer")
	}
	return ok(c, nil)
}
