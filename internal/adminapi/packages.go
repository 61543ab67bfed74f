package adminapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tripdeskhq/tripdesk/internal/domain"
	"github.com/tripdeskhq/tripdesk/internal/store"
	"github.com/tripdeskhq/tripdesk/internal/webserver"
)

type packagePayload struct {
	Name          *string  `json:"name"`
	Destination   *string  `json:"destination"`
	Days          *int     `json:"days"`
	Price         *float64 `json:"price"`
	OriginalPrice *float64 `json:"original_price"`
	Status        *string  `json:"status"`
	Featured      *bool    `json:"featured"`
	Image         *string  `json:"image"`
	Summary       *string  `json:"summary"`
}

func registerPackageRoutes() {
	webserver.ApiGET("/catalog/packages", listPackages)
	webserver.ApiGET("/catalog/packages/:id", getPackage)
	webserver.ApiPOST("/catalog/packages", createPackage)
	webserver.ApiPUT("/catalog/packages/:id", updatePackage)
	webserver.ApiDELETE("/catalog/packages/:id", deletePackage)
}

func listPackages(c echo.Context) error {
	filter := store.PackageFilter{
		Query:  strings.TrimSpace(c.QueryParam("q")),
		Status: strings.TrimSpace(c.QueryParam("status")),
	}
	if raw := c.QueryParam("featured"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			filter.Featured = &v
		}
	}
	opt := parseListOptions(c)
	rows, total := GetStore(c).QueryPackages(filter, opt)
	return paged(c, rows, total, opt.Page, opt.PerPage)
}

func getPackage(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid package ID", nil)
	}
	row, err := GetStore(c).PackageByID(id)
	if err != nil {
		return failStore(c, err, "Package")
	}
	return ok(c, row)
}

func createPackage(c echo.Context) error {
	var payload packagePayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse package", err.Error())
	}
	if payload.Name == nil || strings.TrimSpace(*payload.Name) == "" {
		return fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "Package name is required", nil)
	}
	row := domain.TravelPackage{Name: strings.TrimSpace(*payload.Name)}
	if payload.Destination != nil {
		row.Destination = *payload.Destination
	}
	if payload.Days != nil {
		row.Days = *payload.Days
	}
	if payload.Price != nil {
		row.Price = *payload.Price
	}
	if payload.OriginalPrice != nil {
		row.OriginalPrice = *payload.OriginalPrice
	}
	if payload.Status != nil {
		row.Status = *payload.Status
	}
	if payload.Featured != nil {
		row.Featured = *payload.Featured
	}
	if payload.Image != nil {
		row.Image = *payload.Image
	}
	if payload.Summary != nil {
		row.Summary = *payload.Summary
	}
	return ok(c, GetStore(c).AddPackage(row))
}

func updatePackage(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid package ID", nil)
	}
	var payload packagePayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse package", err.Error())
	}
	row, err := GetStore(c).UpdatePackage(id, store.PackagePatch{
		Name:          payload.Name,
		Destination:   payload.Destination,
		Days:          payload.Days,
		Price:         payload.Price,
		OriginalPrice: payload.OriginalPrice,
		Status:        payload.Status,
		Featured:      payload.Featured,
		Image:         payload.Image,
		Summary:       payload.Summary,
	})
	if err != nil {
		return failStore(c, err, "Package")
	}
	return ok(c, row)
}

func deletePackage(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid package ID", nil)
	}
	if err := GetStore(c).DeletePackage(id); err != nil {
		return failStore(c, err, "Package")
	}
	return ok(c, nil)
}
