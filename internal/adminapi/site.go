package adminapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/tripdeskhq/tripdesk/internal/domain"
	"github.com/tripdeskhq/tripdesk/internal/store"
	"github.com/tripdeskhq/tripdesk/internal/webserver"
)

type contactPayload struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message" validate:"required"`
}

// registerSiteRoutes registers the unauthenticated marketing-site endpoints.
func registerSiteRoutes() {
	webserver.PubGET("/packages", sitePackages)
	webserver.PubGET("/cms", siteContent)
	webserver.PubPOST("/bookings", siteCreateBooking)
	webserver.PubGET("/my-bookings", siteMyBookings)
	webserver.PubPOST("/requests", siteCreateRequest)
	webserver.PubPOST("/contact", siteContact)
}

// sitePackages lists the active catalog only; drafts stay back-office.
func sitePackages(c echo.Context) error {
	return ok(c, GetStore(c).ActivePackages())
}

func siteContent(c echo.Context) error {
	return ok(c, GetStore(c).CMS())
}

// siteCreateBooking takes a public booking and remembers it in the local
// my-bookings list so the visitor can find it again.
func siteCreateBooking(c echo.Context) error {
	var payload bookingPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse booking", err.Error())
	}
	if payload.CustomerName == nil || strings.TrimSpace(*payload.CustomerName) == "" {
		return fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "Customer name is required", nil)
	}
	if payload.Type != nil && !domain.ValidBookingType(*payload.Type) {
		return fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown booking type", *payload.Type)
	}
	row := domain.Booking{CustomerName: strings.TrimSpace(*payload.CustomerName)}
	if payload.Type != nil {
		row.Type = *payload.Type
	}
	if payload.CustomerEmail != nil {
		row.CustomerEmail = strings.TrimSpace(*payload.CustomerEmail)
	}
	if payload.PackageID != nil {
		row.PackageID = *payload.PackageID
	}
	if payload.Destination != nil {
		row.Destination = *payload.Destination
	}
	if payload.TravelDate != nil {
		normalized, err := store.NormalizeDate(*payload.TravelDate)
		if err != nil {
			return fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unparseable travel date", *payload.TravelDate)
		}
		row.TravelDate = normalized
	}
	if payload.Amount != nil {
		row.Amount = *payload.Amount
	}
	created := GetStore(c).AddBooking(row)
	if err := GetAppContext(c).Prefs().AppendMyBooking(created); err != nil {
		zap.S().Errorf("remember booking %s: %s", created.Ref, err)
	}
	return ok(c, created)
}

func siteMyBookings(c echo.Context) error {
	rows, err := GetAppContext(c).Prefs().MyBookings()
	if err != nil {
		return fail(c, http.StatusInternalServerError, "PREFS_ERROR", "Unable to load bookings", err.Error())
	}
	return ok(c, rows)
}

func siteCreateRequest(c echo.Context) error {
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
	row := domain.ServiceRequest{Name: strings.TrimSpace(*payload.Name)}
	if payload.Type != nil {
		row.Type = *payload.Type
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
	return ok(c, GetStore(c).AddServiceRequest(row))
}

// siteContact records a contact-form message on the activity trail.
func siteContact(c echo.Context) error {
	var payload contactPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse message", err.Error())
	}
	payload.Name = strings.TrimSpace(payload.Name)
	if payload.Name == "" || strings.TrimSpace(payload.Message) == "" {
		return fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "Name and message are required", nil)
	}
	GetAppContext(c).Bus().Publish(domain.EventContactMessage, domain.Event{
		Topic:    domain.EventContactMessage,
		Actor:    payload.Name,
		Summary:  payload.Name + ": " + payload.Message,
		SourceIP: c.RealIP(),
		At:       time.Now(),
	})
	return ok(c, nil)
}
