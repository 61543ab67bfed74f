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

type bookingPayload struct {
	Type          *string  `json:"type"`
	CustomerID    *int64   `json:"customer_id,string"`
	CustomerName  *string  `json:"customer_name"`
	CustomerEmail *string  `json:"customer_email"`
	PackageID     *int64   `json:"package_id,string"`
	Destination   *string  `json:"destination"`
	TravelDate    *string  `json:"travel_date"`
	Amount        *float64 `json:"amount"`
	PaymentStatus *string  `json:"payment_status"`
	Remark        *string  `json:"remark"`
}

type statusPayload struct {
	Status string `json:"status" validate:"required"`
}

func registerBookingRoutes() {
	webserver.ApiGET("/booking/bookings", listBookings)
	webserver.ApiGET("/booking/bookings/:id", getBooking)
	webserver.ApiPOST("/booking/bookings", createBooking)
	webserver.ApiPUT("/booking/bookings/:id", updateBooking)
	webserver.ApiPUT("/booking/bookings/:id/status", setBookingStatus)
	webserver.ApiDELETE("/booking/bookings/:id", deleteBooking)
}

func listBookings(c echo.Context) error {
	filter := store.BookingFilter{
		Query:         strings.TrimSpace(c.QueryParam("q")),
		Type:          strings.TrimSpace(c.QueryParam("type")),
		Status:        strings.TrimSpace(c.QueryParam("status")),
		PaymentStatus: strings.TrimSpace(c.QueryParam("payment_status")),
	}
	if cid, err := strconv.ParseInt(c.QueryParam("customer_id"), 10, 64); err == nil {
		filter.CustomerID = cid
	}
	opt := parseListOptions(c)
	rows, total := GetStore(c).QueryBookings(filter, opt)
	return paged(c, rows, total, opt.Page, opt.PerPage)
}

func getBooking(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID", nil)
	}
	row, err := GetStore(c).BookingByID(id)
	if err != nil {
		return failStore(c, err, "Booking")
	}
	return ok(c, row)
}

func createBooking(c echo.Context) error {
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
	if payload.CustomerID != nil {
		row.CustomerID = *payload.CustomerID
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
	if payload.Remark != nil {
		row.Remark = *payload.Remark
	}
	return ok(c, GetStore(c).AddBooking(row))
}

func updateBooking(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID", nil)
	}
	var payload bookingPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse booking", err.Error())
	}
	if payload.TravelDate != nil {
		normalized, err := store.NormalizeDate(*payload.TravelDate)
		if err != nil {
			return fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unparseable travel date", *payload.TravelDate)
		}
		payload.TravelDate = &normalized
	}
	row, err := GetStore(c).UpdateBooking(id, store.BookingPatch{
		Type:          payload.Type,
		CustomerName:  payload.CustomerName,
		CustomerEmail: payload.CustomerEmail,
		Destination:   payload.Destination,
		TravelDate:    payload.TravelDate,
		Amount:        payload.Amount,
		PaymentStatus: payload.PaymentStatus,
		Remark:        payload.Remark,
	})
	if err != nil {
		return failStore(c, err, "Booking")
	}
	return ok(c, row)
}

// setBookingStatus is the only path that moves a booking through its status
// graph. Updates through PUT cannot touch the status field.
func setBookingStatus(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID", nil)
	}
	var payload statusPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse status", err.Error())
	}
	if !domain.ValidBookingStatus(payload.Status) {
		return fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown booking status", payload.Status)
	}
	row, err := GetStore(c).SetBookingStatus(id, payload.Status)
	if err != nil {
		return failStore(c, err, "Booking")
	}
	return ok(c, row)
}

func deleteBooking(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID", nil)
	}
	if err := GetStore(c).DeleteBooking(id); err != nil {
		return failStore(c, err, "Booking")
	}
	return ok(c, nil)
}
