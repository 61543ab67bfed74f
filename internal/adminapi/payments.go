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

type paymentPayload struct {
	BookingID    *int64   `json:"booking_id,string"`
	CustomerName *string  `json:"customer_name"`
	Method       *string  `json:"method"`
	Reference    *string  `json:"reference"`
	Amount       *float64 `json:"amount"`
	PaidAmount   *float64 `json:"paid_amount"`
}

type recordPaymentPayload struct {
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Method    string  `json:"method"`
	Reference string  `json:"reference"`
}

func registerPaymentRoutes() {
	webserver.ApiGET("/billing/payments", listPayments)
	webserver.ApiGET("/billing/payments/:id", getPayment)
	webserver.ApiPOST("/billing/payments", createPayment)
	webserver.ApiPUT("/billing/payments/:id/record", recordPayment)
}

func listPayments(c echo.Context) error {
	filter := store.PaymentFilter{
		Query:  strings.TrimSpace(c.QueryParam("q")),
		Status: strings.TrimSpace(c.QueryParam("status")),
	}
	if bid, err := strconv.ParseInt(c.QueryParam("booking_id"), 10, 64); err == nil {
		filter.BookingID = bid
	}
	opt := parseListOptions(c)
	rows, total := GetStore(c).QueryPayments(filter, opt)
	return paged(c, rows, total, opt.Page, opt.PerPage)
}

func getPayment(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid payment ID", nil)
	}
	row, err := GetStore(c).PaymentByID(id)
	if err != nil {
		return failStore(c, err, "Payment")
	}
	return ok(c, row)
}

func createPayment(c echo.Context) error {
	var payload paymentPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse payment", err.Error())
	}
	if payload.Amount == nil || *payload.Amount <= 0 {
		return fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invoice amount must be positive", nil)
	}
	row := domain.Payment{Amount: *payload.Amount}
	if payload.BookingID != nil {
		row.BookingID = *payload.BookingID
	}
	if payload.CustomerName != nil {
		row.CustomerName = strings.TrimSpace(*payload.CustomerName)
	}
	if payload.Method != nil {
		row.Method = *payload.Method
	}
	if payload.Reference != nil {
		row.Reference = *payload.Reference
	}
	if payload.PaidAmount != nil {
		row.PaidAmount = *payload.PaidAmount
	}
	return ok(c, GetStore(c).AddPayment(row))
}

// recordPayment applies an instalment against an invoice.
func recordPayment(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid payment ID", nil)
	}
	var payload recordPaymentPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse payment record", err.Error())
	}
	row, err := GetStore(c).RecordPayment(id, payload.Amount, payload.Method, payload.Reference)
	if err != nil {
		return failStore(c, err, "Payment")
	}
	return ok(c, row)
}
