package adminapi

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	excelize "github.com/360EntSecGroup-Skylar/excelize"
	"github.com/gocarina/gocsv"
	"github.com/labstack/echo/v4"

	"github.com/tripdeskhq/tripdesk/internal/store"
	"github.com/tripdeskhq/tripdesk/internal/webserver"
)

type bookingExportRow struct {
	Ref           string  `csv:"ref"`
	Type          string  `csv:"type"`
	Customer      string  `csv:"customer"`
	Destination   string  `csv:"destination"`
	TravelDate    string  `csv:"travel_date"`
	Amount        float64 `csv:"amount"`
	Status        string  `csv:"status"`
	PaymentStatus string  `csv:"payment_status"`
	CreatedAt     string  `csv:"created_at"`
}

type paymentExportRow struct {
	InvoiceNo  string  `csv:"invoice_no"`
	Customer   string  `csv:"customer"`
	Method     string  `csv:"method"`
	Amount     float64 `csv:"amount"`
	PaidAmount float64 `csv:"paid_amount"`
	Balance    float64 `csv:"balance"`
	Status     string  `csv:"status"`
	CreatedAt  string  `csv:"created_at"`
}

func registerReportRoutes() {
	webserver.ApiGET("/reports", getReport)
	webserver.ApiGET("/reports/export", exportReport)
}

func reportRange(c echo.Context) (string, string) {
	start := c.QueryParam("start")
	end := c.QueryParam("end")
	if start == "" {
		start = time.Now().AddDate(0, -1, 0).Format("2006-01-02")
	}
	if end == "" {
		end = time.Now().Format("2006-01-02")
	}
	return start, end
}

func getReport(c echo.Context) error {
	start, end := reportRange(c)
	rep, err := GetStore(c).ReportsData(start, end)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_RANGE", "Unparseable report range", err.Error())
	}
	return ok(c, rep)
}

// exportReport streams the ranged report as csv or xlsx.
func exportReport(c echo.Context) error {
	start, end := reportRange(c)
	rep, err := GetStore(c).ReportsData(start, end)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_RANGE", "Unparseable report range", err.Error())
	}
	switch c.QueryParam("format") {
	case "", "csv":
		return exportReportCSV(c, rep)
	case "xlsx":
		return exportReportXLSX(c, rep)
	default:
		return fail(c, http.StatusBadRequest, "INVALID_FORMAT", "Format must be csv or xlsx", c.QueryParam("format"))
	}
}

func bookingRows(rep store.Report) []bookingExportRow {
	rows := make([]bookingExportRow, 0, len(rep.Bookings))
	for _, b := range rep.Bookings {
		rows = append(rows, bookingExportRow{
			Ref:           b.Ref,
			Type:          b.Type,
			Customer:      b.CustomerName,
			Destination:   b.Destination,
			TravelDate:    b.TravelDate,
			Amount:        b.Amount,
			Status:        b.Status,
			PaymentStatus: b.PaymentStatus,
			CreatedAt:     b.CreatedAt.Format("2006-01-02"),
		})
	}
	return rows
}

func paymentRows(rep store.Report) []paymentExportRow {
	rows := make([]paymentExportRow, 0, len(rep.Payments))
	for _, p := range rep.Payments {
		rows = append(rows, paymentExportRow{
			InvoiceNo:  p.InvoiceNo,
			Customer:   p.CustomerName,
			Method:     p.Method,
			Amount:     p.Amount,
			PaidAmount: p.PaidAmount,
			Balance:    p.Balance,
			Status:     p.Status,
			CreatedAt:  p.CreatedAt.Format("2006-01-02"),
		})
	}
	return rows
}

func exportReportCSV(c echo.Context, rep store.Report) error {
	var buf bytes.Buffer
	if err := gocsv.Marshal(bookingRows(rep), &buf); err != nil {
		return fail(c, http.StatusInternalServerError, "EXPORT_ERROR", "Unable to build csv", err.Error())
	}
	filename := fmt.Sprintf("report-%s-%s.csv", rep.Start, rep.End)
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
}

func exportReportXLSX(c echo.Context, rep store.Report) error {
	f := excelize.NewFile()

	f.SetCellValue("Sheet1", "A1", "Start")
	f.SetCellValue("Sheet1", "B1", rep.Start)
	f.SetCellValue("Sheet1", "A2", "End")
	f.SetCellValue("Sheet1", "B2", rep.End)
	f.SetCellValue("Sheet1", "A3", "Total bookings")
	f.SetCellValue("Sheet1", "B3", rep.TotalBookings)
	f.SetCellValue("Sheet1", "A4", "Booked amount")
	f.SetCellValue("Sheet1", "B4", rep.BookedAmount)
	f.SetCellValue("Sheet1", "A5", "Payments collected")
	f.SetCellValue("Sheet1", "B5", rep.PaymentsCollected)
	f.SetCellValue("Sheet1", "A6", "Outstanding")
	f.SetCellValue("Sheet1", "B6", rep.OutstandingAmount)
	f.SetCellValue("Sheet1", "A7", "Mean booking value")
	f.SetCellValue("Sheet1", "B7", rep.MeanBookingValue)
	f.SetCellValue("Sheet1", "A8", "Median payment")
	f.SetCellValue("Sheet1", "B8", rep.MedianPayment)
	f.SetSheetName("Sheet1", "Summary")

	f.NewSheet("Bookings")
	headers := []string{"Ref", "Type", "Customer", "Destination", "Travel date", "Amount", "Status", "Payment"}
	for i, h := range headers {
		f.SetCellValue("Bookings", cell(i, 0), h)
	}
	for r, b := range bookingRows(rep) {
		f.SetCellValue("Bookings", cell(0, r+1), b.Ref)
		f.SetCellValue("Bookings", cell(1, r+1), b.Type)
		f.SetCellValue("Bookings", cell(2, r+1), b.Customer)
		f.SetCellValue("Bookings", cell(3, r+1), b.Destination)
		f.SetCellValue("Bookings", cell(4, r+1), b.TravelDate)
		f.SetCellValue("Bookings", cell(5, r+1), b.Amount)
		f.SetCellValue("Bookings", cell(6, r+1), b.Status)
		f.SetCellValue("Bookings", cell(7, r+1), b.PaymentStatus)
	}

	f.NewSheet("Payments")
	pHeaders := []string{"Invoice", "Customer", "Method", "Amount", "Paid", "Balance", "Status"}
	for i, h := range pHeaders {
		f.SetCellValue("Payments", cell(i, 0), h)
	}
	for r, p := range paymentRows(rep) {
		f.SetCellValue("Payments", cell(0, r+1), p.InvoiceNo)
		f.SetCellValue("Payments", cell(1, r+1), p.Customer)
		f.SetCellValue("Payments", cell(2, r+1), p.Method)
		f.SetCellValue("Payments", cell(3, r+1), p.Amount)
		f.SetCellValue("Payments", cell(4, r+1), p.PaidAmount)
		f.SetCellValue("Payments", cell(5, r+1), p.Balance)
		f.SetCellValue("Payments", cell(6, r+1), p.Status)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return fail(c, http.StatusInternalServerError, "EXPORT_ERROR", "Unable to build workbook", err.Error())
	}
	filename := fmt.Sprintf("report-%s-%s.xlsx", rep.Start, rep.End)
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// cell converts zero-based column/row indexes to an A1 reference.
func cell(col, row int) string {
	return excelize.ToAlphaString(col) + fmt.Sprint(row+1)
}
