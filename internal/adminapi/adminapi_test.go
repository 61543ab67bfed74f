package adminapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/robfig/cron/v3"

	"github.com/tripdeskhq/tripdesk/config"
	"github.com/tripdeskhq/tripdesk/internal/app"
	"github.com/tripdeskhq/tripdesk/internal/domain"
	"github.com/tripdeskhq/tripdesk/internal/prefs"
	"github.com/tripdeskhq/tripdesk/internal/store"
	"github.com/tripdeskhq/tripdesk/internal/webserver"
)

type testAppCtx struct {
	cfg *config.AppConfig
	st  *store.Store
	pf  *prefs.Prefs
	bus EventBus.Bus
	sm  *app.SettingsManager
}

func (t *testAppCtx) Config() *config.AppConfig      { return t.cfg }
func (t *testAppCtx) Store() *store.Store            { return t.st }
func (t *testAppCtx) Prefs() *prefs.Prefs            { return t.pf }
func (t *testAppCtx) Bus() EventBus.Bus              { return t.bus }
func (t *testAppCtx) Settings() *app.SettingsManager { return t.sm }
func (t *testAppCtx) Scheduler() *cron.Cron          { return nil }

func newTestAppCtx(t *testing.T) *testAppCtx {
	t.Helper()
	st, err := store.New(store.WithSeed(domain.DefaultSeed(time.Now())))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	pf, err := prefs.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open prefs: %v", err)
	}
	t.Cleanup(func() { _ = pf.Close() })
	cfg := config.DefaultAppConfig
	cfg.Web.Secret = "test-secret"
	return &testAppCtx{
		cfg: &cfg,
		st:  st,
		pf:  pf,
		bus: EventBus.New(),
		sm:  app.NewSettingsManager(st),
	}
}

// newHandlerContext builds an echo context carrying the app handle, the way
// the web server middleware does.
func newHandlerContext(t *testing.T, appctx *testAppCtx, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(webserver.AppContextKey, appctx)
	return c, rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) apiResponse {
	t.Helper()
	var out apiResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode envelope: %v\nbody: %s", err, rec.Body.String())
	}
	return out
}

func asAuthed(c echo.Context, uid, username, level string) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid": uid, "usr": username, "lvl": level,
	})
	c.Set("user", token)
}

func TestLoginBuiltinSuperAdmin(t *testing.T) {
	appctx := newTestAppCtx(t)
	c, rec := newHandlerContext(t, appctx, http.MethodPost, "/api/v1/auth/login",
		`{"username":"admin","password":"admin"}`)

	if err := login(c); err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	if !env.Success {
		t.Fatalf("login failed: %+v", env.Error)
	}
	if appctx.pf.GetString(prefs.KeyAdminAuth) == "" {
		t.Fatalf("token not persisted")
	}
	u, err := appctx.st.AdminUserByID(domain.BuiltinSuperID)
	if err != nil || u.LastLogin.IsZero() {
		t.Fatalf("last login not touched: %v %v", u.LastLogin, err)
	}
}

func TestLoginSeededStaff(t *testing.T) {
	appctx := newTestAppCtx(t)

	c, rec := newHandlerContext(t, appctx, http.MethodPost, "/api/v1/auth/login",
		`{"username":"nazia","password":"password"}`)
	if err := login(c); err != nil {
		t.Fatalf("login: %v", err)
	}
	if !decodeEnvelope(t, rec).Success {
		t.Fatalf("active staff login rejected: %s", rec.Body.String())
	}

	// inactive accounts cannot sign in
	c, rec = newHandlerContext(t, appctx, http.MethodPost, "/api/v1/auth/login",
		`{"username":"imran","password":"password"}`)
	if err := login(c); err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("inactive login status = %d, want 401", rec.Code)
	}
}

func TestLoginRejectsBadPassword(t *testing.T) {
	appctx := newTestAppCtx(t)
	c, rec := newHandlerContext(t, appctx, http.MethodPost, "/api/v1/auth/login",
		`{"username":"admin","password":"wrong"}`)
	if err := login(c); err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Success || env.Error == nil || env.Error.Code != "INVALID_CREDENTIALS" {
		t.Fatalf("unexpected envelope: %s", rec.Body.String())
	}
}

func TestListCustomersEnvelope(t *testing.T) {
	appctx := newTestAppCtx(t)
	c, rec := newHandlerContext(t, appctx, http.MethodGet, "/api/v1/crm/customers?page=1&perPage=2", "")

	if err := listCustomers(c); err != nil {
		t.Fatalf("list: %v", err)
	}
	env := decodeEnvelope(t, rec)
	if !env.Success {
		t.Fatalf("list failed: %s", rec.Body.String())
	}
	if env.Total == nil || *env.Total != 3 {
		t.Fatalf("total = %v, want 3", env.Total)
	}
	if env.Page == nil || *env.Page != 1 || env.PerPage == nil || *env.PerPage != 2 {
		t.Fatalf("pagination echo wrong: %s", rec.Body.String())
	}
}

func TestSetBookingStatusConflict(t *testing.T) {
	appctx := newTestAppCtx(t)
	// booking 3001 is ticketed, a terminal state
	c, rec := newHandlerContext(t, appctx, http.MethodPut, "/api/v1/booking/bookings/3001/status",
		`{"status":"confirmed"}`)
	c.SetParamNames("id")
	c.SetParamValues("3001")

	if err := setBookingStatus(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
	if decodeEnvelope(t, rec).Error.Code != "INVALID_TRANSITION" {
		t.Fatalf("error code wrong: %s", rec.Body.String())
	}
}

func TestRecordPaymentNotFound(t *testing.T) {
	appctx := newTestAppCtx(t)
	c, rec := newHandlerContext(t, appctx, http.MethodPut, "/api/v1/billing/payments/999/record",
		`{"amount":100}`)
	c.SetParamNames("id")
	c.SetParamValues("999")

	if err := recordPayment(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestDeleteAdminUserSelfConflict(t *testing.T) {
	appctx := newTestAppCtx(t)
	c, rec := newHandlerContext(t, appctx, http.MethodDelete, "/api/v1/system/users/7001", "")
	c.SetParamNames("id")
	c.SetParamValues("7001")
	asAuthed(c, "7001", "nazia", domain.RoleManager)

	if err := deleteAdminUser(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
	if _, err := appctx.st.AdminUserByID(7001); err != nil {
		t.Fatalf("account deleted despite guard: %v", err)
	}
}

func TestThemeRoundTrip(t *testing.T) {
	appctx := newTestAppCtx(t)

	c, rec := newHandlerContext(t, appctx, http.MethodGet, "/api/v1/system/theme", "")
	if err := getTheme(c); err != nil {
		t.Fatalf("get: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "light") {
		t.Fatalf("default theme not light: %s", rec.Body.String())
	}

	c, rec = newHandlerContext(t, appctx, http.MethodPut, "/api/v1/system/theme", `{"theme":"dark"}`)
	if err := setTheme(c); err != nil {
		t.Fatalf("set: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("set status = %d", rec.Code)
	}

	c, rec = newHandlerContext(t, appctx, http.MethodGet, "/api/v1/system/theme", "")
	if err := getTheme(c); err != nil {
		t.Fatalf("get: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "dark") {
		t.Fatalf("theme not persisted: %s", rec.Body.String())
	}

	c, rec = newHandlerContext(t, appctx, http.MethodPut, "/api/v1/system/theme", `{"theme":"sepia"}`)
	if err := setTheme(c); err != nil {
		t.Fatalf("set: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad theme status = %d, want 400", rec.Code)
	}
}

func TestSitePackagesOnlyActive(t *testing.T) {
	appctx := newTestAppCtx(t)
	c, rec := newHandlerContext(t, appctx, http.MethodGet, "/public/packages", "")

	if err := sitePackages(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	body := rec.Body.String()
	if strings.Contains(body, "Maldives Honeymoon") {
		t.Fatalf("draft package exposed publicly")
	}
	if !strings.Contains(body, "Cox's Bazar Beach Escape") {
		t.Fatalf("active package missing")
	}
}

func TestSiteBookingRemembered(t *testing.T) {
	appctx := newTestAppCtx(t)
	c, rec := newHandlerContext(t, appctx, http.MethodPost, "/public/bookings",
		`{"type":"package","customer_name":"Guest One","package_id":"2001","travel_date":"2026-01-15"}`)

	if err := siteCreateBooking(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	list, err := appctx.pf.MyBookings()
	if err != nil {
		t.Fatalf("my bookings: %v", err)
	}
	if len(list) != 1 || list[0].CustomerName != "Guest One" {
		t.Fatalf("booking not remembered: %+v", list)
	}
}

func TestSiteContactWritesAuditViaBus(t *testing.T) {
	appctx := newTestAppCtx(t)
	received := make(chan domain.Event, 1)
	if err := appctx.bus.Subscribe(domain.EventContactMessage, func(ev domain.Event) {
		received <- ev
	}); err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	c, rec := newHandlerContext(t, appctx, http.MethodPost, "/public/contact",
		`{"name":"Curious Visitor","message":"Do you sell Umrah packages?"}`)
	if err := siteContact(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	select {
	case ev := <-received:
		if ev.Actor != "Curious Visitor" {
			t.Fatalf("actor = %q", ev.Actor)
		}
	case <-time.After(time.Second):
		t.Fatalf("contact event not published")
	}
}
