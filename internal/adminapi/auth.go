package adminapi

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/tripdeskhq/tripdesk/internal/domain"
	"github.com/tripdeskhq/tripdesk/internal/prefs"
	"github.com/tripdeskhq/tripdesk/internal/webserver"
)

type loginPayload struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResult struct {
	Token string           `json:"token"`
	User  domain.AdminUser `json:"user"`
}

func registerAuthRoutes() {
	webserver.ApiPOST("/auth/login", login)
	webserver.ApiPOST("/auth/logout", logout)
	webserver.ApiGET("/auth/me", me)
}

// login checks the credential against the built-in super account first and
// the seeded staff accounts second. The demo dataset accepts the literal
// password for every active staff account.
func login(c echo.Context) error {
	var payload loginPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse credentials", err.Error())
	}
	username := strings.TrimSpace(payload.Username)

	appctx := GetAppContext(c)
	st := appctx.Store()

	var account domain.AdminUser
	switch {
	case strings.EqualFold(username, "admin") && payload.Password == "admin":
		account = domain.BuiltinSuperAdmin()
	default:
		found, exists := st.FindAdminByUsername(username)
		if !exists || found.Status != domain.UserActive || payload.Password != "password" {
			return fail(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Username or password incorrect", nil)
		}
		account = found
	}

	claims := jwt.MapClaims{
		"uid": strconv.FormatInt(account.ID, 10),
		"usr": account.Username,
		"lvl": account.Role,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(appctx.Config().Web.Secret))
	if err != nil {
		return fail(c, http.StatusInternalServerError, "TOKEN_ERROR", "Unable to sign session token", err.Error())
	}

	st.TouchLastLogin(account.ID)
	if refreshed, err := st.AdminUserByID(account.ID); err == nil {
		account = refreshed
	}

	pf := appctx.Prefs()
	if err := pf.SetString(prefs.KeyAdminAuth, signed); err != nil {
		zap.S().Errorf("persist auth token: %s", err)
	}
	if err := pf.SetJSON(prefs.KeyAdminUser, account); err != nil {
		zap.S().Errorf("persist auth user: %s", err)
	}

	appctx.Bus().Publish(domain.EventUserLogin, domain.Event{
		Topic:    domain.EventUserLogin,
		Actor:    account.Username,
		RefID:    account.ID,
		Summary:  account.Username + " signed in",
		SourceIP: c.RealIP(),
		At:       time.Now(),
	})

	return ok(c, loginResult{Token: signed, User: account})
}

func logout(c echo.Context) error {
	pf := GetAppContext(c).Prefs()
	if err := pf.Delete(prefs.KeyAdminAuth); err != nil {
		zap.S().Errorf("clear auth token: %s", err)
	}
	if err := pf.Delete(prefs.KeyAdminUser); err != nil {
		zap.S().Errorf("clear auth user: %s", err)
	}
	return ok(c, nil)
}

func me(c echo.Context) error {
	sess := currentUser(c)
	account, err := GetStore(c).AdminUserByID(sess.ID)
	if err != nil {
		return failStore(c, err, "Account")
	}
	return ok(c, account)
}
