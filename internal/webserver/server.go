package webserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	jsoniter "github.com/json-iterator/go"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/tripdeskhq/tripdesk/internal/app"
)

// AppContextKey is the echo context key the application handle lives under.
const AppContextKey = "tripdesk_appctx"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type WebServer struct {
	root   *echo.Echo
	api    *echo.Group
	pub    *echo.Group
	appctx app.AppContext
}

var server *WebServer

// jsonSerializer swaps echo's encoder for jsoniter.
type jsonSerializer struct{}

func (jsonSerializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := json.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (jsonSerializer) Deserialize(c echo.Context, i interface{}) error {
	if err := json.NewDecoder(c.Request().Body).Decode(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// Init builds the web server and its route groups. Register routes after Init
// and before Listen.
func Init(appctx app.AppContext) {
	root := echo.New()
	root.HideBanner = true
	root.HidePort = true
	root.JSONSerializer = jsonSerializer{}
	root.Use(middleware.Recover())
	root.Use(requestLogger())
	root.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(AppContextKey, appctx)
			return next(c)
		}
	})

	secret := []byte(appctx.Config().Web.Secret)
	api := root.Group("/api/v1")
	api.Use(echojwt.WithConfig(echojwt.Config{
		Skipper: skipAuth,
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			token, err := jwt.Parse(auth, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method %s", t.Method.Alg())
				}
				return secret, nil
			})
			if err != nil {
				return nil, err
			}
			if !token.Valid {
				return nil, echojwt.ErrJWTInvalid
			}
			return token, nil
		},
	}))

	pub := root.Group("/public")

	server = &WebServer{root: root, api: api, pub: pub, appctx: appctx}
}

// skipAuth keeps the login endpoint reachable without a token.
func skipAuth(c echo.Context) bool {
	return c.Path() == "/api/v1/auth/login"
}

func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			zap.S().Infof("%s %s %d %s", v.Method, v.URI, v.Status, v.Latency)
			return nil
		},
	})
}

// Listen blocks serving HTTP until the server is shut down.
func Listen() error {
	cfg := server.appctx.Config()
	addr := fmt.Sprintf("%s:%d", cfg.Web.Host, cfg.Web.Port)
	zap.S().Infof("admin api listening on %s", addr)
	return server.root.Start(addr)
}

// Shutdown drains in-flight requests.
func Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return server.root.Shutdown(ctx)
}

// ApiGET registers an authenticated GET route under /api/v1.
func ApiGET(path string, h echo.HandlerFunc) {
	server.api.GET(path, h)
}

// ApiPOST registers an authenticated POST route under /api/v1.
func ApiPOST(path string, h echo.HandlerFunc) {
	server.api.POST(path, h)
}

// ApiPUT registers an authenticated PUT route under /api/v1.
func ApiPUT(path string, h echo.HandlerFunc) {
	server.api.PUT(path, h)
}

// ApiDELETE registers an authenticated DELETE route under /api/v1.
func ApiDELETE(path string, h echo.HandlerFunc) {
	server.api.DELETE(path, h)
}

// PubGET registers an unauthenticated GET route under /public.
func PubGET(path string, h echo.HandlerFunc) {
	server.pub.GET(path, h)
}

// PubPOST registers an unauthenticated POST route under /public.
func PubPOST(path string, h echo.HandlerFunc) {
	server.pub.POST(path, h)
}
