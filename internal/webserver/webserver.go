package webserver

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/openretail/storeapi/internal/app"
	"go.uber.org/zap"
)

var server *WebServer

// WebServer wraps the echo engine and exposes the /api route group.
type WebServer struct {
	appCtx app.AppContext
	root   *echo.Echo
	api    *echo.Group
}

func Init(appCtx app.AppContext) *WebServer {
	server = NewWebServer(appCtx)
	return server
}

func NewWebServer(appCtx app.AppContext) *WebServer {
	s := &WebServer{appCtx: appCtx}
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = appCtx.Config().Web.Debug

	e.Use(middleware.Recover())
	e.Use(requestLogger())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	s.root = e
	s.api = e.Group("/api")
	return s
}

// Start runs the HTTP listener and blocks until shutdown.
func (s *WebServer) Start() error {
	addr := s.appCtx.Config().ListenAddr()
	zap.S().Infof("Starting webserver on %s", addr)
	return s.root.Start(addr)
}

func Listen() error {
	return server.Start()
}

// Echo exposes the underlying engine (used in tests).
func (s *WebServer) Echo() *echo.Echo {
	return s.root
}

func requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			req := c.Request()
			res := c.Response()
			zap.L().Debug("http request",
				zap.String("method", req.Method),
				zap.String("path", req.URL.Path),
				zap.Int("status", res.Status),
				zap.Duration("latency", time.Since(start)),
			)
			return nil
		}
	}
}

// Route registration helpers used by the api package.

func ApiGET(path string, h echo.HandlerFunc) {
	server.api.GET(path, h)
}

func ApiPOST(path string, h echo.HandlerFunc) {
	server.api.POST(path, h)
}

func ApiPUT(path string, h echo.HandlerFunc) {
	server.api.PUT(path, h)
}

func ApiDELETE(path string, h echo.HandlerFunc) {
	server.api.DELETE(path, h)
}
