// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-reservation/internal/handler"
	"github.com/iliyamo/restaurant-reservation/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication:
// the health check and the staff auth endpoints.
func RegisterRoutes(e *echo.Echo, a *handler.AuthHandler) {
	e.GET("/healthz", handler.Health)

	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
}

// RegisterAPI registers the reservation and table endpoints behind the
// staff JWT middleware, plus /v1/me. The route shapes follow the
// browser client: reservations are listed per date or searched by
// phone fragment, and seating/finishing are table-centric operations on
// /tables/:table_id/seat.
func RegisterAPI(e *echo.Echo, r *handler.ReservationHandler, t *handler.TableHandler, a *handler.AuthHandler, jwtSecret string, mw ...echo.MiddlewareFunc) {
	api := e.Group("", middleware.JWTAuth(jwtSecret))
	api.Use(mw...)

	api.GET("/v1/me", a.Me)

	api.GET("/reservations", r.List)
	api.POST("/reservations", r.Create)
	api.GET("/reservations/:reservation_id", r.Get)
	api.PUT("/reservations/:reservation_id", r.Update)
	api.PUT("/reservations/:reservation_id/status", r.UpdateStatus)

	api.GET("/tables", t.List)
	api.POST("/tables", t.Create)
	api.GET("/tables/:table_id", t.Get)
	api.PUT("/tables/:table_id/seat", t.Seat)
	api.DELETE("/tables/:table_id/seat", t.Finish)
}
