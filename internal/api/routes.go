// routes.go - Route registration helpers
package api

import (
	"github.com/labstack/echo/v4"
	"github.com/mdgateway/backend/internal/convert"
	"github.com/mdgateway/backend/internal/staging"
)

// Dependencies holds all handler dependencies
type Dependencies struct {
	Engine  convert.Engine
	Stager  *staging.Stager
	Version string
}

// Handlers holds all handler instances
type Handlers struct {
	Convert      ConvertHandler
	Capabilities CapabilitiesHandler
	Health       HealthHandler
}

// NewHandlers creates all handler instances
func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{
		Convert:      NewConvertHandler(deps.Engine, deps.Stager),
		Capabilities: NewCapabilitiesHandler(deps.Engine),
		Health:       NewHealthHandler(deps.Version),
	}
}

// RegisterRoutes registers all API routes with the Echo instance
func RegisterRoutes(e *echo.Echo, handlers *Handlers) {
	e.POST("/convert", handlers.Convert.HandleConvert)
	e.GET("/supported-extensions", handlers.Capabilities.HandleSupportedExtensions)
	e.GET("/health", handlers.Health.HandleHealth)
}

// SetupMiddleware configures error handling shared by all routes
func SetupMiddleware(e *echo.Echo) {
	e.HTTPErrorHandler = ErrorHandler
}
