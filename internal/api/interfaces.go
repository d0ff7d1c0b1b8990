// interfaces.go - Handler interface definitions for clean separation of concerns
package api

import (
	"github.com/labstack/echo/v4"
)

// ConvertHandler handles document conversion requests
type ConvertHandler interface {
	HandleConvert(c echo.Context) error
}

// CapabilitiesHandler reports which file formats the converter supports
type CapabilitiesHandler interface {
	HandleSupportedExtensions(c echo.Context) error
}

// HealthHandler handles health check operations
type HealthHandler interface {
	HandleHealth(c echo.Context) error
}
