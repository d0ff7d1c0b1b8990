// handlers_extensions.go - Capability discovery handler
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mdgateway/backend/internal/convert"
)

// CapabilitiesHandlerImpl implements the CapabilitiesHandler interface
type CapabilitiesHandlerImpl struct {
	engine convert.Engine
}

// NewCapabilitiesHandler creates a new capabilities handler instance
func NewCapabilitiesHandler(engine convert.Engine) CapabilitiesHandler {
	return &CapabilitiesHandlerImpl{
		engine: engine,
	}
}

type extensionsResponse struct {
	Extensions []string `json:"extensions"`
}

// HandleSupportedExtensions returns the sorted set of file extensions the
// conversion engine is believed to handle. Recomputed per request; this
// endpoint has no failure mode visible to the caller.
func (h *CapabilitiesHandlerImpl) HandleSupportedExtensions(c echo.Context) error {
	return c.JSON(http.StatusOK, extensionsResponse{
		Extensions: convert.SupportedExtensions(h.engine),
	})
}
