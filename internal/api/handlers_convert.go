// handlers_convert.go - Document conversion handler
package api

import (
	"io"
	"net/http"
	"path/filepath"

	"github.com/labstack/echo/v4"
	"github.com/mdgateway/backend/internal/convert"
	"github.com/mdgateway/backend/internal/staging"
)

// ConvertHandlerImpl implements the ConvertHandler interface
type ConvertHandlerImpl struct {
	engine convert.Engine
	stager *staging.Stager
}

// NewConvertHandler creates a new conversion handler instance
func NewConvertHandler(engine convert.Engine, stager *staging.Stager) ConvertHandler {
	return &ConvertHandlerImpl{
		engine: engine,
		stager: stager,
	}
}

// HandleConvert accepts a multipart file upload, stages it to disk, hands the
// path to the conversion engine, and returns the normalized text. The staged
// file is removed on every exit path.
func (h *ConvertHandlerImpl) HandleConvert(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return NewBadRequestError("no file provided", err)
	}

	src, err := file.Open()
	if err != nil {
		return NewInternalError("failed to open uploaded file", err)
	}
	defer src.Close()

	contents, err := io.ReadAll(src)
	if err != nil {
		return NewInternalError("failed to read uploaded file", err)
	}

	if len(contents) == 0 {
		return NewEmptyUploadError()
	}

	// The suffix is advisory; some converters dispatch on extension
	// rather than sniffing content.
	suffix := filepath.Ext(file.Filename)

	path, err := h.stager.Stage(suffix, contents)
	if err != nil {
		return NewInternalError("failed to stage uploaded file", err)
	}
	defer h.stager.Discard(path)

	result, err := h.engine.Convert(c.Request().Context(), path)
	if err != nil {
		c.Logger().Errorf("conversion error: %v", err)
		return NewConversionFailedError(err)
	}

	text, err := result.Normalize()
	if err != nil {
		return NewUnexpectedResultError()
	}

	return c.String(http.StatusOK, text)
}
