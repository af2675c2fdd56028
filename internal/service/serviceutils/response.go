package serviceutils

import (
	"github.com/labstack/echo/v4"

	"github.com/palletops/opsdash/internal/logger"
)

type apiResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ResponseSuccess writes the standard success envelope.
func ResponseSuccess(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, apiResponse{Message: message, Data: data})
}

// ResponseError logs the error and writes the standard error envelope.
func ResponseError(c echo.Context, status int, message string, err error) error {
	resp := apiResponse{Message: message}
	if err != nil {
		logger.ErrorLog(c.Request().Context(), message, err)
		resp.Error = err.Error()
	} else {
		logger.ErrorLog(c.Request().Context(), message)
	}
	return c.JSON(status, resp)
}
