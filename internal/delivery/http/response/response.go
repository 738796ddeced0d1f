// Package response holds the JSON response helpers shared by all handlers.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// MessageBody is the body shape for confirmation and error responses.
type MessageBody struct {
	Message string `json:"message"`
}

// JSON writes data as the response body with the given status code.
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Message writes a {"message": ...} body with the given status code.
func Message(c echo.Context, statusCode int, text string) error {
	return c.JSON(statusCode, MessageBody{Message: text})
}

// BindingError reports a malformed request body.
func BindingError(c echo.Context, text string) error {
	return Message(c, http.StatusBadRequest, text)
}
