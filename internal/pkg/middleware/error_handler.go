package middleware

import (
	"errors"
	"strings"

	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/ThanawatK/CampSiam/internal/pkg/constants"
	"github.com/ThanawatK/CampSiam/internal/pkg/views"
)

// ErrorHandler is the application-wide fiber error handler. API routes get
// the same JSON envelope the handlers use; every other route gets the
// localized fallback page. Error details never reach the client on 5xx.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}

	if strings.HasPrefix(c.Path(), constants.APIRoute) {
		message := utils.StatusMessage(code)
		if code < fiber.StatusInternalServerError && err != nil {
			message = err.Error()
		}
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   errorCode(code),
			"message": message,
		})
	}

	var page templ.Component
	switch code {
	case fiber.StatusNotFound:
		page = views.NotFound()
	case fiber.StatusInternalServerError:
		page = views.InternalError()
	default:
		page = views.ErrorFallback(code, "เกิดข้อผิดพลาด กรุณาลองใหม่อีกครั้ง", "Something went wrong. Please try again.")
	}
	c.Status(code).Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return page.Render(c.UserContext(), c.Response().BodyWriter())
}

// errorCode turns an HTTP status into the snake_case code used by the JSON
// envelope, e.g. 404 -> "not_found".
func errorCode(status int) string {
	msg := utils.StatusMessage(status)
	if msg == "" {
		return "internal_server_error"
	}
	return strings.ReplaceAll(strings.ToLower(msg), " ", "_")
}
