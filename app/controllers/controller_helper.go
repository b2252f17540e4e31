package controllers

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const (
	AUTH_KEY      string = "authenticated"
	USER_ID       string = "user_id"
	USER_NAME     string = "username"
	USER_LOCALE   string = "locale"
	USER_IS_OWNER string = "isOwner"
	USER_IS_ADMIN string = "isAdmin"
)

// DefaultPageSize is used whenever a list endpoint gets no per_page value.
const DefaultPageSize = 12

// MaxPageSize caps per_page so a single request cannot drag the whole table.
const MaxPageSize = 50

func jsonError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   code,
		"message": message,
	})
}

func jsonData(c *fiber.Ctx, data interface{}) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

func jsonCreated(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// jsonValidationError maps validator violations to a 422 with per-field
// messages.
func jsonValidationError(c *fiber.Ctx, err error) error {
	fields := fiber.Map{}
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			fields[strings.ToLower(fe.Field())] = fe.Tag()
		}
	}
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"success": false,
		"error":   "validation_failed",
		"message": "Validation failed",
		"fields":  fields,
	})
}

// isDuplicateEntry reports whether err is a MySQL unique index violation.
func isDuplicateEntry(err error) bool {
	return err != nil && strings.Contains(err.Error(), "Duplicate entry")
}

// parsePage reads page/per_page query params with sane bounds.
func parsePage(c *fiber.Ctx) (page, perPage int) {
	page, _ = strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	perPage, _ = strconv.Atoi(c.Query("per_page", strconv.Itoa(DefaultPageSize)))
	if perPage < 1 {
		perPage = DefaultPageSize
	}
	if perPage > MaxPageSize {
		perPage = MaxPageSize
	}
	return page, perPage
}

// totalPages returns the page count for a total row count.
func totalPages(total int64, perPage int) int {
	if total == 0 {
		return 1
	}
	pages := int(total) / perPage
	if int(total)%perPage != 0 {
		pages++
	}
	return pages
}

// GetClientIP determines the actual client IP address considering proxies
// and dual stack. Returns both IPv4 and IPv6 addresses if available.
func GetClientIP(c *fiber.Ctx) (string, string) {
	ipv4 := ""
	ipv6 := ""

	// Cloudflare puts the original client IP in its own header
	cfIP := c.Get("CF-Connecting-IP")
	if cfIP != "" {
		if strings.Contains(cfIP, ":") {
			ipv6 = cfIP
		} else {
			ipv4 = cfIP
		}
		return ipv4, ipv6
	}

	// X-Forwarded-For can contain a list of IPs - the first one is the
	// original client IP
	xff := c.Get("X-Forwarded-For")
	if xff != "" {
		clientIP := strings.TrimSpace(strings.Split(xff, ",")[0])
		if strings.Contains(clientIP, ":") {
			ipv6 = clientIP
		} else {
			ipv4 = clientIP
		}
		return ipv4, ipv6
	}

	ipAddr := c.IP()
	if strings.Contains(ipAddr, ":") {
		// IPv4 in IPv6 mapping (::ffff:192.168.1.1)
		if strings.HasPrefix(ipAddr, "::ffff:") && strings.Contains(ipAddr, ".") {
			ipv4 = strings.TrimPrefix(ipAddr, "::ffff:")
		} else {
			ipv6 = ipAddr
		}
	} else {
		ipv4 = ipAddr
	}

	return ipv4, ipv6
}

var validate = validator.New()
