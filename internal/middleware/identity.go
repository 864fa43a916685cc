package middleware

import "github.com/labstack/echo/v4"

// clientID identifies the caller for rate limiting: the authenticated
// subject when JWTAuth ran, otherwise the client IP.
func clientID(c echo.Context) string {
	if s, ok := c.Get("user_id").(string); ok && s != "" {
		return "user:" + s
	}
	ip := c.RealIP()
	if ip == "" {
		ip = "unknown"
	}
	return "ip:" + ip
}
