package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// getClientIP resolves the address the rate limiter keys on. Proxy headers
// win over the socket address so users behind the load balancer are limited
// individually; header entries that do not parse as IPs are skipped rather
// than trusted.
func getClientIP(c *gin.Context) string {
	// X-Forwarded-For carries the whole proxy chain; the client is the
	// first entry that parses as an address.
	for _, part := range strings.Split(c.GetHeader("X-Forwarded-For"), ",") {
		candidate := strings.TrimSpace(part)
		if net.ParseIP(candidate) != nil {
			return candidate
		}
	}

	if xri := strings.TrimSpace(c.GetHeader("X-Real-IP")); net.ParseIP(xri) != nil {
		return xri
	}

	remote := c.Request.RemoteAddr
	if host, _, err := net.SplitHostPort(remote); err == nil {
		return host
	}
	return remote
}
