package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const defaultRobotsDirectives = "noindex, nofollow"

// baseContentSecurityPolicy allows the admin pages their own scripts and
// styles and lets the help popup load fragments from the same origin.
var baseContentSecurityPolicy = []string{
	"default-src 'self'",
	"img-src 'self' data:",
	"style-src 'self' 'unsafe-inline'",
	"object-src 'none'",
	"base-uri 'self'",
	"form-action 'self'",
	"frame-ancestors 'self'",
}

func buildContentSecurityPolicy(extra ...string) string {
	directives := make([]string, 0, len(baseContentSecurityPolicy)+len(extra))
	directives = append(directives, baseContentSecurityPolicy...)
	for _, directive := range extra {
		if directive = strings.TrimSpace(directive); directive != "" {
			directives = append(directives, directive)
		}
	}
	return strings.Join(directives, "; ")
}

func SecurityHeadersMiddleware(extraPolicy ...string) gin.HandlerFunc {
	policy := buildContentSecurityPolicy(extraPolicy...)

	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "SAMEORIGIN")
		c.Header("Cross-Origin-Opener-Policy", "same-origin")
		c.Header("Cross-Origin-Resource-Policy", "same-origin")
		if c.Request.TLS != nil {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}
		c.Header("Content-Security-Policy", policy)
		c.Header("Referrer-Policy", "same-origin")
		c.Next()
	}
}

// NoIndexMiddleware keeps admin pages out of search engines.
func NoIndexMiddleware(directives ...string) gin.HandlerFunc {
	value := defaultRobotsDirectives

	cleaned := make([]string, 0, len(directives))
	for _, directive := range directives {
		if directive = strings.TrimSpace(directive); directive != "" {
			cleaned = append(cleaned, directive)
		}
	}
	if len(cleaned) > 0 {
		value = strings.Join(cleaned, ", ")
	}

	return func(c *gin.Context) {
		c.Header("X-Robots-Tag", value)
		c.Next()
	}
}
