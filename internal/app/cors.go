package app

import (
	"net/url"
	"strings"

	"github.com/gin-contrib/cors"
)

func corsConfig(allowed []string) cors.Config {
	patterns := append([]string(nil), allowed...)
	return cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-Id"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-Id"},
		AllowCredentials: true,
		AllowOriginFunc: func(origin string) bool {
			return originAllowed(patterns, origin)
		},
	}
}

// originAllowed matches either the full origin or, for wildcard patterns, its host.
func originAllowed(patterns []string, origin string) bool {
	origin = strings.TrimRight(origin, "/")
	host := extractOriginHost(origin)
	for _, pattern := range patterns {
		if pattern == origin || matchOriginPattern(pattern, host) {
			return true
		}
	}
	return false
}

// extractOriginHost returns the "host[:port]" portion of an origin URL.
func extractOriginHost(origin string) string {
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return origin
	}
	return u.Host
}

// matchOriginPattern reports whether host matches the given wildcard pattern.
func matchOriginPattern(pattern, host string) bool {
	if pattern == host {
		return true
	}
	if strings.HasPrefix(pattern, "*.") {
		suffix := pattern[1:]
		return strings.HasSuffix(host, suffix)
	}
	if strings.HasSuffix(pattern, ":*") {
		prefix := pattern[:len(pattern)-1]
		return strings.HasPrefix(host, prefix)
	}
	return false
}
