package httpapi

import (
	"net"
	"net/http"
	"strings"
)

var clientIPHeaders = []string{"X-Forwarded-For", "X-Real-IP"}

// clientIP picks the first parseable address from proxy headers, then RemoteAddr.
func clientIP(r *http.Request) string {
	for _, header := range clientIPHeaders {
		if ip := parseIP(r.Header.Get(header)); ip != "" {
			return ip
		}
	}
	return parseIP(r.RemoteAddr)
}

func parseIP(raw string) string {
	first, _, _ := strings.Cut(raw, ",")
	value := strings.TrimSpace(first)
	if host, _, err := net.SplitHostPort(value); err == nil {
		value = host
	}
	if parsed := net.ParseIP(value); parsed != nil {
		return parsed.String()
	}
	return ""
}
