package utils

import (
	"net"
	"net/http"
	"strings"
)

func RealClientIP(r *http.Request) string {
	if xfwd := r.Header.Get("X-Forwarded-For"); xfwd != "" {
		// First entry is the originating client when proxies append.
		if idx := strings.Index(xfwd, ","); idx > 0 {
			return strings.TrimSpace(xfwd[:idx])
		}
		return xfwd
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
