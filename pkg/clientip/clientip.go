// Package clientip resolves the address rate limiters and logs key on.
package clientip

import (
	"net"
	"net/http"
	"strings"
)

// RealClientIP returns the client IP from r.RemoteAddr. Proxy headers are not
// read here; chi's RealIP middleware copies them into RemoteAddr (without a
// port) when the server runs behind a trusted proxy.
func RealClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return strings.TrimSpace(r.RemoteAddr)
	}
	return strings.TrimSpace(host)
}
