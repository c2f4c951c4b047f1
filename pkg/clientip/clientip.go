// Package clientip resolves the client address of an HTTP request, honoring
// only the proxy headers the deployment trusts.
package clientip

import (
	"net"
	"net/http"
	"strings"
)

// ProxyHeaders is a common trusted set for deployments behind a reverse proxy.
var ProxyHeaders = []string{"X-Forwarded-For", "X-Real-IP"}

// GetIP returns the normalized client IP. The trusted headers are checked in
// order; list-valued headers such as X-Forwarded-For yield their first valid
// address. RemoteAddr is the fallback. It returns "" when nothing parses.
func GetIP(r *http.Request, trustedHeaders ...string) string {
	for _, name := range trustedHeaders {
		value := r.Header.Get(name)
		if value == "" {
			continue
		}
		for ip := range strings.SplitSeq(value, ",") {
			if parsed := parseIP(ip); parsed != "" {
				return parsed
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

func parseIP(ipStr string) string {
	ip := net.ParseIP(strings.TrimSpace(ipStr))
	if ip == nil {
		return ""
	}
	return ip.String()
}
