package clientip

import (
	"net"
	"net/http"
	"strings"
)

// Headers consulted, in order, when proxy headers are trusted.
var proxyHeaders = []string{"CF-Connecting-IP", "X-Forwarded-For", "X-Real-IP"}

// GetIP returns the normalized client address of r. Proxy headers are only
// read when trustProxy is set; a client talking to the server directly
// could otherwise pick any address it likes. Returns "" when nothing
// parses.
func GetIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		for _, h := range proxyHeaders {
			// X-Forwarded-For lists the original client first
			for ip := range strings.SplitSeq(r.Header.Get(h), ",") {
				if parsed := parseIP(ip); parsed != "" {
					return parsed
				}
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

func parseIP(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}
	return ip.String()
}
