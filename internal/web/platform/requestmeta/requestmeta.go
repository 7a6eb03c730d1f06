// Package requestmeta provides normalized request metadata helpers.
package requestmeta

import (
	"net/http"
	"net/url"
	"strings"
)

// IsHTTPS reports whether a request should be treated as HTTPS.
//
// Only the request URL and TLS state are consulted; forwarded-proto headers
// from untrusted clients are ignored.
func IsHTTPS(r *http.Request) bool {
	return requestScheme(r) == "https"
}

// HasSameOriginProof reports whether Origin or Referer proves same-origin.
func HasSameOriginProof(r *http.Request) bool {
	if r == nil {
		return false
	}
	scheme, host, port := requestOriginParts(r)
	if host == "" {
		return false
	}
	if origin := strings.TrimSpace(r.Header.Get("Origin")); origin != "" {
		return sameOriginHostPort(origin, scheme, host, port)
	}
	if referer := strings.TrimSpace(r.Header.Get("Referer")); referer != "" {
		return sameOriginHostPort(referer, scheme, host, port)
	}
	return false
}

func sameOriginHostPort(raw, requestScheme, requestHost, requestPort string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	originScheme := strings.ToLower(strings.TrimSpace(parsed.Scheme))
	if originScheme == "" {
		return false
	}
	if requestScheme != "" && originScheme != requestScheme {
		return false
	}
	originHost := strings.ToLower(strings.TrimSpace(parsed.Hostname()))
	if originHost == "" || originHost != requestHost {
		return false
	}
	originPort := strings.TrimSpace(parsed.Port())
	if originPort == "" {
		originPort = defaultPortForScheme(originScheme)
	}
	if requestPort == "" {
		requestPort = defaultPortForScheme(requestScheme)
	}
	if originPort == "" || requestPort == "" {
		return false
	}
	return originPort == requestPort
}

func requestOriginParts(r *http.Request) (string, string, string) {
	scheme := requestScheme(r)
	host, port := requestHostParts(r.Host)
	if host == "" && r.URL != nil {
		host, port = requestHostParts(r.URL.Host)
	}
	if port == "" {
		port = defaultPortForScheme(scheme)
	}
	return scheme, host, port
}

func requestScheme(r *http.Request) string {
	if r == nil {
		return ""
	}
	if r.URL != nil {
		if scheme := strings.ToLower(strings.TrimSpace(r.URL.Scheme)); scheme == "http" || scheme == "https" {
			return scheme
		}
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

func defaultPortForScheme(scheme string) string {
	switch scheme {
	case "https":
		return "443"
	case "http":
		return "80"
	default:
		return ""
	}
}

func requestHostParts(rawHost string) (string, string) {
	parsed, err := url.Parse("//" + strings.TrimSpace(rawHost))
	if err != nil {
		return "", ""
	}
	return strings.ToLower(strings.TrimSpace(parsed.Hostname())), strings.TrimSpace(parsed.Port())
}
