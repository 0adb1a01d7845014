package utils

import (
	"net/http"
	"net/url"
	"strings"
)

// SafeRedirectTarget validates a user-supplied redirect target. The target is
// honored only when it resolves to the request's own host over http or https;
// anything else falls back to the given default. This keeps the "next"
// parameter from being abused as an open redirect.
func SafeRedirectTarget(target string, req *http.Request, fallback string) string {
	if target == "" {
		return fallback
	}

	// Protocol-relative URLs ("//evil.example") parse as relative but
	// redirect off-host.
	if strings.HasPrefix(target, "//") {
		return fallback
	}

	// Browsers normalize backslashes to slashes, so "/\evil.example" acts
	// like a protocol-relative URL even though it parses as a path here.
	if strings.ContainsRune(target, '\\') {
		return fallback
	}

	u, err := url.Parse(target)
	if err != nil {
		return fallback
	}

	if u.IsAbs() {
		if u.Scheme != "http" && u.Scheme != "https" {
			return fallback
		}
		if u.Host != req.Host {
			return fallback
		}
		return target
	}

	if !strings.HasPrefix(u.Path, "/") {
		return fallback
	}

	return target
}
