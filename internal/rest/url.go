package rest

import (
	"strconv"
	"strings"

	"github.com/habtools/habctl/internal/config"
)

// SplitSchemeHost separates an optional scheme prefix from a host string.
// "https://hab.local" yields ("https", "hab.local"); a bare host yields
// ("http", host). Pure parsing, no validation.
func SplitSchemeHost(host string) (string, string) {
	if idx := strings.Index(host, "://"); idx >= 0 {
		return host[:idx], host[idx+len("://"):]
	}
	return "http", host
}

// ResolveBaseURL composes the scheme+authority portion of the server
// address from configuration. Credentials are embedded in the authority
// only when a username is configured; a password alone is ignored. The
// port suffix is omitted for port 80. Malformed input is passed through
// unchanged, the function is total over its inputs.
func ResolveBaseURL(cfg *config.Config) string {
	scheme, host := SplitSchemeHost(cfg.Host)

	auth := ""
	if cfg.Username != "" {
		auth = cfg.Username
		if cfg.Password != "" {
			auth += ":" + cfg.Password
		}
		auth += "@"
	}

	port := ""
	if cfg.Port != 80 {
		port = ":" + strconv.Itoa(cfg.Port)
	}

	return scheme + "://" + auth + host + port
}

// BuildURL resolves a path against a base URL. A path that already starts
// with "http" is treated as absolute and returned unchanged; anything else
// is appended to base. An optional query fragment fills the first literal
// "%s" token in the result, with only the first space of the fragment
// escaped as "%20" — a quirk preserved from the Basic UI link format, not
// a general URL encoder.
func BuildURL(base, pathOrURL string, query ...string) string {
	u := pathOrURL
	if !strings.HasPrefix(u, "http") {
		u = base + u
	}

	if len(query) > 0 {
		fragment := strings.Replace(query[0], " ", "%20", 1)
		u = strings.Replace(u, "%s", fragment, 1)
	}

	return u
}
