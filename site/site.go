// Package site adapts the static documentation site to bookchat. It loads
// pages for navigation, renders them for a terminal, and checks that the
// chat's chapter shortcuts point at pages the site actually serves.
package site

import (
	"net/url"
	"strings"

	"github.com/fwojciec/bookchat"
)

// resolve joins path onto the site base URL.
func resolve(baseURL, path string) (string, error) {
	if baseURL == "" {
		return "", bookchat.Errorf(bookchat.EINVALID, "site URL required")
	}
	base, err := url.Parse(baseURL)
	if err != nil || base.Host == "" {
		return "", bookchat.Errorf(bookchat.EINVALID, "invalid site URL %q", baseURL)
	}
	ref, err := url.Parse(path)
	if err != nil {
		return "", bookchat.Errorf(bookchat.EINVALID, "invalid page path %q", path)
	}
	return base.ResolveReference(ref).String(), nil
}

// normalizePath strips the trailing slash so "/docs/intro/" matches "/docs/intro".
func normalizePath(p string) string {
	p = strings.TrimSuffix(p, "/")
	if p == "" {
		return "/"
	}
	return p
}
