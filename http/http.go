// Package http implements the HTTP side of bookchat: the search backend
// client, a plain page fetcher for statically rendered sites, and sitemap
// discovery.
package http

import (
	"net"
	"net/url"
)

// SearchPort is the port the search backend listens on.
const SearchPort = "8000"

// SearchURL derives the search endpoint from the URL of the page hosting
// the widget: plain HTTP on the page's hostname, port 8000, path /search.
// A page URL without a host resolves to localhost.
func SearchURL(pageURL string) (string, error) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return "", err
	}

	host := u.Hostname()
	if host == "" {
		host = "localhost"
	}

	endpoint := url.URL{
		Scheme: "http",
		Host:   net.JoinHostPort(host, SearchPort),
		Path:   "/search",
	}
	return endpoint.String(), nil
}
