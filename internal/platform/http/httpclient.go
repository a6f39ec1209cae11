// Package http provides HTTP plumbing shared by the upstream clients.
package http

import (
	"net"
	"net/http"
	"time"
)

// maxIdleConnsPerHost matches MaxIdleConns: every upstream call goes to the same host.
const maxIdleConnsPerHost = 100

// NewHTTPClient creates the client used for upstream API calls.
//
// http.DefaultClient has no timeout, so callers always pass one. The transport
// keeps a pool of idle connections to the single upstream host and bounds
// dialing and TLS handshakes separately from the overall request timeout.
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:   true,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: maxIdleConnsPerHost,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
