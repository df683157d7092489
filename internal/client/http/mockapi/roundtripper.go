// Package mockapi serves storefront API calls in-process so a client can run
// without a network listener.
package mockapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
)

type roundTripper struct {
	handler http.Handler
	next    http.RoundTripper
}

// NewRoundTripper answers requests whose path contains /api/ with handler and
// forwards everything else to next unchanged. A nil next means
// http.DefaultTransport.
func NewRoundTripper(handler http.Handler, next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &roundTripper{handler: handler, next: next}
}

func (rt *roundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if !strings.Contains(req.URL.Path, "/api/") {
		return rt.next.RoundTrip(req)
	}
	if req.Body != nil {
		defer req.Body.Close() //nolint:errcheck
	}

	in := req.Clone(req.Context())
	in.RequestURI = req.URL.RequestURI()
	if in.Host == "" {
		in.Host = req.URL.Host
	}

	rec := httptest.NewRecorder()
	rt.handler.ServeHTTP(rec, in)

	if err := req.Context().Err(); err != nil {
		return nil, err
	}

	resp := rec.Result()
	resp.Request = req
	return resp, nil
}
