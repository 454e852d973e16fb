// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"maps"
	"net/http"
	"net/http/httputil"
	"net/url"
	"regexp"
	"slices"

	"github.com/MKhiriev/go-dev-server/internal/bundle"
	"github.com/MKhiriev/go-dev-server/internal/logger"
)

type pathRewrite struct {
	pattern     *regexp.Regexp
	replacement string
}

// newProxy forwards requests under context to the rule's target. Path
// rewrites are applied in pattern order before the target path is joined.
// Unless ChangeOrigin is set, the original Host header is kept.
func (h *Handler) newProxy(context string, rule bundle.ProxyRule) (http.Handler, error) {
	target, err := url.Parse(rule.Target)
	if err != nil || target.Scheme == "" || target.Host == "" {
		return nil, fmt.Errorf("%w %q", ErrInvalidProxyTarget, rule.Target)
	}
	switch target.Scheme {
	case "ws":
		target.Scheme = "http"
	case "wss":
		target.Scheme = "https"
	}

	var rewrites []pathRewrite
	for _, pattern := range slices.Sorted(maps.Keys(rule.PathRewrite)) {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidRewrite, pattern, err)
		}
		rewrites = append(rewrites, pathRewrite{pattern: re, replacement: rule.PathRewrite[pattern]})
	}

	h.logger.Info().
		Str("context", context).
		Str("target", target.String()).
		Bool("change_origin", rule.ChangeOrigin).
		Msg("proxy created")

	return &httputil.ReverseProxy{
		Rewrite: func(r *httputil.ProxyRequest) {
			p := r.Out.URL.Path
			for _, rw := range rewrites {
				p = rw.pattern.ReplaceAllString(p, rw.replacement)
			}
			r.Out.URL.Path = p
			r.Out.URL.RawPath = ""

			r.SetURL(target)
			r.SetXForwarded()
			if !rule.ChangeOrigin {
				r.Out.Host = r.In.Host
			}
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			logger.FromRequest(r).Err(err).
				Str("context", context).
				Str("target", target.String()).
				Msg("proxy error")
			w.WriteHeader(http.StatusBadGateway)
		},
	}, nil
}
