// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"
)

// methodNotAllowed returns the router's MethodNotAllowed handler. It answers
// 405 with an Allow header listing the methods registered for the route
// whose pattern equals the request path; when no such route exists it
// answers 404.
//
// Usage:
//
//	router.MethodNotAllowed(methodNotAllowed(router))
func methodNotAllowed(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				w.Header().Set("Allow", allowedMethods(route))
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			for _, sub := range subRoutes(route) {
				if sub.Pattern == r.URL.Path {
					w.Header().Set("Allow", allowedMethods(sub))
					w.WriteHeader(http.StatusMethodNotAllowed)
					return
				}
			}
		}

		w.WriteHeader(http.StatusNotFound)
	}
}

// subRoutes lists the routes of a mounted sub-router with their full
// patterns.
func subRoutes(route chi.Route) []chi.Route {
	if route.SubRoutes == nil {
		return nil
	}

	prefix := strings.TrimSuffix(route.Pattern, "/*")
	routes := route.SubRoutes.Routes()
	out := make([]chi.Route, 0, len(routes))
	for _, sub := range routes {
		sub.Pattern = prefix + sub.Pattern
		out = append(out, sub)
	}
	return out
}

func allowedMethods(route chi.Route) string {
	methods := make([]string, 0, len(route.Handlers))
	for method := range route.Handlers {
		if method != "*" {
			methods = append(methods, method)
		}
	}
	slices.Sort(methods)
	return strings.Join(methods, ", ")
}
