// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] intended for
// [chi.Mux.MethodNotAllowed].
//
// The RemoteStorage endpoint reports every failure as an empty HTTP 500, so
// a method the router does not serve is answered with 500 instead of chi's
// default 405. When the router does serve the method for the path, the
// request is forwarded to its normal pipeline.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		w.WriteHeader(http.StatusInternalServerError)
	}
}
