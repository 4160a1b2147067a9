package controller

import (
	"net/http"
	"slices"
)

// AnyOrigin allows every origin when listed in CORSOptions.AllowedOrigins.
const AnyOrigin = "*"

// CORSOptions configures WithCORS.
type CORSOptions struct {
	// AllowedOrigins lists the origins allowed to call the API. AnyOrigin
	// allows all of them. An empty list behaves like []string{AnyOrigin}.
	AllowedOrigins []string
}

func (o CORSOptions) allowOrigin(origin string) (string, bool) {
	if len(o.AllowedOrigins) == 0 || slices.Contains(o.AllowedOrigins, AnyOrigin) {
		// credentials are not allowed together with a literal "*", so a known
		// origin is echoed back instead
		if origin != "" {
			return origin, true
		}

		return AnyOrigin, true
	}

	if origin != "" && slices.Contains(o.AllowedOrigins, origin) {
		return origin, true
	}

	return "", false
}

// WithCORS returns a middleware that sets CORS headers for allowed origins on
// every response and short-circuits OPTIONS preflight requests with 204 No Content.
func WithCORS(next http.Handler, opts CORSOptions) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Origin")

		if origin, ok := opts.allowOrigin(r.Header.Get("Origin")); ok {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Headers",
				"Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Request-Id")
			w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, PATCH, DELETE")
		}

		// handle preflight requests quickly
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)

			return
		}

		next.ServeHTTP(w, r)
	})
}
