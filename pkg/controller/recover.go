package controller

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"

	"bangsafe/pkg/logger"
)

// WithRecover returns a middleware that turns a handler panic into a logged
// 500 response carrying body.
func WithRecover(next http.Handler, body []byte) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.Error(r.Context(), "Handler panicked",
				zap.String("panic", fmt.Sprint(rec)),
				zap.ByteString("stack", debug.Stack()),
			)

			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write(body)
		}()

		next.ServeHTTP(w, r)
	})
}
