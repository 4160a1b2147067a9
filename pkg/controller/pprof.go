package controller

import (
	"net/http"
	"net/http/pprof"
	"strings"
)

// DefaultPprofPrefix is where the API server mounts the profiling endpoints.
const DefaultPprofPrefix = "/debug/pprof/"

// PprofMux returns an http.ServeMux with net/http/pprof handlers registered
// under prefix. Named profiles (heap, goroutine, allocs, ...) are served by
// the index handler, which expects the "/debug/pprof/" prefix.
func PprofMux(prefix string) *http.ServeMux {
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	mux := http.NewServeMux()

	mux.HandleFunc(prefix, pprof.Index)
	mux.HandleFunc(prefix+"cmdline", pprof.Cmdline)
	mux.HandleFunc(prefix+"profile", pprof.Profile)
	mux.HandleFunc(prefix+"symbol", pprof.Symbol)
	mux.HandleFunc(prefix+"trace", pprof.Trace)

	return mux
}
