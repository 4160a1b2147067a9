// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the BangSafe service.
package api

import (
	_ "embed"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"bangsafe/internal/api/handler/v1handler"
	"bangsafe/internal/api/specs/v1specs"
	"bangsafe/internal/config"
	"bangsafe/internal/scanner"
	"bangsafe/pkg/controller"
	"bangsafe/pkg/serrors"
)

//go:generate go run github.com/ogen-go/ogen/cmd/ogen@v1.14.0 --target specs/v1specs --package v1specs --config specs/ogen.yml --clean specs/v1.yaml

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// DefaultMaxBodyBytes is used when Options.MaxBodyBytes is not positive.
const DefaultMaxBodyBytes = 1 << 20

// Fixed paths served next to the API routes.
const (
	SpecsPath = "/specs/v1.yaml"
	DocsPath  = "/docs/"
)

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
// Zero durations fall back to the net/http defaults.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MaxBodyBytes limits request bodies of the v1 routes.
	MaxBodyBytes int64
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// CORSOrigins lists the origins allowed by the CORS middleware.
	CORSOrigins []string
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MaxBodyBytes:      cfg.HTTP.MaxBodyBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		CORSOrigins:       cfg.HTTP.CORSOrigins,
	}
}

// Deps are the services the server routes to.
type Deps struct {
	Scanner scanner.Scanner
	// MeterProvider receives the per operation metrics of the v1 api. Optional.
	MeterProvider metric.MeterProvider
	// Gatherer backs the metrics endpoint, prometheus.DefaultGatherer when nil.
	Gatherer prometheus.Gatherer
}

// NewMeterProvider creates an OTel meter provider whose readings are exported
// through reg, so they show up on the Prometheus metrics endpoint.
func NewMeterProvider(reg prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - Prometheus metrics endpoint (MetricsPath)
// - Embedded OpenAPI v1 spec and Swagger UI
// - v1 API routes served by the generated ogen server
// - pprof endpoints for profiling
// It also wraps the mux with recovery, CORS and logging middlewares and applies a request timeout.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	if deps.Scanner == nil {
		return nil, fmt.Errorf("could not create server: %w", serrors.With(serrors.ErrInternal, "nil scanner"))
	}

	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	mux := http.NewServeMux()

	// prometheus metrics server
	mux.Handle(opts.MetricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	// v1 specs file
	mux.HandleFunc(SpecsPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	mux.Handle(DocsPath, v5emb.New(
		"BangSafe",
		SpecsPath,
		DocsPath,
	))

	// pprof
	mux.Handle(controller.DefaultPprofPrefix, controller.PprofMux(controller.DefaultPprofPrefix))

	// v1 api
	h := v1handler.New(v1handler.Deps{Scanner: deps.Scanner})
	v1Opts := h.ServerOptions()
	if deps.MeterProvider != nil {
		v1Opts = append(v1Opts, v1specs.WithMeterProvider(deps.MeterProvider))
	}
	v1Srv, err := v1specs.NewServer(h, v1Opts...)
	if err != nil {
		return nil, fmt.Errorf("could not create v1 api server: %w", err)
	}

	maxBodyBytes := opts.MaxBodyBytes
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}
	mux.Handle("/", http.MaxBytesHandler(v1Srv, maxBodyBytes))

	handler := controller.WithRecover(mux, v1handler.ErrorBody(serrors.ErrInternal.Code(), "internal error"))
	handler = controller.WithCORS(handler, controller.CORSOptions{AllowedOrigins: opts.CORSOrigins})
	handler = controller.WithLogger(handler)

	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, opts.RequestTimeout,
			string(v1handler.ErrorBody(serrors.ErrTimeout.Code(), "request timed out")))
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
