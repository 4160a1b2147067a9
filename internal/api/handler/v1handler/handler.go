// Package v1handler implements v1specs.Handler on top of the scanner and maps
// failures to {"code", "message"} bodies by semantic error kind.
package v1handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/ogen-go/ogen/middleware"
	"github.com/ogen-go/ogen/ogenerrors"
	"github.com/ogen-go/ogen/validate"
	"go.uber.org/zap"

	"bangsafe/internal/api/specs/v1specs"
	"bangsafe/internal/scanner"
	"bangsafe/pkg/logger"
	"bangsafe/pkg/serrors"
)

// Error codes that have no semantic kind behind them.
const (
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
)

// Deps are the collaborators of the v1 handlers.
type Deps struct {
	// Scanner scores URLs and stores reports.
	Scanner scanner.Scanner
}

type Handler struct {
	deps Deps
}

// Ensure Handler implements v1specs.Handler.
var _ v1specs.Handler = (*Handler)(nil)

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// ServerOptions routes decode failures, unknown routes and wrong methods
// through the same error bodies as handler errors.
func (h *Handler) ServerOptions() []v1specs.ServerOption {
	return []v1specs.ServerOption{
		v1specs.WithErrorHandler(h.HandleError),
		v1specs.WithNotFound(h.NotFound),
		v1specs.WithMethodNotAllowed(h.MethodNotAllowed),
		v1specs.WithMiddleware(withOperation),
	}
}

// NewError maps err to an error response by its semantic kind. Client errors
// keep their message; server errors never expose it and are logged.
func (h Handler) NewError(ctx context.Context, err error) *v1specs.ErrorStatusCode {
	status := serrors.StatusOf(err)
	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))

		return &v1specs.ErrorStatusCode{
			StatusCode: http.StatusInternalServerError,
			Response:   v1specs.Error{Code: serrors.ErrInternal.Code(), Message: "internal error"},
		}
	}

	kind := serrors.KindOf(err)
	switch kind {
	case nil:
		kind = serrors.ErrTimeout
	case serrors.ErrMalformedInput:
		kind = serrors.ErrBadRequest
	}

	logger.Debug(ctx, "request rejected", zap.Int("status_code", status), zap.Error(err))

	return &v1specs.ErrorStatusCode{
		StatusCode: status,
		Response: v1specs.Error{
			Code:    kind.Code(),
			Message: serrors.MessageOf(err, strings.ToLower(http.StatusText(status))),
		},
	}
}

// HandleError renders errors raised before a handler runs, such as bodies
// and parameters that could not be decoded.
func (h Handler) HandleError(ctx context.Context, w http.ResponseWriter, _ *http.Request, err error) {
	writeError(w, h.NewError(ctx, classify(err)))
}

// NotFound answers requests for unknown routes.
func (h Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, h.NewError(r.Context(), serrors.With(serrors.ErrNotFound, "route not found")))
}

// MethodNotAllowed answers known routes requested with the wrong method.
func (h Handler) MethodNotAllowed(w http.ResponseWriter, _ *http.Request, allowed string) {
	w.Header().Set("Allow", allowed)
	writeError(w, &v1specs.ErrorStatusCode{
		StatusCode: http.StatusMethodNotAllowed,
		Response:   v1specs.Error{Code: CodeMethodNotAllowed, Message: "method not allowed"},
	})
}

// classify gives ogen decode failures the kind and message clients see.
func classify(err error) error {
	if serrors.KindOf(err) != nil {
		return err
	}

	var (
		tooLarge    *http.MaxBytesError
		validateErr *validate.Error
		paramErr    *ogenerrors.DecodeParamError
		paramsErr   *ogenerrors.DecodeParamsError
		requestErr  *ogenerrors.DecodeRequestError
	)
	switch {
	case errors.As(err, &tooLarge):
		return serrors.Wrap(serrors.ErrBadRequest, err, "Request body too large")
	case errors.As(err, &validateErr):
		for _, f := range validateErr.Fields {
			if errors.Is(f.Error, validate.ErrFieldRequired) {
				return serrors.Wrap(serrors.ErrBadRequest, err, "Missing %s", f.Name)
			}
		}

		return malformed(err)
	case errors.As(err, &paramErr):
		return serrors.Wrap(serrors.ErrBadRequest, err, "Invalid %s", paramErr.Name)
	case errors.As(err, &paramsErr):
		return serrors.Wrap(serrors.ErrBadRequest, err, "Invalid query parameters")
	case errors.As(err, &requestErr):
		return malformed(err)
	default:
		return serrors.Wrap(serrors.ErrInternal, err, "")
	}
}

func malformed(err error) error {
	return serrors.Wrap(serrors.ErrBadRequest, serrors.Wrap(serrors.ErrMalformedInput, err, ""), "Invalid JSON body")
}

// ErrorBody encodes an error response body outside of the ogen server.
func ErrorBody(code, message string) []byte {
	body, _ := (&v1specs.Error{Code: code, Message: message}).MarshalJSON()

	return body
}

func writeError(w http.ResponseWriter, res *v1specs.ErrorStatusCode) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(res.StatusCode)
	_, _ = w.Write(ErrorBody(res.Response.Code, res.Response.Message))
}

// withOperation tags log lines of the request with the operation id.
func withOperation(req middleware.Request, next middleware.Next) (middleware.Response, error) {
	req.Context = logger.WithFields(req.Context, zap.String("operation", req.OperationID))

	return next(req)
}
