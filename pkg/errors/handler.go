package errors

import (
	"encoding/json"
	"fmt"
	"net/http"

	"textanalysis/pkg/common"

	"go.uber.org/zap"
)

// ErrorResponse is the body written for every error
type ErrorResponse struct {
	Error string `json:"error"`
}

const internalMessage = "Internal server error"

// ErrorHandler handles errors and sends appropriate HTTP responses
type ErrorHandler struct {
	logger *zap.Logger
	debug  bool
}

// NewErrorHandler creates a new error handler. In debug mode stack traces of
// internal errors are logged.
func NewErrorHandler(logger *zap.Logger, debug bool) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
		debug:  debug,
	}
}

// Handle processes an error and sends an HTTP response
func (h *ErrorHandler) Handle(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	status := http.StatusInternalServerError
	message := internalMessage

	appErr := GetAppError(err)
	if appErr != nil {
		if appErr.HTTPStatus != 0 {
			status = appErr.HTTPStatus
		}
		// Only client errors carry their message to the caller.
		if status < 500 {
			message = appErr.Message
		}
	}

	h.logError(r, err, appErr, status)
	h.sendJSON(w, status, ErrorResponse{Error: message})
}

// logError logs an error with a level matching its status
func (h *ErrorHandler) logError(r *http.Request, err error, appErr *AppError, status int) {
	fields := []zap.Field{
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", status),
	}
	if requestID, ok := common.GetRequestID(r.Context()); ok {
		fields = append(fields, zap.String("request_id", requestID))
	}

	msg := "Unhandled error"
	if appErr != nil {
		msg = appErr.Message
		fields = append(fields, zap.String("error_type", string(appErr.Type)))
		if appErr.Cause != nil {
			fields = append(fields, zap.Error(appErr.Cause))
		}
		if h.debug && appErr.StackTrace != "" {
			fields = append(fields, zap.String("stack_trace", appErr.StackTrace))
		}
	} else {
		fields = append(fields, zap.Error(err))
	}

	switch {
	case status >= 500:
		h.logger.Error(msg, fields...)
	case status >= 400:
		h.logger.Warn(msg, fields...)
	default:
		h.logger.Info(msg, fields...)
	}
}

// sendJSON sends a JSON response
func (h *ErrorHandler) sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode error response", zap.Error(err))
	}
}

// Middleware returns an HTTP middleware that recovers panics into a 500
func (h *ErrorHandler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				h.Handle(w, r, NewInternalError(fmt.Sprintf("panic: %v", rec)))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
