package handlers

import (
	"net/http"

	"textanalysis/application/services"
	apperrors "textanalysis/pkg/errors"

	"go.uber.org/zap"
)

// TextHandler handles the synchronous text endpoints
type TextHandler struct {
	base
	service *services.TextService
}

// NewTextHandler creates a new text handler
func NewTextHandler(
	service *services.TextService,
	errorHandler *apperrors.ErrorHandler,
	maxBodyBytes int64,
	logger *zap.Logger,
) *TextHandler {
	return &TextHandler{
		base:    newBase(errorHandler, maxBodyBytes, logger),
		service: service,
	}
}

// StatsRequest represents the request body for text statistics
type StatsRequest struct {
	Text string `json:"text" validate:"required"`
}

// TransformOptions holds optional transform parameters
type TransformOptions struct {
	TargetCase string `json:"targetCase,omitempty"`
}

// TransformRequest represents the request body for a transformation
type TransformRequest struct {
	Text      string            `json:"text" validate:"required"`
	Operation string            `json:"operation" validate:"required"`
	Options   *TransformOptions `json:"options,omitempty"`
}

// ValidateRequest represents the request body for a validation check
type ValidateRequest struct {
	Text string `json:"text" validate:"required"`
	Type string `json:"type" validate:"required"`
}

// Stats handles POST /analyze/stats
func (h *TextHandler) Stats(w http.ResponseWriter, r *http.Request) {
	var req StatsRequest
	if err := h.decode(w, r, &req, "Text is required"); err != nil {
		h.errHandler.Handle(w, r, err)
		return
	}

	h.respond(w, r, h.service.Stats(req.Text))
}

// Transform handles POST /transform
func (h *TextHandler) Transform(w http.ResponseWriter, r *http.Request) {
	var req TransformRequest
	if err := h.decode(w, r, &req, "Text and operation are required"); err != nil {
		h.errHandler.Handle(w, r, err)
		return
	}

	var targetCase string
	if req.Options != nil {
		targetCase = req.Options.TargetCase
	}

	result, err := h.service.Transform(req.Text, req.Operation, targetCase)
	if err != nil {
		h.errHandler.Handle(w, r, err)
		return
	}

	h.respond(w, r, result)
}

// Validate handles POST /validate
func (h *TextHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := h.decode(w, r, &req, "Text and type are required"); err != nil {
		h.errHandler.Handle(w, r, err)
		return
	}

	result, err := h.service.Validate(req.Text, req.Type)
	if err != nil {
		h.errHandler.Handle(w, r, err)
		return
	}

	h.respond(w, r, result)
}
