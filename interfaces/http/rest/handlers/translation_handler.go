package handlers

import (
	"net/http"

	"textanalysis/application/services"
	apperrors "textanalysis/pkg/errors"

	"go.uber.org/zap"
)

// TranslationHandler handles POST /translate
type TranslationHandler struct {
	base
	service *services.TranslationService
}

// NewTranslationHandler creates a new translation handler
func NewTranslationHandler(
	service *services.TranslationService,
	errorHandler *apperrors.ErrorHandler,
	maxBodyBytes int64,
	logger *zap.Logger,
) *TranslationHandler {
	return &TranslationHandler{
		base:    newBase(errorHandler, maxBodyBytes, logger),
		service: service,
	}
}

// TranslateRequest represents the request body for a translation
type TranslateRequest struct {
	Text           string `json:"text" validate:"required"`
	TargetLanguage string `json:"targetLanguage" validate:"required"`
}

// Translate handles POST /translate. API failures are reported in a 200
// body, never as an HTTP error.
func (h *TranslationHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req TranslateRequest
	if err := h.decode(w, r, &req, "Text and targetLanguage are required"); err != nil {
		h.errHandler.Handle(w, r, err)
		return
	}

	h.respond(w, r, h.service.Translate(r.Context(), req.Text, req.TargetLanguage))
}
