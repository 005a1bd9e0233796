package handlers

import (
	"net/http"

	"textanalysis/application/services"
	"textanalysis/domain/text"
	apperrors "textanalysis/pkg/errors"

	"go.uber.org/zap"
)

// SentimentHandler handles POST /analyze/sentiment
type SentimentHandler struct {
	base
	service *services.SentimentService
}

// NewSentimentHandler creates a new sentiment handler
func NewSentimentHandler(
	service *services.SentimentService,
	errorHandler *apperrors.ErrorHandler,
	maxBodyBytes int64,
	logger *zap.Logger,
) *SentimentHandler {
	return &SentimentHandler{
		base:    newBase(errorHandler, maxBodyBytes, logger),
		service: service,
	}
}

// SentimentRequest represents the request body for sentiment analysis
type SentimentRequest struct {
	Text string `json:"text" validate:"required"`
}

// SentimentResponse echoes the text next to its score
type SentimentResponse struct {
	Text string `json:"text"`
	text.SentimentResult
}

// Analyze handles POST /analyze/sentiment
func (h *SentimentHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req SentimentRequest
	if err := h.decode(w, r, &req, "Text is required"); err != nil {
		h.errHandler.Handle(w, r, err)
		return
	}

	result, err := h.service.Analyze(r.Context(), req.Text)
	if err != nil {
		h.errHandler.Handle(w, r, err)
		return
	}

	h.respond(w, r, SentimentResponse{Text: req.Text, SentimentResult: result})
}
