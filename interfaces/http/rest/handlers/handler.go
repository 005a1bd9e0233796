package handlers

import (
	"errors"
	"net/http"

	"textanalysis/pkg/common"
	apperrors "textanalysis/pkg/errors"
	"textanalysis/pkg/utils"

	"go.uber.org/zap"
)

const invalidBodyMessage = "Invalid JSON body"

// base carries what every handler needs to decode requests and report errors
type base struct {
	errHandler   *apperrors.ErrorHandler
	maxBodyBytes int64
	logger       *zap.Logger
}

func newBase(errorHandler *apperrors.ErrorHandler, maxBodyBytes int64, logger *zap.Logger) base {
	if maxBodyBytes <= 0 {
		maxBodyBytes = common.DefaultMaxBodyBytes
	}
	return base{
		errHandler:   errorHandler,
		maxBodyBytes: maxBodyBytes,
		logger:       logger,
	}
}

// decode parses the JSON body into req and checks its validate tags. A
// missing required field is reported with requiredMessage.
func (b base) decode(w http.ResponseWriter, r *http.Request, req interface{}, requiredMessage string) error {
	if err := common.ParseJSONBody(w, r, req, b.maxBodyBytes); err != nil {
		if errors.Is(err, common.ErrInvalidBody) {
			return apperrors.NewValidationError(invalidBodyMessage).WithCause(err)
		}
		return err
	}

	if err := utils.ValidateStruct(req); err != nil {
		var validationErr *utils.ValidationError
		if errors.As(err, &validationErr) && validationErr.Has("required") {
			return apperrors.NewValidationError(requiredMessage).WithCause(err)
		}
		return apperrors.NewValidationError(err.Error()).WithCause(err)
	}

	return nil
}

func (b base) respond(w http.ResponseWriter, r *http.Request, data interface{}) {
	if err := common.RespondJSON(w, http.StatusOK, data); err != nil {
		b.logger.Error("Failed to encode response",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
}
