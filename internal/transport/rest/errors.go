package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/langportal-backend/internal/domain"
	"github.com/heartmarshall/langportal-backend/pkg/ctxutil"
	"github.com/samber/lo"
)

// errorStatus maps an error to its HTTP status and code. Causes are checked
// before the generic sentinels they may be wrapped with.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrOutOfOrderResponse):
		return http.StatusConflict, "OUT_OF_ORDER"
	case errors.Is(err, domain.ErrSessionAlreadyComplete):
		return http.StatusConflict, "SESSION_COMPLETE"
	case errors.Is(err, domain.ErrSessionNotComplete):
		return http.StatusConflict, "SESSION_NOT_COMPLETE"
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, "CONFLICT"
	case errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusConflict, "ALREADY_EXISTS"
	case errors.Is(err, domain.ErrEmptyCatalog):
		return http.StatusUnprocessableEntity, "EMPTY_CATALOG"
	case errors.Is(err, domain.ErrCatalogUnavailable):
		return http.StatusServiceUnavailable, "CATALOG_UNAVAILABLE"
	case errors.Is(err, domain.ErrEvaluationFailed):
		return http.StatusBadGateway, "EVALUATION_FAILED"
	case errors.Is(err, domain.ErrPersistence):
		return http.StatusServiceUnavailable, "PERSISTENCE"
	default:
		return http.StatusInternalServerError, "INTERNAL"
	}
}

// handleError writes the error response for err. Unexpected errors are
// logged and hidden from the client.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	status, code := errorStatus(err)

	if status == http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "internal error",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		writeError(w, status, code, "internal server error")
		return
	}
	if status >= 500 {
		log.WarnContext(r.Context(), "upstream failure",
			slog.String("code", code),
			slog.String("error", err.Error()),
		)
	}

	resp := errorResponse{Error: err.Error(), Code: code}
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		resp.Fields = lo.Map(ve.Errors, func(fe domain.FieldError, _ int) fieldErrorDTO {
			return fieldErrorDTO{Field: fe.Field, Message: fe.Message}
		})
	}
	writeJSON(w, status, resp)
}

// warningCode names a non-fatal error returned next to a successful result.
func warningCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrPersistence):
		return "PERSISTENCE"
	case errors.Is(err, domain.ErrGradingUnavailable):
		return "GRADING_UNAVAILABLE"
	default:
		return "WARNING"
	}
}
