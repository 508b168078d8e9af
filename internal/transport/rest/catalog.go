package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/langportal-backend/internal/domain"
	"github.com/samber/lo"
)

// catalogService defines the catalog reads exposed over REST.
type catalogService interface {
	ListGroups(ctx context.Context) ([]domain.Group, error)
}

// CatalogHandler serves the word catalog endpoints.
type CatalogHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: logger.With("handler", "catalog")}
}

// ListGroups handles GET /groups.
func (h *CatalogHandler) ListGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.svc.ListGroups(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, lo.Map(groups, toGroupResponse))
}
