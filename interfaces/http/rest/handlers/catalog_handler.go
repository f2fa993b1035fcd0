package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"novena-backend/application/services"
	"novena-backend/domain/novena"
	"novena-backend/pkg/common"
)

// CatalogHandler serves the novena catalog.
type CatalogHandler struct {
	catalog *services.CatalogService
	logger  *zap.Logger
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(catalog *services.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// CatalogResponse wraps the catalog entries.
type CatalogResponse struct {
	Novenas []novena.Entry `json:"novenas"`
	Count   int            `json:"count"`
}

// List handles GET /api/v1/novenas. By default it serves the cached
// catalog; ?refresh=true forces a fetch from the remote store first.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	var catalog novena.Catalog
	if r.URL.Query().Get("refresh") == "true" {
		catalog = h.catalog.Refresh(r.Context())
	} else {
		catalog = h.catalog.GetCached(r.Context())
	}

	common.RespondJSON(w, http.StatusOK, CatalogResponse{
		Novenas: catalog,
		Count:   len(catalog),
	})
}
