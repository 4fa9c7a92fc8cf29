package handler

import (
	"net/http"
	"strconv"

	"github.com/DerickDu/ks-backend/internal/domain"
	"github.com/DerickDu/ks-backend/internal/service"
)

// ReportHandler serves the aggregate reporting endpoints, entity detail
// lookups, the health check, and the API index.
type ReportHandler struct {
	svc        *service.ReportService
	appName    string
	appVersion string
}

// NewReportHandler creates a new report handler.
func NewReportHandler(svc *service.ReportService, appName, appVersion string) *ReportHandler {
	return &ReportHandler{svc: svc, appName: appName, appVersion: appVersion}
}

// Index returns API metadata.
// GET /
func (h *ReportHandler) Index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"name":        h.appName,
		"version":     h.appVersion,
		"description": "Entity reporting API over hierarchical catalog classification",
		"endpoints": map[string]string{
			"total_entities":     "/api/entities/count",
			"entities_by_domain": "/api/entities/count-by-domain",
			"domains_tree":       "/api/entities/domains-tree",
			"entities_tree":      "/api/entities-tree",
			"entity_detail":      "/api/entity-detail/entity",
			"entity_sources":     "/api/entity-detail/entity-sources",
		},
	}, http.StatusOK)
}

// Health reports service and database status.
// GET /health
func (h *ReportHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{
		"status":    "healthy",
		"app_name":  h.appName,
		"db_status": h.svc.DBStatus(r.Context()),
	}, http.StatusOK)
}

// TotalEntities returns the total entity count.
// GET /api/entities/count
func (h *ReportHandler) TotalEntities(w http.ResponseWriter, r *http.Request) {
	total, err := h.svc.TotalEntities(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, map[string]int64{"total_entities": total}, http.StatusOK)
}

// EntitiesByDomain returns entity counts grouped by domain.
// GET /api/entities/count-by-domain
func (h *ReportHandler) EntitiesByDomain(w http.ResponseWriter, r *http.Request) {
	counts, err := h.svc.EntitiesByDomain(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, counts, http.StatusOK)
}

// Entity returns the full record for one entity.
// GET /api/entity-detail/entity?entity_id=<int>
func (h *ReportHandler) Entity(w http.ResponseWriter, r *http.Request) {
	entityID, err := entityIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	entity, err := h.svc.Entity(r.Context(), entityID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, map[string]*domain.Entity{"entity": entity}, http.StatusOK)
}

// EntitySources returns the data sources mapped to one entity.
// GET /api/entity-detail/entity-sources?entity_id=<int>
func (h *ReportHandler) EntitySources(w http.ResponseWriter, r *http.Request) {
	entityID, err := entityIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	sources, err := h.svc.EntitySources(r.Context(), entityID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, map[string][]domain.EntitySource{"sources": sources}, http.StatusOK)
}

func entityIDParam(r *http.Request) (int64, error) {
	raw := r.URL.Query().Get("entity_id")
	if raw == "" {
		return 0, domain.NewValidationError("missing required parameter: entity_id")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.NewValidationError("entity_id must be an integer")
	}
	return id, nil
}
