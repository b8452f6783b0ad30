package handler

import (
	"net/http"
	"time"

	"sayyara-vehicle-api/internal/catalog"
	"sayyara-vehicle-api/internal/model"
	"sayyara-vehicle-api/internal/resolver"
)

type HealthHandler struct {
	catalog *catalog.Catalog
	cache   *resolver.Cache
}

func NewHealthHandler(cat *catalog.Catalog, cache *resolver.Cache) *HealthHandler {
	return &HealthHandler{
		catalog: cat,
		cache:   cache,
	}
}

// Check reports service status with catalog and cache sizes.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	brands, models := h.catalog.Size()

	writeJSON(w, http.StatusOK, model.HealthResponse{
		Status:       "ok",
		Brands:       brands,
		Models:       models,
		CacheEntries: h.cache.Len(),
		Timestamp:    time.Now(),
	})
}
