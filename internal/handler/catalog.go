package handler

import (
	"net/http"

	"sayyara-vehicle-api/internal/catalog"
	"sayyara-vehicle-api/internal/model"
)

type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// ListBrands returns the canonical brands with their display names, for UI
// pickers.
func (h *CatalogHandler) ListBrands(w http.ResponseWriter, r *http.Request) {
	brands := h.catalog.Brands()

	infos := make([]model.BrandInfo, 0, len(brands))
	for _, b := range brands {
		infos = append(infos, model.BrandInfo{
			Token:     b.Token,
			DisplayEN: b.DisplayEN,
			DisplayAR: b.DisplayAR,
		})
	}

	writeJSON(w, http.StatusOK, model.BrandsResponse{
		Brands: infos,
		Total:  len(infos),
	})
}
