package handler

import (
	"craft-economy/internal/adapter/http/dto"
	"craft-economy/internal/core/domain"
	"craft-economy/internal/core/ports"
	"craft-economy/pkg/apperror"
	"craft-economy/pkg/response"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes price catalog operations.
type CatalogHandler struct {
	catalog ports.PriceCatalog
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalog ports.PriceCatalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListCategories handles GET /api/v1/catalog/categories.
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	response.OK(c, h.catalog.ListCategories())
}

// CategoryEntries handles GET /api/v1/catalog/categories/:category.
func (h *CatalogHandler) CategoryEntries(c *gin.Context) {
	entries := h.catalog.BuyableByCategory(c.Param("category"))
	out := make([]dto.PriceEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, priceEntryDTO(e))
	}
	response.OK(c, out)
}

// GetPrice handles GET /api/v1/catalog/prices/:kind.
func (h *CatalogHandler) GetPrice(c *gin.Context) {
	raw := c.Param("kind")
	entry, ok := h.catalog.GetPrice(domain.Kind(raw))
	if !ok {
		response.Error(c, apperror.ErrUnknownItemKind(raw))
		return
	}
	response.OK(c, priceEntryDTO(entry))
}

// Normalize handles POST /api/v1/catalog/normalize (admin).
func (h *CatalogHandler) Normalize(c *gin.Context) {
	changed, err := h.catalog.Normalize(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NormalizeResponse{Changed: changed})
}

func priceEntryDTO(e domain.PriceEntry) dto.PriceEntryResponse {
	return dto.PriceEntryResponse{
		Kind:     string(e.Kind),
		Buy:      e.Buy,
		Sell:     e.Sell,
		Category: e.Category,
	}
}
