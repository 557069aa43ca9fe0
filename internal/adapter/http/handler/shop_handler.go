package handler

import (
	"craft-economy/internal/adapter/http/dto"
	"craft-economy/internal/core/domain"
	"craft-economy/internal/core/ports"
	"craft-economy/pkg/apperror"
	"craft-economy/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ShopHandler exposes direct catalog trades.
type ShopHandler struct {
	shop ports.Shop
}

// NewShopHandler creates a new ShopHandler.
func NewShopHandler(shop ports.Shop) *ShopHandler {
	return &ShopHandler{shop: shop}
}

// Buy handles POST /api/v1/shop/buy.
func (h *ShopHandler) Buy(c *gin.Context) {
	player, kind, quantity, ok := h.bindTrade(c)
	if !ok {
		return
	}

	receipt, err := h.shop.Buy(c.Request.Context(), player, kind, quantity)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, receipt)
}

// Sell handles POST /api/v1/shop/sell.
func (h *ShopHandler) Sell(c *gin.Context) {
	player, kind, quantity, ok := h.bindTrade(c)
	if !ok {
		return
	}

	receipt, err := h.shop.Sell(c.Request.Context(), player, kind, quantity)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, receipt)
}

func (h *ShopHandler) bindTrade(c *gin.Context) (uuid.UUID, domain.ItemKind, int, bool) {
	var req dto.ShopTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return uuid.Nil, "", 0, false
	}

	player, err := uuid.Parse(req.Player)
	if err != nil {
		response.Error(c, apperror.Validation("invalid player id"))
		return uuid.Nil, "", 0, false
	}

	return player, domain.Kind(req.Kind), req.Quantity, true
}
