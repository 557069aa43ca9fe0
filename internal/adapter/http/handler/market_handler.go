package handler

import (
	"strconv"

	"craft-economy/internal/adapter/http/dto"
	"craft-economy/internal/core/domain"
	"craft-economy/internal/core/ports"
	"craft-economy/pkg/apperror"
	"craft-economy/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MarketHandler exposes trade request and delivery operations.
type MarketHandler struct {
	market ports.Market
}

// NewMarketHandler creates a new MarketHandler.
func NewMarketHandler(market ports.Market) *MarketHandler {
	return &MarketHandler{market: market}
}

// CreateRequest handles POST /api/v1/market/requests.
func (h *MarketHandler) CreateRequest(c *gin.Context) {
	var req dto.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	requester, err := uuid.Parse(req.Requester)
	if err != nil {
		response.Error(c, apperror.Validation("invalid requester id"))
		return
	}

	created, err := h.market.CreateRequest(
		c.Request.Context(),
		domain.RequestType(req.Type),
		requester,
		itemStackFromDTO(req.Item),
		req.Price,
	)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, tradeRequestDTO(created))
}

// ListRequests handles GET /api/v1/market/requests.
func (h *MarketHandler) ListRequests(c *gin.Context) {
	open := h.market.ListOpenRequests()
	out := make([]dto.TradeRequestResponse, 0, len(open))
	for _, r := range open {
		out = append(out, tradeRequestDTO(r))
	}
	response.OK(c, out)
}

// WithdrawRequest handles DELETE /api/v1/market/requests/:id.
func (h *MarketHandler) WithdrawRequest(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, apperror.Validation("invalid request id"))
		return
	}

	var req dto.WithdrawRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	requester, err := uuid.Parse(req.Requester)
	if err != nil {
		response.Error(c, apperror.Validation("invalid requester id"))
		return
	}

	withdrawn, err := h.market.WithdrawRequest(c.Request.Context(), id, requester)
	if err != nil {
		response.Error(c, err)
		return
	}
	if withdrawn == nil {
		// Already gone, e.g. fulfilled concurrently. Not an error.
		response.OK(c, gin.H{"withdrawn": false})
		return
	}

	response.OK(c, gin.H{"withdrawn": true, "request": tradeRequestDTO(*withdrawn)})
}

// FulfillRequest handles POST /api/v1/market/requests/:id/fulfill.
func (h *MarketHandler) FulfillRequest(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, apperror.Validation("invalid request id"))
		return
	}

	var req dto.FulfillRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	fulfiller, err := uuid.Parse(req.Fulfiller)
	if err != nil {
		response.Error(c, apperror.Validation("invalid fulfiller id"))
		return
	}

	items := make([]domain.ItemStack, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, itemStackFromDTO(it))
	}

	outcome, err := h.market.FulfillRequest(c.Request.Context(), id, fulfiller, items)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FulfillResponse{Outcome: outcome.String()})
}

// GetDeliveries handles GET /api/v1/market/deliveries/:recipient.
func (h *MarketHandler) GetDeliveries(c *gin.Context) {
	recipient, err := uuid.Parse(c.Param("recipient"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid recipient id"))
		return
	}

	pending := h.market.GetDeliveries(recipient)
	out := make([]dto.ItemStackDTO, 0, len(pending))
	for _, it := range pending {
		out = append(out, itemStackDTO(it))
	}
	response.OK(c, out)
}

// ClaimDeliveries handles POST /api/v1/market/deliveries/:recipient/claim.
func (h *MarketHandler) ClaimDeliveries(c *gin.Context) {
	recipient, err := uuid.Parse(c.Param("recipient"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid recipient id"))
		return
	}

	claimed, err := h.market.ClaimDeliveries(c.Request.Context(), recipient)
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.ItemStackDTO, 0, len(claimed))
	for _, it := range claimed {
		out = append(out, itemStackDTO(it))
	}
	response.OK(c, out)
}

func itemStackFromDTO(d dto.ItemStackDTO) domain.ItemStack {
	return domain.ItemStack{
		Kind:     domain.Kind(d.Kind),
		Quantity: d.Quantity,
		Meta:     d.Meta,
	}
}

func itemStackDTO(it domain.ItemStack) dto.ItemStackDTO {
	return dto.ItemStackDTO{
		Kind:     string(it.Kind),
		Quantity: it.Quantity,
		Meta:     it.Meta,
	}
}

func tradeRequestDTO(r domain.TradeRequest) dto.TradeRequestResponse {
	return dto.TradeRequestResponse{
		ID:        r.ID,
		Type:      string(r.Type),
		Requester: r.Requester.String(),
		Item:      itemStackDTO(r.Item),
		Price:     r.Price,
	}
}
