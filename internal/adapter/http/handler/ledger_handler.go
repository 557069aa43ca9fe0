package handler

import (
	"strconv"

	"craft-economy/internal/adapter/http/dto"
	"craft-economy/internal/core/ports"
	"craft-economy/pkg/apperror"
	"craft-economy/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LedgerHandler exposes balance operations.
type LedgerHandler struct {
	ledger ports.Ledger
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledger ports.Ledger) *LedgerHandler {
	return &LedgerHandler{ledger: ledger}
}

// GetBalance handles GET /api/v1/balances/:id.
func (h *LedgerHandler) GetBalance(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid identity id"))
		return
	}

	amount := h.ledger.GetBalance(c.Request.Context(), id)
	response.OK(c, dto.BalanceResponse{Identity: id.String(), Amount: amount})
}

// Top handles GET /api/v1/balances/top.
func (h *LedgerHandler) Top(c *gin.Context) {
	n := 10
	if raw := c.Query("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			response.Error(c, apperror.Validation("n must be a positive integer"))
			return
		}
		n = parsed
	}

	ranks, err := h.ledger.Top(c.Request.Context(), n)
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.BalanceResponse, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, dto.BalanceResponse{Identity: r.Identity.String(), Amount: r.Amount})
	}
	response.OK(c, out)
}

// SetBalance handles PUT /api/v1/balances/:id (admin).
func (h *LedgerHandler) SetBalance(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid identity id"))
		return
	}

	var req dto.SetBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	h.ledger.SetBalance(c.Request.Context(), id, req.Amount)
	amount := h.ledger.GetBalance(c.Request.Context(), id)
	response.OK(c, dto.BalanceResponse{Identity: id.String(), Amount: amount})
}

// AdjustBalance handles POST /api/v1/balances/:id/adjust (admin).
func (h *LedgerHandler) AdjustBalance(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid identity id"))
		return
	}

	var req dto.AdjustBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	h.ledger.AddBalance(c.Request.Context(), id, req.Delta)
	amount := h.ledger.GetBalance(c.Request.Context(), id)
	response.OK(c, dto.BalanceResponse{Identity: id.String(), Amount: amount})
}

// RemoveIdentity handles DELETE /api/v1/balances/:id (admin).
func (h *LedgerHandler) RemoveIdentity(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid identity id"))
		return
	}

	h.ledger.RemoveIdentity(c.Request.Context(), id)
	response.OK(c, gin.H{"removed": id.String()})
}

// Transfer handles POST /api/v1/transfers.
func (h *LedgerHandler) Transfer(c *gin.Context) {
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	from, err := uuid.Parse(req.From)
	if err != nil {
		response.Error(c, apperror.Validation("invalid payer id"))
		return
	}
	to, err := uuid.Parse(req.To)
	if err != nil {
		response.Error(c, apperror.Validation("invalid payee id"))
		return
	}

	if err := h.ledger.Pay(c.Request.Context(), from, to, req.Amount); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{
		"from":   from.String(),
		"to":     to.String(),
		"amount": req.Amount,
	})
}
