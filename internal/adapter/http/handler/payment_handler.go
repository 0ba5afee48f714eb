package handler

import (
	"irispay/internal/adapter/http/dto"
	"irispay/internal/adapter/http/middleware"
	"irispay/internal/core/ports"
	"irispay/pkg/apperror"
	"irispay/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// PaymentHandler handles the payment request lifecycle.
type PaymentHandler struct {
	paymentSvc ports.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentSvc ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc}
}

// CreatePaymentRequest handles POST /api/v1/payments. The authenticated
// merchant raises a pending payment request addressed to a client.
func (h *PaymentHandler) CreatePaymentRequest(c *gin.Context) {
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		response.Error(c, apperror.ErrInvalidAmount())
		return
	}

	txn, err := h.paymentSvc.CreatePaymentRequest(c.Request.Context(), ports.CreatePaymentRequest{
		MerchantID:  c.GetString(middleware.CtxUserID),
		ClientID:    req.ClientID,
		Amount:      amount,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.FromTransaction(txn))
}

// ApproveTransaction handles POST /api/v1/payments/:id/approve. The
// authenticated client settles the pending request addressed to them.
func (h *PaymentHandler) ApproveTransaction(c *gin.Context) {
	result, err := h.paymentSvc.ApproveTransaction(c.Request.Context(), c.Param("id"), c.GetString(middleware.CtxUserID))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FromSettlement(result))
}

// RejectTransaction handles POST /api/v1/payments/:id/reject.
func (h *PaymentHandler) RejectTransaction(c *gin.Context) {
	txn, err := h.paymentSvc.RejectTransaction(c.Request.Context(), c.Param("id"), c.GetString(middleware.CtxUserID))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FromTransaction(txn))
}
