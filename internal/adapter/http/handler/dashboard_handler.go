package handler

import (
	"irispay/internal/adapter/http/dto"
	"irispay/internal/adapter/http/middleware"
	"irispay/internal/core/domain"
	"irispay/internal/core/ports"
	"irispay/pkg/apperror"
	"irispay/pkg/response"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the authenticated read endpoints.
type DashboardHandler struct {
	authSvc      ports.AuthService
	reportingSvc ports.ReportingService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(authSvc ports.AuthService, reportingSvc ports.ReportingService) *DashboardHandler {
	return &DashboardHandler{authSvc: authSvc, reportingSvc: reportingSvc}
}

// Me handles GET /api/v1/me. It re-reads the session user so the response
// reflects balance changes since login.
func (h *DashboardHandler) Me(c *gin.Context) {
	user, err := h.authSvc.CurrentUser(c.Request.Context(), c.GetString(middleware.CtxUserID))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FromUser(user))
}

// ListTransactions handles GET /api/v1/transactions.
func (h *DashboardHandler) ListTransactions(c *gin.Context) {
	txns, err := h.reportingSvc.ListTransactions(c.Request.Context(), c.GetString(middleware.CtxUserID))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FromTransactions(txns))
}

// ListPendingTransactions handles GET /api/v1/transactions/pending. Only
// requests addressed to the authenticated client are returned.
func (h *DashboardHandler) ListPendingTransactions(c *gin.Context) {
	txns, err := h.reportingSvc.ListPendingTransactions(c.Request.Context(), c.GetString(middleware.CtxUserID))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FromTransactions(txns))
}

// GetStats handles GET /api/v1/dashboard/stats.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.reportingSvc.GetDashboardStats(c.Request.Context(), c.GetString(middleware.CtxUserID))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FromStats(stats))
}

// GetMerchantSettings handles GET /api/v1/merchants/me/settings.
func (h *DashboardHandler) GetMerchantSettings(c *gin.Context) {
	settings, err := h.reportingSvc.GetMerchantSettings(c.Request.Context(), c.GetString(middleware.CtxUserID))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FromMerchantSettings(settings))
}

// ListClients handles GET /api/v1/clients, backing the merchant's
// payment-request form. Merchant-only.
func (h *DashboardHandler) ListClients(c *gin.Context) {
	if c.GetString(middleware.CtxUserType) != string(domain.UserTypeMerchant) {
		response.Error(c, apperror.ErrForbidden("list clients"))
		return
	}

	clients, err := h.reportingSvc.ListClients(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	out := dto.ClientListResponse{Clients: make([]dto.UserResponse, 0, len(clients))}
	for i := range clients {
		out.Clients = append(out.Clients, dto.FromUser(&clients[i]))
	}

	response.OK(c, out)
}
