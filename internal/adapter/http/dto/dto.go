package dto

import (
	"irispay/internal/core/domain"
	"irispay/internal/core/ports"
)

// LoginRequest is the request body for iris login. When Simulate is true the
// server picks a random scanner pattern itself, mirroring the sensor-free
// demo scanner; a simulated scan never matches a seeded credential.
type LoginRequest struct {
	IrisSample string `json:"iris_sample" binding:"required_without=Simulate,omitempty,max=512"`
	Simulate   bool   `json:"simulate,omitempty"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token       string       `json:"token"`
	TokenExpiry int64        `json:"token_expiry"` // Unix timestamp
	User        UserResponse `json:"user"`
}

// UserResponse is the public projection of a user. Credential digests are
// never serialized.
type UserResponse struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	FullName       string `json:"full_name"`
	AccountBalance string `json:"account_balance"`
	UserType       string `json:"user_type"`
	CreatedAt      string `json:"created_at"`
}

// CreatePaymentRequest is the request body for a merchant payment request.
type CreatePaymentRequest struct {
	ClientID    string `json:"client_id" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	Description string `json:"description,omitempty" binding:"max=255"`
}

// TransactionResponse is the response body for transaction results.
type TransactionResponse struct {
	ID            string `json:"id"`
	TransactionID string `json:"transaction_id"`
	ClientID      string `json:"client_id"`
	MerchantID    string `json:"merchant_id"`
	Amount        string `json:"amount"`
	Status        string `json:"status"`
	Description   string `json:"description,omitempty"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

// SettlementResponse reports the post-settlement state to the approving
// client.
type SettlementResponse struct {
	Transaction     TransactionResponse `json:"transaction"`
	ClientBalance   string              `json:"client_balance"`
	MerchantBalance string              `json:"merchant_balance"`
}

// MerchantSettingsResponse is the merchant's business profile.
type MerchantSettingsResponse struct {
	MerchantID            string `json:"merchant_id"`
	BusinessName          string `json:"business_name"`
	BusinessCategory      string `json:"business_category"`
	DailyTransactionLimit string `json:"daily_transaction_limit"`
}

// DashboardStatsResponse aggregates a user's history for the dashboard.
type DashboardStatsResponse struct {
	TotalTransactions int64  `json:"total_transactions"`
	Pending           int64  `json:"pending"`
	Successful        int64  `json:"successful"`
	Rejected          int64  `json:"rejected"`
	Failed            int64  `json:"failed"`
	SettledVolume     string `json:"settled_volume"`
}

// TransactionListResponse wraps a transaction listing.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}

// ClientListResponse wraps the clients a merchant can bill.
type ClientListResponse struct {
	Clients []UserResponse `json:"clients"`
}

const timeLayout = "2006-01-02T15:04:05Z07:00"

// FromUser converts a domain user to its public projection.
func FromUser(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		FullName:       u.FullName,
		AccountBalance: u.AccountBalance.StringFixed(2),
		UserType:       string(u.UserType),
		CreatedAt:      u.CreatedAt.Format(timeLayout),
	}
}

// FromTransaction converts a domain transaction.
func FromTransaction(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            t.ID,
		TransactionID: t.TransactionID,
		ClientID:      t.ClientID,
		MerchantID:    t.MerchantID,
		Amount:        t.Amount.StringFixed(2),
		Status:        string(t.Status),
		Description:   t.Description,
		CreatedAt:     t.CreatedAt.Format(timeLayout),
		UpdatedAt:     t.UpdatedAt.Format(timeLayout),
	}
}

// FromTransactions converts a listing.
func FromTransactions(txns []domain.Transaction) TransactionListResponse {
	out := TransactionListResponse{
		Transactions: make([]TransactionResponse, 0, len(txns)),
		Total:        len(txns),
	}
	for i := range txns {
		out.Transactions = append(out.Transactions, FromTransaction(&txns[i]))
	}
	return out
}

// FromSettlement converts a settlement result.
func FromSettlement(r *ports.SettlementResult) SettlementResponse {
	return SettlementResponse{
		Transaction:     FromTransaction(r.Transaction),
		ClientBalance:   r.ClientBalance.StringFixed(2),
		MerchantBalance: r.MerchantBalance.StringFixed(2),
	}
}

// FromMerchantSettings converts a business profile.
func FromMerchantSettings(s *domain.MerchantSettings) MerchantSettingsResponse {
	return MerchantSettingsResponse{
		MerchantID:            s.MerchantID,
		BusinessName:          s.BusinessName,
		BusinessCategory:      s.BusinessCategory,
		DailyTransactionLimit: s.DailyTransactionLimit.StringFixed(2),
	}
}

// FromStats converts dashboard aggregates.
func FromStats(s *ports.DashboardStats) DashboardStatsResponse {
	return DashboardStatsResponse{
		TotalTransactions: s.TotalTransactions,
		Pending:           s.Pending,
		Successful:        s.Successful,
		Rejected:          s.Rejected,
		Failed:            s.Failed,
		SettledVolume:     s.SettledVolume.StringFixed(2),
	}
}
