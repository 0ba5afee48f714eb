package domain

import "github.com/shopspring/decimal"

// MerchantSettings is the one-to-one business profile of a merchant user.
// DailyTransactionLimit is stored for display but not enforced anywhere.
type MerchantSettings struct {
	ID                    string          `json:"id"`
	MerchantID            string          `json:"merchant_id"`
	BusinessName          string          `json:"business_name"`
	BusinessCategory      string          `json:"business_category"`
	DailyTransactionLimit decimal.Decimal `json:"daily_transaction_limit"`
}

// Clone returns a defensive copy.
func (s *MerchantSettings) Clone() *MerchantSettings {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
