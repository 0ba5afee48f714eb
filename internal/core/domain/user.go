package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserType determines which dashboard a user sees and which operations
// they may perform.
type UserType string

const (
	UserTypeClient   UserType = "client"
	UserTypeMerchant UserType = "merchant"
)

// User is an account in the demo ledger. The iris digest stands in for a
// biometric template and is the sole login credential; PinHash is a reserved
// secondary factor that is stored but never checked.
type User struct {
	ID             string          `json:"id"`
	Email          string          `json:"email"`
	FullName       string          `json:"full_name"`
	IrisHash       string          `json:"-"` // credential lookup key, never exposed
	AccountBalance decimal.Decimal `json:"account_balance"`
	UserType       UserType        `json:"user_type"`
	PinHash        string          `json:"-"` // reserved, unused
	CreatedAt      time.Time       `json:"created_at"`
}

// IsClient reports whether the user may approve or reject payment requests.
func (u *User) IsClient() bool {
	return u.UserType == UserTypeClient
}

// IsMerchant reports whether the user may create payment requests.
func (u *User) IsMerchant() bool {
	return u.UserType == UserTypeMerchant
}

// Clone returns a defensive copy so callers cannot mutate store state
// through a returned pointer.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}
