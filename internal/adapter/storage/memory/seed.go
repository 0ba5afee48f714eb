package memory

import (
	"time"

	"irispay/internal/core/domain"
	"irispay/internal/core/ports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Demo user ids, referenced by the seeded transactions and settings.
const (
	SeedAliceID = "1"
	SeedBobID   = "2"
	SeedCafeID  = "3"
)

// Demo credential samples. Hashing one of these must resolve to the
// corresponding seeded user.
const (
	SeedAliceSample = "alice"
	SeedBobSample   = "bob"
	SeedCafeSample  = "cafe"
)

// Seed inserts fixtures directly, without publishing change notifications.
// It is meant to run at process start before any observer subscribes.
func (s *Store) Seed(users []domain.User, transactions []domain.Transaction, settings []domain.MerchantSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range users {
		u := users[i]
		if _, exists := s.users[u.ID]; exists {
			continue
		}
		s.users[u.ID] = &u
		s.userOrder = append(s.userOrder, u.ID)
	}
	for i := range transactions {
		t := transactions[i]
		if _, exists := s.txIndex[t.ID]; exists {
			continue
		}
		s.transactions = append(s.transactions, &t)
		s.txIndex[t.ID] = &t
	}
	for i := range settings {
		st := settings[i]
		s.settings[st.MerchantID] = &st
	}
}

// SeedDemo loads the fixture the demo ships with: two clients, one merchant,
// a few settled historical transactions and the café's business profile.
// Iris digests are derived from the demo samples so that logging in with
// "alice", "bob" or "cafe" works out of the box.
func SeedDemo(store *Store, hashSvc ports.HashService) {
	now := time.Now().UTC()

	users := []domain.User{
		{
			ID:             SeedAliceID,
			Email:          "alice@demo.com",
			FullName:       "Alice Johnson",
			IrisHash:       hashSvc.Digest(SeedAliceSample),
			AccountBalance: decimal.NewFromFloat(5000.00),
			UserType:       domain.UserTypeClient,
			PinHash:        hashSvc.Digest("1234"),
			CreatedAt:      time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:             SeedBobID,
			Email:          "bob@demo.com",
			FullName:       "Bob Smith",
			IrisHash:       hashSvc.Digest(SeedBobSample),
			AccountBalance: decimal.NewFromFloat(3500.00),
			UserType:       domain.UserTypeClient,
			PinHash:        hashSvc.Digest(""),
			CreatedAt:      time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:             SeedCafeID,
			Email:          "cafe@demo.com",
			FullName:       "City Café Terminal",
			IrisHash:       hashSvc.Digest(SeedCafeSample),
			AccountBalance: decimal.NewFromFloat(15000.00),
			UserType:       domain.UserTypeMerchant,
			CreatedAt:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	history := func(age time.Duration, ref, clientID string, amount float64, desc string) domain.Transaction {
		ts := now.Add(-age)
		return domain.Transaction{
			ID:            uuid.NewString(),
			TransactionID: ref,
			ClientID:      clientID,
			MerchantID:    SeedCafeID,
			Amount:        decimal.NewFromFloat(amount),
			Status:        domain.TransactionStatusSuccess,
			Description:   desc,
			CreatedAt:     ts,
			UpdatedAt:     ts,
		}
	}

	transactions := []domain.Transaction{
		history(2*time.Hour, "TXN20241003-123456", SeedAliceID, 25.50, "Coffee and pastry"),
		history(5*time.Hour, "TXN20241003-234567", SeedBobID, 18.75, "Lunch special"),
		history(24*time.Hour, "TXN20241003-345678", SeedAliceID, 42.00, "Dinner"),
	}

	settings := []domain.MerchantSettings{
		{
			ID:                    "m1",
			MerchantID:            SeedCafeID,
			BusinessName:          "City Café",
			BusinessCategory:      "Food & Beverage",
			DailyTransactionLimit: decimal.NewFromFloat(25000.00),
		},
	}

	store.Seed(users, transactions, settings)
}
