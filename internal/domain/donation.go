package domain

import (
	"time"

	"github.com/google/uuid"
)

type DonationStatus string

const (
	DonationPending   DonationStatus = "pending"
	DonationCompleted DonationStatus = "completed"
)

// Donation is peripheral to the matching core: payment capture and signature
// verification live in the payment collaborator, which reports completion
// back via the API-key guarded callback.
type Donation struct {
	ID          uuid.UUID      `json:"id"`
	Payer       uuid.UUID      `json:"payer"`
	Amount      int64          `json:"amount"` // smallest currency unit
	Status      DonationStatus `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
}

type DonationTotals struct {
	Count  int64 `json:"count"`
	Amount int64 `json:"amount"`
}
