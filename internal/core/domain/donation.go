package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Donation is a single contribution event, linked to exactly one donor and one
// payment method.
type Donation struct {
	DonationID      string          `json:"donationID"`
	DonorID         string          `json:"donorID"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentMethodID string          `json:"paymentMethodID"`
	TransactionID   *string         `json:"transactionID,omitempty"`
	Date            time.Time       `json:"date"`
	Note            *string         `json:"note,omitempty"`
	AddedBy         string          `json:"addedBy"` // staff user who recorded it
	AuditFields

	// Expanded references, populated on detail/list reads.
	Donor         *Donor         `json:"donor,omitempty"`
	PaymentMethod *PaymentMethod `json:"paymentMethod,omitempty"`
}
