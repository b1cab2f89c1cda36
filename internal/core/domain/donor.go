package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Donor holds donor identity and the running total of donations attributed to them.
// TotalDonation is a stored denormalization kept in sync with donation writes by the
// donation service; it is adjusted in the same database transaction as the donation
// record so the two cannot drift apart on a partial failure.
type Donor struct {
	DonorID          string          `json:"donorID"`
	Name             string          `json:"name"`
	Phone            string          `json:"phone"` // unique business key
	Email            *string         `json:"email,omitempty"`
	Address          *string         `json:"address,omitempty"`
	Occupation       *string         `json:"occupation,omitempty"`
	TotalDonation    decimal.Decimal `json:"totalDonation"`
	LastDonationDate *time.Time      `json:"lastDonationDate,omitempty"`
	AuditFields
}

// AnonymousDonorName is shown publicly when a donation's donor record is missing.
const AnonymousDonorName = "Anonymous"

// MaskDonorName obscures a donor name for the public donation feed.
// Names longer than two characters keep the first two and last characters;
// shorter names keep only the first. An empty name becomes Anonymous.
func MaskDonorName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return AnonymousDonorName
	}
	runes := []rune(name)
	if len(runes) > 2 {
		return string(runes[:2]) + "****" + string(runes[len(runes)-1:])
	}
	return string(runes[:1]) + "****"
}
