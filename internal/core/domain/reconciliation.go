package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DonorAdjustment is one aggregate change to apply to a donor alongside a
// donation write. Delta may be negative. LastDonationDate, when non-nil,
// replaces the donor's last donation date.
type DonorAdjustment struct {
	DonorID          string
	Delta            decimal.Decimal
	LastDonationDate *time.Time
}

// ReconcileCreate returns the donor adjustments for a newly recorded donation.
func ReconcileCreate(donorID string, amount decimal.Decimal, date time.Time) []DonorAdjustment {
	return []DonorAdjustment{{
		DonorID:          donorID,
		Delta:            amount,
		LastDonationDate: &date,
	}}
}

// ReconcileUpdate returns the donor adjustments for a donation whose amount or
// attribution changed. The old donor and amount must be the values captured
// before the update is persisted, never recomputed from the new record.
// When neither the donor nor the amount changed, no adjustment is returned.
func ReconcileUpdate(oldDonorID string, oldAmount decimal.Decimal, newDonorID string, newAmount decimal.Decimal, date time.Time) []DonorAdjustment {
	if oldDonorID == newDonorID {
		if oldAmount.Equal(newAmount) {
			return nil
		}
		// Same donor: the decrement and increment collapse into one delta.
		return []DonorAdjustment{{
			DonorID:          newDonorID,
			Delta:            newAmount.Sub(oldAmount),
			LastDonationDate: &date,
		}}
	}
	return []DonorAdjustment{
		{DonorID: oldDonorID, Delta: oldAmount.Neg()},
		{DonorID: newDonorID, Delta: newAmount, LastDonationDate: &date},
	}
}

// ReconcileDelete returns the donor adjustments for a deleted donation.
// No floor at zero is enforced on the resulting total.
func ReconcileDelete(donorID string, amount decimal.Decimal) []DonorAdjustment {
	return []DonorAdjustment{{
		DonorID: donorID,
		Delta:   amount.Neg(),
	}}
}
