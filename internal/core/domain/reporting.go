package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyTotal is one point of the 12-month donation time series.
type MonthlyTotal struct {
	Year  int             `json:"year"`
	Month time.Month      `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// DashboardStats aggregates the figures shown on the admin dashboard.
type DashboardStats struct {
	TotalFunds          decimal.Decimal `json:"totalFunds"`
	TotalDonors         int64           `json:"totalDonors"`
	BestDonor           *Donor          `json:"bestDonor,omitempty"`
	ThisMonthCollection decimal.Decimal `json:"thisMonthCollection"`
}
