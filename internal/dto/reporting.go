package dto

import (
	"github.com/shantodev/temple_donation_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardStatsResponse carries the headline figures of the dashboard.
type DashboardStatsResponse struct {
	TotalFunds          decimal.Decimal `json:"totalFunds"`
	TotalDonors         int64           `json:"totalDonors"`
	BestDonor           *DonorResponse  `json:"bestDonor,omitempty"`
	ThisMonthCollection decimal.Decimal `json:"thisMonthCollection"`
}

// ChartPointResponse is one labelled point of the 12-month series,
// e.g. {"name": "Sep 2026", "total": 12500}.
type ChartPointResponse struct {
	Name  string          `json:"name"`
	Total decimal.Decimal `json:"total"`
}

// DashboardResponse is the full dashboard payload.
type DashboardResponse struct {
	Stats           DashboardStatsResponse `json:"stats"`
	RecentDonations []DonationResponse     `json:"recentDonations"`
	ChartData       []ChartPointResponse   `json:"chartData"`
}

// ToDashboardStatsResponse converts domain.DashboardStats to its DTO.
func ToDashboardStatsResponse(s *domain.DashboardStats) DashboardStatsResponse {
	resp := DashboardStatsResponse{
		TotalFunds:          s.TotalFunds,
		TotalDonors:         s.TotalDonors,
		ThisMonthCollection: s.ThisMonthCollection,
	}
	if s.BestDonor != nil {
		best := ToDonorResponse(s.BestDonor)
		resp.BestDonor = &best
	}
	return resp
}
