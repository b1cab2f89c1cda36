package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shantodev/temple_donation_app/internal/core/domain"
	portsrepo "github.com/shantodev/temple_donation_app/internal/core/ports/repositories"
	portssvc "github.com/shantodev/temple_donation_app/internal/core/ports/services"
	"github.com/shantodev/temple_donation_app/internal/dto"
)

const (
	dashboardRecentDonations = 5
	dashboardMonths          = 12
)

// reportingService assembles the admin dashboard from aggregation queries.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	donationRepo  portsrepo.DonationRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, donationRepo portsrepo.DonationRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo, donationRepo: donationRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// GetDashboard computes the dashboard payload: headline figures, the five most
// recent donations, and the monthly time series for the last twelve months.
func (s *reportingService) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	totalFunds, err := s.reportingRepo.GetTotalFunds(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute total funds: %w", err)
	}

	totalDonors, err := s.reportingRepo.CountDonors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count donors: %w", err)
	}

	bestDonor, err := s.reportingRepo.FindBestDonor(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find best donor: %w", err)
	}

	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	thisMonth, err := s.reportingRepo.GetCollectionSince(ctx, startOfMonth)
	if err != nil {
		return nil, fmt.Errorf("failed to compute this month's collection: %w", err)
	}

	recent, err := s.donationRepo.FindRecentDonations(ctx, dashboardRecentDonations)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent donations: %w", err)
	}

	seriesStart := startOfMonth.AddDate(0, -(dashboardMonths - 1), 0)
	monthly, err := s.reportingRepo.GetMonthlyTotals(ctx, seriesStart)
	if err != nil {
		return nil, fmt.Errorf("failed to compute monthly totals: %w", err)
	}

	stats := domain.DashboardStats{
		TotalFunds:          totalFunds,
		TotalDonors:         totalDonors,
		BestDonor:           bestDonor,
		ThisMonthCollection: thisMonth,
	}

	resp := &dto.DashboardResponse{
		Stats:           dto.ToDashboardStatsResponse(&stats),
		RecentDonations: make([]dto.DonationResponse, len(recent)),
		ChartData:       make([]dto.ChartPointResponse, len(monthly)),
	}
	for i := range recent {
		resp.RecentDonations[i] = dto.ToDonationResponse(&recent[i])
	}
	for i, m := range monthly {
		label := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006")
		resp.ChartData[i] = dto.ChartPointResponse{Name: label, Total: m.Total}
	}

	return resp, nil
}
