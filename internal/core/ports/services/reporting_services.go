package services

import (
	"context"

	"github.com/shantodev/temple_donation_app/internal/dto"
)

// ReportingSvcFacade assembles the admin dashboard payload.
type ReportingSvcFacade interface {
	GetDashboard(ctx context.Context) (*dto.DashboardResponse, error)
}
