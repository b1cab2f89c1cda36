package services

import (
	portsrepo "github.com/shantodev/temple_donation_app/internal/core/ports/repositories"
	portssvc "github.com/shantodev/temple_donation_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The activity service comes first since every mutating service records
	// audit entries through it.
	container.Activity = NewActivityService(repos.ActivityLogRepo)

	container.Donor = NewDonorService(repos.DonorRepo, container.Activity)
	container.Donation = NewDonationService(repos.DonationRepo, repos.DonorRepo, container.Activity)
	container.PaymentMethod = NewPaymentMethodService(repos.PaymentMethodRepo, container.Activity)
	container.User = NewUserService(repos.UserRepo, container.Activity)
	container.Reporting = NewReportingService(repos.ReportingRepo, repos.DonationRepo)

	return container
}
