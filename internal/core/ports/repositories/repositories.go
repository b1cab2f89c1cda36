package repositories

// RepositoryProvider bundles all repository implementations for injection into
// the service container.
type RepositoryProvider struct {
	DonorRepo         DonorRepository
	DonationRepo      DonationRepository
	PaymentMethodRepo PaymentMethodRepository
	UserRepo          UserRepository
	ActivityLogRepo   ActivityLogRepository
	ReportingRepo     ReportingRepository
}
