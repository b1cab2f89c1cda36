package handlers_test

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"github.com/shantodev/temple_donation_app/internal/core/domain"
	portssvc "github.com/shantodev/temple_donation_app/internal/core/ports/services"
	"github.com/shantodev/temple_donation_app/internal/dto"
	"github.com/shantodev/temple_donation_app/internal/handlers"
	"github.com/shantodev/temple_donation_app/pkg/config"
)

const (
	testJWTSecret  = "test-secret-key-that-is-long-enough"
	testCookieName = "token"
)

// testConfig returns the configuration used by the handler test routers.
// IsProduction skips the swagger routes.
func testConfig() *config.Config {
	return &config.Config{
		Port:              "8080",
		IsProduction:      true,
		JWTSecret:         testJWTSecret,
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "tdm-test",
		AuthCookieName:    testCookieName,
	}
}

// newTestRouter wires a gin engine with the full route table over mock services.
func newTestRouter(services *portssvc.ServiceContainer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handlers.RegisterRoutes(router, testConfig(), services)
	return router
}

// --- Mock DonorSvcFacade ---

type MockDonorService struct {
	mock.Mock
}

var _ portssvc.DonorSvcFacade = (*MockDonorService)(nil)

func (m *MockDonorService) CreateDonor(ctx context.Context, req dto.CreateDonorRequest) (*domain.Donor, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donor), args.Error(1)
}

func (m *MockDonorService) GetDonorByID(ctx context.Context, donorID string) (*domain.Donor, error) {
	args := m.Called(ctx, donorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donor), args.Error(1)
}

func (m *MockDonorService) ListDonors(ctx context.Context, search string, page, limit int) ([]domain.Donor, int64, error) {
	args := m.Called(ctx, search, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Donor), args.Get(1).(int64), args.Error(2)
}

func (m *MockDonorService) ListAllDonors(ctx context.Context) ([]domain.Donor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Donor), args.Error(1)
}

func (m *MockDonorService) UpdateDonor(ctx context.Context, donorID string, req dto.UpdateDonorRequest) (*domain.Donor, error) {
	args := m.Called(ctx, donorID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donor), args.Error(1)
}

func (m *MockDonorService) DeleteDonor(ctx context.Context, donorID string) error {
	args := m.Called(ctx, donorID)
	return args.Error(0)
}

// --- Mock DonationSvcFacade ---

type MockDonationService struct {
	mock.Mock
}

var _ portssvc.DonationSvcFacade = (*MockDonationService)(nil)

func (m *MockDonationService) CreateDonation(ctx context.Context, req dto.CreateDonationRequest) (*domain.Donation, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donation), args.Error(1)
}

func (m *MockDonationService) GetDonationByID(ctx context.Context, donationID string) (*domain.Donation, error) {
	args := m.Called(ctx, donationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donation), args.Error(1)
}

func (m *MockDonationService) ListDonations(ctx context.Context, page, limit int) ([]domain.Donation, int64, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Donation), args.Get(1).(int64), args.Error(2)
}

func (m *MockDonationService) ListRecentDonations(ctx context.Context, limit int) ([]domain.Donation, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Donation), args.Error(1)
}

func (m *MockDonationService) UpdateDonation(ctx context.Context, donationID string, req dto.UpdateDonationRequest) (*domain.Donation, error) {
	args := m.Called(ctx, donationID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donation), args.Error(1)
}

func (m *MockDonationService) DeleteDonation(ctx context.Context, donationID string) error {
	args := m.Called(ctx, donationID)
	return args.Error(0)
}

// --- Mock PaymentMethodSvcFacade ---

type MockPaymentMethodService struct {
	mock.Mock
}

var _ portssvc.PaymentMethodSvcFacade = (*MockPaymentMethodService)(nil)

func (m *MockPaymentMethodService) CreatePaymentMethod(ctx context.Context, req dto.CreatePaymentMethodRequest) (*domain.PaymentMethod, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodService) GetPaymentMethodByID(ctx context.Context, methodID string) (*domain.PaymentMethod, error) {
	args := m.Called(ctx, methodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodService) ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodService) ListActivePaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodService) UpdatePaymentMethod(ctx context.Context, methodID string, req dto.UpdatePaymentMethodRequest) (*domain.PaymentMethod, error) {
	args := m.Called(ctx, methodID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodService) DeletePaymentMethod(ctx context.Context, methodID string) error {
	args := m.Called(ctx, methodID)
	return args.Error(0)
}

// --- Mock UserSvcFacade ---

type MockUserService struct {
	mock.Mock
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

func (m *MockUserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) CreateStaff(ctx context.Context, req dto.CreateAdminRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) ListStaff(ctx context.Context, search string) ([]domain.User, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserService) UpdateStaff(ctx context.Context, userID string, req dto.UpdateAdminRequest) (*domain.User, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) DeleteStaff(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserService) EnsureSuperAdmin(ctx context.Context, name, email, password string) error {
	args := m.Called(ctx, name, email, password)
	return args.Error(0)
}

// --- Mock ActivitySvcFacade ---

type MockActivityService struct {
	mock.Mock
}

var _ portssvc.ActivitySvcFacade = (*MockActivityService)(nil)

func (m *MockActivityService) Record(ctx context.Context, action domain.ActivityAction, target, details string) {
	m.Called(ctx, action, target, details)
}

func (m *MockActivityService) ListLogs(ctx context.Context, search string, page, limit int) ([]domain.ActivityLog, int64, error) {
	args := m.Called(ctx, search, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.ActivityLog), args.Get(1).(int64), args.Error(2)
}

// --- Mock ReportingSvcFacade ---

type MockReportingService struct {
	mock.Mock
}

var _ portssvc.ReportingSvcFacade = (*MockReportingService)(nil)

func (m *MockReportingService) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DashboardResponse), args.Error(1)
}
