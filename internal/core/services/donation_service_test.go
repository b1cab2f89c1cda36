package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/shantodev/temple_donation_app/internal/apperrors"
	"github.com/shantodev/temple_donation_app/internal/core/domain"
	portssvc "github.com/shantodev/temple_donation_app/internal/core/ports/services"
	"github.com/shantodev/temple_donation_app/internal/core/services"
	"github.com/shantodev/temple_donation_app/internal/dto"
	"github.com/shantodev/temple_donation_app/internal/middleware"
)

// MockDonationRepository is a mock type for the DonationRepository interface
type MockDonationRepository struct {
	mock.Mock
}

func (m *MockDonationRepository) SaveDonation(ctx context.Context, donation domain.Donation, adjustments []domain.DonorAdjustment) error {
	args := m.Called(ctx, donation, adjustments)
	return args.Error(0)
}

func (m *MockDonationRepository) UpdateDonation(ctx context.Context, donation domain.Donation, adjustments []domain.DonorAdjustment) error {
	args := m.Called(ctx, donation, adjustments)
	return args.Error(0)
}

func (m *MockDonationRepository) DeleteDonation(ctx context.Context, donationID string, adjustments []domain.DonorAdjustment) error {
	args := m.Called(ctx, donationID, adjustments)
	return args.Error(0)
}

func (m *MockDonationRepository) FindDonationByID(ctx context.Context, donationID string) (*domain.Donation, error) {
	args := m.Called(ctx, donationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donation), args.Error(1)
}

func (m *MockDonationRepository) FindDonations(ctx context.Context, limit, offset int) ([]domain.Donation, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Donation), args.Get(1).(int64), args.Error(2)
}

func (m *MockDonationRepository) FindRecentDonations(ctx context.Context, limit int) ([]domain.Donation, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Donation), args.Error(1)
}

type DonationServiceTestSuite struct {
	suite.Suite
	mockRepo      *MockDonationRepository
	mockDonorRepo *MockDonorRepository
	mockActivity  *MockActivitySvc
	service       portssvc.DonationSvcFacade
}

func (suite *DonationServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockDonationRepository)
	suite.mockDonorRepo = new(MockDonorRepository)
	suite.mockActivity = relaxedActivity()
	suite.service = services.NewDonationService(suite.mockRepo, suite.mockDonorRepo, suite.mockActivity)
}

func (suite *DonationServiceTestSuite) authCtx(role domain.UserRole) context.Context {
	return middleware.WithAuthUser(context.Background(), &domain.AuthUser{
		UserID: uuid.NewString(),
		Name:   "Test Admin",
		Email:  "admin@example.com",
		Role:   role,
	})
}

func (suite *DonationServiceTestSuite) TestCreateDonation_Success() {
	ctx := suite.authCtx(domain.RoleCashier)
	donorID := uuid.NewString()
	req := dto.CreateDonationRequest{
		DonorID:         donorID,
		Amount:          decimal.NewFromInt(500),
		PaymentMethodID: uuid.NewString(),
	}

	suite.mockDonorRepo.On("FindDonorByID", ctx, donorID).
		Return(&domain.Donor{DonorID: donorID, Name: "Shantonu Dey"}, nil).Once()

	var savedAdjustments []domain.DonorAdjustment
	suite.mockRepo.On("SaveDonation", ctx, mock.AnythingOfType("domain.Donation"), mock.Anything).
		Run(func(args mock.Arguments) {
			savedAdjustments = args.Get(2).([]domain.DonorAdjustment)
		}).Return(nil).Once()

	donation, err := suite.service.CreateDonation(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(donation)
	suite.NotEmpty(donation.DonationID)
	suite.NotEmpty(donation.AddedBy)

	suite.Require().Len(savedAdjustments, 1)
	suite.Equal(donorID, savedAdjustments[0].DonorID)
	suite.True(savedAdjustments[0].Delta.Equal(decimal.NewFromInt(500)), "create must increment the donor total by the full amount")
	suite.Require().NotNil(savedAdjustments[0].LastDonationDate)
}

func (suite *DonationServiceTestSuite) TestCreateDonation_Unauthenticated() {
	ctx := context.Background()
	req := dto.CreateDonationRequest{
		DonorID:         uuid.NewString(),
		Amount:          decimal.NewFromInt(500),
		PaymentMethodID: uuid.NewString(),
	}

	donation, err := suite.service.CreateDonation(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(donation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveDonation", mock.Anything, mock.Anything, mock.Anything)
	suite.mockDonorRepo.AssertNotCalled(suite.T(), "FindDonorByID", mock.Anything, mock.Anything)
}

func (suite *DonationServiceTestSuite) TestCreateDonation_NonPositiveAmount() {
	ctx := suite.authCtx(domain.RoleCashier)
	req := dto.CreateDonationRequest{
		DonorID:         uuid.NewString(),
		Amount:          decimal.Zero,
		PaymentMethodID: uuid.NewString(),
	}

	donation, err := suite.service.CreateDonation(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(donation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveDonation", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DonationServiceTestSuite) TestUpdateDonation_AmountChanged() {
	ctx := suite.authCtx(domain.RoleManager)
	donationID := uuid.NewString()
	donorID := uuid.NewString()
	old := &domain.Donation{
		DonationID:      donationID,
		DonorID:         donorID,
		Amount:          decimal.NewFromInt(200),
		PaymentMethodID: uuid.NewString(),
		Date:            time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		AddedBy:         uuid.NewString(),
	}

	suite.mockRepo.On("FindDonationByID", ctx, donationID).Return(old, nil).Once()

	var adjustments []domain.DonorAdjustment
	suite.mockRepo.On("UpdateDonation", ctx, mock.AnythingOfType("domain.Donation"), mock.Anything).
		Run(func(args mock.Arguments) {
			adjustments = args.Get(2).([]domain.DonorAdjustment)
		}).Return(nil).Once()

	req := dto.UpdateDonationRequest{
		DonorID:         donorID,
		Amount:          decimal.NewFromInt(350),
		PaymentMethodID: old.PaymentMethodID,
	}

	updated, err := suite.service.UpdateDonation(ctx, donationID, req)

	suite.Require().NoError(err)
	suite.Equal(old.AddedBy, updated.AddedBy, "recorder attribution must survive edits")

	suite.Require().Len(adjustments, 1, "same-donor update must collapse to one delta")
	suite.True(adjustments[0].Delta.Equal(decimal.NewFromInt(150)))
}

func (suite *DonationServiceTestSuite) TestUpdateDonation_Reattribution() {
	ctx := suite.authCtx(domain.RoleManager)
	donationID := uuid.NewString()
	oldDonorID := uuid.NewString()
	newDonorID := uuid.NewString()
	old := &domain.Donation{
		DonationID:      donationID,
		DonorID:         oldDonorID,
		Amount:          decimal.NewFromInt(200),
		PaymentMethodID: uuid.NewString(),
		Date:            time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		AddedBy:         uuid.NewString(),
	}

	suite.mockRepo.On("FindDonationByID", ctx, donationID).Return(old, nil).Once()
	suite.mockDonorRepo.On("FindDonorByID", ctx, newDonorID).
		Return(&domain.Donor{DonorID: newDonorID}, nil).Once()

	var adjustments []domain.DonorAdjustment
	suite.mockRepo.On("UpdateDonation", ctx, mock.AnythingOfType("domain.Donation"), mock.Anything).
		Run(func(args mock.Arguments) {
			adjustments = args.Get(2).([]domain.DonorAdjustment)
		}).Return(nil).Once()

	req := dto.UpdateDonationRequest{
		DonorID:         newDonorID,
		Amount:          decimal.NewFromInt(200),
		PaymentMethodID: old.PaymentMethodID,
	}

	_, err := suite.service.UpdateDonation(ctx, donationID, req)

	suite.Require().NoError(err)
	suite.Require().Len(adjustments, 2)
	suite.Equal(oldDonorID, adjustments[0].DonorID)
	suite.True(adjustments[0].Delta.Equal(decimal.NewFromInt(-200)))
	suite.Equal(newDonorID, adjustments[1].DonorID)
	suite.True(adjustments[1].Delta.Equal(decimal.NewFromInt(200)))
}

func (suite *DonationServiceTestSuite) TestDeleteDonation_Success() {
	ctx := suite.authCtx(domain.RoleAdmin)
	donationID := uuid.NewString()
	donorID := uuid.NewString()

	suite.mockRepo.On("FindDonationByID", ctx, donationID).Return(&domain.Donation{
		DonationID: donationID,
		DonorID:    donorID,
		Amount:     decimal.NewFromInt(300),
	}, nil).Once()

	var adjustments []domain.DonorAdjustment
	suite.mockRepo.On("DeleteDonation", ctx, donationID, mock.Anything).
		Run(func(args mock.Arguments) {
			adjustments = args.Get(2).([]domain.DonorAdjustment)
		}).Return(nil).Once()

	err := suite.service.DeleteDonation(ctx, donationID)

	suite.Require().NoError(err)
	suite.Require().Len(adjustments, 1)
	suite.True(adjustments[0].Delta.Equal(decimal.NewFromInt(-300)), "delete must subtract the full amount")
	suite.Nil(adjustments[0].LastDonationDate)
}

func (suite *DonationServiceTestSuite) TestDeleteDonation_ManagerForbidden() {
	ctx := suite.authCtx(domain.RoleManager)
	donationID := uuid.NewString()

	err := suite.service.DeleteDonation(ctx, donationID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindDonationByID", mock.Anything, mock.Anything)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteDonation", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DonationServiceTestSuite) TestDeleteDonation_Unauthenticated() {
	err := suite.service.DeleteDonation(context.Background(), uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteDonation", mock.Anything, mock.Anything, mock.Anything)
}

func TestDonationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DonationServiceTestSuite))
}
