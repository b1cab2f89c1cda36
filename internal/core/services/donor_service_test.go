package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/shantodev/temple_donation_app/internal/apperrors"
	"github.com/shantodev/temple_donation_app/internal/core/domain"
	portssvc "github.com/shantodev/temple_donation_app/internal/core/ports/services"
	"github.com/shantodev/temple_donation_app/internal/core/services"
	"github.com/shantodev/temple_donation_app/internal/dto"
)

// MockDonorRepository is a mock type for the DonorRepository interface
type MockDonorRepository struct {
	mock.Mock
}

func (m *MockDonorRepository) SaveDonor(ctx context.Context, donor domain.Donor) error {
	args := m.Called(ctx, donor)
	return args.Error(0)
}

func (m *MockDonorRepository) FindDonorByID(ctx context.Context, donorID string) (*domain.Donor, error) {
	args := m.Called(ctx, donorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donor), args.Error(1)
}

func (m *MockDonorRepository) FindDonors(ctx context.Context, search string, limit, offset int) ([]domain.Donor, int64, error) {
	args := m.Called(ctx, search, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Donor), args.Get(1).(int64), args.Error(2)
}

func (m *MockDonorRepository) FindAllDonors(ctx context.Context) ([]domain.Donor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Donor), args.Error(1)
}

func (m *MockDonorRepository) UpdateDonor(ctx context.Context, donor domain.Donor) error {
	args := m.Called(ctx, donor)
	return args.Error(0)
}

func (m *MockDonorRepository) DeleteDonor(ctx context.Context, donorID string) error {
	args := m.Called(ctx, donorID)
	return args.Error(0)
}

type DonorServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockDonorRepository
	mockActivity *MockActivitySvc
	service      portssvc.DonorSvcFacade
}

func (suite *DonorServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockDonorRepository)
	suite.mockActivity = relaxedActivity()
	suite.service = services.NewDonorService(suite.mockRepo, suite.mockActivity)
}

func (suite *DonorServiceTestSuite) TestCreateDonor_Success() {
	ctx := context.Background()
	req := dto.CreateDonorRequest{
		Name:  "Shantonu Dey",
		Phone: "01711111111",
	}

	suite.mockRepo.On("SaveDonor", ctx, mock.AnythingOfType("domain.Donor")).Return(nil).Once()

	donor, err := suite.service.CreateDonor(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(donor)
	suite.NotEmpty(donor.DonorID)
	suite.Equal(req.Name, donor.Name)
	suite.True(donor.TotalDonation.Equal(decimal.Zero), "new donor must start with a zero total")
	suite.Nil(donor.LastDonationDate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DonorServiceTestSuite) TestCreateDonor_DuplicatePhone() {
	ctx := context.Background()
	req := dto.CreateDonorRequest{
		Name:  "Shantonu Dey",
		Phone: "01711111111",
	}

	suite.mockRepo.On("SaveDonor", ctx, mock.AnythingOfType("domain.Donor")).Return(apperrors.ErrDuplicate).Once()

	donor, err := suite.service.CreateDonor(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(donor)
}

func (suite *DonorServiceTestSuite) TestUpdateDonor_PartialMerge() {
	ctx := context.Background()
	donorID := uuid.NewString()
	email := "old@example.com"
	existing := &domain.Donor{
		DonorID:       donorID,
		Name:          "Old Name",
		Phone:         "01711111111",
		Email:         &email,
		TotalDonation: decimal.NewFromInt(900),
	}

	newName := "New Name"
	req := dto.UpdateDonorRequest{Name: &newName}

	suite.mockRepo.On("FindDonorByID", ctx, donorID).Return(existing, nil).Once()

	var saved domain.Donor
	suite.mockRepo.On("UpdateDonor", ctx, mock.AnythingOfType("domain.Donor")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.Donor)
		}).Return(nil).Once()

	updated, err := suite.service.UpdateDonor(ctx, donorID, req)

	suite.Require().NoError(err)
	suite.Equal("New Name", updated.Name)
	suite.Equal("01711111111", saved.Phone, "omitted fields must keep their stored values")
	suite.Require().NotNil(saved.Email)
	suite.Equal(email, *saved.Email)
	suite.True(saved.TotalDonation.Equal(decimal.NewFromInt(900)), "donor update must never touch the aggregate")
}

func (suite *DonorServiceTestSuite) TestUpdateDonor_NotFound() {
	ctx := context.Background()
	donorID := uuid.NewString()

	suite.mockRepo.On("FindDonorByID", ctx, donorID).Return(nil, apperrors.ErrNotFound).Once()

	updated, err := suite.service.UpdateDonor(ctx, donorID, dto.UpdateDonorRequest{})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(updated)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateDonor", mock.Anything, mock.Anything)
}

func (suite *DonorServiceTestSuite) TestDeleteDonor_Success() {
	ctx := context.Background()
	donorID := uuid.NewString()
	existing := &domain.Donor{DonorID: donorID, Name: "Shantonu Dey", Phone: "01711111111"}

	suite.mockRepo.On("FindDonorByID", ctx, donorID).Return(existing, nil).Once()
	suite.mockRepo.On("DeleteDonor", ctx, donorID).Return(nil).Once()

	err := suite.service.DeleteDonor(ctx, donorID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestDonorServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DonorServiceTestSuite))
}
