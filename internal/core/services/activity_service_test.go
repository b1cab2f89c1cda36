package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/shantodev/temple_donation_app/internal/core/domain"
	portssvc "github.com/shantodev/temple_donation_app/internal/core/ports/services"
	"github.com/shantodev/temple_donation_app/internal/core/services"
	"github.com/shantodev/temple_donation_app/internal/middleware"
)

// MockActivityLogRepository is a mock type for the ActivityLogRepository interface
type MockActivityLogRepository struct {
	mock.Mock
}

func (m *MockActivityLogRepository) AppendLog(ctx context.Context, entry domain.ActivityLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockActivityLogRepository) FindLogs(ctx context.Context, search string, limit, offset int) ([]domain.ActivityLog, int64, error) {
	args := m.Called(ctx, search, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.ActivityLog), args.Get(1).(int64), args.Error(2)
}

type ActivityServiceTestSuite struct {
	suite.Suite
	mockRepo *MockActivityLogRepository
	service  portssvc.ActivitySvcFacade
}

func (suite *ActivityServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockActivityLogRepository)
	suite.service = services.NewActivityService(suite.mockRepo)
}

func (suite *ActivityServiceTestSuite) TestRecord_WithActor() {
	actorID := uuid.NewString()
	ctx := middleware.WithAuthUser(context.Background(), &domain.AuthUser{
		UserID: actorID,
		Name:   "Acting Admin",
		Role:   domain.RoleAdmin,
	})

	var entry domain.ActivityLog
	suite.mockRepo.On("AppendLog", ctx, mock.AnythingOfType("domain.ActivityLog")).
		Run(func(args mock.Arguments) {
			entry = args.Get(1).(domain.ActivityLog)
		}).Return(nil).Once()

	suite.service.Record(ctx, domain.ActionCreate, "Donor", "Added donor Shantonu Dey")

	suite.mockRepo.AssertExpectations(suite.T())
	suite.Equal(actorID, entry.AdminID)
	suite.Equal("Acting Admin", entry.AdminName)
	suite.Equal(domain.ActionCreate, entry.Action)
	suite.Equal("Donor", entry.Target)
	suite.NotEmpty(entry.LogID)
	suite.False(entry.Timestamp.IsZero())
}

func (suite *ActivityServiceTestSuite) TestRecord_NoActorIsNoOp() {
	suite.service.Record(context.Background(), domain.ActionCreate, "Donor", "Added donor Shantonu Dey")

	suite.mockRepo.AssertNotCalled(suite.T(), "AppendLog", mock.Anything, mock.Anything)
}

func (suite *ActivityServiceTestSuite) TestRecord_WriteFailureIsSwallowed() {
	ctx := middleware.WithAuthUser(context.Background(), &domain.AuthUser{
		UserID: uuid.NewString(),
		Name:   "Acting Admin",
		Role:   domain.RoleAdmin,
	})

	suite.mockRepo.On("AppendLog", ctx, mock.AnythingOfType("domain.ActivityLog")).
		Return(errors.New("disk full")).Once()

	// Must not panic or surface the error to the caller.
	suite.service.Record(ctx, domain.ActionDelete, "Donation", "Deleted donation")

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ActivityServiceTestSuite) TestListLogs_NormalizesPagination() {
	ctx := context.Background()
	suite.mockRepo.On("FindLogs", ctx, "donor", 10, 0).
		Return([]domain.ActivityLog{}, int64(0), nil).Once()

	_, _, err := suite.service.ListLogs(ctx, "donor", 0, 0)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestActivityServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ActivityServiceTestSuite))
}
