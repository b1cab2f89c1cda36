package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/shantodev/temple_donation_app/internal/core/domain"
)

// MockActivitySvc is a mock type for the ActivitySvcFacade interface, shared
// across the service test suites since every mutating service records through it.
type MockActivitySvc struct {
	mock.Mock
}

func (m *MockActivitySvc) Record(ctx context.Context, action domain.ActivityAction, target, details string) {
	m.Called(ctx, action, target, details)
}

func (m *MockActivitySvc) ListLogs(ctx context.Context, search string, page, limit int) ([]domain.ActivityLog, int64, error) {
	args := m.Called(ctx, search, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.ActivityLog), args.Get(1).(int64), args.Error(2)
}

// relaxedActivity returns a mock that accepts any Record call, for tests that
// are not asserting on the audit trail.
func relaxedActivity() *MockActivitySvc {
	m := new(MockActivitySvc)
	m.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
	return m
}
