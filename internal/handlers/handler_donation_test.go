package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/shantodev/temple_donation_app/internal/core/domain"
	portssvc "github.com/shantodev/temple_donation_app/internal/core/ports/services"
	"github.com/shantodev/temple_donation_app/internal/dto"
	"github.com/shantodev/temple_donation_app/internal/utils"
)

type DonationHandlerTestSuite struct {
	suite.Suite
	router              http.Handler
	mockDonationService *MockDonationService
	mockActivityService *MockActivityService
}

func (suite *DonationHandlerTestSuite) SetupTest() {
	suite.mockDonationService = new(MockDonationService)
	suite.mockActivityService = new(MockActivityService)

	suite.router = newTestRouter(&portssvc.ServiceContainer{
		Donor:         new(MockDonorService),
		Donation:      suite.mockDonationService,
		PaymentMethod: new(MockPaymentMethodService),
		User:          new(MockUserService),
		Activity:      suite.mockActivityService,
		Reporting:     new(MockReportingService),
	})
}

// sessionCookie builds a valid session cookie for a staff account of the given role.
func (suite *DonationHandlerTestSuite) sessionCookie(role domain.UserRole) *http.Cookie {
	cfg := testConfig()
	token, err := utils.GenerateSessionToken(&domain.User{
		UserID: uuid.NewString(),
		Name:   "Test Admin",
		Email:  "admin@example.com",
		Role:   role,
	}, cfg.JWTSecret, cfg.JWTExpiryDuration, cfg.JWTIssuer)
	suite.Require().NoError(err)
	return &http.Cookie{Name: cfg.AuthCookieName, Value: token}
}

func (suite *DonationHandlerTestSuite) TestCreateDonation_NoSession() {
	body, _ := json.Marshal(dto.CreateDonationRequest{
		DonorID:         uuid.NewString(),
		Amount:          decimal.NewFromInt(500),
		PaymentMethodID: uuid.NewString(),
	})

	req, _ := http.NewRequest(http.MethodPost, "/admin/donations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockDonationService.AssertNotCalled(suite.T(), "CreateDonation", mock.Anything, mock.Anything)
}

func (suite *DonationHandlerTestSuite) TestCreateDonation_Success() {
	donorID := uuid.NewString()
	methodID := uuid.NewString()
	body, _ := json.Marshal(dto.CreateDonationRequest{
		DonorID:         donorID,
		Amount:          decimal.NewFromInt(500),
		PaymentMethodID: methodID,
	})

	suite.mockDonationService.On("CreateDonation", mock.Anything, mock.MatchedBy(func(r dto.CreateDonationRequest) bool {
		return r.DonorID == donorID && r.Amount.Equal(decimal.NewFromInt(500))
	})).Return(&domain.Donation{
		DonationID:      uuid.NewString(),
		DonorID:         donorID,
		Amount:          decimal.NewFromInt(500),
		PaymentMethodID: methodID,
	}, nil).Once()

	req, _ := http.NewRequest(http.MethodPost, "/admin/donations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(suite.sessionCookie(domain.RoleCashier))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.DonationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(donorID, resp.DonorID)
	suite.mockDonationService.AssertExpectations(suite.T())
}

func (suite *DonationHandlerTestSuite) TestDeleteDonation_ManagerForbidden() {
	donationID := uuid.NewString()

	req, _ := http.NewRequest(http.MethodDelete, "/admin/donations/"+donationID, nil)
	req.AddCookie(suite.sessionCookie(domain.RoleManager))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockDonationService.AssertNotCalled(suite.T(), "DeleteDonation", mock.Anything, mock.Anything)
}

func (suite *DonationHandlerTestSuite) TestDeleteDonation_AdminSuccess() {
	donationID := uuid.NewString()

	suite.mockDonationService.On("DeleteDonation", mock.Anything, donationID).Return(nil).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/admin/donations/"+donationID, nil)
	req.AddCookie(suite.sessionCookie(domain.RoleAdmin))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockDonationService.AssertExpectations(suite.T())
}

func (suite *DonationHandlerTestSuite) TestDeleteDonation_ExpiredSession() {
	cfg := testConfig()
	cfg.JWTExpiryDuration = -time.Hour

	token, err := utils.GenerateSessionToken(&domain.User{
		UserID: uuid.NewString(),
		Name:   "Test Admin",
		Role:   domain.RoleAdmin,
	}, cfg.JWTSecret, cfg.JWTExpiryDuration, cfg.JWTIssuer)
	suite.Require().NoError(err)

	req, _ := http.NewRequest(http.MethodDelete, "/admin/donations/"+uuid.NewString(), nil)
	req.AddCookie(&http.Cookie{Name: cfg.AuthCookieName, Value: token})
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockDonationService.AssertNotCalled(suite.T(), "DeleteDonation", mock.Anything, mock.Anything)
}

func TestDonationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DonationHandlerTestSuite))
}
