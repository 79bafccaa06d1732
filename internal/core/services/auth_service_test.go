package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/TrenchWorks/workforce_payroll_app/internal/apperrors"
	"github.com/TrenchWorks/workforce_payroll_app/internal/core/domain"
	portssvc "github.com/TrenchWorks/workforce_payroll_app/internal/core/ports/services"
	"github.com/TrenchWorks/workforce_payroll_app/internal/core/services"
	"github.com/TrenchWorks/workforce_payroll_app/internal/utils"
	"github.com/TrenchWorks/workforce_payroll_app/pkg/config"
	"github.com/stretchr/testify/suite"
)

type AuthServiceTestSuite struct {
	suite.Suite
	mockUserRepo     *MockUserRepository
	mockLabourerRepo *MockLabourerRepository
	cfg              *config.Config
	service          portssvc.AuthSvcFacade
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockLabourerRepo = new(MockLabourerRepository)
	suite.cfg = &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "workforce-payroll-test",
	}
	suite.service = services.NewAuthService(suite.cfg, suite.mockUserRepo, suite.mockLabourerRepo)
}

func (suite *AuthServiceTestSuite) TestLoginStaff_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct horse battery staple")
	suite.Require().NoError(err)

	suite.mockUserRepo.On("FindUserByEmail", ctx, "lindiwe@example.com").
		Return(&domain.User{
			UserID:       "user-1",
			Name:         "Lindiwe Khumalo",
			Email:        "lindiwe@example.com",
			Role:         domain.RoleProjectManager,
			PasswordHash: hash,
		}, nil).Once()

	resp, err := suite.service.LoginStaff(ctx, "Lindiwe@Example.com ", "correct horse battery staple")

	suite.Require().NoError(err)
	suite.Equal("user-1", resp.UserID)
	suite.Equal(string(domain.RoleProjectManager), resp.Role)
	suite.Equal(int64(3600), resp.ExpiresIn)

	claims, err := utils.ParseAndValidateJWT(resp.Token, suite.cfg.JWTSecret)
	suite.Require().NoError(err)
	suite.Equal("user-1", claims.Subject)
	suite.Equal(string(domain.RoleProjectManager), claims.Role)
}

func (suite *AuthServiceTestSuite) TestLoginStaff_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("the real password")
	suite.Require().NoError(err)

	suite.mockUserRepo.On("FindUserByEmail", ctx, "lindiwe@example.com").
		Return(&domain.User{UserID: "user-1", PasswordHash: hash}, nil).Once()

	_, err = suite.service.LoginStaff(ctx, "lindiwe@example.com", "a guess")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestLoginStaff_UnknownEmail() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByEmail", ctx, "nobody@example.com").
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.LoginStaff(ctx, "nobody@example.com", "whatever")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestLoginLabourer_Success() {
	ctx := context.Background()

	suite.mockLabourerRepo.On("FindLabourerByIDNumber", ctx, "8001015009087").
		Return(&domain.Labourer{
			LabourerID:  "lab-1",
			FirstName:   "Sipho",
			Surname:     "Dlamini",
			IDNumber:    "8001015009087",
			PhoneNumber: "072 123 4567",
		}, nil).Once()

	// Phone formatting differences must not block the login.
	resp, err := suite.service.LoginLabourer(ctx, "0721234567", "8001015009087")

	suite.Require().NoError(err)
	suite.Equal("lab-1", resp.UserID)
	suite.Equal(string(domain.RoleLabourer), resp.Role)
	suite.Equal("Sipho Dlamini", resp.Name)
}

func (suite *AuthServiceTestSuite) TestLoginLabourer_PhoneMismatch() {
	ctx := context.Background()

	suite.mockLabourerRepo.On("FindLabourerByIDNumber", ctx, "8001015009087").
		Return(&domain.Labourer{LabourerID: "lab-1", PhoneNumber: "0829999999"}, nil).Once()

	_, err := suite.service.LoginLabourer(ctx, "0721234567", "8001015009087")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestLoginWithGoogle_NotConfigured() {
	ctx := context.Background()

	_, err := suite.service.LoginWithGoogle(ctx, "some-id-token")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
