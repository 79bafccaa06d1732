package services_test

import (
	"context"
	"testing"

	"github.com/TrenchWorks/workforce_payroll_app/internal/apperrors"
	"github.com/TrenchWorks/workforce_payroll_app/internal/core/domain"
	portssvc "github.com/TrenchWorks/workforce_payroll_app/internal/core/ports/services"
	"github.com/TrenchWorks/workforce_payroll_app/internal/core/services"
	"github.com/TrenchWorks/workforce_payroll_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PayRateServiceTestSuite struct {
	suite.Suite
	mockPayRateRepo      *MockPayRateRepository
	mockProjectRepo      *MockProjectRepository
	mockEmployeeTypeRepo *MockEmployeeTypeRepository
	service              portssvc.PayRateSvcFacade
}

func (suite *PayRateServiceTestSuite) SetupTest() {
	suite.mockPayRateRepo = new(MockPayRateRepository)
	suite.mockProjectRepo = new(MockProjectRepository)
	suite.mockEmployeeTypeRepo = new(MockEmployeeTypeRepository)
	suite.service = services.NewPayRateService(
		suite.mockPayRateRepo, suite.mockProjectRepo, suite.mockEmployeeTypeRepo, noopAudit{})
}

func (suite *PayRateServiceTestSuite) TestCreatePayRate_AppendsNewRate() {
	ctx := context.Background()

	suite.mockProjectRepo.On("FindProjectByID", ctx, "proj-1").
		Return(&domain.Project{ProjectID: "proj-1"}, nil).Once()
	suite.mockEmployeeTypeRepo.On("FindEmployeeTypeByID", ctx, "et-1").
		Return(&domain.EmployeeType{EmployeeTypeID: "et-1", IsActive: true}, nil).Once()
	suite.mockPayRateRepo.On("SavePayRate", ctx, mock.MatchedBy(func(r domain.PayRate) bool {
		return r.Category == domain.RateOpenTrenching &&
			r.Unit == domain.UnitPerMeter &&
			r.EffectiveDate == "2025-09-01" &&
			r.Amount.Equal(dec("5.50"))
	})).Return(nil).Once()

	rate, err := suite.service.CreatePayRate(ctx, dto.CreatePayRateRequest{
		ProjectID:      "proj-1",
		EmployeeTypeID: "et-1",
		Category:       "open_trenching",
		Amount:         dec("5.50"),
		Unit:           "per_meter",
		EffectiveDate:  "2025-09-01",
	}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal("2025-09-01", rate.EffectiveDate)
	suite.mockPayRateRepo.AssertExpectations(suite.T())
}

func (suite *PayRateServiceTestSuite) TestCreatePayRate_RejectsBadDate() {
	ctx := context.Background()

	_, err := suite.service.CreatePayRate(ctx, dto.CreatePayRateRequest{
		ProjectID:      "proj-1",
		EmployeeTypeID: "et-1",
		Category:       "open_trenching",
		Amount:         dec("5.50"),
		Unit:           "per_meter",
		EffectiveDate:  "2025-13-40",
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPayRateRepo.AssertNotCalled(suite.T(), "SavePayRate", mock.Anything, mock.Anything)
}

func (suite *PayRateServiceTestSuite) TestCreatePayRate_RejectsNonPositiveAmount() {
	ctx := context.Background()

	_, err := suite.service.CreatePayRate(ctx, dto.CreatePayRateRequest{
		ProjectID:      "proj-1",
		EmployeeTypeID: "et-1",
		Category:       "open_trenching",
		Amount:         dec("0"),
		Unit:           "per_meter",
		EffectiveDate:  "2025-09-01",
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PayRateServiceTestSuite) TestResolveRate_NormalizesTimestampInput() {
	ctx := context.Background()
	expected := &domain.PayRate{PayRateID: "rate-1", Amount: dec("5.00")}

	// A timestamp-shaped asOfDate reduces to its leading calendar date rather
	// than shifting through a timezone-aware parse.
	suite.mockPayRateRepo.On("FindEffectiveRate", ctx, "proj-1", "et-1", domain.RateOpenTrenching, "2025-08-01").
		Return(expected, nil).Once()

	rate, err := suite.service.ResolveRate(ctx, "proj-1", "et-1", domain.RateOpenTrenching, "2025-08-01T00:00:00Z")

	suite.Require().NoError(err)
	suite.Equal(expected, rate)
	suite.mockPayRateRepo.AssertExpectations(suite.T())
}

func (suite *PayRateServiceTestSuite) TestResolveRate_NotFound() {
	ctx := context.Background()

	suite.mockPayRateRepo.On("FindEffectiveRate", ctx, "proj-1", "et-1", domain.RateCloseTrenching, "2025-08-01").
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.ResolveRate(ctx, "proj-1", "et-1", domain.RateCloseTrenching, "2025-08-01")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestPayRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PayRateServiceTestSuite))
}
