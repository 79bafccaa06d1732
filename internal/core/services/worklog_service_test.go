package services_test

import (
	"context"
	"testing"

	"github.com/TrenchWorks/workforce_payroll_app/internal/apperrors"
	"github.com/TrenchWorks/workforce_payroll_app/internal/core/domain"
	portssvc "github.com/TrenchWorks/workforce_payroll_app/internal/core/ports/services"
	"github.com/TrenchWorks/workforce_payroll_app/internal/core/services"
	"github.com/TrenchWorks/workforce_payroll_app/internal/dto"
	"github.com/TrenchWorks/workforce_payroll_app/internal/utils/dateutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type WorkLogServiceTestSuite struct {
	suite.Suite
	mockWorkLogRepo  *MockWorkLogRepository
	mockLabourerRepo *MockLabourerRepository
	mockProjectRepo  *MockProjectRepository
	mockPayRateRepo  *MockPayRateRepository
	service          portssvc.WorkLogSvcFacade
}

func (suite *WorkLogServiceTestSuite) SetupTest() {
	suite.mockWorkLogRepo = new(MockWorkLogRepository)
	suite.mockLabourerRepo = new(MockLabourerRepository)
	suite.mockProjectRepo = new(MockProjectRepository)
	suite.mockPayRateRepo = new(MockPayRateRepository)
	suite.service = services.NewWorkLogService(
		suite.mockWorkLogRepo, suite.mockLabourerRepo, suite.mockProjectRepo, suite.mockPayRateRepo, noopAudit{})
}

func (suite *WorkLogServiceTestSuite) TestCreateWorkLog_RejectsHistoricalDate() {
	ctx := context.Background()

	_, err := suite.service.CreateWorkLog(ctx, dto.CreateWorkLogRequest{
		LabourerID:          "lab-1",
		ProjectID:           "proj-1",
		WorkDate:            "2020-01-01",
		OpenTrenchingMeters: dec("10"),
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockWorkLogRepo.AssertNotCalled(suite.T(), "SaveWorkLog", mock.Anything, mock.Anything)
}

func (suite *WorkLogServiceTestSuite) TestCreateWorkLog_ComputesEarningsFromRates() {
	ctx := context.Background()
	today := dateutil.Today()
	projectID := "proj-1"
	labourerID := "lab-1"

	suite.mockLabourerRepo.On("FindLabourerByID", ctx, labourerID).
		Return(&domain.Labourer{LabourerID: labourerID, ProjectID: projectID, EmployeeTypeID: "et-1"}, nil).Once()
	suite.mockProjectRepo.On("FindProjectByID", ctx, projectID).
		Return(&domain.Project{ProjectID: projectID}, nil).Once()
	suite.mockPayRateRepo.On("FindEffectiveRate", ctx, projectID, "et-1", domain.RateOpenTrenching, today).
		Return(&domain.PayRate{Amount: dec("5.00"), Unit: domain.UnitPerMeter}, nil).Once()
	suite.mockPayRateRepo.On("FindEffectiveRate", ctx, projectID, "et-1", domain.RateCloseTrenching, today).
		Return(&domain.PayRate{Amount: dec("3.00"), Unit: domain.UnitPerMeter}, nil).Once()
	suite.mockWorkLogRepo.On("SaveWorkLog", ctx, mock.MatchedBy(func(w domain.WorkLog) bool {
		// 10m * 5.00 + 20m * 3.00
		return w.TotalEarnings.Equal(dec("110.00")) && w.WorkDate == today
	})).Return(nil).Once()

	log, err := suite.service.CreateWorkLog(ctx, dto.CreateWorkLogRequest{
		LabourerID:           labourerID,
		ProjectID:            projectID,
		WorkDate:             today,
		OpenTrenchingMeters:  dec("10"),
		CloseTrenchingMeters: dec("20"),
	}, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(log.TotalEarnings.Equal(dec("110.00")))
	suite.mockWorkLogRepo.AssertExpectations(suite.T())
	suite.mockPayRateRepo.AssertExpectations(suite.T())
}

func (suite *WorkLogServiceTestSuite) TestCreateWorkLog_FallsBackToProjectDefaults() {
	ctx := context.Background()
	today := dateutil.Today()
	projectID := "proj-1"
	labourerID := "lab-1"
	defaultOpen := dec("4.00")

	suite.mockLabourerRepo.On("FindLabourerByID", ctx, labourerID).
		Return(&domain.Labourer{LabourerID: labourerID, ProjectID: projectID, EmployeeTypeID: "et-1"}, nil).Once()
	suite.mockProjectRepo.On("FindProjectByID", ctx, projectID).
		Return(&domain.Project{ProjectID: projectID, DefaultOpenRate: &defaultOpen}, nil).Once()
	// No configured rate in either category; only the open default exists, so
	// close metres earn nothing.
	suite.mockPayRateRepo.On("FindEffectiveRate", ctx, projectID, "et-1", domain.RateOpenTrenching, today).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockPayRateRepo.On("FindEffectiveRate", ctx, projectID, "et-1", domain.RateCloseTrenching, today).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockWorkLogRepo.On("SaveWorkLog", ctx, mock.MatchedBy(func(w domain.WorkLog) bool {
		return w.TotalEarnings.Equal(dec("40.00"))
	})).Return(nil).Once()

	log, err := suite.service.CreateWorkLog(ctx, dto.CreateWorkLogRequest{
		LabourerID:           labourerID,
		ProjectID:            projectID,
		WorkDate:             today,
		OpenTrenchingMeters:  dec("10"),
		CloseTrenchingMeters: dec("15"),
	}, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(log.TotalEarnings.Equal(dec("40.00")))
}

func (suite *WorkLogServiceTestSuite) TestCreateWorkLog_LabourerNotOnProject() {
	ctx := context.Background()
	today := dateutil.Today()

	suite.mockLabourerRepo.On("FindLabourerByID", ctx, "lab-1").
		Return(&domain.Labourer{LabourerID: "lab-1", ProjectID: "other-project"}, nil).Once()

	_, err := suite.service.CreateWorkLog(ctx, dto.CreateWorkLogRequest{
		LabourerID:          "lab-1",
		ProjectID:           "proj-1",
		WorkDate:            today,
		OpenTrenchingMeters: dec("10"),
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *WorkLogServiceTestSuite) TestUpdateWorkLog_FrozenAfterWorkDate() {
	ctx := context.Background()

	suite.mockWorkLogRepo.On("FindWorkLogByID", ctx, "wl-1").
		Return(&domain.WorkLog{WorkLogID: "wl-1", WorkDate: "2020-01-01"}, nil).Once()

	newMeters := dec("25")
	_, err := suite.service.UpdateWorkLog(ctx, "wl-1", dto.UpdateWorkLogRequest{
		OpenTrenchingMeters: &newMeters,
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockWorkLogRepo.AssertNotCalled(suite.T(), "UpdateWorkLog", mock.Anything, mock.Anything)
}

func (suite *WorkLogServiceTestSuite) TestListWorkLogs_RequiresValidRange() {
	ctx := context.Background()

	_, err := suite.service.ListWorkLogs(ctx, "proj-1", "", "")
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.ListWorkLogs(ctx, "proj-1", "2025-08-15", "2025-08-01")
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestWorkLogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WorkLogServiceTestSuite))
}
