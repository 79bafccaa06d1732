package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/TrenchWorks/workforce_payroll_app/internal/apperrors"
	"github.com/TrenchWorks/workforce_payroll_app/internal/core/domain"
	portssvc "github.com/TrenchWorks/workforce_payroll_app/internal/core/ports/services"
	"github.com/TrenchWorks/workforce_payroll_app/internal/core/services"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockWorkLogRepo  *MockWorkLogRepository
	mockLabourerRepo *MockLabourerRepository
	mockProjectRepo  *MockProjectRepository
	mockPayRateRepo  *MockPayRateRepository
	service          portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockWorkLogRepo = new(MockWorkLogRepository)
	suite.mockLabourerRepo = new(MockLabourerRepository)
	suite.mockProjectRepo = new(MockProjectRepository)
	suite.mockPayRateRepo = new(MockPayRateRepository)
	suite.service = services.NewReportingService(
		suite.mockWorkLogRepo, suite.mockLabourerRepo, suite.mockProjectRepo, suite.mockPayRateRepo)
}

func (suite *ReportingServiceTestSuite) seedPayrollProject() {
	ctx := context.Background()
	projectID := "proj-1"

	suite.mockProjectRepo.On("FindProjectByID", ctx, projectID).
		Return(&domain.Project{
			ProjectID:      projectID,
			Name:           "Fibre Rollout Soweto Phase 2",
			PaymentCadence: domain.CadenceFortnightly,
		}, nil)
	suite.mockWorkLogRepo.On("ListWorkLogsByDateRange", ctx, projectID, "2025-08-01", "2025-08-15").
		Return([]domain.WorkLog{
			{LabourerID: "lab-1", ProjectID: projectID, WorkDate: "2025-08-04", OpenTrenchingMeters: dec("50"), CloseTrenchingMeters: dec("0"), TotalEarnings: dec("250.00")},
			{LabourerID: "lab-1", ProjectID: projectID, WorkDate: "2025-08-05", OpenTrenchingMeters: dec("50"), CloseTrenchingMeters: dec("0"), TotalEarnings: dec("250.00")},
			{LabourerID: "lab-2", ProjectID: projectID, WorkDate: "2025-08-04", OpenTrenchingMeters: dec("0"), CloseTrenchingMeters: dec("100"), TotalEarnings: dec("500.00")},
		}, nil)
	suite.mockLabourerRepo.On("ListLabourers", ctx, projectID).
		Return([]domain.Labourer{
			{LabourerID: "lab-1", FirstName: "Sipho", Surname: "Dlamini", IDNumber: "8001015009087"},
			{LabourerID: "lab-2", FirstName: "Thabo", Surname: "Nkosi", IDNumber: "9202204720082"},
		}, nil)
	openRate := &domain.PayRate{Amount: dec("5.00")}
	closeRate := &domain.PayRate{Amount: dec("3.00")}
	suite.mockPayRateRepo.On("FindProjectEffectiveRate", ctx, projectID, domain.RateOpenTrenching, "2025-08-15").
		Return(openRate, nil)
	suite.mockPayRateRepo.On("FindProjectEffectiveRate", ctx, projectID, domain.RateCloseTrenching, "2025-08-15").
		Return(closeRate, nil)
}

func (suite *ReportingServiceTestSuite) TestPayrollSummary() {
	ctx := context.Background()
	suite.seedPayrollProject()

	report, err := suite.service.PayrollSummary(ctx, "proj-1", "2025-08-01", "2025-08-15")

	suite.Require().NoError(err)
	suite.Equal("Fibre Rollout Soweto Phase 2", report.ProjectName)
	suite.Require().Len(report.Entries, 2)
	suite.Equal("Sipho Dlamini", report.Entries[0].LabourerName)
	suite.Equal(2, report.Entries[0].DaysWorked)
	suite.True(report.Entries[0].TotalEarnings.Equal(dec("500.00")))
	suite.True(report.Entries[1].TotalEarnings.Equal(dec("500.00")))
	suite.True(report.GrandTotal.Equal(dec("1000.00")))
	suite.Require().NotNil(report.OpenRate)
	suite.True(report.OpenRate.Equal(dec("5.00")))
}

func (suite *ReportingServiceTestSuite) TestPayrollSummary_RequiresRange() {
	ctx := context.Background()

	_, err := suite.service.PayrollSummary(ctx, "proj-1", "", "")
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.PayrollSummary(ctx, "", "2025-08-01", "2025-08-15")
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReportingServiceTestSuite) TestWorkerActivity_WeeklyGrouping() {
	ctx := context.Background()
	suite.seedPayrollProject()

	report, err := suite.service.WorkerActivity(ctx, "proj-1", "2025-08-01", "2025-08-15", domain.GroupWeekly, "")

	suite.Require().NoError(err)
	// Both work days fall in the week starting Sunday 2025-08-03, so each
	// labourer collapses to one row.
	suite.Require().Len(report.Data, 2)
	suite.Equal("2025-08-03", report.Data[0].Period)
	suite.Equal(2, report.Data[0].DaysWorked)
	suite.Equal(3, report.Totals.DaysWorked)
	suite.True(report.Totals.TotalEarnings.Equal(dec("1000.00")))
}

func (suite *ReportingServiceTestSuite) TestWorkerActivity_RejectsUnknownGroupBy() {
	ctx := context.Background()

	_, err := suite.service.WorkerActivity(ctx, "proj-1", "2025-08-01", "2025-08-15", domain.GroupBy("hourly"), "")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReportingServiceTestSuite) TestRenderPayrollCSV() {
	ctx := context.Background()
	suite.seedPayrollProject()

	report, err := suite.service.PayrollSummary(ctx, "proj-1", "2025-08-01", "2025-08-15")
	suite.Require().NoError(err)

	out, err := suite.service.RenderPayrollCSV(report)
	suite.Require().NoError(err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	suite.Require().Len(lines, 4) // header + 2 labourers + TOTAL
	suite.Equal("Labourer Name,ID Number,Days Worked,Open Meters,Close Meters,Total Meters,Total Earnings", lines[0])
	suite.Equal("Sipho Dlamini,8001015009087,2,100.00,0.00,100.00,500.00", lines[1])
	suite.Equal("TOTAL,,3,100.00,100.00,200.00,1000.00", lines[3])
}

func (suite *ReportingServiceTestSuite) TestRenderActivityCSV() {
	ctx := context.Background()
	suite.seedPayrollProject()

	report, err := suite.service.WorkerActivity(ctx, "proj-1", "2025-08-01", "2025-08-15", domain.GroupWeekly, "")
	suite.Require().NoError(err)

	out, err := suite.service.RenderActivityCSV(report)
	suite.Require().NoError(err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	suite.Require().Len(lines, 4)
	suite.Equal("Labourer Name,ID Number,Period,Days Worked,Open Meters,Close Meters,Total Meters,Total Earnings", lines[0])
	suite.Contains(lines[1], "2025-08-03")
	suite.True(strings.HasPrefix(lines[3], "TOTAL,,,3,"))
}

func (suite *ReportingServiceTestSuite) TestRenderPayrollPDF() {
	ctx := context.Background()
	suite.seedPayrollProject()

	report, err := suite.service.PayrollSummary(ctx, "proj-1", "2025-08-01", "2025-08-15")
	suite.Require().NoError(err)

	out, err := suite.service.RenderPayrollPDF(report)
	suite.Require().NoError(err)
	suite.True(strings.HasPrefix(string(out), "%PDF"))
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
