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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PaymentPeriodServiceTestSuite struct {
	suite.Suite
	mockPeriodRepo   *MockPaymentPeriodRepository
	mockWorkLogRepo  *MockWorkLogRepository
	mockLabourerRepo *MockLabourerRepository
	mockProjectRepo  *MockProjectRepository
	service          portssvc.PaymentPeriodSvcFacade
}

func (suite *PaymentPeriodServiceTestSuite) SetupTest() {
	suite.mockPeriodRepo = new(MockPaymentPeriodRepository)
	suite.mockWorkLogRepo = new(MockWorkLogRepository)
	suite.mockLabourerRepo = new(MockLabourerRepository)
	suite.mockProjectRepo = new(MockProjectRepository)
	suite.service = services.NewPaymentPeriodService(
		suite.mockPeriodRepo, suite.mockWorkLogRepo, suite.mockLabourerRepo, suite.mockProjectRepo, noopAudit{})
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func (suite *PaymentPeriodServiceTestSuite) TestCreatePaymentPeriod_InvalidRange() {
	ctx := context.Background()

	_, err := suite.service.CreatePaymentPeriod(ctx, "proj-1", dto.CreatePaymentPeriodRequest{
		StartDate: "2025-08-15",
		EndDate:   "2025-08-01",
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPeriodRepo.AssertNotCalled(suite.T(), "SavePaymentPeriod", mock.Anything, mock.Anything)
}

func (suite *PaymentPeriodServiceTestSuite) TestCreatePaymentPeriod_InformationalTotal() {
	ctx := context.Background()
	projectID := "proj-1"

	suite.mockProjectRepo.On("FindProjectByID", ctx, projectID).
		Return(&domain.Project{ProjectID: projectID}, nil).Once()
	suite.mockWorkLogRepo.On("ListWorkLogsByDateRange", ctx, projectID, "2025-08-01", "2025-08-15").
		Return([]domain.WorkLog{
			{TotalEarnings: dec("120.50")},
			{TotalEarnings: dec("79.50")},
		}, nil).Once()
	suite.mockPeriodRepo.On("SavePaymentPeriod", ctx, mock.MatchedBy(func(p domain.PaymentPeriod) bool {
		return p.Status == domain.PeriodOpen && p.TotalAmount.Equal(dec("200.00"))
	})).Return(nil).Once()

	period, err := suite.service.CreatePaymentPeriod(ctx, projectID, dto.CreatePaymentPeriodRequest{
		StartDate: "2025-08-01",
		EndDate:   "2025-08-15",
	}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.PeriodOpen, period.Status)
	suite.True(period.TotalAmount.Equal(dec("200.00")))
	suite.mockPeriodRepo.AssertExpectations(suite.T())
}

func (suite *PaymentPeriodServiceTestSuite) TestSubmit_MaterializesEntries() {
	ctx := context.Background()
	periodID := "period-1"
	projectID := "proj-1"

	// Two labourers, five logs of 100.00 each: 1000.00 total, two entries.
	logs := []domain.WorkLog{
		{LabourerID: "lab-1", WorkDate: "2025-08-01", OpenTrenchingMeters: dec("10"), CloseTrenchingMeters: dec("0"), TotalEarnings: dec("100.00")},
		{LabourerID: "lab-1", WorkDate: "2025-08-02", OpenTrenchingMeters: dec("10"), CloseTrenchingMeters: dec("0"), TotalEarnings: dec("100.00")},
		{LabourerID: "lab-1", WorkDate: "2025-08-03", OpenTrenchingMeters: dec("10"), CloseTrenchingMeters: dec("0"), TotalEarnings: dec("100.00")},
		{LabourerID: "lab-2", WorkDate: "2025-08-01", OpenTrenchingMeters: dec("0"), CloseTrenchingMeters: dec("20"), TotalEarnings: dec("100.00")},
		{LabourerID: "lab-2", WorkDate: "2025-08-02", OpenTrenchingMeters: dec("0"), CloseTrenchingMeters: dec("20"), TotalEarnings: dec("100.00")},
	}

	suite.mockPeriodRepo.On("FindPaymentPeriodByID", ctx, periodID).
		Return(&domain.PaymentPeriod{
			PeriodID:  periodID,
			ProjectID: projectID,
			StartDate: "2025-08-01",
			EndDate:   "2025-08-15",
			Status:    domain.PeriodOpen,
		}, nil).Once()
	suite.mockPeriodRepo.On("ListPaymentPeriodEntries", ctx, periodID).
		Return([]domain.PaymentPeriodEntry{}, nil).Once()
	suite.mockWorkLogRepo.On("ListWorkLogsByDateRange", ctx, projectID, "2025-08-01", "2025-08-15").
		Return(logs, nil).Once()
	suite.mockLabourerRepo.On("ListLabourers", ctx, projectID).
		Return([]domain.Labourer{
			{LabourerID: "lab-1", FirstName: "Sipho", Surname: "Dlamini", IDNumber: "8001015009087"},
			{LabourerID: "lab-2", FirstName: "Thabo", Surname: "Nkosi", IDNumber: "9202204720082"},
		}, nil).Once()
	suite.mockPeriodRepo.On("SubmitPaymentPeriod", ctx,
		mock.MatchedBy(func(p domain.PaymentPeriod) bool {
			return p.Status == domain.PeriodSubmitted && p.TotalAmount.Equal(dec("1000.00")) && p.SubmittedAt != nil
		}),
		mock.MatchedBy(func(entries []domain.PaymentPeriodEntry) bool {
			if len(entries) != 2 {
				return false
			}
			return entries[0].LabourerID == "lab-1" && entries[0].DaysWorked == 3 &&
				entries[0].TotalEarnings.Equal(dec("300.00")) &&
				entries[1].LabourerID == "lab-2" && entries[1].DaysWorked == 2 &&
				entries[1].TotalEarnings.Equal(dec("200.00")) &&
				entries[1].LabourerName == "Thabo Nkosi"
		})).Return(nil).Once()

	period, err := suite.service.SubmitPaymentPeriod(ctx, periodID, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.PeriodSubmitted, period.Status)
	suite.True(period.TotalAmount.Equal(dec("1000.00")))
	suite.mockPeriodRepo.AssertExpectations(suite.T())
	suite.mockWorkLogRepo.AssertExpectations(suite.T())
}

func (suite *PaymentPeriodServiceTestSuite) TestSubmit_IdempotentOnExistingEntries() {
	ctx := context.Background()
	periodID := "period-1"

	existing := []domain.PaymentPeriodEntry{
		{EntryID: "e-1", LabourerID: "lab-1", TotalEarnings: dec("300.00")},
		{EntryID: "e-2", LabourerID: "lab-2", TotalEarnings: dec("200.00")},
	}

	suite.mockPeriodRepo.On("FindPaymentPeriodByID", ctx, periodID).
		Return(&domain.PaymentPeriod{
			PeriodID:  periodID,
			ProjectID: "proj-1",
			StartDate: "2025-08-01",
			EndDate:   "2025-08-15",
			Status:    domain.PeriodSubmitted,
		}, nil).Once()
	suite.mockPeriodRepo.On("ListPaymentPeriodEntries", ctx, periodID).
		Return(existing, nil).Once()
	// No new entries are written; the stored ones are kept as-is and only the
	// total is recomputed from them.
	suite.mockPeriodRepo.On("SubmitPaymentPeriod", ctx,
		mock.MatchedBy(func(p domain.PaymentPeriod) bool {
			return p.TotalAmount.Equal(dec("500.00"))
		}),
		mock.MatchedBy(func(entries []domain.PaymentPeriodEntry) bool {
			return len(entries) == 0
		})).Return(nil).Once()

	period, err := suite.service.SubmitPaymentPeriod(ctx, periodID, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(period.TotalAmount.Equal(dec("500.00")))
	suite.mockWorkLogRepo.AssertNotCalled(suite.T(), "ListWorkLogsByDateRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockPeriodRepo.AssertExpectations(suite.T())
}

func (suite *PaymentPeriodServiceTestSuite) TestSubmit_PeriodNotFound() {
	ctx := context.Background()

	suite.mockPeriodRepo.On("FindPaymentPeriodByID", ctx, "missing").
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.SubmitPaymentPeriod(ctx, "missing", uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PaymentPeriodServiceTestSuite) TestApprove_RecordsApprover() {
	ctx := context.Background()
	periodID := "period-1"
	approverID := uuid.NewString()

	suite.mockPeriodRepo.On("FindPaymentPeriodByID", ctx, periodID).
		Return(&domain.PaymentPeriod{PeriodID: periodID, Status: domain.PeriodSubmitted, TotalAmount: dec("500.00")}, nil).Once()
	suite.mockPeriodRepo.On("UpdatePaymentPeriod", ctx, mock.MatchedBy(func(p domain.PaymentPeriod) bool {
		return p.Status == domain.PeriodApproved && p.ApprovedBy == approverID && p.ApprovedAt != nil
	})).Return(nil).Once()

	period, err := suite.service.ApprovePaymentPeriod(ctx, periodID, approverID)

	suite.Require().NoError(err)
	suite.Equal(domain.PeriodApproved, period.Status)
	suite.mockPeriodRepo.AssertExpectations(suite.T())
}

func (suite *PaymentPeriodServiceTestSuite) TestMarkPaid() {
	ctx := context.Background()
	periodID := "period-1"

	suite.mockPeriodRepo.On("FindPaymentPeriodByID", ctx, periodID).
		Return(&domain.PaymentPeriod{PeriodID: periodID, Status: domain.PeriodApproved}, nil).Once()
	suite.mockPeriodRepo.On("UpdatePaymentPeriod", ctx, mock.MatchedBy(func(p domain.PaymentPeriod) bool {
		return p.Status == domain.PeriodPaid
	})).Return(nil).Once()

	period, err := suite.service.MarkPaymentPeriodPaid(ctx, periodID, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.PeriodPaid, period.Status)
}

func TestPaymentPeriodServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentPeriodServiceTestSuite))
}
