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

type CorrectionServiceTestSuite struct {
	suite.Suite
	mockCorrectionRepo *MockCorrectionRepository
	service            portssvc.CorrectionSvcFacade
}

func (suite *CorrectionServiceTestSuite) SetupTest() {
	suite.mockCorrectionRepo = new(MockCorrectionRepository)
	suite.service = services.NewCorrectionService(suite.mockCorrectionRepo, noopAudit{})
}

func (suite *CorrectionServiceTestSuite) TestCreateCorrectionRequest() {
	ctx := context.Background()
	requesterID := uuid.NewString()

	suite.mockCorrectionRepo.On("SaveCorrectionRequest", ctx, mock.MatchedBy(func(r domain.CorrectionRequest) bool {
		return r.Status == domain.CorrectionPending &&
			r.EntityType == domain.CorrectionWorkLog &&
			r.RequestedBy == requesterID
	})).Return(nil).Once()

	request, err := suite.service.CreateCorrectionRequest(ctx, dto.CreateCorrectionRequest{
		EntityType: "work_log",
		EntityID:   "wl-1",
		FieldName:  "openTrenchingMeters",
		OldValue:   "10",
		NewValue:   "15",
		Reason:     "Metres misread from the site sheet",
	}, requesterID)

	suite.Require().NoError(err)
	suite.Equal(domain.CorrectionPending, request.Status)
	suite.mockCorrectionRepo.AssertExpectations(suite.T())
}

func (suite *CorrectionServiceTestSuite) TestReview_RequiresAdmin() {
	ctx := context.Background()

	_, err := suite.service.ReviewCorrectionRequest(ctx, "req-1", true, "", uuid.NewString(), domain.RoleProjectManager)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockCorrectionRepo.AssertNotCalled(suite.T(), "UpdateCorrectionRequest", mock.Anything, mock.Anything)
}

func (suite *CorrectionServiceTestSuite) TestReview_ApproveRecordsDecisionOnly() {
	ctx := context.Background()
	reviewerID := uuid.NewString()

	suite.mockCorrectionRepo.On("FindCorrectionRequestByID", ctx, "req-1").
		Return(&domain.CorrectionRequest{RequestID: "req-1", Status: domain.CorrectionPending}, nil).Once()
	suite.mockCorrectionRepo.On("UpdateCorrectionRequest", ctx, mock.MatchedBy(func(r domain.CorrectionRequest) bool {
		return r.Status == domain.CorrectionApproved &&
			r.ReviewedBy == reviewerID &&
			r.ReviewedAt != nil &&
			r.ReviewNotes == "approved, apply by hand"
	})).Return(nil).Once()

	request, err := suite.service.ReviewCorrectionRequest(ctx, "req-1", true, "approved, apply by hand", reviewerID, domain.RoleAdmin)

	suite.Require().NoError(err)
	suite.Equal(domain.CorrectionApproved, request.Status)
	suite.mockCorrectionRepo.AssertExpectations(suite.T())
}

func (suite *CorrectionServiceTestSuite) TestReview_Reject() {
	ctx := context.Background()

	suite.mockCorrectionRepo.On("FindCorrectionRequestByID", ctx, "req-1").
		Return(&domain.CorrectionRequest{RequestID: "req-1", Status: domain.CorrectionPending}, nil).Once()
	suite.mockCorrectionRepo.On("UpdateCorrectionRequest", ctx, mock.MatchedBy(func(r domain.CorrectionRequest) bool {
		return r.Status == domain.CorrectionRejected
	})).Return(nil).Once()

	request, err := suite.service.ReviewCorrectionRequest(ctx, "req-1", false, "", uuid.NewString(), domain.RoleAdmin)

	suite.Require().NoError(err)
	suite.Equal(domain.CorrectionRejected, request.Status)
}

func (suite *CorrectionServiceTestSuite) TestReview_AlreadyReviewed() {
	ctx := context.Background()

	suite.mockCorrectionRepo.On("FindCorrectionRequestByID", ctx, "req-1").
		Return(&domain.CorrectionRequest{RequestID: "req-1", Status: domain.CorrectionApproved}, nil).Once()

	_, err := suite.service.ReviewCorrectionRequest(ctx, "req-1", false, "", uuid.NewString(), domain.RoleAdmin)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCorrectionRepo.AssertNotCalled(suite.T(), "UpdateCorrectionRequest", mock.Anything, mock.Anything)
}

func (suite *CorrectionServiceTestSuite) TestList_RejectsUnknownStatus() {
	ctx := context.Background()

	_, err := suite.service.ListCorrectionRequests(ctx, domain.CorrectionStatus("escalated"))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestCorrectionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CorrectionServiceTestSuite))
}
