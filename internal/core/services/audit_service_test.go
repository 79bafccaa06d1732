package services_test

import (
	"context"
	"testing"

	"github.com/TrenchWorks/workforce_payroll_app/internal/apperrors"
	"github.com/TrenchWorks/workforce_payroll_app/internal/core/domain"
	portsrepo "github.com/TrenchWorks/workforce_payroll_app/internal/core/ports/repositories"
	portssvc "github.com/TrenchWorks/workforce_payroll_app/internal/core/ports/services"
	"github.com/TrenchWorks/workforce_payroll_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AuditServiceTestSuite struct {
	suite.Suite
	mockAuditRepo *MockAuditLogRepository
	mockUserRepo  *MockUserRepository
	service       portssvc.AuditSvcFacade
}

func (suite *AuditServiceTestSuite) SetupTest() {
	suite.mockAuditRepo = new(MockAuditLogRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewAuditService(suite.mockAuditRepo, suite.mockUserRepo)
}

func (suite *AuditServiceTestSuite) TestRecord_SnapshotsActorIdentity() {
	ctx := context.Background()
	actorID := "user-1"

	suite.mockUserRepo.On("FindUserByID", ctx, actorID).
		Return(&domain.User{UserID: actorID, Name: "Lindiwe Khumalo", Email: "lindiwe@example.com"}, nil).Once()
	suite.mockAuditRepo.On("SaveAuditLog", ctx, mock.MatchedBy(func(l domain.AuditLog) bool {
		return l.Action == domain.AuditSubmit &&
			l.EntityType == "payment_period" &&
			l.UserName == "Lindiwe Khumalo" &&
			l.UserEmail == "lindiwe@example.com" &&
			l.AuditLogID != ""
	})).Return(nil).Once()

	suite.service.Record(ctx, actorID, domain.AuditSubmit, "payment_period", "period-1", nil,
		map[string]any{"entries": 2})

	suite.mockAuditRepo.AssertExpectations(suite.T())
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *AuditServiceTestSuite) TestRecord_SwallowsSaveFailure() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByID", ctx, "user-1").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAuditRepo.On("SaveAuditLog", ctx, mock.AnythingOfType("domain.AuditLog")).
		Return(assert.AnError).Once()

	// Record has no error return; a failing sink must not panic or propagate.
	suite.NotPanics(func() {
		suite.service.Record(ctx, "user-1", domain.AuditCreate, "labourer", "lab-1", nil, nil)
	})
	suite.mockAuditRepo.AssertExpectations(suite.T())
}

func (suite *AuditServiceTestSuite) TestListAuditLogs_ClampsPaging() {
	ctx := context.Background()
	filter := portsrepo.AuditLogFilter{EntityType: "project"}

	suite.mockAuditRepo.On("ListAuditLogs", ctx, filter, 50, 0).
		Return([]domain.AuditLog{{AuditLogID: "a-1"}}, nil).Once()

	logs, err := suite.service.ListAuditLogs(ctx, filter, -5, -1)

	suite.Require().NoError(err)
	suite.Len(logs, 1)
	suite.mockAuditRepo.AssertExpectations(suite.T())
}

func TestAuditServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuditServiceTestSuite))
}
