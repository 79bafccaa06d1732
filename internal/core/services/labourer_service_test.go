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

// validSAID passes the full ID number validation (format, date, age, Luhn).
const validSAID = "8001015009087"

type LabourerServiceTestSuite struct {
	suite.Suite
	mockLabourerRepo     *MockLabourerRepository
	mockProjectRepo      *MockProjectRepository
	mockEmployeeTypeRepo *MockEmployeeTypeRepository
	service              portssvc.LabourerSvcFacade
}

func (suite *LabourerServiceTestSuite) SetupTest() {
	suite.mockLabourerRepo = new(MockLabourerRepository)
	suite.mockProjectRepo = new(MockProjectRepository)
	suite.mockEmployeeTypeRepo = new(MockEmployeeTypeRepository)
	suite.service = services.NewLabourerService(
		suite.mockLabourerRepo, suite.mockProjectRepo, suite.mockEmployeeTypeRepo, noopAudit{})
}

func (suite *LabourerServiceTestSuite) activeType(id string) {
	suite.mockEmployeeTypeRepo.On("FindEmployeeTypeByID", mock.Anything, id).
		Return(&domain.EmployeeType{EmployeeTypeID: id, Name: "Trencher", IsActive: true}, nil)
}

func (suite *LabourerServiceTestSuite) TestCreateLabourer_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	suite.activeType("et-1")
	suite.mockLabourerRepo.On("FindLabourerByIDNumber", ctx, validSAID).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockLabourerRepo.On("SaveLabourer", ctx, mock.MatchedBy(func(l domain.Labourer) bool {
		return l.IDNumber == validSAID && l.FirstName == "Sipho" && l.CreatedBy == creatorUserID
	})).Return(nil).Once()

	labourer, err := suite.service.CreateLabourer(ctx, dto.CreateLabourerRequest{
		FirstName:      "Sipho",
		Surname:        "Dlamini",
		IDNumber:       validSAID,
		PhoneNumber:    "0721234567",
		EmployeeTypeID: "et-1",
	}, creatorUserID)

	suite.Require().NoError(err)
	suite.Equal(validSAID, labourer.IDNumber)
	suite.Empty(labourer.ProjectID)
	suite.mockLabourerRepo.AssertExpectations(suite.T())
}

func (suite *LabourerServiceTestSuite) TestCreateLabourer_RejectsInvalidIDNumber() {
	ctx := context.Background()

	// Last digit flipped: the Luhn check digit no longer matches.
	_, err := suite.service.CreateLabourer(ctx, dto.CreateLabourerRequest{
		FirstName:      "Sipho",
		Surname:        "Dlamini",
		IDNumber:       "8001015009088",
		EmployeeTypeID: "et-1",
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLabourerRepo.AssertNotCalled(suite.T(), "SaveLabourer", mock.Anything, mock.Anything)
}

func (suite *LabourerServiceTestSuite) TestCreateLabourer_AcceptsPassport() {
	ctx := context.Background()
	passport := "AB123456"
	suite.activeType("et-1")
	suite.mockLabourerRepo.On("FindLabourerByIDNumber", ctx, passport).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockLabourerRepo.On("SaveLabourer", ctx, mock.AnythingOfType("domain.Labourer")).
		Return(nil).Once()

	labourer, err := suite.service.CreateLabourer(ctx, dto.CreateLabourerRequest{
		FirstName:      "Amahle",
		Surname:        "Moyo",
		IDNumber:       passport,
		EmployeeTypeID: "et-1",
	}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(passport, labourer.IDNumber)
}

func (suite *LabourerServiceTestSuite) TestCreateLabourer_DuplicateIDNumber() {
	ctx := context.Background()
	suite.activeType("et-1")
	suite.mockLabourerRepo.On("FindLabourerByIDNumber", ctx, validSAID).
		Return(&domain.Labourer{LabourerID: "existing"}, nil).Once()

	_, err := suite.service.CreateLabourer(ctx, dto.CreateLabourerRequest{
		FirstName:      "Sipho",
		Surname:        "Dlamini",
		IDNumber:       validSAID,
		EmployeeTypeID: "et-1",
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockLabourerRepo.AssertNotCalled(suite.T(), "SaveLabourer", mock.Anything, mock.Anything)
}

func (suite *LabourerServiceTestSuite) TestCreateLabourer_InactiveEmployeeType() {
	ctx := context.Background()
	suite.mockEmployeeTypeRepo.On("FindEmployeeTypeByID", ctx, "et-old").
		Return(&domain.EmployeeType{EmployeeTypeID: "et-old", IsActive: false}, nil).Once()

	_, err := suite.service.CreateLabourer(ctx, dto.CreateLabourerRequest{
		FirstName:      "Sipho",
		Surname:        "Dlamini",
		IDNumber:       validSAID,
		EmployeeTypeID: "et-old",
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LabourerServiceTestSuite) TestAssignToProject_UnassignWithEmptyProject() {
	ctx := context.Background()
	actorID := uuid.NewString()

	suite.mockLabourerRepo.On("FindLabourerByID", ctx, "lab-1").
		Return(&domain.Labourer{LabourerID: "lab-1", ProjectID: "proj-1"}, nil).Once()
	suite.mockLabourerRepo.On("UpdateLabourer", ctx, mock.MatchedBy(func(l domain.Labourer) bool {
		return l.ProjectID == "" && l.LastUpdatedBy == actorID
	})).Return(nil).Once()

	labourer, err := suite.service.AssignToProject(ctx, "lab-1", "", actorID)

	suite.Require().NoError(err)
	suite.Empty(labourer.ProjectID)
	suite.mockProjectRepo.AssertNotCalled(suite.T(), "FindProjectByID", mock.Anything, mock.Anything)
}

func (suite *LabourerServiceTestSuite) TestBulkImport_SkipsBadRowsImportsRest() {
	ctx := context.Background()
	suite.activeType("et-1")
	suite.mockLabourerRepo.On("FindLabourerByIDNumber", ctx, validSAID).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockLabourerRepo.On("SaveLabourer", ctx, mock.AnythingOfType("domain.Labourer")).
		Return(nil).Once()

	result, err := suite.service.BulkImport(ctx, dto.BulkImportRequest{
		Rows: []dto.ImportLabourerRow{
			{FirstName: "Sipho", Surname: "Dlamini", IDNumber: validSAID, EmployeeTypeID: "et-1"},
			{FirstName: "", Surname: "Nkosi", IDNumber: "9001015009086", EmployeeTypeID: "et-1"},
			{FirstName: "Thabo", Surname: "Nkosi", IDNumber: "8001015009088", EmployeeTypeID: "et-1"},
			{FirstName: "Sipho", Surname: "Again", IDNumber: validSAID, EmployeeTypeID: "et-1"},
		},
	}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(1, result.Imported)
	suite.Require().Len(result.Skipped, 3)
	suite.Equal(2, result.Skipped[0].RowNumber) // missing first name
	suite.Equal(3, result.Skipped[1].RowNumber) // bad check digit
	suite.Equal(4, result.Skipped[2].RowNumber) // duplicate within the batch
	suite.mockLabourerRepo.AssertExpectations(suite.T())
}

func TestLabourerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LabourerServiceTestSuite))
}
