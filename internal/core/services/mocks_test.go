package services_test

import (
	"context"

	"github.com/TrenchWorks/workforce_payroll_app/internal/core/domain"
	portsrepo "github.com/TrenchWorks/workforce_payroll_app/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	args := m.Called(ctx, googleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Mock LabourerRepository ---
type MockLabourerRepository struct {
	mock.Mock
}

func (m *MockLabourerRepository) SaveLabourer(ctx context.Context, labourer domain.Labourer) error {
	args := m.Called(ctx, labourer)
	return args.Error(0)
}

func (m *MockLabourerRepository) FindLabourerByID(ctx context.Context, labourerID string) (*domain.Labourer, error) {
	args := m.Called(ctx, labourerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Labourer), args.Error(1)
}

func (m *MockLabourerRepository) FindLabourerByIDNumber(ctx context.Context, idNumber string) (*domain.Labourer, error) {
	args := m.Called(ctx, idNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Labourer), args.Error(1)
}

func (m *MockLabourerRepository) ListLabourers(ctx context.Context, projectID string) ([]domain.Labourer, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Labourer), args.Error(1)
}

func (m *MockLabourerRepository) ListAvailableLabourers(ctx context.Context) ([]domain.Labourer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Labourer), args.Error(1)
}

func (m *MockLabourerRepository) UpdateLabourer(ctx context.Context, labourer domain.Labourer) error {
	args := m.Called(ctx, labourer)
	return args.Error(0)
}

// --- Mock ProjectRepository ---
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) ListProjects(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) AssignStaff(ctx context.Context, assignment domain.ProjectAssignment) (portsrepo.AssignmentOutcome, error) {
	args := m.Called(ctx, assignment)
	return args.Get(0).(portsrepo.AssignmentOutcome), args.Error(1)
}

func (m *MockProjectRepository) ListAssignments(ctx context.Context, projectID string) ([]domain.ProjectAssignment, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProjectAssignment), args.Error(1)
}

// --- Mock EmployeeTypeRepository ---
type MockEmployeeTypeRepository struct {
	mock.Mock
}

func (m *MockEmployeeTypeRepository) SaveEmployeeType(ctx context.Context, et domain.EmployeeType) error {
	args := m.Called(ctx, et)
	return args.Error(0)
}

func (m *MockEmployeeTypeRepository) FindEmployeeTypeByID(ctx context.Context, employeeTypeID string) (*domain.EmployeeType, error) {
	args := m.Called(ctx, employeeTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployeeType), args.Error(1)
}

func (m *MockEmployeeTypeRepository) ListEmployeeTypes(ctx context.Context, includeInactive bool) ([]domain.EmployeeType, error) {
	args := m.Called(ctx, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EmployeeType), args.Error(1)
}

func (m *MockEmployeeTypeRepository) UpdateEmployeeType(ctx context.Context, et domain.EmployeeType) error {
	args := m.Called(ctx, et)
	return args.Error(0)
}

// --- Mock PayRateRepository ---
type MockPayRateRepository struct {
	mock.Mock
}

func (m *MockPayRateRepository) SavePayRate(ctx context.Context, rate domain.PayRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockPayRateRepository) ListPayRatesByProject(ctx context.Context, projectID string) ([]domain.PayRate, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PayRate), args.Error(1)
}

func (m *MockPayRateRepository) FindEffectiveRate(ctx context.Context, projectID, employeeTypeID string, category domain.RateCategory, asOfDate string) (*domain.PayRate, error) {
	args := m.Called(ctx, projectID, employeeTypeID, category, asOfDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayRate), args.Error(1)
}

func (m *MockPayRateRepository) FindProjectEffectiveRate(ctx context.Context, projectID string, category domain.RateCategory, asOfDate string) (*domain.PayRate, error) {
	args := m.Called(ctx, projectID, category, asOfDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayRate), args.Error(1)
}

// --- Mock WorkLogRepository ---
type MockWorkLogRepository struct {
	mock.Mock
}

func (m *MockWorkLogRepository) SaveWorkLog(ctx context.Context, log domain.WorkLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockWorkLogRepository) FindWorkLogByID(ctx context.Context, workLogID string) (*domain.WorkLog, error) {
	args := m.Called(ctx, workLogID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkLog), args.Error(1)
}

func (m *MockWorkLogRepository) UpdateWorkLog(ctx context.Context, log domain.WorkLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockWorkLogRepository) ListWorkLogsByDateRange(ctx context.Context, projectID, startDate, endDate string) ([]domain.WorkLog, error) {
	args := m.Called(ctx, projectID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkLog), args.Error(1)
}

func (m *MockWorkLogRepository) ListWorkLogsByLabourer(ctx context.Context, labourerID, startDate, endDate string) ([]domain.WorkLog, error) {
	args := m.Called(ctx, labourerID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkLog), args.Error(1)
}

// --- Mock PaymentPeriodRepository ---
type MockPaymentPeriodRepository struct {
	mock.Mock
}

func (m *MockPaymentPeriodRepository) SavePaymentPeriod(ctx context.Context, period domain.PaymentPeriod) error {
	args := m.Called(ctx, period)
	return args.Error(0)
}

func (m *MockPaymentPeriodRepository) FindPaymentPeriodByID(ctx context.Context, periodID string) (*domain.PaymentPeriod, error) {
	args := m.Called(ctx, periodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentPeriod), args.Error(1)
}

func (m *MockPaymentPeriodRepository) ListPaymentPeriodsByProject(ctx context.Context, projectID string) ([]domain.PaymentPeriod, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentPeriod), args.Error(1)
}

func (m *MockPaymentPeriodRepository) ListPaymentPeriodEntries(ctx context.Context, periodID string) ([]domain.PaymentPeriodEntry, error) {
	args := m.Called(ctx, periodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentPeriodEntry), args.Error(1)
}

func (m *MockPaymentPeriodRepository) SubmitPaymentPeriod(ctx context.Context, period domain.PaymentPeriod, entries []domain.PaymentPeriodEntry) error {
	args := m.Called(ctx, period, entries)
	return args.Error(0)
}

func (m *MockPaymentPeriodRepository) UpdatePaymentPeriod(ctx context.Context, period domain.PaymentPeriod) error {
	args := m.Called(ctx, period)
	return args.Error(0)
}

// --- Mock CorrectionRepository ---
type MockCorrectionRepository struct {
	mock.Mock
}

func (m *MockCorrectionRepository) SaveCorrectionRequest(ctx context.Context, req domain.CorrectionRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockCorrectionRepository) FindCorrectionRequestByID(ctx context.Context, requestID string) (*domain.CorrectionRequest, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CorrectionRequest), args.Error(1)
}

func (m *MockCorrectionRepository) ListCorrectionRequests(ctx context.Context, status domain.CorrectionStatus) ([]domain.CorrectionRequest, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CorrectionRequest), args.Error(1)
}

func (m *MockCorrectionRepository) UpdateCorrectionRequest(ctx context.Context, req domain.CorrectionRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

// --- Mock AuditLogRepository ---
type MockAuditLogRepository struct {
	mock.Mock
}

func (m *MockAuditLogRepository) SaveAuditLog(ctx context.Context, log domain.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockAuditLogRepository) ListAuditLogs(ctx context.Context, filter portsrepo.AuditLogFilter, limit, offset int) ([]domain.AuditLog, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditLog), args.Error(1)
}

// noopAudit satisfies the audit facade for suites that are not asserting on
// audit behaviour.
type noopAudit struct{}

func (noopAudit) Record(ctx context.Context, actorUserID string, action domain.AuditAction, entityType, entityID string, changes map[string]domain.FieldChange, metadata map[string]any) {
}

func (noopAudit) ListAuditLogs(ctx context.Context, filter portsrepo.AuditLogFilter, limit, offset int) ([]domain.AuditLog, error) {
	return nil, nil
}
