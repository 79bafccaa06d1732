package services

import (
	portsrepo "github.com/TrenchWorks/workforce_payroll_app/internal/core/ports/repositories"
	portssvc "github.com/TrenchWorks/workforce_payroll_app/internal/core/ports/services"
	"github.com/TrenchWorks/workforce_payroll_app/pkg/config"
)

// NewServiceContainer wires every service with its repositories and returns
// the container handlers resolve from. The audit sink is built first because
// almost every other service records through it.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	audit := NewAuditService(repos.AuditLogRepo, repos.UserRepo)

	return &portssvc.ServiceContainer{
		Auth:          NewAuthService(cfg, repos.UserRepo, repos.LabourerRepo),
		User:          NewUserService(repos.UserRepo, audit),
		Project:       NewProjectService(repos.ProjectRepo, repos.UserRepo, audit),
		EmployeeType:  NewEmployeeTypeService(repos.EmployeeTypeRepo, audit),
		Labourer:      NewLabourerService(repos.LabourerRepo, repos.ProjectRepo, repos.EmployeeTypeRepo, audit),
		PayRate:       NewPayRateService(repos.PayRateRepo, repos.ProjectRepo, repos.EmployeeTypeRepo, audit),
		WorkLog:       NewWorkLogService(repos.WorkLogRepo, repos.LabourerRepo, repos.ProjectRepo, repos.PayRateRepo, audit),
		PaymentPeriod: NewPaymentPeriodService(repos.PaymentPeriodRepo, repos.WorkLogRepo, repos.LabourerRepo, repos.ProjectRepo, audit),
		Correction:    NewCorrectionService(repos.CorrectionRepo, audit),
		Reporting:     NewReportingService(repos.WorkLogRepo, repos.LabourerRepo, repos.ProjectRepo, repos.PayRateRepo),
		Audit:         audit,
	}
}
