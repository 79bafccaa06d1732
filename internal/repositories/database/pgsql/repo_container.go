package pgsql

import (
	portsrepo "github.com/TrenchWorks/workforce_payroll_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx repository onto the shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		UserRepo:          newPgxUserRepository(dbPool),
		LabourerRepo:      newPgxLabourerRepository(dbPool),
		ProjectRepo:       newPgxProjectRepository(dbPool),
		EmployeeTypeRepo:  newPgxEmployeeTypeRepository(dbPool),
		PayRateRepo:       newPgxPayRateRepository(dbPool),
		WorkLogRepo:       newPgxWorkLogRepository(dbPool),
		PaymentPeriodRepo: newPgxPaymentPeriodRepository(dbPool),
		CorrectionRepo:    newPgxCorrectionRepository(dbPool),
		AuditLogRepo:      newPgxAuditLogRepository(dbPool),
	}
}
