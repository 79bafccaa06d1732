package repositories

// RepositoryProvider bundles all repository implementations for injection
// into the service container.
type RepositoryProvider struct {
	UserRepo          UserRepository
	LabourerRepo      LabourerRepository
	ProjectRepo       ProjectRepository
	EmployeeTypeRepo  EmployeeTypeRepository
	PayRateRepo       PayRateRepository
	WorkLogRepo       WorkLogRepository
	PaymentPeriodRepo PaymentPeriodRepository
	CorrectionRepo    CorrectionRepository
	AuditLogRepo      AuditLogRepository
}
