package services

// ServiceContainer holds instances of all the application services. It is the
// entry point for handlers to reach business logic.
type ServiceContainer struct {
	Auth          AuthSvcFacade
	User          UserSvcFacade
	Project       ProjectSvcFacade
	EmployeeType  EmployeeTypeSvcFacade
	Labourer      LabourerSvcFacade
	PayRate       PayRateSvcFacade
	WorkLog       WorkLogSvcFacade
	PaymentPeriod PaymentPeriodSvcFacade
	Correction    CorrectionSvcFacade
	Reporting     ReportingSvcFacade
	Audit         AuditSvcFacade
}
