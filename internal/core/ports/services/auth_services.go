package services

import (
	"context"

	"github.com/TrenchWorks/workforce_payroll_app/internal/dto"
)

// AuthSvcFacade issues application JWTs for the three login paths: staff
// email + password, staff Google sign-in, and labourer phone + ID number.
type AuthSvcFacade interface {
	LoginStaff(ctx context.Context, email, password string) (*dto.LoginResponse, error)
	LoginWithGoogle(ctx context.Context, idToken string) (*dto.LoginResponse, error)
	LoginLabourer(ctx context.Context, phoneNumber, idNumber string) (*dto.LoginResponse, error)
}
