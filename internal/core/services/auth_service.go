package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/TrenchWorks/workforce_payroll_app/internal/apperrors"
	"github.com/TrenchWorks/workforce_payroll_app/internal/core/domain"
	portsrepo "github.com/TrenchWorks/workforce_payroll_app/internal/core/ports/repositories"
	portssvc "github.com/TrenchWorks/workforce_payroll_app/internal/core/ports/services"
	"github.com/TrenchWorks/workforce_payroll_app/internal/dto"
	"github.com/TrenchWorks/workforce_payroll_app/internal/utils"
	"github.com/TrenchWorks/workforce_payroll_app/pkg/config"
	"google.golang.org/api/idtoken"
)

// idTokenValidator is the Google ID token verification hook, replaceable in
// tests.
type idTokenValidator func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

type authService struct {
	BaseService
	cfg          *config.Config
	userRepo     portsrepo.UserRepository
	labourerRepo portsrepo.LabourerRepository
	validateIDToken idTokenValidator
}

// NewAuthService creates the authentication service covering all three login
// paths: staff email + password, staff Google sign-in and labourer
// phone + ID number.
func NewAuthService(cfg *config.Config, userRepo portsrepo.UserRepository, labourerRepo portsrepo.LabourerRepository) portssvc.AuthSvcFacade {
	return &authService{
		cfg:          cfg,
		userRepo:     userRepo,
		labourerRepo: labourerRepo,
		validateIDToken: func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
			return idtoken.Validate(ctx, token, audience)
		},
	}
}

func (s *authService) LoginStaff(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if user.PasswordHash == "" || !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogInfo(ctx, "Failed staff login attempt", slog.String("email", email))
		return nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
	}

	return s.issueToken(user.UserID, user.Name, string(user.Role))
}

func (s *authService) LoginWithGoogle(ctx context.Context, idToken string) (*dto.LoginResponse, error) {
	if s.cfg.GoogleClientID == "" {
		return nil, fmt.Errorf("%w: google sign-in is not configured", apperrors.ErrValidation)
	}

	payload, err := s.validateIDToken(ctx, idToken, s.cfg.GoogleClientID)
	if err != nil {
		s.LogInfo(ctx, "Google ID token validation failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: google ID token validation failed", apperrors.ErrUnauthorized)
	}

	googleID := payload.Subject
	user, err := s.userRepo.FindUserByGoogleID(ctx, googleID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user by google ID: %w", err)
	}

	if user == nil {
		// First Google sign-in: match by verified email and link the account.
		// Accounts are provisioned by an admin beforehand, so an unknown
		// email is rejected rather than auto-registered.
		email, _ := payload.Claims["email"].(string)
		if email == "" {
			return nil, fmt.Errorf("%w: google token has no email claim", apperrors.ErrUnauthorized)
		}
		user, err = s.userRepo.FindUserByEmail(ctx, strings.ToLower(email))
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: no account for this google identity", apperrors.ErrUnauthorized)
			}
			return nil, fmt.Errorf("failed to look up user by email: %w", err)
		}

		user.GoogleID = googleID
		user.LastUpdatedAt = time.Now()
		if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
			s.LogError(ctx, err, "Failed to link google ID to user", slog.String("user_id", user.UserID))
			return nil, fmt.Errorf("failed to link google account: %w", err)
		}
		s.LogInfo(ctx, "Linked google identity to user", slog.String("user_id", user.UserID))
	}

	return s.issueToken(user.UserID, user.Name, string(user.Role))
}

func (s *authService) LoginLabourer(ctx context.Context, phoneNumber, idNumber string) (*dto.LoginResponse, error) {
	labourer, err := s.labourerRepo.FindLabourerByIDNumber(ctx, strings.TrimSpace(idNumber))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid phone number or ID number", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to look up labourer: %w", err)
	}

	if normalizePhone(labourer.PhoneNumber) == "" || normalizePhone(labourer.PhoneNumber) != normalizePhone(phoneNumber) {
		s.LogInfo(ctx, "Failed labourer login attempt", slog.String("labourer_id", labourer.LabourerID))
		return nil, fmt.Errorf("%w: invalid phone number or ID number", apperrors.ErrUnauthorized)
	}

	return s.issueToken(labourer.LabourerID, labourer.FullName(), string(domain.RoleLabourer))
}

func (s *authService) issueToken(subjectID, name, role string) (*dto.LoginResponse, error) {
	token, err := utils.GenerateJWT(subjectID, role, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to sign token", apperrors.ErrInternal)
	}
	return &dto.LoginResponse{
		Token:     token,
		UserID:    subjectID,
		Name:      name,
		Role:      role,
		ExpiresIn: int64(s.cfg.JWTExpiryDuration.Seconds()),
	}, nil
}

// normalizePhone strips everything but digits so "072 123 4567" and
// "0721234567" compare equal.
func normalizePhone(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
