package usecase

import (
	"context"
	"errors"
	"strings"

	"dailywage-backend/internal/domain"
	"dailywage-backend/pkg/apperror"
	"dailywage-backend/pkg/auth"
	"dailywage-backend/pkg/security"
	"dailywage-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// LoginGuard throttles repeated failed logins. *security.LoginTracker
// implements it.
type LoginGuard interface {
	IsBlocked(ctx context.Context, phone, ip string) (bool, error)
	RecordFailedAttempt(ctx context.Context, phone, ip string) (bool, int, error)
	ClearAttempts(ctx context.Context, phone, ip string) error
}

type authUsecase struct {
	userRepo  domain.UserRepository
	tokens    *auth.TokenManager
	guard     LoginGuard
	secLogger *security.SecurityLogger
	validate  *validator.Validate
}

func NewAuthUsecase(
	userRepo domain.UserRepository,
	tokens *auth.TokenManager,
	guard LoginGuard,
	secLogger *security.SecurityLogger,
	validate *validator.Validate,
) domain.AuthUsecase {
	return &authUsecase{
		userRepo:  userRepo,
		tokens:    tokens,
		guard:     guard,
		secLogger: secLogger,
		validate:  validate,
	}
}

func (u *authUsecase) Register(ctx context.Context, input domain.RegisterInput) (*domain.AuthResult, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Role = strings.TrimSpace(input.Role)

	if err := u.validate.Struct(input); err != nil {
		return nil, validation.ToAppError(err)
	}

	// Lookup first for the common case; the unique index catches the race.
	existing, err := u.userRepo.GetByPhone(ctx, input.Phone)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}
	if existing != nil {
		return nil, apperror.Validation("phone", "Phone already registered")
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &domain.User{
		Name:         input.Name,
		Phone:        input.Phone,
		PasswordHash: hash,
		Role:         input.Role,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicatePhone) {
			return nil, apperror.Validation("phone", "Phone already registered")
		}
		return nil, apperror.Internal(err)
	}

	u.secLogger.LogRegistered(ctx, user.Phone, user.Role)
	return u.issue(user)
}

func (u *authUsecase) Login(ctx context.Context, input domain.LoginInput, clientIP string) (*domain.AuthResult, error) {
	input.Phone = strings.TrimSpace(input.Phone)

	if err := u.validate.Struct(input); err != nil {
		return nil, validation.ToAppError(err)
	}

	if u.guard != nil {
		blocked, err := u.guard.IsBlocked(ctx, input.Phone, clientIP)
		if err == nil && blocked {
			u.secLogger.LogLoginBlocked(ctx, input.Phone, clientIP)
			return nil, apperror.TooManyRequests("Too many failed login attempts. Please try again later")
		}
	}

	user, err := u.userRepo.GetByPhone(ctx, input.Phone)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}

	// CheckPassword runs a dummy comparison for unknown phones so both
	// failure paths take the same time.
	hash := ""
	if user != nil {
		hash = user.PasswordHash
	}
	if !auth.CheckPassword(hash, input.Password) || user == nil {
		if u.guard != nil {
			_, _, _ = u.guard.RecordFailedAttempt(ctx, input.Phone, clientIP)
		}
		return nil, apperror.Unauthorized("Invalid credentials")
	}

	if u.guard != nil {
		_ = u.guard.ClearAttempts(ctx, input.Phone, clientIP)
	}
	u.secLogger.LogLoginSuccess(ctx, user.ID, clientIP)
	return u.issue(user)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

func (u *authUsecase) issue(user *domain.User) (*domain.AuthResult, error) {
	token, expiresAt, err := u.tokens.Issue(auth.Identity{
		ID:    user.ID,
		Name:  user.Name,
		Phone: user.Phone,
		Role:  user.Role,
	})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.AuthResult{
		User:      user.Public(),
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
