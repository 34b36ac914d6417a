package usecase

import (
	"context"
	"errors"

	"dailywage-backend/internal/domain"
	"dailywage-backend/pkg/apperror"
	"dailywage-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type providerUsecase struct {
	repo     domain.ProviderRepository
	validate *validator.Validate
}

// NewProviderUsecase creates a new provider profile usecase
func NewProviderUsecase(repo domain.ProviderRepository, validate *validator.Validate) domain.ProviderUsecase {
	return &providerUsecase{repo: repo, validate: validate}
}

// SaveProfile creates or replaces the caller's job posting
func (uc *providerUsecase) SaveProfile(ctx context.Context, userID int64, input domain.ProviderProfileInput) (*domain.ProviderProfileView, error) {
	if err := uc.validate.Struct(input); err != nil {
		return nil, validation.ToAppError(err)
	}

	profile := input.ToProfile(userID)
	if err := uc.repo.Upsert(ctx, profile); err != nil {
		return nil, apperror.Internal(err)
	}

	view, err := uc.repo.GetViewByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return view, nil
}

func (uc *providerUsecase) GetProfile(ctx context.Context, userID int64) (*domain.ProviderProfileView, error) {
	view, err := uc.repo.GetViewByUserID(ctx, userID)
	if err != nil {
		return nil, profileLookupError(err)
	}
	return view, nil
}

func profileLookupError(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Profile not found")
	}
	return apperror.Internal(err)
}
