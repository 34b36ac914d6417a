package usecase

import (
	"context"

	"dailywage-backend/internal/domain"
	"dailywage-backend/pkg/apperror"
	"dailywage-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type seekerUsecase struct {
	repo     domain.SeekerRepository
	validate *validator.Validate
}

// NewSeekerUsecase creates a new seeker profile usecase
func NewSeekerUsecase(repo domain.SeekerRepository, validate *validator.Validate) domain.SeekerUsecase {
	return &seekerUsecase{repo: repo, validate: validate}
}

// SaveProfile creates or replaces the caller's seeker profile, including
// the full work type and available day sets
func (uc *seekerUsecase) SaveProfile(ctx context.Context, userID int64, input domain.SeekerProfileInput) (*domain.SeekerProfileView, error) {
	input = input.Normalized()
	if err := uc.validate.Struct(input); err != nil {
		return nil, validation.ToAppError(err)
	}

	profile := input.ToProfile(userID)

	if err := uc.repo.Save(ctx, profile); err != nil {
		return nil, apperror.Internal(err)
	}

	view, err := uc.repo.GetViewByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return view, nil
}

func (uc *seekerUsecase) GetProfile(ctx context.Context, userID int64) (*domain.SeekerProfileView, error) {
	view, err := uc.repo.GetViewByUserID(ctx, userID)
	if err != nil {
		return nil, profileLookupError(err)
	}
	return view, nil
}
