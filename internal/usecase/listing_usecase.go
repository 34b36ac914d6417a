package usecase

import (
	"context"

	"dailywage-backend/internal/domain"
	"dailywage-backend/pkg/apperror"
	"dailywage-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type listingUsecase struct {
	repo     domain.ListingRepository
	validate *validator.Validate
}

func NewListingUsecase(repo domain.ListingRepository, validate *validator.Validate) domain.ListingUsecase {
	return &listingUsecase{repo: repo, validate: validate}
}

func (uc *listingUsecase) ListSeekers(ctx context.Context, filter domain.SeekerFilter) ([]domain.SeekerSummary, error) {
	if err := uc.validate.Struct(filter); err != nil {
		return nil, validation.ToAppError(err)
	}
	seekers, err := uc.repo.ListSeekers(ctx, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if seekers == nil {
		seekers = []domain.SeekerSummary{}
	}
	return seekers, nil
}

func (uc *listingUsecase) ListJobs(ctx context.Context, filter domain.JobFilter) ([]domain.JobListing, error) {
	if err := uc.validate.Struct(filter); err != nil {
		return nil, validation.ToAppError(err)
	}
	jobs, err := uc.repo.ListJobs(ctx, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if jobs == nil {
		jobs = []domain.JobListing{}
	}
	return jobs, nil
}
