package domain

import (
	"context"
	"time"
)

// SeekerProfile is the stored seekers row plus its dependent tag rows.
type SeekerProfile struct {
	ID                int64
	UserID            int64
	ExpectedWage      float64
	HoursAvailability string
	CustomHours       *string
	Location          string
	Experience        *string
	WorkTypes         []string
	AvailableDays     []string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// SeekerSummary is a seeker joined with identity, work types and days.
type SeekerSummary struct {
	ID                int64    `json:"id"`
	User              UserRef  `json:"userId"`
	WorkTypes         []string `json:"workTypes"`
	ExpectedWage      float64  `json:"expectedWage"`
	HoursAvailability string   `json:"hoursAvailability"`
	CustomHours       *string  `json:"customHours"`
	AvailableDays     []string `json:"availableDays"`
	Location          string   `json:"location"`
	Experience        *string  `json:"experience"`
}

// SeekerProfileView is the owner's view of a seeker profile.
type SeekerProfileView struct {
	SeekerSummary
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SeekerProfileInput is the request schema for saving a seeker profile.
type SeekerProfileInput struct {
	WorkTypes         []string `json:"workTypes" validate:"required,min=1,max=20,dive,notblank,max=100"`
	ExpectedWage      Amount   `json:"expectedWage" validate:"required,gt=0,lte=99999999.99" swaggertype:"number"`
	HoursAvailability string   `json:"hoursAvailability" validate:"required,notblank,max=50"`
	CustomHours       string   `json:"customHours" validate:"required_if=HoursAvailability Custom,max=100"`
	AvailableDays     []string `json:"availableDays" validate:"max=7,dive,notblank,max=20"`
	Location          string   `json:"location" validate:"required,notblank,max=255"`
	Experience        string   `json:"experience" validate:"max=1000"`
}

// Normalized returns a copy with work types and available days reduced to
// their tag sets, so count limits apply to distinct values.
func (in SeekerProfileInput) Normalized() SeekerProfileInput {
	in.WorkTypes = NormalizeTags(in.WorkTypes)
	in.AvailableDays = NormalizeTags(in.AvailableDays)
	return in
}

// ToProfile builds the profile owned by userID with normalised tag sets.
func (in SeekerProfileInput) ToProfile(userID int64) *SeekerProfile {
	return &SeekerProfile{
		UserID:            userID,
		ExpectedWage:      float64(in.ExpectedWage),
		HoursAvailability: trim(in.HoursAvailability),
		CustomHours:       customHoursFor(trim(in.HoursAvailability), in.CustomHours),
		Location:          trim(in.Location),
		Experience:        optionalString(in.Experience),
		WorkTypes:         NormalizeTags(in.WorkTypes),
		AvailableDays:     NormalizeTags(in.AvailableDays),
	}
}

type SeekerRepository interface {
	// Save upserts the seeker row and replaces its work types and available
	// days in one transaction. It fills in ID, CreatedAt and UpdatedAt.
	Save(ctx context.Context, profile *SeekerProfile) error
	GetViewByUserID(ctx context.Context, userID int64) (*SeekerProfileView, error)
}

type SeekerUsecase interface {
	SaveProfile(ctx context.Context, userID int64, input SeekerProfileInput) (*SeekerProfileView, error)
	GetProfile(ctx context.Context, userID int64) (*SeekerProfileView, error)
}
