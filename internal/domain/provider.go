package domain

import (
	"context"
	"time"
)

// ProviderProfile is the stored providers row: one job posting per provider.
type ProviderProfile struct {
	ID            int64
	UserID        int64
	WorkType      string
	BudgetPerDay  float64
	WorkersNeeded int
	WorkingHours  string
	CustomHours   *string
	Location      string
	WorkStartTime *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ProviderProfileView is the profile joined with its owner's identity.
type ProviderProfileView struct {
	ID            int64     `json:"id"`
	User          UserRef   `json:"userId"`
	WorkType      string    `json:"workType"`
	BudgetPerDay  float64   `json:"budgetPerDay"`
	WorkersNeeded int       `json:"workersNeeded"`
	WorkingHours  string    `json:"workingHours"`
	CustomHours   *string   `json:"customHours"`
	Location      string    `json:"location"`
	WorkStartTime *string   `json:"workStartTime"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ProviderProfileInput is the request schema for saving a provider profile.
type ProviderProfileInput struct {
	WorkType      string `json:"workType" validate:"required,notblank,max=100"`
	BudgetPerDay  Amount `json:"budgetPerDay" validate:"required,gt=0,lte=99999999.99" swaggertype:"number"`
	WorkersNeeded int    `json:"workersNeeded" validate:"required,gte=1"`
	WorkingHours  string `json:"workingHours" validate:"required,notblank,max=50"`
	CustomHours   string `json:"customHours" validate:"required_if=WorkingHours Custom,max=100"`
	Location      string `json:"location" validate:"required,notblank,max=255"`
	WorkStartTime string `json:"workStartTime" validate:"max=20"`
}

// ToProfile builds the row owned by userID. Custom hours survive only when
// WorkingHours is Custom.
func (in ProviderProfileInput) ToProfile(userID int64) *ProviderProfile {
	return &ProviderProfile{
		UserID:        userID,
		WorkType:      trim(in.WorkType),
		BudgetPerDay:  float64(in.BudgetPerDay),
		WorkersNeeded: in.WorkersNeeded,
		WorkingHours:  trim(in.WorkingHours),
		CustomHours:   customHoursFor(trim(in.WorkingHours), in.CustomHours),
		Location:      trim(in.Location),
		WorkStartTime: optionalString(in.WorkStartTime),
	}
}

type ProviderRepository interface {
	// Upsert inserts or updates the profile keyed by UserID and fills in
	// ID, CreatedAt and UpdatedAt.
	Upsert(ctx context.Context, profile *ProviderProfile) error
	GetViewByUserID(ctx context.Context, userID int64) (*ProviderProfileView, error)
}

type ProviderUsecase interface {
	SaveProfile(ctx context.Context, userID int64, input ProviderProfileInput) (*ProviderProfileView, error)
	GetProfile(ctx context.Context, userID int64) (*ProviderProfileView, error)
}
