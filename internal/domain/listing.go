package domain

import (
	"context"
	"time"
)

// ListingLimit caps every browse query; there is no further pagination.
const ListingLimit = 50

// SeekerFilter narrows GET /provider/seekers. Nil or empty fields are ignored.
type SeekerFilter struct {
	WorkType  string   `json:"workType" validate:"max=100"`
	MaxBudget *float64 `json:"maxBudget" validate:"omitempty,gte=0"`
	Location  string   `json:"location" validate:"max=255"`
}

// JobFilter narrows GET /provider/jobs. Nil or empty fields are ignored.
type JobFilter struct {
	WorkType  string   `json:"workType" validate:"max=100"`
	MinBudget *float64 `json:"minBudget" validate:"omitempty,gte=0"`
	Location  string   `json:"location" validate:"max=255"`
}

type Employer struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// JobListing is a provider profile as seen by browsing seekers.
type JobListing struct {
	ID            int64     `json:"id"`
	EmployerID    int64     `json:"employerId"`
	WorkType      string    `json:"workType"`
	BudgetPerDay  float64   `json:"budgetPerDay"`
	WorkersNeeded int       `json:"workersNeeded"`
	WorkingHours  string    `json:"workingHours"`
	CustomHours   *string   `json:"customHours"`
	Location      string    `json:"location"`
	WorkStartTime *string   `json:"workStartTime"`
	CreatedAt     time.Time `json:"createdAt"`
	Employer      Employer  `json:"employer"`
}

type ListingRepository interface {
	ListSeekers(ctx context.Context, filter SeekerFilter) ([]SeekerSummary, error)
	ListJobs(ctx context.Context, filter JobFilter) ([]JobListing, error)
}

type ListingUsecase interface {
	ListSeekers(ctx context.Context, filter SeekerFilter) ([]SeekerSummary, error)
	ListJobs(ctx context.Context, filter JobFilter) ([]JobListing, error)
}
