package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dailywage-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type providerRepo struct {
	db *pgxpool.Pool
}

// NewProviderRepository creates a new provider profile repository
func NewProviderRepository(db *pgxpool.Pool) domain.ProviderRepository {
	return &providerRepo{db: db}
}

// Upsert creates or updates the provider profile (1 profile per user)
func (r *providerRepo) Upsert(ctx context.Context, profile *domain.ProviderProfile) error {
	now := time.Now().UTC()

	query := `
		INSERT INTO providers (
			user_id, work_type, budget_per_day, workers_needed, working_hours,
			custom_hours, location, work_start_time, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		ON CONFLICT (user_id) DO UPDATE SET
			work_type = EXCLUDED.work_type,
			budget_per_day = EXCLUDED.budget_per_day,
			workers_needed = EXCLUDED.workers_needed,
			working_hours = EXCLUDED.working_hours,
			custom_hours = EXCLUDED.custom_hours,
			location = EXCLUDED.location,
			work_start_time = EXCLUDED.work_start_time,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		profile.UserID, profile.WorkType, profile.BudgetPerDay, profile.WorkersNeeded, profile.WorkingHours,
		profile.CustomHours, profile.Location, profile.WorkStartTime, now,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert provider profile: %w", err)
	}
	return nil
}

// GetViewByUserID retrieves the provider profile joined with the owner's identity
func (r *providerRepo) GetViewByUserID(ctx context.Context, userID int64) (*domain.ProviderProfileView, error) {
	query := `
		SELECT
			p.id, p.user_id, u.name, u.phone,
			p.work_type, p.budget_per_day, p.workers_needed, p.working_hours,
			p.custom_hours, p.location, p.work_start_time, p.created_at, p.updated_at
		FROM providers p
		JOIN users u ON p.user_id = u.id
		WHERE p.user_id = $1`

	var v domain.ProviderProfileView
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&v.ID, &v.User.ID, &v.User.Name, &v.User.Phone,
		&v.WorkType, &v.BudgetPerDay, &v.WorkersNeeded, &v.WorkingHours,
		&v.CustomHours, &v.Location, &v.WorkStartTime, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get provider profile: %w", err)
	}
	return &v, nil
}
