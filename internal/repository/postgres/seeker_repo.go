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

type seekerRepo struct {
	db *pgxpool.Pool
}

// NewSeekerRepository creates a new seeker profile repository
func NewSeekerRepository(db *pgxpool.Pool) domain.SeekerRepository {
	return &seekerRepo{db: db}
}

// Save upserts the seeker row and rewrites its work types and available days.
// Everything runs in one transaction so a failed rewrite leaves the previous
// profile untouched.
func (r *seekerRepo) Save(ctx context.Context, profile *domain.SeekerProfile) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	now := time.Now().UTC()

	// xmax is 0 only for a freshly inserted row
	query := `
		INSERT INTO seekers (
			user_id, expected_wage, hours_availability, custom_hours,
			location, experience, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		ON CONFLICT (user_id) DO UPDATE SET
			expected_wage = EXCLUDED.expected_wage,
			hours_availability = EXCLUDED.hours_availability,
			custom_hours = EXCLUDED.custom_hours,
			location = EXCLUDED.location,
			experience = EXCLUDED.experience,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at, updated_at, (xmax = 0) AS inserted`

	var inserted bool
	err = tx.QueryRow(ctx, query,
		profile.UserID, profile.ExpectedWage, profile.HoursAvailability, profile.CustomHours,
		profile.Location, profile.Experience, now,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt, &inserted)
	if err != nil {
		return fmt.Errorf("upsert seeker: %w", err)
	}

	if !inserted {
		if _, err := tx.Exec(ctx, `DELETE FROM seeker_work_types WHERE seeker_id = $1`, profile.ID); err != nil {
			return fmt.Errorf("clear work types: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM seeker_available_days WHERE seeker_id = $1`, profile.ID); err != nil {
			return fmt.Errorf("clear available days: %w", err)
		}
	}

	if len(profile.WorkTypes) > 0 {
		q, args := buildTagInsert(workTypesTable, workTypeColumn, profile.ID, profile.WorkTypes)
		if _, err := tx.Exec(ctx, q, args...); err != nil {
			return fmt.Errorf("insert work types: %w", err)
		}
	}
	if len(profile.AvailableDays) > 0 {
		q, args := buildTagInsert(daysTable, dayColumn, profile.ID, profile.AvailableDays)
		if _, err := tx.Exec(ctx, q, args...); err != nil {
			return fmt.Errorf("insert available days: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// GetViewByUserID retrieves the seeker profile with identity and tag sets
func (r *seekerRepo) GetViewByUserID(ctx context.Context, userID int64) (*domain.SeekerProfileView, error) {
	query := `
		SELECT
			s.id, s.user_id, u.name, u.phone,
			s.expected_wage, s.hours_availability, s.custom_hours,
			s.location, s.experience, s.created_at, s.updated_at
		FROM seekers s
		JOIN users u ON s.user_id = u.id
		WHERE s.user_id = $1`

	var v domain.SeekerProfileView
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&v.ID, &v.User.ID, &v.User.Name, &v.User.Phone,
		&v.ExpectedWage, &v.HoursAvailability, &v.CustomHours,
		&v.Location, &v.Experience, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get seeker profile: %w", err)
	}

	ids := []int64{v.ID}
	workTypes, err := loadTags(ctx, r.db, workTypesTable, workTypeColumn, ids)
	if err != nil {
		return nil, err
	}
	days, err := loadTags(ctx, r.db, daysTable, dayColumn, ids)
	if err != nil {
		return nil, err
	}
	v.WorkTypes = workTypes[v.ID]
	v.AvailableDays = days[v.ID]

	return &v, nil
}
