package postgres

import (
	"context"
	"fmt"
	"strings"

	"dailywage-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type listingRepo struct {
	db *pgxpool.Pool
}

// NewListingRepository creates the read-only browse repository
func NewListingRepository(db *pgxpool.Pool) domain.ListingRepository {
	return &listingRepo{db: db}
}

const seekerListBase = `
	SELECT
		s.id, s.user_id, u.name, u.phone,
		s.expected_wage, s.hours_availability, s.custom_hours, s.location, s.experience
	FROM seekers s
	JOIN users u ON s.user_id = u.id`

// ListSeekers returns the newest seekers matching the filter
func (r *listingRepo) ListSeekers(ctx context.Context, filter domain.SeekerFilter) ([]domain.SeekerSummary, error) {
	var q listingQuery
	if wt := strings.TrimSpace(filter.WorkType); wt != "" {
		q.and(`EXISTS (SELECT 1 FROM seeker_work_types wt WHERE wt.seeker_id = s.id AND wt.work_type = %s)`, wt)
	}
	if filter.MaxBudget != nil {
		q.and(`s.expected_wage <= %s`, *filter.MaxBudget)
	}
	if loc := strings.TrimSpace(filter.Location); loc != "" {
		q.and(`s.location ILIKE %s`, containsPattern(loc))
	}
	query, args := q.build(seekerListBase, "s.created_at DESC, s.id DESC", domain.ListingLimit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list seekers: %w", err)
	}
	defer rows.Close()

	seekers := make([]domain.SeekerSummary, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		var s domain.SeekerSummary
		if err := rows.Scan(
			&s.ID, &s.User.ID, &s.User.Name, &s.User.Phone,
			&s.ExpectedWage, &s.HoursAvailability, &s.CustomHours, &s.Location, &s.Experience,
		); err != nil {
			return nil, fmt.Errorf("scan seeker: %w", err)
		}
		seekers = append(seekers, s)
		ids = append(ids, s.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate seekers: %w", err)
	}
	rows.Close()

	workTypes, err := loadTags(ctx, r.db, workTypesTable, workTypeColumn, ids)
	if err != nil {
		return nil, err
	}
	days, err := loadTags(ctx, r.db, daysTable, dayColumn, ids)
	if err != nil {
		return nil, err
	}
	for i := range seekers {
		seekers[i].WorkTypes = workTypes[seekers[i].ID]
		seekers[i].AvailableDays = days[seekers[i].ID]
	}
	return seekers, nil
}

const jobListBase = `
	SELECT
		p.id, p.user_id, p.work_type, p.budget_per_day, p.workers_needed, p.working_hours,
		p.custom_hours, p.location, p.work_start_time, p.created_at,
		u.name, u.phone
	FROM providers p
	JOIN users u ON p.user_id = u.id`

// ListJobs returns the newest provider postings matching the filter
func (r *listingRepo) ListJobs(ctx context.Context, filter domain.JobFilter) ([]domain.JobListing, error) {
	var q listingQuery
	if wt := strings.TrimSpace(filter.WorkType); wt != "" {
		q.and(`p.work_type = %s`, wt)
	}
	if filter.MinBudget != nil {
		q.and(`p.budget_per_day >= %s`, *filter.MinBudget)
	}
	if loc := strings.TrimSpace(filter.Location); loc != "" {
		q.and(`p.location ILIKE %s`, containsPattern(loc))
	}
	query, args := q.build(jobListBase, "p.created_at DESC, p.id DESC", domain.ListingLimit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]domain.JobListing, 0)
	for rows.Next() {
		var j domain.JobListing
		if err := rows.Scan(
			&j.ID, &j.EmployerID, &j.WorkType, &j.BudgetPerDay, &j.WorkersNeeded, &j.WorkingHours,
			&j.CustomHours, &j.Location, &j.WorkStartTime, &j.CreatedAt,
			&j.Employer.Name, &j.Employer.Phone,
		); err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate jobs: %w", err)
	}
	return jobs, nil
}
