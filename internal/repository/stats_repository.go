package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"bloodlifesaver/api/internal/models"
)

// StatsRepository is the read-side projection over donors and blood_requests
// used by the admin dashboard. It owns no state of its own.
type StatsRepository struct {
	pool *pgxpool.Pool
}

func NewStatsRepository(pool *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{pool: pool}
}

func (r *StatsRepository) CountDonors(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM donors`

	var count int
	if err := r.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// CountActiveHospitals counts hospitals that have submitted at least one
// request, regardless of its status.
func (r *StatsRepository) CountActiveHospitals(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(DISTINCT hospital_name) FROM blood_requests`

	var count int
	if err := r.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *StatsRepository) CountRequestsByStatus(ctx context.Context, status models.RequestStatus) (int, error) {
	const query = `SELECT COUNT(*) FROM blood_requests WHERE status = $1`

	var count int
	if err := r.pool.QueryRow(ctx, query, status).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// OldestPendingCreatedAt returns the creation time of the oldest request still
// pending, or nil when the backlog is empty.
func (r *StatsRepository) OldestPendingCreatedAt(ctx context.Context) (*time.Time, error) {
	const query = `SELECT MIN(created_at) FROM blood_requests WHERE status = 'Pending'`

	var oldest *time.Time
	if err := r.pool.QueryRow(ctx, query).Scan(&oldest); err != nil {
		return nil, err
	}
	return oldest, nil
}

func (r *StatsRepository) BloodTypeDistribution(ctx context.Context) (map[models.BloodType]int, error) {
	const query = `SELECT blood_type, COUNT(*) FROM donors GROUP BY blood_type`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	distribution := make(map[models.BloodType]int)
	for rows.Next() {
		var bloodType models.BloodType
		var count int
		if err := rows.Scan(&bloodType, &count); err != nil {
			return nil, err
		}
		distribution[bloodType] = count
	}
	return distribution, rows.Err()
}

func (r *StatsRepository) RecentDonors(ctx context.Context, limit int) ([]models.Donor, error) {
	const query = `
		SELECT ` + donorColumns + `
		FROM donors ORDER BY created_at DESC LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDonors(rows)
}

func (r *StatsRepository) RecentRequests(ctx context.Context, limit int) ([]models.BloodRequest, error) {
	const query = `
		SELECT ` + requestColumns + `
		FROM blood_requests ORDER BY created_at DESC LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRequests(rows)
}
