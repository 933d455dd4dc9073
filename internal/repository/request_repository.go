package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bloodlifesaver/api/internal/models"
)

var ErrRequestNotFound = errors.New("blood request not found")

const requestColumns = `id, hospital_name, blood_type, units, urgency, reason, contact_person, phone, status, created_by, created_at, updated_at`

type RequestRepository struct {
	pool *pgxpool.Pool
}

func NewRequestRepository(pool *pgxpool.Pool) *RequestRepository {
	return &RequestRepository{pool: pool}
}

func (r *RequestRepository) Create(ctx context.Context, request models.BloodRequest) error {
	const query = `
		INSERT INTO blood_requests (id, hospital_name, blood_type, units, urgency, reason, contact_person, phone, status, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.pool.Exec(ctx, query,
		request.ID,
		request.HospitalName,
		request.BloodType,
		request.Units,
		request.Urgency,
		request.Reason,
		request.ContactPerson,
		request.Phone,
		request.Status,
		request.CreatedBy,
		request.CreatedAt,
		request.UpdatedAt,
	)
	return err
}

// List returns all requests, newest first. A non-empty status narrows the
// result to exact matches.
func (r *RequestRepository) List(ctx context.Context, status models.RequestStatus) ([]models.BloodRequest, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM blood_requests ORDER BY created_at DESC
	`
	args := []any{}
	if status != "" {
		query = `
			SELECT ` + requestColumns + `
			FROM blood_requests WHERE status = $1 ORDER BY created_at DESC
		`
		args = append(args, status)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRequests(rows)
}

func (r *RequestRepository) GetByID(ctx context.Context, id string) (models.BloodRequest, error) {
	const query = `
		SELECT ` + requestColumns + `
		FROM blood_requests WHERE id = $1
	`

	row := r.pool.QueryRow(ctx, query, id)
	request, err := scanRequest(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.BloodRequest{}, ErrRequestNotFound
		}
		return models.BloodRequest{}, err
	}
	return request, nil
}

func (r *RequestRepository) ListByHospital(ctx context.Context, hospitalName string) ([]models.BloodRequest, error) {
	const query = `
		SELECT ` + requestColumns + `
		FROM blood_requests WHERE hospital_name = $1 ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, hospitalName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRequests(rows)
}

func (r *RequestRepository) ListByCreator(ctx context.Context, userID string) ([]models.BloodRequest, error) {
	const query = `
		SELECT ` + requestColumns + `
		FROM blood_requests WHERE created_by = $1 ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRequests(rows)
}

// UpdateStatusFromPending transitions a pending request to the given status.
// The status guard lives in the WHERE clause so a concurrent admin cannot
// overwrite a terminal state. Returns ErrRequestNotFound when the row does
// not exist or is no longer pending.
func (r *RequestRepository) UpdateStatusFromPending(ctx context.Context, id string, status models.RequestStatus, updatedAt time.Time) (models.BloodRequest, error) {
	const query = `
		UPDATE blood_requests SET status = $2, updated_at = $3
		WHERE id = $1 AND status = 'Pending'
		RETURNING ` + requestColumns + `
	`

	row := r.pool.QueryRow(ctx, query, id, status, updatedAt)
	request, err := scanRequest(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.BloodRequest{}, ErrRequestNotFound
		}
		return models.BloodRequest{}, err
	}
	return request, nil
}

// Delete is idempotent, matching donor deletion.
func (r *RequestRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM blood_requests WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

func scanRequest(row pgx.Row) (models.BloodRequest, error) {
	var request models.BloodRequest
	err := row.Scan(
		&request.ID,
		&request.HospitalName,
		&request.BloodType,
		&request.Units,
		&request.Urgency,
		&request.Reason,
		&request.ContactPerson,
		&request.Phone,
		&request.Status,
		&request.CreatedBy,
		&request.CreatedAt,
		&request.UpdatedAt,
	)
	return request, err
}

func scanRequests(rows pgx.Rows) ([]models.BloodRequest, error) {
	requests := make([]models.BloodRequest, 0)
	for rows.Next() {
		request, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	return requests, rows.Err()
}
