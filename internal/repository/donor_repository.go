package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bloodlifesaver/api/internal/models"
)

var ErrDonorNotFound = errors.New("donor not found")

const donorColumns = `id, name, age, blood_type, last_donation_date, phone, email, created_at, updated_at`

type DonorRepository struct {
	pool *pgxpool.Pool
}

func NewDonorRepository(pool *pgxpool.Pool) *DonorRepository {
	return &DonorRepository{pool: pool}
}

func (r *DonorRepository) Create(ctx context.Context, donor models.Donor) error {
	const query = `
		INSERT INTO donors (id, name, age, blood_type, last_donation_date, phone, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		donor.ID,
		donor.Name,
		donor.Age,
		donor.BloodType,
		donor.LastDonationDate,
		donor.Phone,
		donor.Email,
		donor.CreatedAt,
		donor.UpdatedAt,
	)
	return err
}

func (r *DonorRepository) List(ctx context.Context) ([]models.Donor, error) {
	const query = `
		SELECT ` + donorColumns + `
		FROM donors ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDonors(rows)
}

func (r *DonorRepository) GetByID(ctx context.Context, id string) (models.Donor, error) {
	const query = `
		SELECT ` + donorColumns + `
		FROM donors WHERE id = $1
	`

	row := r.pool.QueryRow(ctx, query, id)
	donor, err := scanDonor(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Donor{}, ErrDonorNotFound
		}
		return models.Donor{}, err
	}
	return donor, nil
}

func (r *DonorRepository) ListByBloodType(ctx context.Context, bloodType models.BloodType) ([]models.Donor, error) {
	const query = `
		SELECT ` + donorColumns + `
		FROM donors WHERE blood_type = $1 ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, bloodType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDonors(rows)
}

// Delete is idempotent: removing an id that is already gone is not an error.
func (r *DonorRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM donors WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

func scanDonor(row pgx.Row) (models.Donor, error) {
	var donor models.Donor
	err := row.Scan(
		&donor.ID,
		&donor.Name,
		&donor.Age,
		&donor.BloodType,
		&donor.LastDonationDate,
		&donor.Phone,
		&donor.Email,
		&donor.CreatedAt,
		&donor.UpdatedAt,
	)
	return donor, err
}

func scanDonors(rows pgx.Rows) ([]models.Donor, error) {
	donors := make([]models.Donor, 0)
	for rows.Next() {
		donor, err := scanDonor(rows)
		if err != nil {
			return nil, err
		}
		donors = append(donors, donor)
	}
	return donors, rows.Err()
}
