package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"bloodlifesaver/api/internal/ids"
	"bloodlifesaver/api/internal/models"
)

type DonorStore interface {
	Create(ctx context.Context, donor models.Donor) error
	List(ctx context.Context) ([]models.Donor, error)
	GetByID(ctx context.Context, id string) (models.Donor, error)
	ListByBloodType(ctx context.Context, bloodType models.BloodType) ([]models.Donor, error)
	Delete(ctx context.Context, id string) error
}

type DonorService struct {
	donors DonorStore
	log    zerolog.Logger
}

func NewDonorService(donors DonorStore, log zerolog.Logger) *DonorService {
	return &DonorService{donors: donors, log: log}
}

type RegisterDonorInput struct {
	Name             string
	Age              int
	BloodType        string
	LastDonationDate *string
	Phone            string
	Email            string
}

func (s *DonorService) Register(ctx context.Context, input RegisterDonorInput) (models.Donor, error) {
	if input.Name == "" || input.Age == 0 || input.BloodType == "" || input.Phone == "" || input.Email == "" {
		return models.Donor{}, validationError("All required fields must be provided")
	}

	if input.Age < models.DonorMinAge || input.Age > models.DonorMaxAge {
		return models.Donor{}, validationError("Age must be between 18 and 65")
	}

	bloodType := models.BloodType(input.BloodType)
	if !bloodType.Valid() {
		return models.Donor{}, validationError("Invalid blood type")
	}

	var lastDonation *time.Time
	if input.LastDonationDate != nil && *input.LastDonationDate != "" {
		parsed, err := time.Parse("2006-01-02", *input.LastDonationDate)
		if err != nil {
			return models.Donor{}, validationError("Last donation date must be formatted YYYY-MM-DD")
		}
		lastDonation = &parsed
	}

	now := time.Now().UTC()
	donor := models.Donor{
		ID:               ids.New(),
		Name:             input.Name,
		Age:              input.Age,
		BloodType:        bloodType,
		LastDonationDate: lastDonation,
		Phone:            input.Phone,
		Email:            input.Email,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.donors.Create(ctx, donor); err != nil {
		return models.Donor{}, err
	}

	s.log.Info().Str("donor_id", donor.ID).Str("blood_type", string(donor.BloodType)).Msg("donor registered")

	return donor, nil
}

func (s *DonorService) List(ctx context.Context) ([]models.Donor, error) {
	return s.donors.List(ctx)
}

func (s *DonorService) Get(ctx context.Context, id string) (models.Donor, error) {
	return s.donors.GetByID(ctx, id)
}

func (s *DonorService) ListByBloodType(ctx context.Context, bloodType string) ([]models.Donor, error) {
	typed := models.BloodType(bloodType)
	if !typed.Valid() {
		return nil, validationError("Invalid blood type")
	}
	return s.donors.ListByBloodType(ctx, typed)
}

func (s *DonorService) Delete(ctx context.Context, id string) error {
	if err := s.donors.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("donor_id", id).Msg("donor deleted")
	return nil
}
