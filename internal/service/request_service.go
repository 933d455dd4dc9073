package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"bloodlifesaver/api/internal/ids"
	"bloodlifesaver/api/internal/models"
	"bloodlifesaver/api/internal/repository"
)

type RequestStore interface {
	Create(ctx context.Context, request models.BloodRequest) error
	List(ctx context.Context, status models.RequestStatus) ([]models.BloodRequest, error)
	GetByID(ctx context.Context, id string) (models.BloodRequest, error)
	ListByHospital(ctx context.Context, hospitalName string) ([]models.BloodRequest, error)
	ListByCreator(ctx context.Context, userID string) ([]models.BloodRequest, error)
	UpdateStatusFromPending(ctx context.Context, id string, status models.RequestStatus, updatedAt time.Time) (models.BloodRequest, error)
	Delete(ctx context.Context, id string) error
}

type RequestService struct {
	requests RequestStore
	log      zerolog.Logger
}

func NewRequestService(requests RequestStore, log zerolog.Logger) *RequestService {
	return &RequestService{requests: requests, log: log}
}

type CreateRequestInput struct {
	HospitalName  string
	BloodType     string
	Units         int
	Urgency       string
	Reason        string
	ContactPerson string
	Phone         string
}

// Create persists a new request. Status is always Pending regardless of
// caller input; CreatedBy records the authenticated hospital user.
func (s *RequestService) Create(ctx context.Context, input CreateRequestInput, createdBy string) (models.BloodRequest, error) {
	if input.HospitalName == "" || input.BloodType == "" || input.Units == 0 ||
		input.Urgency == "" || input.ContactPerson == "" || input.Phone == "" {
		return models.BloodRequest{}, validationError("All required fields must be provided")
	}

	if input.Units < 1 {
		return models.BloodRequest{}, validationError("Units must be at least 1")
	}

	bloodType := models.BloodType(input.BloodType)
	if !bloodType.Valid() {
		return models.BloodRequest{}, validationError("Invalid blood type")
	}

	urgency := models.Urgency(input.Urgency)
	if !urgency.Valid() {
		return models.BloodRequest{}, validationError("Invalid urgency level")
	}

	now := time.Now().UTC()
	request := models.BloodRequest{
		ID:            ids.New(),
		HospitalName:  input.HospitalName,
		BloodType:     bloodType,
		Units:         input.Units,
		Urgency:       urgency,
		Reason:        input.Reason,
		ContactPerson: input.ContactPerson,
		Phone:         input.Phone,
		Status:        models.StatusPending,
		CreatedBy:     createdBy,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.requests.Create(ctx, request); err != nil {
		return models.BloodRequest{}, err
	}

	s.log.Info().
		Str("request_id", request.ID).
		Str("hospital", request.HospitalName).
		Str("urgency", string(request.Urgency)).
		Msg("blood request created")

	return request, nil
}

func (s *RequestService) List(ctx context.Context, statusFilter string) ([]models.BloodRequest, error) {
	status := models.RequestStatus(statusFilter)
	if statusFilter != "" && !status.Valid() {
		return nil, validationError("Invalid status filter")
	}
	return s.requests.List(ctx, status)
}

func (s *RequestService) Get(ctx context.Context, id string) (models.BloodRequest, error) {
	return s.requests.GetByID(ctx, id)
}

func (s *RequestService) ListByHospital(ctx context.Context, hospitalName string) ([]models.BloodRequest, error) {
	return s.requests.ListByHospital(ctx, hospitalName)
}

func (s *RequestService) ListByCreator(ctx context.Context, userID string) ([]models.BloodRequest, error) {
	return s.requests.ListByCreator(ctx, userID)
}

// UpdateStatus approves or rejects a pending request. Approved and Rejected
// are terminal; a request that already left Pending cannot transition again.
func (s *RequestService) UpdateStatus(ctx context.Context, id string, newStatus string) (models.BloodRequest, error) {
	status := models.RequestStatus(newStatus)
	if status != models.StatusApproved && status != models.StatusRejected {
		return models.BloodRequest{}, validationError(`Status must be either "Approved" or "Rejected"`)
	}

	current, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return models.BloodRequest{}, err
	}
	if current.Status.Terminal() {
		return models.BloodRequest{}, ErrRequestNotPending
	}

	updated, err := s.requests.UpdateStatusFromPending(ctx, id, status, time.Now().UTC())
	if err != nil {
		// The row was pending a moment ago; losing it here means another
		// admin transitioned it first.
		if errors.Is(err, repository.ErrRequestNotFound) {
			return models.BloodRequest{}, ErrRequestNotPending
		}
		return models.BloodRequest{}, err
	}

	s.log.Info().
		Str("request_id", updated.ID).
		Str("status", string(updated.Status)).
		Msg("blood request status updated")

	return updated, nil
}

func (s *RequestService) Delete(ctx context.Context, id string) error {
	if err := s.requests.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("request_id", id).Msg("blood request deleted")
	return nil
}
