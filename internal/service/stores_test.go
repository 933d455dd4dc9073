package service

// In-memory store fakes. Listings return newest-first to match the
// repositories' created_at DESC ordering; the fakes rely on insertion order
// since tests create rows sequentially.

import (
	"context"
	"time"

	"bloodlifesaver/api/internal/models"
	"bloodlifesaver/api/internal/repository"
)

type memUserStore struct {
	users []models.User
}

func (s *memUserStore) Create(_ context.Context, user models.User) error {
	s.users = append(s.users, user)
	return nil
}

func (s *memUserStore) FindByEmail(_ context.Context, email string) (models.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, repository.ErrUserNotFound
}

func (s *memUserStore) GetByID(_ context.Context, id string) (models.User, error) {
	for _, user := range s.users {
		if user.ID == id {
			return user, nil
		}
	}
	return models.User{}, repository.ErrUserNotFound
}

type memDonorStore struct {
	donors []models.Donor
}

func (s *memDonorStore) Create(_ context.Context, donor models.Donor) error {
	s.donors = append(s.donors, donor)
	return nil
}

func (s *memDonorStore) List(_ context.Context) ([]models.Donor, error) {
	return reversed(s.donors), nil
}

func (s *memDonorStore) GetByID(_ context.Context, id string) (models.Donor, error) {
	for _, donor := range s.donors {
		if donor.ID == id {
			return donor, nil
		}
	}
	return models.Donor{}, repository.ErrDonorNotFound
}

func (s *memDonorStore) ListByBloodType(_ context.Context, bloodType models.BloodType) ([]models.Donor, error) {
	matched := make([]models.Donor, 0)
	for _, donor := range reversed(s.donors) {
		if donor.BloodType == bloodType {
			matched = append(matched, donor)
		}
	}
	return matched, nil
}

func (s *memDonorStore) Delete(_ context.Context, id string) error {
	for i, donor := range s.donors {
		if donor.ID == id {
			s.donors = append(s.donors[:i], s.donors[i+1:]...)
			return nil
		}
	}
	return nil
}

type memRequestStore struct {
	requests []models.BloodRequest
}

func (s *memRequestStore) Create(_ context.Context, request models.BloodRequest) error {
	s.requests = append(s.requests, request)
	return nil
}

func (s *memRequestStore) List(_ context.Context, status models.RequestStatus) ([]models.BloodRequest, error) {
	matched := make([]models.BloodRequest, 0)
	for _, request := range reversed(s.requests) {
		if status == "" || request.Status == status {
			matched = append(matched, request)
		}
	}
	return matched, nil
}

func (s *memRequestStore) GetByID(_ context.Context, id string) (models.BloodRequest, error) {
	for _, request := range s.requests {
		if request.ID == id {
			return request, nil
		}
	}
	return models.BloodRequest{}, repository.ErrRequestNotFound
}

func (s *memRequestStore) ListByHospital(_ context.Context, hospitalName string) ([]models.BloodRequest, error) {
	matched := make([]models.BloodRequest, 0)
	for _, request := range reversed(s.requests) {
		if request.HospitalName == hospitalName {
			matched = append(matched, request)
		}
	}
	return matched, nil
}

func (s *memRequestStore) ListByCreator(_ context.Context, userID string) ([]models.BloodRequest, error) {
	matched := make([]models.BloodRequest, 0)
	for _, request := range reversed(s.requests) {
		if request.CreatedBy == userID {
			matched = append(matched, request)
		}
	}
	return matched, nil
}

func (s *memRequestStore) UpdateStatusFromPending(_ context.Context, id string, status models.RequestStatus, updatedAt time.Time) (models.BloodRequest, error) {
	for i, request := range s.requests {
		if request.ID == id {
			if request.Status != models.StatusPending {
				return models.BloodRequest{}, repository.ErrRequestNotFound
			}
			s.requests[i].Status = status
			s.requests[i].UpdatedAt = updatedAt
			return s.requests[i], nil
		}
	}
	return models.BloodRequest{}, repository.ErrRequestNotFound
}

func (s *memRequestStore) Delete(_ context.Context, id string) error {
	for i, request := range s.requests {
		if request.ID == id {
			s.requests = append(s.requests[:i], s.requests[i+1:]...)
			return nil
		}
	}
	return nil
}

// memStatsStore projects over the donor and request fakes the same way the
// real repository projects over the tables.
type memStatsStore struct {
	donors   *memDonorStore
	requests *memRequestStore
}

func (s *memStatsStore) CountDonors(_ context.Context) (int, error) {
	return len(s.donors.donors), nil
}

func (s *memStatsStore) CountActiveHospitals(_ context.Context) (int, error) {
	hospitals := make(map[string]struct{})
	for _, request := range s.requests.requests {
		hospitals[request.HospitalName] = struct{}{}
	}
	return len(hospitals), nil
}

func (s *memStatsStore) CountRequestsByStatus(_ context.Context, status models.RequestStatus) (int, error) {
	count := 0
	for _, request := range s.requests.requests {
		if request.Status == status {
			count++
		}
	}
	return count, nil
}

func (s *memStatsStore) BloodTypeDistribution(_ context.Context) (map[models.BloodType]int, error) {
	distribution := make(map[models.BloodType]int)
	for _, donor := range s.donors.donors {
		distribution[donor.BloodType]++
	}
	return distribution, nil
}

func (s *memStatsStore) RecentDonors(_ context.Context, limit int) ([]models.Donor, error) {
	donors := reversed(s.donors.donors)
	if len(donors) > limit {
		donors = donors[:limit]
	}
	return donors, nil
}

func (s *memStatsStore) RecentRequests(_ context.Context, limit int) ([]models.BloodRequest, error) {
	requests := reversed(s.requests.requests)
	if len(requests) > limit {
		requests = requests[:limit]
	}
	return requests, nil
}

func reversed[T any](items []T) []T {
	out := make([]T, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		out = append(out, items[i])
	}
	return out
}
