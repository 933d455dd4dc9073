package handlers

// In-memory stores plus a router builder so the full HTTP surface can be
// exercised without postgres. Listings return newest-first like the
// repositories do.

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"bloodlifesaver/api/internal/config"
	"bloodlifesaver/api/internal/models"
	"bloodlifesaver/api/internal/repository"
	"bloodlifesaver/api/internal/service"
)

type fakeUserStore struct {
	users []models.User
}

func (s *fakeUserStore) Create(_ context.Context, user models.User) error {
	s.users = append(s.users, user)
	return nil
}

func (s *fakeUserStore) FindByEmail(_ context.Context, email string) (models.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, repository.ErrUserNotFound
}

func (s *fakeUserStore) GetByID(_ context.Context, id string) (models.User, error) {
	for _, user := range s.users {
		if user.ID == id {
			return user, nil
		}
	}
	return models.User{}, repository.ErrUserNotFound
}

type fakeDonorStore struct {
	donors []models.Donor
}

func (s *fakeDonorStore) Create(_ context.Context, donor models.Donor) error {
	s.donors = append(s.donors, donor)
	return nil
}

func (s *fakeDonorStore) List(_ context.Context) ([]models.Donor, error) {
	return reverseDonors(s.donors), nil
}

func (s *fakeDonorStore) GetByID(_ context.Context, id string) (models.Donor, error) {
	for _, donor := range s.donors {
		if donor.ID == id {
			return donor, nil
		}
	}
	return models.Donor{}, repository.ErrDonorNotFound
}

func (s *fakeDonorStore) ListByBloodType(_ context.Context, bloodType models.BloodType) ([]models.Donor, error) {
	matched := make([]models.Donor, 0)
	for _, donor := range reverseDonors(s.donors) {
		if donor.BloodType == bloodType {
			matched = append(matched, donor)
		}
	}
	return matched, nil
}

func (s *fakeDonorStore) Delete(_ context.Context, id string) error {
	for i, donor := range s.donors {
		if donor.ID == id {
			s.donors = append(s.donors[:i], s.donors[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeRequestStore struct {
	requests []models.BloodRequest
}

func (s *fakeRequestStore) Create(_ context.Context, request models.BloodRequest) error {
	s.requests = append(s.requests, request)
	return nil
}

func (s *fakeRequestStore) List(_ context.Context, status models.RequestStatus) ([]models.BloodRequest, error) {
	matched := make([]models.BloodRequest, 0)
	for _, request := range reverseRequests(s.requests) {
		if status == "" || request.Status == status {
			matched = append(matched, request)
		}
	}
	return matched, nil
}

func (s *fakeRequestStore) GetByID(_ context.Context, id string) (models.BloodRequest, error) {
	for _, request := range s.requests {
		if request.ID == id {
			return request, nil
		}
	}
	return models.BloodRequest{}, repository.ErrRequestNotFound
}

func (s *fakeRequestStore) ListByHospital(_ context.Context, hospitalName string) ([]models.BloodRequest, error) {
	matched := make([]models.BloodRequest, 0)
	for _, request := range reverseRequests(s.requests) {
		if request.HospitalName == hospitalName {
			matched = append(matched, request)
		}
	}
	return matched, nil
}

func (s *fakeRequestStore) ListByCreator(_ context.Context, userID string) ([]models.BloodRequest, error) {
	matched := make([]models.BloodRequest, 0)
	for _, request := range reverseRequests(s.requests) {
		if request.CreatedBy == userID {
			matched = append(matched, request)
		}
	}
	return matched, nil
}

func (s *fakeRequestStore) UpdateStatusFromPending(_ context.Context, id string, status models.RequestStatus, updatedAt time.Time) (models.BloodRequest, error) {
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

func (s *fakeRequestStore) Delete(_ context.Context, id string) error {
	for i, request := range s.requests {
		if request.ID == id {
			s.requests = append(s.requests[:i], s.requests[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeStatsStore struct {
	donors   *fakeDonorStore
	requests *fakeRequestStore
}

func (s *fakeStatsStore) CountDonors(_ context.Context) (int, error) {
	return len(s.donors.donors), nil
}

func (s *fakeStatsStore) CountActiveHospitals(_ context.Context) (int, error) {
	hospitals := make(map[string]struct{})
	for _, request := range s.requests.requests {
		hospitals[request.HospitalName] = struct{}{}
	}
	return len(hospitals), nil
}

func (s *fakeStatsStore) CountRequestsByStatus(_ context.Context, status models.RequestStatus) (int, error) {
	count := 0
	for _, request := range s.requests.requests {
		if request.Status == status {
			count++
		}
	}
	return count, nil
}

func (s *fakeStatsStore) BloodTypeDistribution(_ context.Context) (map[models.BloodType]int, error) {
	distribution := make(map[models.BloodType]int)
	for _, donor := range s.donors.donors {
		distribution[donor.BloodType]++
	}
	return distribution, nil
}

func (s *fakeStatsStore) RecentDonors(_ context.Context, limit int) ([]models.Donor, error) {
	donors := reverseDonors(s.donors.donors)
	if len(donors) > limit {
		donors = donors[:limit]
	}
	return donors, nil
}

func (s *fakeStatsStore) RecentRequests(_ context.Context, limit int) ([]models.BloodRequest, error) {
	requests := reverseRequests(s.requests.requests)
	if len(requests) > limit {
		requests = requests[:limit]
	}
	return requests, nil
}

func reverseDonors(donors []models.Donor) []models.Donor {
	out := make([]models.Donor, 0, len(donors))
	for i := len(donors) - 1; i >= 0; i-- {
		out = append(out, donors[i])
	}
	return out
}

func reverseRequests(requests []models.BloodRequest) []models.BloodRequest {
	out := make([]models.BloodRequest, 0, len(requests))
	for i := len(requests) - 1; i >= 0; i-- {
		out = append(out, requests[i])
	}
	return out
}

// newTestAPI wires the handler set against in-memory stores and returns a
// router serving the full route table.
func newTestAPI(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.AppConfig{
		Environment: "test",
		Security: config.SecurityConfig{
			JWTSecret: "handlers-test-secret",
			JWTTTL:    time.Hour,
		},
	}

	logger := zerolog.Nop()
	users := &fakeUserStore{}
	donors := &fakeDonorStore{}
	requests := &fakeRequestStore{}

	hs := HandlerSet{
		log:      logger,
		cfg:      cfg,
		auth:     service.NewAuthService(users, cfg, logger),
		donors:   service.NewDonorService(donors, logger),
		requests: service.NewRequestService(requests, logger),
		admin:    service.NewAdminService(&fakeStatsStore{donors: donors, requests: requests}, logger),
		users:    users,
	}

	engine := gin.New()
	hs.Register(engine)
	return engine
}

// envelope mirrors the wire format with Data kept raw so each test can decode
// it into the shape it expects.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), "body: %s", rec.Body.String())
	return rec, env
}

// registerAccount signs up a user through the public endpoint and returns the
// issued token.
func registerAccount(t *testing.T, engine *gin.Engine, email, role string) string {
	t.Helper()

	rec, env := doJSON(t, engine, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":    email,
		"password": "secret-password",
		"role":     role,
		"name":     "Test " + role,
	})
	require.Equal(t, http.StatusCreated, rec.Code, "register %s: %s", email, rec.Body.String())

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.Token
}
