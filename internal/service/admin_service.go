package service

import (
	"context"

	"github.com/rs/zerolog"

	"bloodlifesaver/api/internal/models"
)

const (
	defaultActivityLimit = 10
	maxActivityLimit     = 100
)

type StatsStore interface {
	CountDonors(ctx context.Context) (int, error)
	CountActiveHospitals(ctx context.Context) (int, error)
	CountRequestsByStatus(ctx context.Context, status models.RequestStatus) (int, error)
	BloodTypeDistribution(ctx context.Context) (map[models.BloodType]int, error)
	RecentDonors(ctx context.Context, limit int) ([]models.Donor, error)
	RecentRequests(ctx context.Context, limit int) ([]models.BloodRequest, error)
}

// AdminService computes dashboard rollups on demand. No caching: every call
// reads the live tables.
type AdminService struct {
	stats StatsStore
	log   zerolog.Logger
}

func NewAdminService(stats StatsStore, log zerolog.Logger) *AdminService {
	return &AdminService{stats: stats, log: log}
}

func (s *AdminService) Statistics(ctx context.Context) (models.Statistics, error) {
	totalDonors, err := s.stats.CountDonors(ctx)
	if err != nil {
		return models.Statistics{}, err
	}

	activeHospitals, err := s.stats.CountActiveHospitals(ctx)
	if err != nil {
		return models.Statistics{}, err
	}

	approved, err := s.stats.CountRequestsByStatus(ctx, models.StatusApproved)
	if err != nil {
		return models.Statistics{}, err
	}

	pending, err := s.stats.CountRequestsByStatus(ctx, models.StatusPending)
	if err != nil {
		return models.Statistics{}, err
	}

	return models.Statistics{
		TotalDonors:      totalDonors,
		ActiveHospitals:  activeHospitals,
		ApprovedRequests: approved,
		PendingRequests:  pending,
	}, nil
}

func (s *AdminService) BloodTypeDistribution(ctx context.Context) (map[models.BloodType]int, error) {
	return s.stats.BloodTypeDistribution(ctx)
}

func (s *AdminService) RecentActivity(ctx context.Context, limit int) (models.RecentActivity, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}

	donors, err := s.stats.RecentDonors(ctx, limit)
	if err != nil {
		return models.RecentActivity{}, err
	}

	requests, err := s.stats.RecentRequests(ctx, limit)
	if err != nil {
		return models.RecentActivity{}, err
	}

	return models.RecentActivity{
		RecentDonors:   donors,
		RecentRequests: requests,
	}, nil
}
