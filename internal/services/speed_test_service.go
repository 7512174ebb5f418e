package services

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"comnet/internal/models/db_models"
	"comnet/internal/models/response_models"
	"comnet/internal/repositories"
	"comnet/pkg/utils"
)

const recentSpeedTestLimit = 10

type SpeedTestServiceInterface interface {
	RunSpeedTest(ctx context.Context, accountID uuid.UUID) (response_models.SpeedTestResponse, error)
	ListRecent(ctx context.Context, accountID uuid.UUID) ([]response_models.SpeedTestResponse, error)
}

// SpeedTestService simulates line measurements against the account's
// active plan. math/rand is fine here; the numbers carry no security
// weight.
type SpeedTestService struct {
	speedTestRepo repositories.ISpeedTestRepository
	subRepo       repositories.ISubscriptionRepository
}

func NewSpeedTestService(
	speedTestRepo repositories.ISpeedTestRepository,
	subRepo repositories.ISubscriptionRepository) SpeedTestServiceInterface {
	return &SpeedTestService{
		speedTestRepo: speedTestRepo,
		subRepo:       subRepo,
	}
}

func (s *SpeedTestService) RunSpeedTest(ctx context.Context, accountID uuid.UUID) (response_models.SpeedTestResponse, error) {

	sub, err := s.subRepo.GetActiveByAccount(ctx, accountID)
	if err != nil {
		return response_models.SpeedTestResponse{}, utils.ErrDatabaseError
	}
	if sub == nil {
		return response_models.SpeedTestResponse{}, utils.ErrSubscriptionNotFound
	}

	// Measured throughput lands at 85-98% of the provisioned speed.
	test := &db_models.SpeedTest{
		AccountID:    accountID,
		DownloadMbps: round2(float64(sub.Plan.DownloadMbps) * (0.85 + rand.Float64()*0.13)),
		UploadMbps:   round2(float64(sub.Plan.UploadMbps) * (0.85 + rand.Float64()*0.13)),
		PingMs:       round2(5 + rand.Float64()*25),
	}

	if err := s.speedTestRepo.CreateSpeedTest(ctx, test); err != nil {
		return response_models.SpeedTestResponse{}, utils.ErrDatabaseError
	}

	return toSpeedTestResponse(test), nil
}

func (s *SpeedTestService) ListRecent(ctx context.Context, accountID uuid.UUID) ([]response_models.SpeedTestResponse, error) {

	tests, err := s.speedTestRepo.ListRecentByAccount(ctx, accountID, recentSpeedTestLimit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.SpeedTestResponse, 0, len(tests))
	for i := range tests {
		responses = append(responses, toSpeedTestResponse(&tests[i]))
	}

	return responses, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func toSpeedTestResponse(test *db_models.SpeedTest) response_models.SpeedTestResponse {
	return response_models.SpeedTestResponse{
		ID:           test.ID.String(),
		DownloadMbps: test.DownloadMbps,
		UploadMbps:   test.UploadMbps,
		PingMs:       test.PingMs,
		TestedDate:   time.Unix(test.CreatedAt, 0).UTC().Format(time.RFC3339),
	}
}
