package service

import (
	"context"

	"fittrack/backend/internal/domain"
	"fittrack/backend/internal/repository"
)

// ChallengeService handles creating and listing community challenges.
type ChallengeService interface {
	CreateChallenge(ctx context.Context, challenge *domain.Challenge) (*domain.Challenge, error)
	ListChallenges(ctx context.Context, limit int64) ([]domain.Challenge, error)
}

// challengeService implements the ChallengeService interface.
type challengeService struct {
	challengeRepo repository.ChallengeRepository
}

// NewChallengeService creates a new instance of challengeService.
func NewChallengeService(challengeRepo repository.ChallengeRepository) ChallengeService {
	return &challengeService{
		challengeRepo: challengeRepo,
	}
}

// CreateChallenge persists a challenge, defaulting the period to monthly.
func (s *challengeService) CreateChallenge(ctx context.Context, challenge *domain.Challenge) (*domain.Challenge, error) {
	if challenge.Period == "" {
		challenge.Period = domain.PeriodMonthly
	}

	challengeID, err := s.challengeRepo.Create(ctx, challenge)
	if err != nil {
		return nil, err
	}
	challenge.ID = challengeID
	return challenge, nil
}

// ListChallenges returns up to limit challenges in storage order.
func (s *challengeService) ListChallenges(ctx context.Context, limit int64) ([]domain.Challenge, error) {
	return s.challengeRepo.List(ctx, limit)
}
