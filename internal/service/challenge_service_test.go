package service

import (
	"context"
	"testing"

	"fittrack/backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubChallengeRepo struct {
	createID    primitive.ObjectID
	createErr   error
	listResult  []domain.Challenge
	listErr     error
	lastCreated *domain.Challenge
	lastLimit   int64
}

func (s *stubChallengeRepo) Create(_ context.Context, challenge *domain.Challenge) (primitive.ObjectID, error) {
	s.lastCreated = challenge
	return s.createID, s.createErr
}

func (s *stubChallengeRepo) List(_ context.Context, limit int64) ([]domain.Challenge, error) {
	s.lastLimit = limit
	return s.listResult, s.listErr
}

func TestCreateChallengeDefaultsPeriod(t *testing.T) {
	id := primitive.NewObjectID()
	repo := &stubChallengeRepo{createID: id}
	svc := NewChallengeService(repo)

	challenge, err := svc.CreateChallenge(context.Background(), &domain.Challenge{
		Title:  "June volume",
		Metric: "volume",
		Target: 50000,
	})
	require.NoError(t, err)

	assert.Equal(t, id, challenge.ID)
	assert.Equal(t, domain.PeriodMonthly, challenge.Period)
}

func TestCreateChallengeKeepsExplicitPeriod(t *testing.T) {
	repo := &stubChallengeRepo{createID: primitive.NewObjectID()}
	svc := NewChallengeService(repo)

	challenge, err := svc.CreateChallenge(context.Background(), &domain.Challenge{
		Title:  "Push-up week",
		Metric: "reps",
		Target: 500,
		Period: domain.PeriodWeekly,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.PeriodWeekly, challenge.Period)
}

func TestListChallengesPassesLimitThrough(t *testing.T) {
	repo := &stubChallengeRepo{listResult: []domain.Challenge{{Title: "a"}}}
	svc := NewChallengeService(repo)

	challenges, err := svc.ListChallenges(context.Background(), 5)
	require.NoError(t, err)

	assert.Len(t, challenges, 1)
	assert.Equal(t, int64(5), repo.lastLimit)
}
