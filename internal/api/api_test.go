package api

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"fittrack/backend/internal/domain"
	"fittrack/backend/internal/repository/mongo"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// --- Shared stubs, one per service interface ---

type stubUserService struct {
	createResult *domain.User
	createErr    error
	listResult   []domain.User
	listErr      error
	lastUsername string
	lastLimit    int64
	listCalls    int
}

func (s *stubUserService) CreateUser(_ context.Context, username, _, _ string) (*domain.User, error) {
	s.lastUsername = username
	return s.createResult, s.createErr
}

func (s *stubUserService) ListUsers(_ context.Context, limit int64) ([]domain.User, error) {
	s.listCalls++
	s.lastLimit = limit
	return s.listResult, s.listErr
}

type stubWorkoutService struct {
	createResult *domain.Workout
	createErr    error
	feedResult   []domain.Workout
	feedErr      error
	likeResult   *domain.Workout
	likeErr      error
	lastCreated  *domain.Workout
	lastFeedUser string
	lastLimit    int64
	lastLikedID  string
	feedCalls    int
}

func (s *stubWorkoutService) CreateWorkout(_ context.Context, workout *domain.Workout) (*domain.Workout, error) {
	s.lastCreated = workout
	if s.createErr != nil {
		return nil, s.createErr
	}
	if s.createResult != nil {
		return s.createResult, nil
	}
	return workout, nil
}

func (s *stubWorkoutService) GetFeed(_ context.Context, userID string, limit int64) ([]domain.Workout, error) {
	s.feedCalls++
	s.lastFeedUser = userID
	s.lastLimit = limit
	return s.feedResult, s.feedErr
}

func (s *stubWorkoutService) LikeWorkout(_ context.Context, workoutID string) (*domain.Workout, error) {
	s.lastLikedID = workoutID
	return s.likeResult, s.likeErr
}

type stubChallengeService struct {
	createResult *domain.Challenge
	createErr    error
	listResult   []domain.Challenge
	listErr      error
	lastCreated  *domain.Challenge
	lastLimit    int64
}

func (s *stubChallengeService) CreateChallenge(_ context.Context, challenge *domain.Challenge) (*domain.Challenge, error) {
	s.lastCreated = challenge
	if s.createErr != nil {
		return nil, s.createErr
	}
	if s.createResult != nil {
		return s.createResult, nil
	}
	return challenge, nil
}

func (s *stubChallengeService) ListChallenges(_ context.Context, limit int64) ([]domain.Challenge, error) {
	s.lastLimit = limit
	return s.listResult, s.listErr
}

type stubStatusProbe struct {
	name   string
	status mongo.Status
}

func (s *stubStatusProbe) DatabaseName() string { return s.name }

func (s *stubStatusProbe) Check(_ context.Context, max int) mongo.Status {
	st := s.status
	if len(st.Collections) > max {
		st.Collections = st.Collections[:max]
	}
	return st
}

// --- Router helpers ---

type testServices struct {
	users      *stubUserService
	workouts   *stubWorkoutService
	challenges *stubChallengeService
	probe      *stubStatusProbe
}

func newTestServices() *testServices {
	return &testServices{
		users:      &stubUserService{},
		workouts:   &stubWorkoutService{},
		challenges: &stubChallengeService{},
		probe:      &stubStatusProbe{name: "fittrack", status: mongo.Status{Connected: true}},
	}
}

func newTestRouter(t *testing.T, svcs *testServices) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.SetOutput(io.Discard)

	router := gin.New()
	SetupRoutes(router, log, svcs.users, svcs.workouts, svcs.challenges,
		NewSystemHandler(svcs.probe, true))
	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
