package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"fittrack/backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateChallengeReturnsID(t *testing.T) {
	svcs := newTestServices()
	id := primitive.NewObjectID()
	svcs.challenges.createResult = &domain.Challenge{ID: id, Title: "June volume", Metric: "volume", Target: 50000, Period: domain.PeriodMonthly}
	router := newTestRouter(t, svcs)

	rec := doRequest(router, http.MethodPost, "/api/challenges", `{"title":"June volume","metric":"volume","target":50000}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp CreateChallengeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, id.Hex(), resp.ID)
}

func TestCreateChallengeZeroTargetIsValid(t *testing.T) {
	svcs := newTestServices()
	svcs.challenges.createResult = &domain.Challenge{ID: primitive.NewObjectID()}
	router := newTestRouter(t, svcs)

	rec := doRequest(router, http.MethodPost, "/api/challenges", `{"title":"Show up","metric":"sessions","target":0}`)
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, svcs.challenges.lastCreated)
	assert.Equal(t, 0.0, svcs.challenges.lastCreated.Target)
}

func TestCreateChallengeAcceptsAnyPeriod(t *testing.T) {
	// Period is a free-form string; only the default is opinionated.
	svcs := newTestServices()
	svcs.challenges.createResult = &domain.Challenge{ID: primitive.NewObjectID()}
	router := newTestRouter(t, svcs)

	rec := doRequest(router, http.MethodPost, "/api/challenges", `{"title":"Daily grind","metric":"reps","target":100,"period":"daily"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, svcs.challenges.lastCreated)
	assert.Equal(t, "daily", svcs.challenges.lastCreated.Period)
}

func TestCreateChallengeValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing title", `{"metric":"reps","target":100}`},
		{"missing metric", `{"title":"Reps","target":100}`},
		{"missing target", `{"title":"Reps","metric":"reps"}`},
		{"negative target", `{"title":"Reps","metric":"reps","target":-1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := newTestServices()
			router := newTestRouter(t, svcs)

			rec := doRequest(router, http.MethodPost, "/api/challenges", tt.body)
			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.Nil(t, svcs.challenges.lastCreated)
		})
	}
}

func TestListChallengesStringifiesIDs(t *testing.T) {
	svcs := newTestServices()
	id := primitive.NewObjectID()
	svcs.challenges.listResult = []domain.Challenge{
		{ID: id, Title: "June volume", Metric: "volume", Target: 50000, Period: domain.PeriodMonthly},
	}
	router := newTestRouter(t, svcs)

	rec := doRequest(router, http.MethodGet, "/api/challenges", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []ChallengeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, id.Hex(), resp[0].ID)
	assert.Equal(t, int64(20), svcs.challenges.lastLimit)
}

func TestListChallengesZeroLimitReturnsEmptyList(t *testing.T) {
	svcs := newTestServices()
	router := newTestRouter(t, svcs)

	rec := doRequest(router, http.MethodGet, "/api/challenges?limit=0", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
