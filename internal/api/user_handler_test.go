package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"fittrack/backend/internal/domain"
	"fittrack/backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateUserReturnsIDAndUsername(t *testing.T) {
	svcs := newTestServices()
	id := primitive.NewObjectID()
	svcs.users.createResult = &domain.User{ID: id, Username: "alice", Level: domain.LevelBeginner}
	router := newTestRouter(t, svcs)

	rec := doRequest(router, http.MethodPost, "/api/users", `{"username":"alice","full_name":"Alice A","city":"Kyiv"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp CreateUserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, id.Hex(), resp.ID)
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, "alice", svcs.users.lastUsername)
}

func TestCreateUserDuplicateUsernameIsBadRequest(t *testing.T) {
	svcs := newTestServices()
	svcs.users.createErr = service.ErrUsernameTaken
	router := newTestRouter(t, svcs)

	rec := doRequest(router, http.MethodPost, "/api/users", `{"username":"alice"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "username already exists")
}

func TestCreateUserMissingUsernameIsRejected(t *testing.T) {
	svcs := newTestServices()
	router := newTestRouter(t, svcs)

	rec := doRequest(router, http.MethodPost, "/api/users", `{"full_name":"No Handle"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestListUsersStringifiesIDs(t *testing.T) {
	svcs := newTestServices()
	id := primitive.NewObjectID()
	svcs.users.listResult = []domain.User{
		{ID: id, Username: "alice", Level: domain.LevelBeginner, Goals: []string{"strength"}},
	}
	router := newTestRouter(t, svcs)

	rec := doRequest(router, http.MethodGet, "/api/users", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, id.Hex(), resp[0].ID)
	assert.Equal(t, []string{"strength"}, resp[0].Goals)
	assert.Equal(t, int64(20), svcs.users.lastLimit, "absent limit defaults to 20")
}

func TestListUsersZeroLimitReturnsEmptyList(t *testing.T) {
	svcs := newTestServices()
	router := newTestRouter(t, svcs)

	rec := doRequest(router, http.MethodGet, "/api/users?limit=0", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
	assert.Equal(t, 0, svcs.users.listCalls, "limit=0 must not query storage")
}

func TestListUsersInvalidLimitIsBadRequest(t *testing.T) {
	svcs := newTestServices()
	router := newTestRouter(t, svcs)

	for _, limit := range []string{"abc", "-1"} {
		rec := doRequest(router, http.MethodGet, "/api/users?limit="+limit, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, "limit=%s", limit)
	}
}
