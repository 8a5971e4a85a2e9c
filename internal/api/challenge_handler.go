package api

import (
	"fmt"
	"net/http"
	"time"

	"fittrack/backend/internal/domain"
	"fittrack/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ChallengeHandler holds the challenge service dependency.
type ChallengeHandler struct {
	challengeService service.ChallengeService
}

// NewChallengeHandler creates a new ChallengeHandler.
func NewChallengeHandler(challengeService service.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{challengeService: challengeService}
}

// --- Request/Response Structs ---

// CreateChallengeRequest defines the expected JSON for creating a challenge.
// Target is a pointer so that an explicit 0 still satisfies required.
type CreateChallengeRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Metric      string     `json:"metric" binding:"required"`
	Target      *float64   `json:"target" binding:"required,gte=0"`
	Period      string     `json:"period"`
	StartsAt    *time.Time `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
}

// CreateChallengeResponse returns the assigned id.
type CreateChallengeResponse struct {
	ID string `json:"id"`
}

// ChallengeResponse is the full challenge record with its id rendered as a hex string.
type ChallengeResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Metric      string     `json:"metric"`
	Target      float64    `json:"target"`
	Period      string     `json:"period"`
	StartsAt    *time.Time `json:"starts_at,omitempty"`
	EndsAt      *time.Time `json:"ends_at,omitempty"`
}

// MapChallengeToResponse converts a domain Challenge to a ChallengeResponse DTO.
func MapChallengeToResponse(challenge *domain.Challenge) ChallengeResponse {
	if challenge == nil {
		return ChallengeResponse{}
	}
	return ChallengeResponse{
		ID:          challenge.ID.Hex(),
		Title:       challenge.Title,
		Description: challenge.Description,
		Metric:      challenge.Metric,
		Target:      challenge.Target,
		Period:      challenge.Period,
		StartsAt:    challenge.StartsAt,
		EndsAt:      challenge.EndsAt,
	}
}

// --- Handler Methods ---

// CreateChallenge handles POST /api/challenges.
func (h *ChallengeHandler) CreateChallenge(c *gin.Context) {
	var req CreateChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusUnprocessableEntity, fmt.Sprintf("Validation error: %v", err))
		return
	}

	challenge := &domain.Challenge{
		Title:       req.Title,
		Description: req.Description,
		Metric:      req.Metric,
		Target:      *req.Target,
		Period:      req.Period,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
	}

	challenge, err := h.challengeService.CreateChallenge(c.Request.Context(), challenge)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to create challenge")
		return
	}

	c.JSON(http.StatusOK, CreateChallengeResponse{ID: challenge.ID.Hex()})
}

// ListChallenges handles GET /api/challenges.
func (h *ChallengeHandler) ListChallenges(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		abortWithError(c, http.StatusBadRequest, "limit must be a non-negative integer")
		return
	}
	if limit == 0 {
		c.JSON(http.StatusOK, []ChallengeResponse{})
		return
	}

	challenges, err := h.challengeService.ListChallenges(c.Request.Context(), limit)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list challenges")
		return
	}

	responses := make([]ChallengeResponse, len(challenges))
	for i := range challenges {
		responses[i] = MapChallengeToResponse(&challenges[i])
	}
	c.JSON(http.StatusOK, responses)
}
