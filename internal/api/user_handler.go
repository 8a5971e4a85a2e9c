package api

import (
	"errors"
	"fmt"
	"net/http"

	"fittrack/backend/internal/domain"
	"fittrack/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler holds the user service dependency.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// --- Request/Response Structs ---

// CreateUserRequest defines the expected JSON for registering a user.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	FullName string `json:"full_name"`
	City     string `json:"city"`
}

// CreateUserResponse returns the assigned id and the handle.
type CreateUserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// UserResponse is the full user record with its id rendered as a hex string.
type UserResponse struct {
	ID        string   `json:"id"`
	Username  string   `json:"username"`
	FullName  string   `json:"full_name,omitempty"`
	Bio       string   `json:"bio,omitempty"`
	AvatarURL string   `json:"avatar_url,omitempty"`
	City      string   `json:"city,omitempty"`
	Level     string   `json:"level"`
	Goals     []string `json:"goals"`
}

// MapUserToResponse converts a domain User to a UserResponse DTO.
func MapUserToResponse(user *domain.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}
	goals := user.Goals
	if goals == nil {
		goals = []string{}
	}
	return UserResponse{
		ID:        user.ID.Hex(),
		Username:  user.Username,
		FullName:  user.FullName,
		Bio:       user.Bio,
		AvatarURL: user.AvatarURL,
		City:      user.City,
		Level:     user.Level,
		Goals:     goals,
	}
}

// --- Handler Methods ---

// CreateUser handles POST /api/users.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusUnprocessableEntity, fmt.Sprintf("Validation error: %v", err))
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req.Username, req.FullName, req.City)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during registration")
		}
		return
	}

	c.JSON(http.StatusOK, CreateUserResponse{
		ID:       user.ID.Hex(),
		Username: user.Username,
	})
}

// ListUsers handles GET /api/users.
func (h *UserHandler) ListUsers(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		abortWithError(c, http.StatusBadRequest, "limit must be a non-negative integer")
		return
	}
	if limit == 0 {
		c.JSON(http.StatusOK, []UserResponse{})
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context(), limit)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list users")
		return
	}

	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = MapUserToResponse(&users[i])
	}
	c.JSON(http.StatusOK, responses)
}
