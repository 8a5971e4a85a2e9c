package api

import (
	"fittrack/backend/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SetupRoutes wires middleware and all endpoint handlers onto the router.
func SetupRoutes(
	router *gin.Engine,
	log *logrus.Logger,
	userService service.UserService,
	workoutService service.WorkoutService,
	challengeService service.ChallengeService,
	systemHandler *SystemHandler,
) {
	// All origins, methods and headers are permitted; there is no access
	// restriction on this API.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"*"}

	router.Use(RequestID(), RequestLogger(log), cors.New(corsConfig))

	userHandler := NewUserHandler(userService)
	workoutHandler := NewWorkoutHandler(workoutService)
	challengeHandler := NewChallengeHandler(challengeService)

	router.GET("/", systemHandler.Root)
	router.GET("/schema", systemHandler.SchemaOverview)
	router.GET("/test", systemHandler.TestDatabase)

	apiGroup := router.Group("/api")
	{
		userGroup := apiGroup.Group("/users")
		{
			userGroup.POST("", userHandler.CreateUser)
			userGroup.GET("", userHandler.ListUsers)
		}

		workoutGroup := apiGroup.Group("/workouts")
		{
			workoutGroup.POST("", workoutHandler.CreateWorkout)
			workoutGroup.GET("", workoutHandler.GetFeed)
			workoutGroup.POST("/:id/like", workoutHandler.LikeWorkout)
		}

		challengeGroup := apiGroup.Group("/challenges")
		{
			challengeGroup.POST("", challengeHandler.CreateChallenge)
			challengeGroup.GET("", challengeHandler.ListChallenges)
		}
	}
}
