package api

import (
	"net/http"

	"github.com/Aman-1313/fitealthy/internal/domain"
	"github.com/Aman-1313/fitealthy/internal/service"
	"github.com/Aman-1313/fitealthy/internal/storage"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires every handler onto the router.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	userService service.UserService,
	trainerService service.TrainerService,
	dietService service.DietService,
	communityService service.CommunityService,
	chatService service.ChatService,
	generationService service.GenerationService,
	fileStorage storage.FileStorage,
) {
	authHandler := NewAuthHandler(authService)
	trainerHandler := NewTrainerHandler(trainerService, dietService)
	clientHandler := NewClientHandler(userService, dietService, trainerService, generationService)
	communityHandler := NewCommunityHandler(communityService, userService)
	chatHandler := NewChatHandler(chatService)
	uploadHandler := NewUploadHandler(fileStorage)
	healthHandler := NewHealthHandler()

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.RegisterUser)
			authGroup.POST("/register/trainer", authHandler.RegisterTrainer)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", func(c *gin.Context) {
			userID, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			role, _ := getUserRoleFromContext(c)
			c.JSON(http.StatusOK, gin.H{"userId": userID.Hex(), "role": role})
		})

		// --- Trainer Discovery (any authenticated user) ---
		trainersGroup := protected.Group("/trainers")
		{
			trainersGroup.GET("", trainerHandler.ListTrainers)
			trainersGroup.GET("/:trainerId", trainerHandler.GetTrainer)
			trainersGroup.POST("/:trainerId/ratings", RoleMiddleware(domain.RoleClient), trainerHandler.RateTrainer)
		}

		// --- Trainer Workflow ---
		trainerGroup := protected.Group("/trainer")
		trainerGroup.Use(RoleMiddleware(domain.RoleTrainer))
		{
			trainerGroup.PATCH("/profile", trainerHandler.UpdateProfile)
			trainerGroup.GET("/clients", trainerHandler.GetClients)
			trainerGroup.POST("/meals", trainerHandler.SaveMeal)
			trainerGroup.GET("/meals", trainerHandler.GetMeals)
			trainerGroup.POST("/plans", trainerHandler.AssignPlan)
		}

		// --- Client Workflow ---
		clientGroup := protected.Group("/client")
		clientGroup.Use(RoleMiddleware(domain.RoleClient))
		{
			clientGroup.GET("/profile", clientHandler.GetMe)
			clientGroup.PATCH("/profile", clientHandler.UpdateProfile)
			clientGroup.GET("/health-stats", clientHandler.GetHealthStats)
			clientGroup.GET("/body-fat", clientHandler.GetBodyFat)
			clientGroup.GET("/plans/dates", clientHandler.GetPlanDates)
			clientGroup.GET("/plans/:date", clientHandler.GetPlan)
			clientGroup.POST("/plans/:date/followed", clientHandler.MarkPlanFollowed)
			clientGroup.GET("/paid-plans", clientHandler.ListPaidPlans)
			clientGroup.POST("/checkout", clientHandler.StartCheckout)
			clientGroup.POST("/checkout/callback", clientHandler.CheckoutCallback)
			clientGroup.POST("/bookings", clientHandler.BookPlan)
			clientGroup.POST("/generate-meals", clientHandler.GenerateMeals)
		}

		// --- Calculators (any authenticated user, no stored profile needed) ---
		calculatorsGroup := protected.Group("/calculators")
		{
			calculatorsGroup.POST("/bmi", healthHandler.CalculateBMI)
			calculatorsGroup.POST("/body-fat", healthHandler.CalculateBodyFat)
			calculatorsGroup.POST("/daily-calories", healthHandler.CalculateDailyCalories)
		}

		// --- Community ---
		postsGroup := protected.Group("/posts")
		{
			postsGroup.POST("", communityHandler.CreatePost)
			postsGroup.GET("", communityHandler.GetFeed)
			postsGroup.PUT("/:postId", communityHandler.UpdatePost)
			postsGroup.DELETE("/:postId", communityHandler.DeletePost)
			postsGroup.POST("/:postId/likes", communityHandler.LikePost)
			postsGroup.POST("/:postId/comments", communityHandler.AddComment)
			postsGroup.GET("/:postId/comments", communityHandler.GetComments)
		}
		usersGroup := protected.Group("/users")
		{
			usersGroup.POST("/:userId/follow", communityHandler.ToggleFollow)
			usersGroup.GET("/:userId/follow", communityHandler.GetFollowState)
			usersGroup.GET("/:userId/following", communityHandler.GetFollowing)
			usersGroup.GET("/:userId/follow-counts", communityHandler.GetFollowCounts)
		}

		// --- Chat ---
		chatsGroup := protected.Group("/chats")
		{
			chatsGroup.POST("", chatHandler.OpenChat)
			chatsGroup.POST("/:chatId/messages", chatHandler.SendMessage)
			chatsGroup.GET("/:chatId/messages", chatHandler.GetMessages)
		}

		// --- Uploads ---
		uploadsGroup := protected.Group("/uploads")
		{
			uploadsGroup.POST("/post-image", uploadHandler.PresignPostImage)
			uploadsGroup.POST("/chat-media", uploadHandler.PresignChatMedia)
		}
	}
}
