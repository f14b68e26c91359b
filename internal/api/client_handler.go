package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Aman-1313/fitealthy/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClientHandler serves the client-side workflow: profile, health stats,
// diet plan retrieval, the plan calendar, booking, and AI suggestions.
type ClientHandler struct {
	userService       service.UserService
	dietService       service.DietService
	trainerService    service.TrainerService
	generationService service.GenerationService
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(userService service.UserService, dietService service.DietService, trainerService service.TrainerService, generationService service.GenerationService) *ClientHandler {
	return &ClientHandler{
		userService:       userService,
		dietService:       dietService,
		trainerService:    trainerService,
		generationService: generationService,
	}
}

// --- Request Structs ---

type UpdateProfileRequest struct {
	Username      *string `json:"username"`
	Height        *int    `json:"height"`
	Weight        *int    `json:"weight"`
	Age           *int    `json:"age"`
	Gender        *string `json:"gender"`
	ActivityLevel *string `json:"activityLevel"`
	FitnessGoal   *string `json:"fitnessGoal"`
	HeardAboutApp *string `json:"heardAboutApp"`
	ProfileImage  *string `json:"profileImage"`
}

type BookPlanRequest struct {
	TrainerID string `json:"trainerId" binding:"required"`
	PlanID    string `json:"planId" binding:"required"`
	Weeks     int    `json:"weeks" binding:"required,min=1"`
}

type CheckoutRequest struct {
	PlanID string `json:"planId" binding:"required"`
	Weeks  int    `json:"weeks" binding:"required,min=1"`
}

type CheckoutCallbackRequest struct {
	TrainerID string `json:"trainerId" binding:"required"`
	PlanID    string `json:"planId" binding:"required"`
	Weeks     int    `json:"weeks" binding:"required,min=1"`
	Status    string `json:"status" binding:"required"`
}

type GenerateMealsRequest struct {
	FitnessGoal    string   `json:"fitnessGoal"`
	DietPreference string   `json:"dietPreference"`
	Allergies      []string `json:"allergies"`
	TargetCalories int      `json:"targetCalories"`
	MealsPerDay    int      `json:"mealsPerDay"`
}

// --- Profile ---

// GetMe returns the caller's own profile.
func (h *ClientHandler) GetMe(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfile applies a partial update limited to profile fields.
func (h *ClientHandler) UpdateProfile(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	fields := map[string]interface{}{}
	setIf(fields, "username", req.Username)
	setIfInt(fields, "height", req.Height)
	setIfInt(fields, "weight", req.Weight)
	setIfInt(fields, "age", req.Age)
	setIf(fields, "gender", req.Gender)
	setIf(fields, "activityLevel", req.ActivityLevel)
	setIf(fields, "fitnessGoal", req.FitnessGoal)
	setIf(fields, "heardAboutApp", req.HeardAboutApp)
	setIf(fields, "profileImage", req.ProfileImage)

	if err := h.userService.UpdateProfile(c.Request.Context(), userID, fields); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}

// GetHealthStats derives BMI and daily calorie needs from the profile.
func (h *ClientHandler) GetHealthStats(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	stats, err := h.userService.HealthStatsFor(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetBodyFat estimates body fat from the stored profile plus ?waist= (cm).
func (h *ClientHandler) GetBodyFat(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	waist, err := strconv.ParseFloat(c.Query("waist"), 64)
	if err != nil || waist <= 0 {
		abortWithError(c, http.StatusBadRequest, "Query parameter 'waist' must be a positive number (cm)")
		return
	}

	percent, err := h.userService.BodyFatFor(c.Request.Context(), userID, waist)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bodyFatPercent": percent})
}

// --- Diet Plans ---

// GetPlan godoc
// @Summary Get the caller's diet plan for one date
// @Tags Plans
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} domain.DietPlan
// @Failure 404 {object} gin.H "No plan for this date"
// @Router /client/plans/{date} [get]
func (h *ClientHandler) GetPlan(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	plan, err := h.dietService.PlanForDate(c.Request.Context(), userID, c.Param("date"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPlanNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidPlanDate):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to fetch plan")
		}
		return
	}
	c.JSON(http.StatusOK, plan)
}

// MarkPlanFollowed flags the plan for a date as followed. Repeating the
// call is harmless.
func (h *ClientHandler) MarkPlanFollowed(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	if err := h.dietService.MarkFollowed(c.Request.Context(), userID, c.Param("date")); err != nil {
		switch {
		case errors.Is(err, service.ErrPlanNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidPlanDate):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to mark plan as followed")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Plan marked as followed"})
}

// GetPlanDates returns the dates in [?from, ?to] that have a plan, for
// marking the calendar.
func (h *ClientHandler) GetPlanDates(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	from, to := c.Query("from"), c.Query("to")
	if from == "" || to == "" {
		abortWithError(c, http.StatusBadRequest, "Query parameters 'from' and 'to' are required")
		return
	}

	dates, err := h.dietService.PlanDatesInRange(c.Request.Context(), userID, from, to)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPlanDate) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch plan dates")
		return
	}
	c.JSON(http.StatusOK, gin.H{"dates": dates})
}

// --- Booking ---

// ListPaidPlans returns the purchasable coaching plans.
func (h *ClientHandler) ListPaidPlans(c *gin.Context) {
	plans, err := h.trainerService.ListPaidPlans(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list plans")
		return
	}
	c.JSON(http.StatusOK, plans)
}

// StartCheckout returns the hosted checkout page for a plan duration. The
// booking itself happens in CheckoutCallback once payment completes.
func (h *ClientHandler) StartCheckout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	planID, err := primitive.ObjectIDFromHex(req.PlanID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid plan ID format")
		return
	}

	checkoutURL, err := h.trainerService.CheckoutURL(c.Request.Context(), planID, req.Weeks)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPaidPlanNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrPlanOptionMissed), errors.Is(err, service.ErrNoCheckoutURL):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to start checkout")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"checkoutUrl": checkoutURL})
}

// CheckoutCallback receives the hosted checkout completion status and
// finalizes the booking on success.
func (h *ClientHandler) CheckoutCallback(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req CheckoutCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	if req.Status != "success" {
		c.JSON(http.StatusOK, gin.H{"message": "Checkout not completed, nothing booked"})
		return
	}

	trainerID, err := primitive.ObjectIDFromHex(req.TrainerID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid trainer ID format")
		return
	}
	planID, err := primitive.ObjectIDFromHex(req.PlanID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid plan ID format")
		return
	}

	if err := h.trainerService.BookPlan(c.Request.Context(), userID, trainerID, planID, req.Weeks); err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Plan booked"})
}

// BookPlan attaches the caller to a trainer under a paid plan.
func (h *ClientHandler) BookPlan(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req BookPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	trainerID, err := primitive.ObjectIDFromHex(req.TrainerID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid trainer ID format")
		return
	}
	planID, err := primitive.ObjectIDFromHex(req.PlanID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid plan ID format")
		return
	}

	if err := h.trainerService.BookPlan(c.Request.Context(), userID, trainerID, planID, req.Weeks); err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Plan booked"})
}

func respondBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTrainerNotFound),
		errors.Is(err, service.ErrPaidPlanNotFound),
		errors.Is(err, service.ErrUserNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrPlanOptionMissed):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "Failed to book plan")
	}
}

// --- AI Suggestions ---

// GenerateMeals asks the model for a day of meal suggestions.
func (h *ClientHandler) GenerateMeals(c *gin.Context) {
	var req GenerateMealsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	meals, err := h.generationService.GenerateMeals(c.Request.Context(), service.GenerationRequest{
		FitnessGoal:    req.FitnessGoal,
		DietPreference: req.DietPreference,
		Allergies:      req.Allergies,
		TargetCalories: req.TargetCalories,
		MealsPerDay:    req.MealsPerDay,
	})
	if err != nil {
		abortWithError(c, http.StatusBadGateway, "Diet generation is unavailable right now")
		return
	}
	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

// --- Helpers ---

func setIf(fields map[string]interface{}, key string, value *string) {
	if value != nil {
		fields[key] = *value
	}
}

func setIfInt(fields map[string]interface{}, key string, value *int) {
	if value != nil {
		fields[key] = *value
	}
}
