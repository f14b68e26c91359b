package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Aman-1313/fitealthy/internal/domain"
	"github.com/Aman-1313/fitealthy/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TrainerHandler serves trainer discovery plus the trainer-side workflow:
// the meal catalog and diet plan assignment.
type TrainerHandler struct {
	trainerService service.TrainerService
	dietService    service.DietService
}

// NewTrainerHandler creates a new TrainerHandler.
func NewTrainerHandler(trainerService service.TrainerService, dietService service.DietService) *TrainerHandler {
	return &TrainerHandler{trainerService: trainerService, dietService: dietService}
}

// --- Request Structs ---

type SaveMealRequest struct {
	Name        string           `json:"name" binding:"required"`
	Calories    int              `json:"calories" binding:"required,min=0"`
	Protein     int              `json:"protein" binding:"min=0"`
	Carbs       int              `json:"carbs" binding:"min=0"`
	Fat         int              `json:"fat" binding:"min=0"`
	MacroUnit   domain.MacroUnit `json:"macroUnit" binding:"omitempty,oneof=grams percent"`
	Ingredients string           `json:"ingredients"` // comma separated
	Recipe      string           `json:"recipe"`
	Time        string           `json:"time"`
}

type PlanMealEntry struct {
	// Time is the slot the meal is eaten at (e.g. "08:00"). Slots may
	// repeat across entries.
	Time string `json:"time" binding:"required"`
	Name string `json:"name" binding:"required"`
}

type AssignPlanRequest struct {
	UserID string          `json:"userId" binding:"required"`
	Dates  []string        `json:"dates" binding:"required,min=1"`
	Meals  []PlanMealEntry `json:"meals" binding:"required,min=1,dive"`
}

type RateTrainerRequest struct {
	Rating float64 `json:"rating" binding:"required,min=1,max=5"`
}

type UpdateTrainerProfileRequest struct {
	Specialty    *string `json:"specialty"`
	Experience   *int    `json:"experience"`
	Description  *string `json:"description"`
	ProfileImage *string `json:"profileImage"`
}

// --- Discovery ---

// ListTrainers returns all trainers, optionally filtered by ?type= or
// searched by ?q= (substring on the name).
func (h *TrainerHandler) ListTrainers(c *gin.Context) {
	if query := c.Query("q"); query != "" {
		trainers, err := h.trainerService.SearchTrainers(c.Request.Context(), query)
		if err != nil {
			abortWithError(c, http.StatusInternalServerError, "Failed to search trainers")
			return
		}
		c.JSON(http.StatusOK, trainers)
		return
	}

	if trainerType := c.Query("type"); trainerType != "" {
		trainers, err := h.trainerService.ListTrainersByType(c.Request.Context(), domain.TrainerType(trainerType))
		if err != nil {
			abortWithError(c, http.StatusInternalServerError, "Failed to list trainers")
			return
		}
		c.JSON(http.StatusOK, trainers)
		return
	}

	trainers, err := h.trainerService.ListTrainers(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list trainers")
		return
	}
	c.JSON(http.StatusOK, trainers)
}

// GetTrainer returns one trainer's public profile.
func (h *TrainerHandler) GetTrainer(c *gin.Context) {
	trainerID, err := primitive.ObjectIDFromHex(c.Param("trainerId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid trainer ID format")
		return
	}

	trainer, err := h.trainerService.GetTrainer(c.Request.Context(), trainerID)
	if err != nil {
		if errors.Is(err, service.ErrTrainerNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch trainer")
		return
	}
	c.JSON(http.StatusOK, trainer)
}

// RateTrainer folds the caller's rating into the trainer's average.
func (h *TrainerHandler) RateTrainer(c *gin.Context) {
	trainerID, err := primitive.ObjectIDFromHex(c.Param("trainerId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid trainer ID format")
		return
	}

	var req RateTrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	trainer, err := h.trainerService.RateTrainer(c.Request.Context(), trainerID, req.Rating)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTrainerNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidRating):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to rate trainer")
		}
		return
	}
	c.JSON(http.StatusOK, trainer)
}

// --- Trainer-only Routes ---

// UpdateProfile applies a partial update to the caller's trainer profile.
func (h *TrainerHandler) UpdateProfile(c *gin.Context) {
	trainerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get trainer ID from token")
		return
	}

	var req UpdateTrainerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	fields := map[string]interface{}{}
	if req.Specialty != nil {
		fields["specialty"] = *req.Specialty
	}
	if req.Experience != nil {
		fields["experience"] = *req.Experience
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.ProfileImage != nil {
		fields["profileImage"] = *req.ProfileImage
	}
	if len(fields) == 0 {
		abortWithError(c, http.StatusBadRequest, "No updatable fields in request")
		return
	}

	if err := h.trainerService.UpdateTrainerProfile(c.Request.Context(), trainerID, fields); err != nil {
		if errors.Is(err, service.ErrTrainerNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}

// GetClients lists the caller's clients. ?current=true restricts the list
// to active assignments.
func (h *TrainerHandler) GetClients(c *gin.Context) {
	trainerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get trainer ID from token")
		return
	}

	currentOnly := c.Query("current") == "true"
	clients, err := h.trainerService.ListClients(c.Request.Context(), trainerID, currentOnly)
	if err != nil {
		if errors.Is(err, service.ErrTrainerNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to list clients")
		return
	}
	c.JSON(http.StatusOK, clients)
}

// SaveMeal godoc
// @Summary Save a meal into the caller's catalog
// @Description Saving a meal under an existing name overwrites that entry.
// @Tags Meals
// @Accept json
// @Produce json
// @Param meal body SaveMealRequest true "Meal details"
// @Success 200 {object} domain.Meal
// @Router /trainer/meals [post]
func (h *TrainerHandler) SaveMeal(c *gin.Context) {
	trainerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get trainer ID from token")
		return
	}

	var req SaveMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	meal, err := h.dietService.SaveMeal(c.Request.Context(), trainerID, service.MealInput{
		Name:        req.Name,
		Calories:    req.Calories,
		Protein:     req.Protein,
		Carbs:       req.Carbs,
		Fat:         req.Fat,
		MacroUnit:   req.MacroUnit,
		Ingredients: req.Ingredients,
		Recipe:      req.Recipe,
		Time:        req.Time,
	})
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, meal)
}

// GetMeals lists the caller's meal catalog, filtered by ?q= when present.
func (h *TrainerHandler) GetMeals(c *gin.Context) {
	trainerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get trainer ID from token")
		return
	}

	meals, err := h.dietService.FindMealsByName(c.Request.Context(), trainerID, c.Query("q"))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list meals")
		return
	}
	c.JSON(http.StatusOK, meals)
}

// AssignPlan godoc
// @Summary Assign a diet plan to a client over one or more dates
// @Description Builds one plan per date from catalog meals. Existing plans on those dates are replaced. Dates that fail are reported without affecting the rest.
// @Tags Plans
// @Accept json
// @Produce json
// @Param plan body AssignPlanRequest true "Assignment details"
// @Success 200 {object} service.AssignmentResult
// @Router /trainer/plans [post]
func (h *TrainerHandler) AssignPlan(c *gin.Context) {
	trainerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get trainer ID from token")
		return
	}

	var req AssignPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	meals := make([]service.PlanMealInput, 0, len(req.Meals))
	for _, entry := range req.Meals {
		meals = append(meals, service.PlanMealInput{Time: entry.Time, Name: entry.Name})
	}

	result, err := h.dietService.AssignPlan(c.Request.Context(), trainerID, userID, req.Dates, meals)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMealNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrEmptyPlan):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to assign plan")
		}
		return
	}
	c.JSON(http.StatusOK, result)
}
