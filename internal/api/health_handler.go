package api

import (
	"errors"
	"net/http"

	"github.com/Aman-1313/fitealthy/internal/health"

	"github.com/gin-gonic/gin"
)

// HealthHandler exposes the stateless fitness calculators. No account data
// is read; every input comes from the request body.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

type BMIRequest struct {
	WeightKg float64 `json:"weightKg" binding:"required,gt=0"`
	HeightCm float64 `json:"heightCm" binding:"required,gt=0"`
}

type BodyFatRequest struct {
	Gender   string  `json:"gender" binding:"required,oneof=male female"`
	HeightCm float64 `json:"heightCm" binding:"required,gt=0"`
	WaistCm  float64 `json:"waistCm" binding:"required,gt=0"`
}

type DailyCaloriesRequest struct {
	Gender        string  `json:"gender" binding:"required,oneof=male female"`
	WeightKg      float64 `json:"weightKg" binding:"required,gt=0"`
	HeightCm      float64 `json:"heightCm" binding:"required,gt=0"`
	Age           int     `json:"age" binding:"required,gt=0"`
	ActivityLevel string  `json:"activityLevel" binding:"required,oneof=low moderate high"`
}

// CalculateBMI returns the body mass index and its weight category for the
// submitted measurements.
func (h *HealthHandler) CalculateBMI(c *gin.Context) {
	var req BMIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	bmi, err := health.BMI(req.WeightKg, req.HeightCm)
	if err != nil {
		respondCalculatorError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"bmi":      bmi,
		"category": health.ClassifyBMI(bmi),
	})
}

// CalculateBodyFat returns the estimated body fat percentage for the
// submitted measurements.
func (h *HealthHandler) CalculateBodyFat(c *gin.Context) {
	var req BodyFatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	bodyFat, err := health.BodyFatPercent(req.Gender, req.HeightCm, req.WaistCm)
	if err != nil {
		respondCalculatorError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bodyFatPercent": bodyFat})
}

// CalculateDailyCalories returns the estimated daily calorie needs for the
// submitted measurements and activity level.
func (h *HealthHandler) CalculateDailyCalories(c *gin.Context) {
	var req DailyCaloriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	calories, err := health.DailyCalories(req.Gender, req.WeightKg, req.HeightCm, req.Age, req.ActivityLevel)
	if err != nil {
		respondCalculatorError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dailyCalories": calories})
}

func respondCalculatorError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, health.ErrInvalidMeasurements),
		errors.Is(err, health.ErrUnknownGender),
		errors.Is(err, health.ErrUnknownActivity):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "Failed to calculate")
	}
}
