package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func calculatorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewHealthHandler()
	router.POST("/calculators/bmi", handler.CalculateBMI)
	router.POST("/calculators/body-fat", handler.CalculateBodyFat)
	router.POST("/calculators/daily-calories", handler.CalculateDailyCalories)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestCalculateBMI(t *testing.T) {
	router := calculatorRouter()

	w := postJSON(t, router, "/calculators/bmi", `{"weightKg":70,"heightCm":175}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		BMI      float64 `json:"bmi"`
		Category string  `json:"category"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 22.86, resp.BMI, 0.01)
	assert.Equal(t, "Normal weight", resp.Category)
}

func TestCalculateBMI_RejectsNonPositive(t *testing.T) {
	router := calculatorRouter()

	w := postJSON(t, router, "/calculators/bmi", `{"weightKg":-70,"heightCm":175}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalculateBodyFat(t *testing.T) {
	router := calculatorRouter()

	w := postJSON(t, router, "/calculators/body-fat", `{"gender":"male","heightCm":175,"waistCm":85}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		BodyFatPercent float64 `json:"bodyFatPercent"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 45.6, resp.BodyFatPercent, 0.5)
}

func TestCalculateBodyFat_UnknownGender(t *testing.T) {
	router := calculatorRouter()

	w := postJSON(t, router, "/calculators/body-fat", `{"gender":"other","heightCm":175,"waistCm":85}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalculateDailyCalories(t *testing.T) {
	router := calculatorRouter()

	w := postJSON(t, router, "/calculators/daily-calories",
		`{"gender":"male","weightKg":70,"heightCm":175,"age":30,"activityLevel":"moderate"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		DailyCalories float64 `json:"dailyCalories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	// 88.36 + 13.4*70 + 4.8*175 - 5.7*30 = 1695.36, times 1.55.
	assert.InDelta(t, 2627.81, resp.DailyCalories, 0.1)
}

func TestCalculateDailyCalories_UnknownActivity(t *testing.T) {
	router := calculatorRouter()

	w := postJSON(t, router, "/calculators/daily-calories",
		`{"gender":"male","weightKg":70,"heightCm":175,"age":30,"activityLevel":"extreme"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
