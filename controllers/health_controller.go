package controllers

import (
	"net/http"
	"time"

	"github.com/MuKuL-DiXiT/Fit-Fusion/services"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Logs *services.HealthLogService
}

func NewHealthController(logs *services.HealthLogService) *HealthController {
	return &HealthController{Logs: logs}
}

func queryDay(c *gin.Context) time.Time {
	if d, err := time.Parse("2006-01-02", c.Query("date")); err == nil {
		return d
	}
	return time.Now()
}

func (hc *HealthController) ListFoodLogs(c *gin.Context) {
	userID := c.GetUint("userID")
	logs, err := hc.Logs.ListFoodLogs(userID, queryDay(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "logs": logs})
}

func (hc *HealthController) AddFoodLog(c *gin.Context) {
	userID := c.GetUint("userID")
	var input struct {
		Name     string                  `json:"name"`
		Facts    services.NutritionFacts `json:"nutrition_facts"`
		Quantity float64                 `json:"quantity"`
		LoggedAt time.Time               `json:"logged_at"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	entry, err := hc.Logs.AddFoodLog(userID, input.Name, input.Facts, input.Quantity, input.LoggedAt)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "log": entry})
}

func (hc *HealthController) DeleteFoodLog(c *gin.Context) {
	userID := c.GetUint("userID")
	logID, ok := parseID(c, "logId")
	if !ok {
		return
	}
	if err := hc.Logs.DeleteFoodLog(userID, logID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Food log deleted"})
}

func (hc *HealthController) ListExerciseLogs(c *gin.Context) {
	userID := c.GetUint("userID")
	logs, err := hc.Logs.ListExerciseLogs(userID, queryDay(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "logs": logs})
}

func (hc *HealthController) AddExerciseLog(c *gin.Context) {
	userID := c.GetUint("userID")
	var input struct {
		Name           string    `json:"name"`
		DurationMin    float64   `json:"duration_minutes"`
		CaloriesBurned float64   `json:"calories_burned"`
		LoggedAt       time.Time `json:"logged_at"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	entry, err := hc.Logs.AddExerciseLog(userID, input.Name, input.DurationMin, input.CaloriesBurned, input.LoggedAt)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "log": entry})
}

func (hc *HealthController) DeleteExerciseLog(c *gin.Context) {
	userID := c.GetUint("userID")
	logID, ok := parseID(c, "logId")
	if !ok {
		return
	}
	if err := hc.Logs.DeleteExerciseLog(userID, logID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Exercise log deleted"})
}

func (hc *HealthController) Summary(c *gin.Context) {
	userID := c.GetUint("userID")
	summary, err := hc.Logs.Summary(userID, queryDay(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "summary": summary})
}
