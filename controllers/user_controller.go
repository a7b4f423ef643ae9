package controllers

import (
	"net/http"

	"github.com/MuKuL-DiXiT/Fit-Fusion/config"
	"github.com/MuKuL-DiXiT/Fit-Fusion/services"

	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	userID := c.GetUint("userID")

	user, err := services.FindUserByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

type UpdateProfileInput struct {
	FullName            string `json:"full_name"`
	FitnessGoals        string `json:"fitness_goals"`
	ActivityLevel       string `json:"activity_level"`
	DietaryRestrictions string `json:"dietary_restrictions"`
}

func UpdateProfile(c *gin.Context) {
	userID := c.GetUint("userID")

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	user, err := services.FindUserByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		return
	}

	user.FullName = input.FullName
	user.FitnessGoals = input.FitnessGoals
	user.ActivityLevel = input.ActivityLevel
	user.DietaryRestrictions = input.DietaryRestrictions
	if err := config.DB.Save(user).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}
