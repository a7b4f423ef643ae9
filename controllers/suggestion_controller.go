package controllers

import (
	"net/http"

	"github.com/MuKuL-DiXiT/Fit-Fusion/services"

	"github.com/gin-gonic/gin"
)

type SuggestionController struct {
	Suggestions *services.SuggestionService
}

func NewSuggestionController(s *services.SuggestionService) *SuggestionController {
	return &SuggestionController{Suggestions: s}
}

// POST /gemini-suggestions { "type": "...", "data": {...}, "userProfile": {...} }
func (sc *SuggestionController) Generate(c *gin.Context) {
	var input struct {
		Type        string         `json:"type"`
		Data        map[string]any `json:"data"`
		UserProfile map[string]any `json:"userProfile"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	result, err := sc.Suggestions.RequestSuggestion(c.Request.Context(), input.Type, input.Data, input.UserProfile)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": result.Payload()})
}
