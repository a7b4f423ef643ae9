package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/MuKuL-DiXiT/Fit-Fusion/services"

	"github.com/gin-gonic/gin"
)

type DietPlanController struct {
	Plans       *services.DietPlanService
	Suggestions *services.SuggestionService
}

func NewDietPlanController(plans *services.DietPlanService, suggestions *services.SuggestionService) *DietPlanController {
	return &DietPlanController{Plans: plans, Suggestions: suggestions}
}

type createPlanInput struct {
	PlanName  string                     `json:"planName"`
	StartDate *time.Time                 `json:"startDate"`
	EndDate   *time.Time                 `json:"endDate"`
	Items     []services.PlanItemRequest `json:"items"`
	Foods     []services.PlanItemRequest `json:"foods"` // name-keyed lines from the planner UI
}

func (dc *DietPlanController) List(c *gin.Context) {
	userID := c.GetUint("userID")
	plans, err := dc.Plans.ListPlans(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "plans": plans})
}

func (dc *DietPlanController) Recent(c *gin.Context) {
	userID := c.GetUint("userID")
	plans, err := dc.Plans.RecentPlans(userID, 3)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "plans": plans})
}

func (dc *DietPlanController) Get(c *gin.Context) {
	userID := c.GetUint("userID")
	planID, ok := parseID(c, "planId")
	if !ok {
		return
	}
	plan, items, err := dc.Plans.GetPlan(userID, planID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "plan": plan, "items": items})
}

func (dc *DietPlanController) Create(c *gin.Context) {
	userID := c.GetUint("userID")
	var input createPlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	items := append(input.Items, input.Foods...)
	plan, err := dc.Plans.CreatePlan(userID, input.PlanName, input.StartDate, input.EndDate, items)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Diet plan created successfully", "plan": plan})
}

func (dc *DietPlanController) Update(c *gin.Context) {
	userID := c.GetUint("userID")
	planID, ok := parseID(c, "planId")
	if !ok {
		return
	}
	var input createPlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	plan, err := dc.Plans.UpdatePlan(userID, planID, input.PlanName, input.StartDate, input.EndDate)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Diet plan updated successfully", "plan": plan})
}

func (dc *DietPlanController) Delete(c *gin.Context) {
	userID := c.GetUint("userID")
	planID, ok := parseID(c, "planId")
	if !ok {
		return
	}
	if err := dc.Plans.DeletePlan(userID, planID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Diet plan deleted successfully"})
}

func (dc *DietPlanController) AddItem(c *gin.Context) {
	userID := c.GetUint("userID")
	planID, ok := parseID(c, "planId")
	if !ok {
		return
	}
	var input services.PlanItemRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	item, err := dc.Plans.AddItem(userID, planID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Item added to diet plan successfully", "item": item})
}

func (dc *DietPlanController) RemoveItem(c *gin.Context) {
	userID := c.GetUint("userID")
	planID, ok := parseID(c, "planId")
	if !ok {
		return
	}
	itemID, ok := parseID(c, "itemId")
	if !ok {
		return
	}
	if err := dc.Plans.RemoveItem(userID, planID, itemID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Item removed from diet plan successfully"})
}

// GenerateAI creates a starter plan. The gateway is consulted first (outside
// any transaction) and its advisory reply is echoed back; the stored plan
// falls back to a fixed template since the reply shape is never guaranteed.
func (dc *DietPlanController) GenerateAI(c *gin.Context) {
	userID := c.GetUint("userID")

	var input struct {
		Goals          string `json:"goals"`
		DietType       string `json:"dietType"`
		Restrictions   string `json:"restrictions"`
		TargetCalories int    `json:"targetCalories"`
	}
	_ = c.ShouldBindJSON(&input)

	var advisory any
	if dc.Suggestions != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 20*time.Second)
		defer cancel()
		res, err := dc.Suggestions.RequestSuggestion(ctx, "diet-plan",
			map[string]any{
				"dietType":      input.DietType,
				"restrictions":  input.Restrictions,
				"calorieTarget": input.TargetCalories,
			},
			map[string]any{"goals": input.Goals},
		)
		if err == nil {
			advisory = res.Payload()
		}
	}

	now := time.Now()
	end := now.AddDate(0, 0, 7)
	name := "AI Generated Plan - " + now.Format("2006-01-02")
	items := []services.PlanItemRequest{
		{MealTime: "Breakfast", FoodName: "Oatmeal", Facts: services.NutritionFacts{Calories: 300}, Quantity: 100},
		{MealTime: "Lunch", FoodName: "Grilled Chicken Salad", Facts: services.NutritionFacts{Calories: 300}, Quantity: 150},
		{MealTime: "Dinner", FoodName: "Steamed Fish and Vegetables", Facts: services.NutritionFacts{Calories: 250}, Quantity: 200},
	}

	plan, err := dc.Plans.CreatePlan(userID, name, &now, &end, items)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := gin.H{"success": true, "message": "AI diet plan generated successfully", "plan": plan}
	if advisory != nil {
		resp["suggestions"] = advisory
	}
	c.JSON(http.StatusCreated, resp)
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}
