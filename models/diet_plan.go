package models

import (
	"time"

	"gorm.io/gorm"
)

type DietPlan struct {
	gorm.Model
	UserID    uint           `gorm:"index;not null" json:"user_id"`
	Name      string         `gorm:"not null" json:"plan_name"`
	StartDate *time.Time     `json:"start_date"`
	EndDate   *time.Time     `json:"end_date"`
	Items     []DietPlanItem `json:"items,omitempty"`
}

// A line in a diet plan. Either FoodID or ProductID may be set (or neither,
// for a free-text slot); setting both is rejected by the engine.
type DietPlanItem struct {
	gorm.Model
	DietPlanID uint    `gorm:"index;not null" json:"plan_id"`
	FoodID     *uint   `json:"food_id"`
	ProductID  *uint   `json:"product_id"`
	MealTime   string  `json:"meal_time"` // "Breakfast"|"Lunch"|…, free text
	Quantity   float64 `json:"quantity"`  // grams for foods, units for products
	Calories   float64 `json:"calories"`  // derived from food facts when available
}
