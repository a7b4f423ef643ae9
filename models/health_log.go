package models

import (
	"time"

	"gorm.io/gorm"
)

type FoodLog struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null" json:"user_id"`
	FoodID   uint      `gorm:"not null" json:"food_id"`
	FoodName string    `json:"food_name"`
	Quantity float64   `json:"quantity"` // grams
	Calories float64   `json:"calories"`
	LoggedAt time.Time `gorm:"index" json:"logged_at"`
}

type ExerciseLog struct {
	gorm.Model
	UserID         uint      `gorm:"index;not null" json:"user_id"`
	Name           string    `gorm:"not null" json:"exercise_name"`
	DurationMin    float64   `json:"duration_minutes"`
	CaloriesBurned float64   `json:"calories_burned"`
	LoggedAt       time.Time `gorm:"index" json:"logged_at"`
}
