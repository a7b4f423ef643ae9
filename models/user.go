package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email               string `gorm:"uniqueIndex;not null" json:"email"`
	Password            string `gorm:"not null" json:"-"`
	FullName            string `json:"full_name"`
	FitnessGoals        string `json:"fitness_goals"`
	ActivityLevel       string `json:"activity_level"`
	DietaryRestrictions string `json:"dietary_restrictions"`
}
