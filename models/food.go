package models

import "gorm.io/gorm"

// Canonical food catalog. Rows are created lazily the first time a food
// name is referenced and never updated afterwards; the name is the match key.
type FoodItem struct {
	gorm.Model
	Name            string  `gorm:"uniqueIndex;not null" json:"food_name"`
	CaloriesPer100g float64 `gorm:"column:calories_per_100g" json:"calories_per_100g"`
	ProteinPer100g  float64 `gorm:"column:protein_per_100g" json:"protein_per_100g"`
	CarbsPer100g    float64 `gorm:"column:carbs_per_100g" json:"carbs_per_100g"`
	FatPer100g      float64 `gorm:"column:fat_per_100g" json:"fats_per_100g"`
}
