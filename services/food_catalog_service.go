package services

import (
	"errors"
	"strings"

	"github.com/MuKuL-DiXiT/Fit-Fusion/models"
	"github.com/MuKuL-DiXiT/Fit-Fusion/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NutritionFacts struct {
	Calories float64 `json:"calories_per_100g"`
	Protein  float64 `json:"protein_per_100g"`
	Carbs    float64 `json:"carbs_per_100g"`
	Fat      float64 `json:"fats_per_100g"`
}

type FoodCatalogService struct{}

func NewFoodCatalogService() *FoodCatalogService { return &FoodCatalogService{} }

// ResolveFoodID returns the id of the catalog row for name, inserting one
// when it doesn't exist yet. Existing rows keep their nutrition facts even
// when the caller supplies different values: this is insert-or-fetch, not
// upsert. Must be called with the transaction the surrounding write runs in,
// so a downstream failure rolls the catalog row back too.
func (s *FoodCatalogService) ResolveFoodID(tx *gorm.DB, name string, facts NutritionFacts) (uint, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, utils.ValidationError("food name is required")
	}
	if facts.Calories < 0 || facts.Protein < 0 || facts.Carbs < 0 || facts.Fat < 0 {
		return 0, utils.ValidationError("nutrition facts must be non-negative")
	}

	var existing models.FoodItem
	err := tx.Where("name = ?", name).First(&existing).Error
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	row := models.FoodItem{
		Name:            name,
		CaloriesPer100g: facts.Calories,
		ProteinPer100g:  facts.Protein,
		CarbsPer100g:    facts.Carbs,
		FatPer100g:      facts.Fat,
	}
	// A concurrent insert of the same name would trip the unique index and
	// abort the whole transaction, so insert with DO NOTHING and re-fetch
	// the winner when the row was created by someone else.
	res := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&row)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 || row.ID == 0 {
		if err := tx.Where("name = ?", name).First(&existing).Error; err != nil {
			return 0, err
		}
		return existing.ID, nil
	}
	return row.ID, nil
}

// GetFood looks up a catalog row by id.
func (s *FoodCatalogService) GetFood(db *gorm.DB, id uint) (*models.FoodItem, error) {
	var food models.FoodItem
	if err := db.First(&food, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("food not found")
		}
		return nil, err
	}
	return &food, nil
}
