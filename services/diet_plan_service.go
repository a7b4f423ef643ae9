package services

import (
	"errors"
	"strings"
	"time"

	"github.com/MuKuL-DiXiT/Fit-Fusion/models"
	"github.com/MuKuL-DiXiT/Fit-Fusion/utils"

	"gorm.io/gorm"
)

type DietPlanService struct {
	db    *gorm.DB
	foods *FoodCatalogService
}

func NewDietPlanService(db *gorm.DB, foods *FoodCatalogService) *DietPlanService {
	return &DietPlanService{db: db, foods: foods}
}

// PlanItemRequest is a line in a create/add request. A food may be given
// either by id or by name (+ facts, used only on first sight of the name).
type PlanItemRequest struct {
	FoodID    *uint          `json:"food_id"`
	FoodName  string         `json:"food_name"`
	Facts     NutritionFacts `json:"nutrition_facts"`
	ProductID *uint          `json:"product_id"`
	MealTime  string         `json:"meal_time"`
	Quantity  float64        `json:"quantity"`
	Calories  float64        `json:"calories"`
}

type PlanSummary struct {
	models.DietPlan
	ItemCount     int64   `gorm:"column:item_count" json:"item_count"`
	TotalCalories float64 `gorm:"column:total_calories" json:"total_calories"`
}

type PlanItemDetail struct {
	models.DietPlanItem
	FoodName        string  `gorm:"column:food_name" json:"food_name,omitempty"`
	CaloriesPer100g float64 `gorm:"column:calories_per_100g" json:"calories_per_100g,omitempty"`
	ProteinPer100g  float64 `gorm:"column:protein_per_100g" json:"protein_per_100g,omitempty"`
	CarbsPer100g    float64 `gorm:"column:carbs_per_100g" json:"carbs_per_100g,omitempty"`
	FatPer100g      float64 `gorm:"column:fat_per_100g" json:"fats_per_100g,omitempty"`
	ProductName     string  `gorm:"column:product_name" json:"product_name,omitempty"`
}

func (s *DietPlanService) CreatePlan(userID uint, name string, start, end *time.Time, items []PlanItemRequest) (*models.DietPlan, error) {
	if strings.TrimSpace(name) == "" {
		return nil, utils.ValidationError("Plan name is required")
	}
	if start != nil && end != nil && end.Before(*start) {
		return nil, utils.ValidationError("End date must not be before start date")
	}

	plan := models.DietPlan{UserID: userID, Name: name, StartDate: start, EndDate: end}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&plan).Error; err != nil {
			return err
		}
		for _, it := range items {
			if _, err := s.insertItem(tx, plan.ID, it); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// insertItem resolves the food reference and writes one line. Calories are
// derived from the resolved food facts whenever they exist; the
// caller-supplied value is only trusted for product refs and facts-less foods.
func (s *DietPlanService) insertItem(tx *gorm.DB, planID uint, it PlanItemRequest) (*models.DietPlanItem, error) {
	if it.Quantity < 0 {
		return nil, utils.ValidationError("Quantity must be non-negative")
	}

	foodID := it.FoodID
	if foodID == nil && strings.TrimSpace(it.FoodName) != "" {
		id, err := s.foods.ResolveFoodID(tx, it.FoodName, it.Facts)
		if err != nil {
			return nil, err
		}
		foodID = &id
	}
	if foodID != nil && it.ProductID != nil {
		return nil, utils.ValidationError("Item may reference a food or a product, not both")
	}

	calories := it.Calories
	if foodID != nil {
		var food models.FoodItem
		if err := tx.First(&food, *foodID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, utils.ValidationError("Referenced food does not exist")
			}
			return nil, err
		}
		if food.CaloriesPer100g > 0 {
			calories = food.CaloriesPer100g * it.Quantity / 100
		}
	}

	row := models.DietPlanItem{
		DietPlanID: planID,
		FoodID:     foodID,
		ProductID:  it.ProductID,
		MealTime:   it.MealTime,
		Quantity:   it.Quantity,
		Calories:   calories,
	}
	if err := tx.Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *DietPlanService) ListPlans(userID uint) ([]PlanSummary, error) {
	return s.listPlans(userID, 0)
}

// RecentPlans returns the newest plans, default three.
func (s *DietPlanService) RecentPlans(userID uint, limit int) ([]PlanSummary, error) {
	if limit <= 0 {
		limit = 3
	}
	return s.listPlans(userID, limit)
}

// listPlans computes item_count and total_calories in one grouped join so
// the aggregates are never stale relative to the plan rows returned.
func (s *DietPlanService) listPlans(userID uint, limit int) ([]PlanSummary, error) {
	q := s.db.Table("diet_plans dp").
		Select("dp.*, COUNT(dpi.id) as item_count, COALESCE(SUM(dpi.calories), 0) as total_calories").
		Joins("LEFT JOIN diet_plan_items dpi ON dpi.diet_plan_id = dp.id AND dpi.deleted_at IS NULL").
		Where("dp.user_id = ? AND dp.deleted_at IS NULL", userID).
		Group("dp.id").
		Order("dp.created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var out []PlanSummary
	if err := q.Scan(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *DietPlanService) GetPlan(userID, planID uint) (*models.DietPlan, []PlanItemDetail, error) {
	var plan models.DietPlan
	err := s.db.Where("id = ? AND user_id = ?", planID, userID).First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, utils.NotFoundError("Diet plan not found")
		}
		return nil, nil, err
	}

	var items []PlanItemDetail
	err = s.db.Table("diet_plan_items dpi").
		Select(`dpi.*, f.name as food_name, f.calories_per_100g, f.protein_per_100g,
			f.carbs_per_100g, f.fat_per_100g, p.name as product_name`).
		Joins("LEFT JOIN food_items f ON dpi.food_id = f.id").
		Joins("LEFT JOIN products p ON dpi.product_id = p.id").
		Where("dpi.diet_plan_id = ? AND dpi.deleted_at IS NULL", plan.ID).
		Order("dpi.meal_time, dpi.id").
		Scan(&items).Error
	if err != nil {
		return nil, nil, err
	}
	return &plan, items, nil
}

func (s *DietPlanService) UpdatePlan(userID, planID uint, name string, start, end *time.Time) (*models.DietPlan, error) {
	if strings.TrimSpace(name) == "" {
		return nil, utils.ValidationError("Plan name is required")
	}
	if start != nil && end != nil && end.Before(*start) {
		return nil, utils.ValidationError("End date must not be before start date")
	}

	var plan models.DietPlan
	err := s.db.Where("id = ? AND user_id = ?", planID, userID).First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("Diet plan not found")
		}
		return nil, err
	}

	plan.Name = name
	plan.StartDate = start
	plan.EndDate = end
	if err := s.db.Save(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

// DeletePlan removes the plan and every item it owns in one transaction, so
// no orphan items survive regardless of database cascade configuration.
func (s *DietPlanService) DeletePlan(userID, planID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var plan models.DietPlan
		err := tx.Where("id = ? AND user_id = ?", planID, userID).First(&plan).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NotFoundError("Diet plan not found")
			}
			return err
		}
		if err := tx.Where("diet_plan_id = ?", plan.ID).Delete(&models.DietPlanItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&plan).Error
	})
}

func (s *DietPlanService) AddItem(userID, planID uint, it PlanItemRequest) (*models.DietPlanItem, error) {
	var created models.DietPlanItem
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var plan models.DietPlan
		err := tx.Where("id = ? AND user_id = ?", planID, userID).First(&plan).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NotFoundError("Diet plan not found")
			}
			return err
		}
		row, err := s.insertItem(tx, plan.ID, it)
		if err != nil {
			return err
		}
		created = *row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *DietPlanService) RemoveItem(userID, planID, itemID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var plan models.DietPlan
		err := tx.Where("id = ? AND user_id = ?", planID, userID).First(&plan).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NotFoundError("Diet plan not found")
			}
			return err
		}
		res := tx.Where("id = ? AND diet_plan_id = ?", itemID, plan.ID).Delete(&models.DietPlanItem{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return utils.NotFoundError("Diet plan item not found")
		}
		return nil
	})
}
