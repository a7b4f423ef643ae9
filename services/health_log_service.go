package services

import (
	"time"

	"github.com/MuKuL-DiXiT/Fit-Fusion/models"
	"github.com/MuKuL-DiXiT/Fit-Fusion/utils"

	"gorm.io/gorm"
)

type HealthLogService struct {
	db    *gorm.DB
	foods *FoodCatalogService
}

func NewHealthLogService(db *gorm.DB, foods *FoodCatalogService) *HealthLogService {
	return &HealthLogService{db: db, foods: foods}
}

// AddFoodLog resolves the food through the catalog (creating the row on
// first sight) and derives calories from its facts, in one transaction.
func (s *HealthLogService) AddFoodLog(userID uint, name string, facts NutritionFacts, quantity float64, at time.Time) (*models.FoodLog, error) {
	if quantity <= 0 {
		return nil, utils.ValidationError("Quantity must be positive")
	}
	if at.IsZero() {
		at = time.Now()
	}

	var entry models.FoodLog
	err := s.db.Transaction(func(tx *gorm.DB) error {
		foodID, err := s.foods.ResolveFoodID(tx, name, facts)
		if err != nil {
			return err
		}
		var food models.FoodItem
		if err := tx.First(&food, foodID).Error; err != nil {
			return err
		}

		entry = models.FoodLog{
			UserID:   userID,
			FoodID:   food.ID,
			FoodName: food.Name,
			Quantity: quantity,
			Calories: food.CaloriesPer100g * quantity / 100,
			LoggedAt: at,
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *HealthLogService) ListFoodLogs(userID uint, day time.Time) ([]models.FoodLog, error) {
	start, end := dayWindow(day)
	var logs []models.FoodLog
	err := s.db.Where("user_id = ? AND logged_at >= ? AND logged_at < ?", userID, start, end).
		Order("logged_at DESC").
		Find(&logs).Error
	return logs, err
}

func (s *HealthLogService) DeleteFoodLog(userID, logID uint) error {
	res := s.db.Where("id = ? AND user_id = ?", logID, userID).Delete(&models.FoodLog{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.NotFoundError("Food log not found")
	}
	return nil
}

func (s *HealthLogService) AddExerciseLog(userID uint, name string, durationMin, caloriesBurned float64, at time.Time) (*models.ExerciseLog, error) {
	if name == "" {
		return nil, utils.ValidationError("Exercise name is required")
	}
	if durationMin <= 0 {
		return nil, utils.ValidationError("Duration must be positive")
	}
	if at.IsZero() {
		at = time.Now()
	}

	entry := models.ExerciseLog{
		UserID:         userID,
		Name:           name,
		DurationMin:    durationMin,
		CaloriesBurned: caloriesBurned,
		LoggedAt:       at,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *HealthLogService) ListExerciseLogs(userID uint, day time.Time) ([]models.ExerciseLog, error) {
	start, end := dayWindow(day)
	var logs []models.ExerciseLog
	err := s.db.Where("user_id = ? AND logged_at >= ? AND logged_at < ?", userID, start, end).
		Order("logged_at DESC").
		Find(&logs).Error
	return logs, err
}

func (s *HealthLogService) DeleteExerciseLog(userID, logID uint) error {
	res := s.db.Where("id = ? AND user_id = ?", logID, userID).Delete(&models.ExerciseLog{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.NotFoundError("Exercise log not found")
	}
	return nil
}

type DailySummary struct {
	Date             string  `json:"date"`
	CaloriesConsumed float64 `json:"calories_consumed"`
	CaloriesBurned   float64 `json:"calories_burned"`
	NetCalories      float64 `json:"net_calories"`
	FoodLogCount     int64   `json:"food_log_count"`
	ExerciseLogCount int64   `json:"exercise_log_count"`
}

func (s *HealthLogService) Summary(userID uint, day time.Time) (*DailySummary, error) {
	start, end := dayWindow(day)
	out := DailySummary{Date: start.Format("2006-01-02")}

	err := s.db.Model(&models.FoodLog{}).
		Select("COALESCE(SUM(calories), 0)").
		Where("user_id = ? AND logged_at >= ? AND logged_at < ?", userID, start, end).
		Scan(&out.CaloriesConsumed).Error
	if err != nil {
		return nil, err
	}
	err = s.db.Model(&models.FoodLog{}).
		Where("user_id = ? AND logged_at >= ? AND logged_at < ?", userID, start, end).
		Count(&out.FoodLogCount).Error
	if err != nil {
		return nil, err
	}

	err = s.db.Model(&models.ExerciseLog{}).
		Select("COALESCE(SUM(calories_burned), 0)").
		Where("user_id = ? AND logged_at >= ? AND logged_at < ?", userID, start, end).
		Scan(&out.CaloriesBurned).Error
	if err != nil {
		return nil, err
	}
	err = s.db.Model(&models.ExerciseLog{}).
		Where("user_id = ? AND logged_at >= ? AND logged_at < ?", userID, start, end).
		Count(&out.ExerciseLogCount).Error
	if err != nil {
		return nil, err
	}

	out.NetCalories = out.CaloriesConsumed - out.CaloriesBurned
	return &out, nil
}

func dayWindow(day time.Time) (time.Time, time.Time) {
	if day.IsZero() {
		day = time.Now()
	}
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return start, start.Add(24 * time.Hour)
}
