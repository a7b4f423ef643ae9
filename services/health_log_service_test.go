package services_test

import (
	"testing"
	"time"

	"github.com/MuKuL-DiXiT/Fit-Fusion/models"
	"github.com/MuKuL-DiXiT/Fit-Fusion/services"
	"github.com/MuKuL-DiXiT/Fit-Fusion/utils"
)

func TestAddFoodLog_DerivesCaloriesAndReusesFood(t *testing.T) {
	db := newTestDB(t)
	foods := services.NewFoodCatalogService()
	svc := services.NewHealthLogService(db, foods)
	facts := services.NutritionFacts{Calories: 52, Protein: 0.3}

	first, err := svc.AddFoodLog(1, "Apple", facts, 150, time.Time{})
	if err != nil {
		t.Fatal(err)
	}
	if first.Calories != 52*150/100.0 {
		t.Fatalf("want derived calories %v, got %v", 52*150/100.0, first.Calories)
	}
	if first.FoodName != "Apple" {
		t.Fatalf("want food name from catalog row, got %q", first.FoodName)
	}

	second, err := svc.AddFoodLog(2, "Apple", facts, 100, time.Time{})
	if err != nil {
		t.Fatal(err)
	}
	if second.FoodID != first.FoodID {
		t.Fatalf("same name must reuse the food row: %d vs %d", second.FoodID, first.FoodID)
	}

	var count int64
	if err := db.Model(&models.FoodItem{}).Count(&count).Error; err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Fatalf("want 1 food row, got %d", count)
	}
}

func TestAddFoodLog_Validation(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewHealthLogService(db, services.NewFoodCatalogService())

	if _, err := svc.AddFoodLog(1, "Apple", services.NutritionFacts{}, 0, time.Time{}); err == nil || errKind(t, err) != utils.KindValidation {
		t.Fatalf("want validation error for zero quantity, got %v", err)
	}
	if _, err := svc.AddFoodLog(1, "   ", services.NutritionFacts{}, 100, time.Time{}); err == nil || errKind(t, err) != utils.KindValidation {
		t.Fatalf("want validation error for blank name, got %v", err)
	}
}

func TestListAndDeleteFoodLogs_OwnerAndDayScoped(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewHealthLogService(db, services.NewFoodCatalogService())
	today := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	yesterday := today.Add(-24 * time.Hour)

	entry, err := svc.AddFoodLog(1, "Rice", services.NutritionFacts{Calories: 130}, 200, today)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AddFoodLog(1, "Rice", services.NutritionFacts{Calories: 130}, 100, yesterday); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AddFoodLog(2, "Rice", services.NutritionFacts{Calories: 130}, 100, today); err != nil {
		t.Fatal(err)
	}

	logs, err := svc.ListFoodLogs(1, today)
	if err != nil {
		t.Fatal(err)
	}
	if len(logs) != 1 || logs[0].ID != entry.ID {
		t.Fatalf("want only user 1's entry for today, got %d entries", len(logs))
	}

	if err := svc.DeleteFoodLog(2, entry.ID); err == nil || errKind(t, err) != utils.KindNotFound {
		t.Fatalf("foreign user delete must fail, got %v", err)
	}
	if err := svc.DeleteFoodLog(1, entry.ID); err != nil {
		t.Fatal(err)
	}
	logs, err = svc.ListFoodLogs(1, today)
	if err != nil {
		t.Fatal(err)
	}
	if len(logs) != 0 {
		t.Fatalf("entry not deleted, %d left", len(logs))
	}
}

func TestSummary_NetsConsumedAgainstBurned(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewHealthLogService(db, services.NewFoodCatalogService())
	day := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

	if _, err := svc.AddFoodLog(1, "Oats", services.NutritionFacts{Calories: 380}, 100, day); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AddFoodLog(1, "Milk", services.NutritionFacts{Calories: 60}, 200, day.Add(time.Hour)); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AddExerciseLog(1, "Running", 30, 300, day.Add(2*time.Hour)); err != nil {
		t.Fatal(err)
	}
	// outside the window, must not count
	if _, err := svc.AddExerciseLog(1, "Swimming", 45, 400, day.Add(-20*time.Hour)); err != nil {
		t.Fatal(err)
	}

	sum, err := svc.Summary(1, day)
	if err != nil {
		t.Fatal(err)
	}
	if sum.CaloriesConsumed != 380+120 {
		t.Fatalf("want consumed 500, got %v", sum.CaloriesConsumed)
	}
	if sum.CaloriesBurned != 300 {
		t.Fatalf("want burned 300, got %v", sum.CaloriesBurned)
	}
	if sum.NetCalories != 200 {
		t.Fatalf("want net 200, got %v", sum.NetCalories)
	}
	if sum.FoodLogCount != 2 || sum.ExerciseLogCount != 1 {
		t.Fatalf("want counts 2/1, got %d/%d", sum.FoodLogCount, sum.ExerciseLogCount)
	}
	if sum.Date != "2026-03-10" {
		t.Fatalf("want date of the window start, got %s", sum.Date)
	}
}

func TestAddExerciseLog_Validation(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewHealthLogService(db, services.NewFoodCatalogService())

	if _, err := svc.AddExerciseLog(1, "", 30, 100, time.Time{}); err == nil || errKind(t, err) != utils.KindValidation {
		t.Fatalf("want validation error for blank name, got %v", err)
	}
	if _, err := svc.AddExerciseLog(1, "Yoga", 0, 100, time.Time{}); err == nil || errKind(t, err) != utils.KindValidation {
		t.Fatalf("want validation error for zero duration, got %v", err)
	}
}
