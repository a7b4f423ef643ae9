package services_test

import (
	"sync"
	"testing"

	"github.com/MuKuL-DiXiT/Fit-Fusion/models"
	"github.com/MuKuL-DiXiT/Fit-Fusion/services"
	"github.com/MuKuL-DiXiT/Fit-Fusion/utils"
)

func TestResolveFoodID_InsertThenFetch(t *testing.T) {
	db := newTestDB(t)
	foods := services.NewFoodCatalogService()

	first, err := foods.ResolveFoodID(db, "Banana", services.NutritionFacts{Calories: 89, Protein: 1.1})
	if err != nil {
		t.Fatal(err)
	}

	// second call with different facts must return the same row untouched
	second, err := foods.ResolveFoodID(db, "Banana", services.NutritionFacts{Calories: 999})
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Fatalf("want same id, got %d and %d", first, second)
	}

	var count int64
	if err := db.Model(&models.FoodItem{}).Where("name = ?", "Banana").Count(&count).Error; err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Fatalf("want 1 row, got %d", count)
	}

	var row models.FoodItem
	if err := db.First(&row, first).Error; err != nil {
		t.Fatal(err)
	}
	if row.CaloriesPer100g != 89 {
		t.Fatalf("facts overwritten: %+v", row)
	}
}

func TestResolveFoodID_ConcurrentFirstCalls(t *testing.T) {
	db := newTestDB(t)
	foods := services.NewFoodCatalogService()

	var wg sync.WaitGroup
	ids := make(chan uint, 8)
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := foods.ResolveFoodID(db, "Quinoa", services.NutritionFacts{Calories: 120})
			if err != nil {
				errs <- err
				return
			}
			ids <- id
		}()
	}
	wg.Wait()
	close(ids)
	close(errs)

	for err := range errs {
		t.Fatal(err)
	}
	var first uint
	for id := range ids {
		if first == 0 {
			first = id
		} else if id != first {
			t.Fatalf("callers saw different rows: %d and %d", first, id)
		}
	}

	var count int64
	if err := db.Model(&models.FoodItem{}).Where("name = ?", "Quinoa").Count(&count).Error; err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Fatalf("want 1 row, got %d", count)
	}
}

func TestResolveFoodID_NameIsCaseSensitive(t *testing.T) {
	db := newTestDB(t)
	foods := services.NewFoodCatalogService()

	a, err := foods.ResolveFoodID(db, "Apple", services.NutritionFacts{Calories: 52})
	if err != nil {
		t.Fatal(err)
	}
	b, err := foods.ResolveFoodID(db, "apple", services.NutritionFacts{Calories: 52})
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Fatal("distinct names should yield distinct rows")
	}
}

func TestResolveFoodID_Validation(t *testing.T) {
	db := newTestDB(t)
	foods := services.NewFoodCatalogService()

	_, err := foods.ResolveFoodID(db, "   ", services.NutritionFacts{})
	if err == nil || errKind(t, err) != utils.KindValidation {
		t.Fatalf("want validation error, got %v", err)
	}

	_, err = foods.ResolveFoodID(db, "Apple", services.NutritionFacts{Calories: -1})
	if err == nil || errKind(t, err) != utils.KindValidation {
		t.Fatalf("want validation error, got %v", err)
	}
}
