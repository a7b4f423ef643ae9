package services_test

import (
	"testing"
	"time"

	"github.com/MuKuL-DiXiT/Fit-Fusion/models"
	"github.com/MuKuL-DiXiT/Fit-Fusion/services"
	"github.com/MuKuL-DiXiT/Fit-Fusion/utils"
)

func TestCreatePlan_SharedFoodNameResolvesOnce(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewDietPlanService(db, services.NewFoodCatalogService())

	plan, err := svc.CreatePlan(1, "Cut week", nil, nil, []services.PlanItemRequest{
		{MealTime: "Breakfast", FoodName: "Oats", Facts: services.NutritionFacts{Calories: 380}, Quantity: 50},
		{MealTime: "Dinner", FoodName: "Oats", Facts: services.NutritionFacts{Calories: 380}, Quantity: 100},
	})
	if err != nil {
		t.Fatal(err)
	}

	var items []models.DietPlanItem
	if err := db.Where("diet_plan_id = ?", plan.ID).Find(&items).Error; err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Fatalf("want 2 items, got %d", len(items))
	}
	if items[0].FoodID == nil || items[1].FoodID == nil || *items[0].FoodID != *items[1].FoodID {
		t.Fatalf("both lines should share one food id: %+v", items)
	}

	var foodCount int64
	if err := db.Model(&models.FoodItem{}).Count(&foodCount).Error; err != nil {
		t.Fatal(err)
	}
	if foodCount != 1 {
		t.Fatalf("want 1 food row, got %d", foodCount)
	}

	// calories derived from facts, not taken from the request
	if items[0].Calories != 380*50/100 {
		t.Fatalf("want derived calories 190, got %v", items[0].Calories)
	}
}

func TestCreatePlan_BlankNameRejected(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewDietPlanService(db, services.NewFoodCatalogService())

	_, err := svc.CreatePlan(1, "  ", nil, nil, nil)
	if err == nil || errKind(t, err) != utils.KindValidation {
		t.Fatalf("want validation error, got %v", err)
	}
}

func TestCreatePlan_EndBeforeStartRejected(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewDietPlanService(db, services.NewFoodCatalogService())

	start := time.Now()
	end := start.AddDate(0, 0, -1)
	_, err := svc.CreatePlan(1, "Bad dates", &start, &end, nil)
	if err == nil || errKind(t, err) != utils.KindValidation {
		t.Fatalf("want validation error, got %v", err)
	}
}

func TestCreatePlan_ItemFailureRollsBackPlan(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewDietPlanService(db, services.NewFoodCatalogService())

	badFood := uint(9999)
	_, err := svc.CreatePlan(1, "Doomed", nil, nil, []services.PlanItemRequest{
		{MealTime: "Lunch", FoodID: &badFood, Quantity: 100},
	})
	if err == nil {
		t.Fatal("expected error")
	}

	var planCount int64
	if err := db.Model(&models.DietPlan{}).Count(&planCount).Error; err != nil {
		t.Fatal(err)
	}
	if planCount != 0 {
		t.Fatalf("plan row should have rolled back, got %d rows", planCount)
	}
}

func TestGetPlan_OwnershipEnforced(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewDietPlanService(db, services.NewFoodCatalogService())

	plan, err := svc.CreatePlan(1, "Mine", nil, nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	if _, _, err := svc.GetPlan(2, plan.ID); err == nil || errKind(t, err) != utils.KindNotFound {
		t.Fatalf("want not-found for foreign owner, got %v", err)
	}
	if _, _, err := svc.GetPlan(1, plan.ID); err != nil {
		t.Fatal(err)
	}
}

func TestListPlans_Aggregates(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewDietPlanService(db, services.NewFoodCatalogService())

	_, err := svc.CreatePlan(1, "Bulk", nil, nil, []services.PlanItemRequest{
		{MealTime: "Breakfast", FoodName: "Eggs", Facts: services.NutritionFacts{Calories: 155}, Quantity: 100},
		{MealTime: "Lunch", FoodName: "Rice", Facts: services.NutritionFacts{Calories: 130}, Quantity: 200},
	})
	if err != nil {
		t.Fatal(err)
	}

	plans, err := svc.ListPlans(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(plans) != 1 {
		t.Fatalf("want 1 plan, got %d", len(plans))
	}
	if plans[0].ItemCount != 2 {
		t.Fatalf("want item_count 2, got %d", plans[0].ItemCount)
	}
	want := 155.0 + 130.0*2
	if plans[0].TotalCalories != want {
		t.Fatalf("want total_calories %v, got %v", want, plans[0].TotalCalories)
	}
}

func TestDeletePlan_RemovesItems(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewDietPlanService(db, services.NewFoodCatalogService())

	plan, err := svc.CreatePlan(1, "Short lived", nil, nil, []services.PlanItemRequest{
		{MealTime: "Snack", FoodName: "Almonds", Facts: services.NutritionFacts{Calories: 579}, Quantity: 30},
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.DeletePlan(1, plan.ID); err != nil {
		t.Fatal(err)
	}

	var orphanCount int64
	if err := db.Model(&models.DietPlanItem{}).Where("diet_plan_id = ?", plan.ID).Count(&orphanCount).Error; err != nil {
		t.Fatal(err)
	}
	if orphanCount != 0 {
		t.Fatalf("orphan items left behind: %d", orphanCount)
	}
}

func TestItemMutation_ReverifiesOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewDietPlanService(db, services.NewFoodCatalogService())

	plan, err := svc.CreatePlan(1, "Mine", nil, nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	_, err = svc.AddItem(2, plan.ID, services.PlanItemRequest{MealTime: "Lunch", FoodName: "Tofu", Quantity: 100})
	if err == nil || errKind(t, err) != utils.KindNotFound {
		t.Fatalf("want not-found for foreign owner, got %v", err)
	}

	item, err := svc.AddItem(1, plan.ID, services.PlanItemRequest{MealTime: "Lunch", FoodName: "Tofu", Quantity: 100})
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.RemoveItem(2, plan.ID, item.ID); err == nil || errKind(t, err) != utils.KindNotFound {
		t.Fatalf("want not-found for foreign owner, got %v", err)
	}
	if err := svc.RemoveItem(1, plan.ID, item.ID); err != nil {
		t.Fatal(err)
	}
}

func TestAddItem_RejectsFoodAndProductTogether(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewDietPlanService(db, services.NewFoodCatalogService())

	product := seedProduct(t, db, "Protein Bar", 2.5, 10)
	plan, err := svc.CreatePlan(1, "Mixed", nil, nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	_, err = svc.AddItem(1, plan.ID, services.PlanItemRequest{
		FoodName:  "Oats",
		ProductID: &product.ID,
		MealTime:  "Snack",
		Quantity:  1,
	})
	if err == nil || errKind(t, err) != utils.KindValidation {
		t.Fatalf("want validation error, got %v", err)
	}
}
