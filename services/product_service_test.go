package services_test

import (
	"testing"

	"github.com/MuKuL-DiXiT/Fit-Fusion/models"
	"github.com/MuKuL-DiXiT/Fit-Fusion/services"
	"github.com/MuKuL-DiXiT/Fit-Fusion/utils"
)

func TestListProducts_FilterSortAndPaginate(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewProductService(db, nil)

	cat := models.Category{Name: "Supplements"}
	if err := db.Create(&cat).Error; err != nil {
		t.Fatal(err)
	}
	cheap := seedProduct(t, db, "Protein Bar", 2.5, 50)
	mid := seedProduct(t, db, "Protein Powder", 30, 20)
	seedProduct(t, db, "Treadmill", 800, 3)
	for _, id := range []uint{cheap.ID, mid.ID} {
		if err := db.Model(&models.Product{}).Where("id = ?", id).Update("category_id", cat.ID).Error; err != nil {
			t.Fatal(err)
		}
	}

	rows, total, err := svc.List(services.ProductFilter{Category: "Supplements", SortBy: "price", SortOrder: "ASC"})
	if err != nil {
		t.Fatal(err)
	}
	if total != 2 || len(rows) != 2 {
		t.Fatalf("want 2 supplements, got total=%d rows=%d", total, len(rows))
	}
	if rows[0].ID != cheap.ID || rows[1].ID != mid.ID {
		t.Fatalf("ascending price order broken: %d, %d", rows[0].ID, rows[1].ID)
	}
	if rows[0].CategoryName != "Supplements" {
		t.Fatalf("category name not joined: %q", rows[0].CategoryName)
	}

	min := 10.0
	rows, total, err = svc.List(services.ProductFilter{Search: "Protein", MinPrice: &min})
	if err != nil {
		t.Fatal(err)
	}
	if total != 1 || rows[0].ID != mid.ID {
		t.Fatalf("search+min-price filter broken: total=%d", total)
	}

	// pagination: one per page, page 2 of 3
	rows, total, err = svc.List(services.ProductFilter{SortBy: "price", SortOrder: "ASC", Limit: 1, Page: 2})
	if err != nil {
		t.Fatal(err)
	}
	if total != 3 || len(rows) != 1 || rows[0].ID != mid.ID {
		t.Fatalf("pagination broken: total=%d len=%d", total, len(rows))
	}
}

func TestAddReview_DuplicateConflicts(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewProductService(db, nil)
	p := seedProduct(t, db, "Shaker", 8, 10)

	if _, err := svc.AddReview(1, p.ID, 5, "great"); err != nil {
		t.Fatal(err)
	}
	_, err := svc.AddReview(1, p.ID, 3, "changed my mind")
	if err == nil || errKind(t, err) != utils.KindConflict {
		t.Fatalf("want conflict for second review, got %v", err)
	}

	// a different user may still review
	if _, err := svc.AddReview(2, p.ID, 4, "good"); err != nil {
		t.Fatal(err)
	}

	view, reviews, err := svc.Get(p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if view.ReviewCount != 2 || len(reviews) != 2 {
		t.Fatalf("want 2 reviews, got count=%d len=%d", view.ReviewCount, len(reviews))
	}
	if view.AvgRating != 4.5 {
		t.Fatalf("want avg 4.5, got %v", view.AvgRating)
	}
}

func TestAddReview_Validation(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewProductService(db, nil)
	p := seedProduct(t, db, "Bottle", 5, 10)

	if _, err := svc.AddReview(1, p.ID, 0, ""); err == nil || errKind(t, err) != utils.KindValidation {
		t.Fatalf("want validation for rating 0, got %v", err)
	}
	if _, err := svc.AddReview(1, p.ID, 6, ""); err == nil || errKind(t, err) != utils.KindValidation {
		t.Fatalf("want validation for rating 6, got %v", err)
	}
	if _, err := svc.AddReview(1, 999, 4, ""); err == nil || errKind(t, err) != utils.KindNotFound {
		t.Fatalf("want not-found for missing product, got %v", err)
	}
}

func TestUpdateInventory(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewProductService(db, nil)
	p := seedProduct(t, db, "Rower", 400, 2)

	updated, err := svc.UpdateInventory(p.ID, 0, false)
	if err != nil {
		t.Fatal(err)
	}
	if updated.StockQuantity != 0 || updated.InStock {
		t.Fatalf("inventory not applied: %+v", updated)
	}

	if _, err := svc.UpdateInventory(p.ID, -1, true); err == nil || errKind(t, err) != utils.KindValidation {
		t.Fatalf("want validation for negative stock, got %v", err)
	}
	if _, err := svc.UpdateInventory(999, 5, true); err == nil || errKind(t, err) != utils.KindNotFound {
		t.Fatalf("want not-found, got %v", err)
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewProductService(db, nil)

	_, _, err := svc.Get(42)
	if err == nil || errKind(t, err) != utils.KindNotFound {
		t.Fatalf("want not-found, got %v", err)
	}
}
