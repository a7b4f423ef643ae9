package services_test

import (
	"errors"
	"testing"

	"github.com/MuKuL-DiXiT/Fit-Fusion/models"
	"github.com/MuKuL-DiXiT/Fit-Fusion/utils"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatal(err)
	}
	// a single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Supplier{},
		&models.Product{},
		&models.Review{},
		&models.FoodItem{},
		&models.DietPlan{},
		&models.DietPlanItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.FoodLog{},
		&models.ExerciseLog{},
	)
	if err != nil {
		t.Fatal(err)
	}
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64, stock int) *models.Product {
	t.Helper()
	p := &models.Product{Name: name, Price: price, StockQuantity: stock, InStock: stock > 0}
	if err := db.Create(p).Error; err != nil {
		t.Fatal(err)
	}
	return p
}

func errKind(t *testing.T, err error) utils.ErrKind {
	t.Helper()
	var appErr *utils.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *utils.AppError, got %v", err)
	}
	return appErr.Kind
}
