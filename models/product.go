package models

import "gorm.io/gorm"

type Category struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"category_name"`
}

type Supplier struct {
	gorm.Model
	Name  string `gorm:"not null" json:"supplier_name"`
	Email string `json:"email"`
}

type Product struct {
	gorm.Model
	Name          string  `gorm:"not null" json:"product_name"`
	Description   string  `json:"description"`
	Price         float64 `gorm:"not null" json:"price"`
	StockQuantity int     `gorm:"not null;default:0" json:"stock_quantity"`
	InStock       bool    `gorm:"default:true" json:"in_stock"`
	ImageURL      string  `json:"image_url"`
	CategoryID    *uint   `json:"category_id"`
	SupplierID    *uint   `json:"supplier_id"`
}

// One review per user per product.
type Review struct {
	gorm.Model
	UserID    uint   `gorm:"not null;uniqueIndex:idx_review_user_product" json:"user_id"`
	ProductID uint   `gorm:"not null;uniqueIndex:idx_review_user_product" json:"product_id"`
	Rating    int    `gorm:"not null" json:"rating"`
	Comment   string `json:"comment"`
}
