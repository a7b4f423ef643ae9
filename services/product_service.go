package services

import (
	"errors"
	"strings"

	"github.com/MuKuL-DiXiT/Fit-Fusion/models"
	"github.com/MuKuL-DiXiT/Fit-Fusion/utils"

	"gorm.io/gorm"
)

type ProductService struct {
	db  *gorm.DB
	hub *StockHub
}

func NewProductService(db *gorm.DB, hub *StockHub) *ProductService {
	return &ProductService{db: db, hub: hub}
}

type ProductFilter struct {
	Category  string
	Search    string
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
	MinPrice  *float64
	MaxPrice  *float64
}

type ProductView struct {
	models.Product
	CategoryName string  `gorm:"column:category_name" json:"category_name,omitempty"`
	SupplierName string  `gorm:"column:supplier_name" json:"supplier_name,omitempty"`
	AvgRating    float64 `gorm:"column:avg_rating" json:"avg_rating"`
	ReviewCount  int64   `gorm:"column:review_count" json:"review_count"`
}

var productSortFields = map[string]string{
	"product_name": "p.name",
	"price":        "p.price",
	"created_at":   "p.created_at",
	"avg_rating":   "avg_rating",
}

func (s *ProductService) List(f ProductFilter) ([]ProductView, int64, error) {
	base := s.db.Table("products p").
		Joins("LEFT JOIN categories c ON p.category_id = c.id").
		Where("p.deleted_at IS NULL")

	if f.Category != "" {
		base = base.Where("c.name LIKE ?", "%"+f.Category+"%")
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		base = base.Where("p.name LIKE ? OR p.description LIKE ?", like, like)
	}
	if f.MinPrice != nil {
		base = base.Where("p.price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		base = base.Where("p.price <= ?", *f.MaxPrice)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Distinct("p.id").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := base.Session(&gorm.Session{}).
		Select(`p.*, c.name as category_name, s.name as supplier_name,
			COALESCE(AVG(r.rating), 0) as avg_rating,
			COUNT(r.id) as review_count`).
		Joins("LEFT JOIN suppliers s ON p.supplier_id = s.id").
		Joins("LEFT JOIN reviews r ON p.id = r.product_id AND r.deleted_at IS NULL").
		Group("p.id, c.name, s.name")

	// sort whitelist keeps user input out of the ORDER BY clause
	col, ok := productSortFields[f.SortBy]
	if !ok {
		col = "p.created_at"
	}
	dir := "DESC"
	if strings.EqualFold(f.SortOrder, "ASC") {
		dir = "ASC"
	}
	q = q.Order(col + " " + dir)

	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	page := f.Page
	if page <= 0 {
		page = 1
	}
	q = q.Limit(limit).Offset((page - 1) * limit)

	var rows []ProductView
	if err := q.Scan(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (s *ProductService) Get(id uint) (*ProductView, []models.Review, error) {
	var row ProductView
	err := s.db.Table("products p").
		Select(`p.*, c.name as category_name, s.name as supplier_name,
			COALESCE(AVG(r.rating), 0) as avg_rating,
			COUNT(r.id) as review_count`).
		Joins("LEFT JOIN categories c ON p.category_id = c.id").
		Joins("LEFT JOIN suppliers s ON p.supplier_id = s.id").
		Joins("LEFT JOIN reviews r ON p.id = r.product_id AND r.deleted_at IS NULL").
		Where("p.id = ? AND p.deleted_at IS NULL", id).
		Group("p.id, c.name, s.name").
		Scan(&row).Error
	if err != nil {
		return nil, nil, err
	}
	if row.ID == 0 {
		return nil, nil, utils.NotFoundError("Product not found")
	}

	var reviews []models.Review
	if err := s.db.Where("product_id = ?", id).Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, nil, err
	}
	return &row, reviews, nil
}

// AddReview rejects a second review from the same user for the same product.
func (s *ProductService) AddReview(userID, productID uint, rating int, comment string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, utils.ValidationError("Rating must be between 1 and 5")
	}

	var product models.Product
	if err := s.db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("Product not found")
		}
		return nil, err
	}

	var existing models.Review
	err := s.db.Where("user_id = ? AND product_id = ?", userID, productID).First(&existing).Error
	if err == nil {
		return nil, utils.ConflictError("You have already reviewed this product")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	review := models.Review{UserID: userID, ProductID: productID, Rating: rating, Comment: comment}
	if err := s.db.Create(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// SupplierInventory lists products in the shape the supplier dashboard edits.
func (s *ProductService) SupplierInventory() ([]models.Product, error) {
	var products []models.Product
	err := s.db.Order("id").Find(&products).Error
	return products, err
}

// UpdateInventory applies a supplier stock change and broadcasts it.
func (s *ProductService) UpdateInventory(productID uint, stockQuantity int, inStock bool) (*models.Product, error) {
	if stockQuantity < 0 {
		return nil, utils.ValidationError("Stock quantity must be non-negative")
	}

	var product models.Product
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NotFoundError("Product not found")
			}
			return err
		}
		product.StockQuantity = stockQuantity
		product.InStock = inStock
		return tx.Save(&product).Error
	})
	if err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.BroadcastStock(StockEvent{
			Kind:          "stock.updated",
			ProductID:     product.ID,
			StockQuantity: product.StockQuantity,
			InStock:       product.InStock,
		})
	}
	return &product, nil
}

// SetImageURL stores the uploaded image location on the product.
func (s *ProductService) SetImageURL(productID uint, url string) error {
	res := s.db.Model(&models.Product{}).Where("id = ?", productID).Update("image_url", url)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.NotFoundError("Product not found")
	}
	return nil
}
