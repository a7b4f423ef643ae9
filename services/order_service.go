package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/MuKuL-DiXiT/Fit-Fusion/models"
	"github.com/MuKuL-DiXiT/Fit-Fusion/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Notifier is called after a placement transaction commits. Wired to the
// SES order-confirmation mail in production, a no-op in tests.
type Notifier func(userID, orderID uint, total float64)

type OrderService struct {
	db     *gorm.DB
	notify Notifier
}

func NewOrderService(db *gorm.DB, notify Notifier) *OrderService {
	if notify == nil {
		notify = func(uint, uint, float64) {}
	}
	return &OrderService{db: db, notify: notify}
}

type CartItemDetail struct {
	models.OrderItem
	ProductName  string  `gorm:"column:product_name" json:"product_name"`
	Description  string  `gorm:"column:description" json:"description"`
	CurrentPrice float64 `gorm:"column:current_price" json:"current_price"`
}

type OrderSummary struct {
	models.Order
	ItemCount int64 `gorm:"column:item_count" json:"item_count"`
}

// GetOrCreateCart returns the user's singleton Cart order, creating it when
// absent. The unique index on cart_key serializes concurrent first calls:
// the loser's insert does nothing and falls back to the winner's row.
func (s *OrderService) GetOrCreateCart(userID uint) (*models.Order, []CartItemDetail, error) {
	cart, err := s.cartForUpdate(s.db, userID)
	if err != nil {
		return nil, nil, err
	}

	items, err := s.cartItems(s.db, cart.ID)
	if err != nil {
		return nil, nil, err
	}
	return cart, items, nil
}

func (s *OrderService) cartItems(db *gorm.DB, orderID uint) ([]CartItemDetail, error) {
	var items []CartItemDetail
	err := db.Table("order_items oi").
		Select("oi.*, p.name as product_name, p.description, p.price as current_price").
		Joins("JOIN products p ON oi.product_id = p.id").
		Where("oi.order_id = ? AND oi.deleted_at IS NULL", orderID).
		Order("oi.id").
		Scan(&items).Error
	return items, err
}

// AddItem merges quantity into an existing cart line for the product or
// creates a new line with the price snapshotted, then recomputes the cart
// total, all in one transaction.
func (s *OrderService) AddItem(userID, productID uint, quantity int) error {
	if quantity <= 0 {
		return utils.ValidationError("Product ID and valid quantity are required")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NotFoundError("Product not found")
			}
			return err
		}

		cart, err := s.cartForUpdate(tx, userID)
		if err != nil {
			return err
		}

		var existing models.OrderItem
		err = tx.Where("order_id = ? AND product_id = ?", cart.ID, productID).First(&existing).Error
		switch {
		case err == nil:
			wanted := existing.Quantity + quantity
			if product.StockQuantity < wanted {
				return utils.OutOfStockError("Insufficient stock for total quantity")
			}
			existing.Quantity = wanted
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			if product.StockQuantity < quantity {
				return utils.OutOfStockError("Insufficient stock available")
			}
			line := models.OrderItem{
				OrderID:         cart.ID,
				ProductID:       productID,
				Quantity:        quantity,
				PriceAtPurchase: product.Price,
			}
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
		default:
			return err
		}

		return s.recomputeTotal(tx, cart.ID)
	})
}

// cartForUpdate fetches (or creates) the user's cart inside tx. Creation
// goes through DO NOTHING on the cart_key index: a unique violation would
// abort the surrounding transaction, so losing a concurrent first-add race
// degrades to fetching the winner's row instead.
func (s *OrderService) cartForUpdate(tx *gorm.DB, userID uint) (*models.Order, error) {
	var cart models.Order
	err := tx.Where("user_id = ? AND status = ?", userID, models.OrderStatusCart).First(&cart).Error
	if err == nil {
		return &cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	key := userID
	cart = models.Order{UserID: userID, CartKey: &key, Status: models.OrderStatusCart}
	res := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "cart_key"}},
		DoNothing: true,
	}).Create(&cart)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 || cart.ID == 0 {
		if err := tx.Where("user_id = ? AND status = ?", userID, models.OrderStatusCart).First(&cart).Error; err != nil {
			return nil, err
		}
	}
	return &cart, nil
}

func (s *OrderService) recomputeTotal(tx *gorm.DB, orderID uint) error {
	var total float64
	err := tx.Model(&models.OrderItem{}).
		Select("COALESCE(SUM(quantity * price_at_purchase), 0)").
		Where("order_id = ?", orderID).
		Scan(&total).Error
	if err != nil {
		return err
	}
	return tx.Model(&models.Order{}).Where("id = ?", orderID).Update("total_amount", total).Error
}

// cartLine loads an order item after verifying it sits in a Cart-status
// order owned by userID. Item ids are never trusted on their own.
func (s *OrderService) cartLine(tx *gorm.DB, userID, itemID uint) (*models.OrderItem, error) {
	var item models.OrderItem
	err := tx.Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("order_items.id = ? AND orders.user_id = ? AND orders.status = ?",
			itemID, userID, models.OrderStatusCart).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NotFoundError("Cart item not found")
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *OrderService) UpdateItemQuantity(userID, itemID uint, quantity int) error {
	if quantity <= 0 {
		return utils.ValidationError("Valid quantity is required")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		item, err := s.cartLine(tx, userID, itemID)
		if err != nil {
			return err
		}

		var product models.Product
		if err := tx.First(&product, item.ProductID).Error; err != nil {
			return err
		}
		if product.StockQuantity < quantity {
			return utils.OutOfStockError("Insufficient stock available")
		}

		if err := tx.Model(&models.OrderItem{}).Where("id = ?", item.ID).
			Update("quantity", quantity).Error; err != nil {
			return err
		}
		return s.recomputeTotal(tx, item.OrderID)
	})
}

func (s *OrderService) RemoveItem(userID, itemID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		item, err := s.cartLine(tx, userID, itemID)
		if err != nil {
			return err
		}
		if err := tx.Delete(&models.OrderItem{}, item.ID).Error; err != nil {
			return err
		}
		return s.recomputeTotal(tx, item.OrderID)
	})
}

// PlaceOrder turns the cart into a Pending order: re-validates stock for
// every line, decrements it, stamps the order date and shipping address.
// The stock decrement is a guarded UPDATE (stock_quantity >= wanted in the
// WHERE clause), so two concurrent checkouts cannot jointly oversell: the
// condition is re-evaluated under the row lock the UPDATE takes.
func (s *OrderService) PlaceOrder(userID uint, shippingAddress string) (uint, error) {
	if strings.TrimSpace(shippingAddress) == "" {
		return 0, utils.ValidationError("Shipping address is required")
	}

	var orderID uint
	var total float64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var cart models.Order
		err := tx.Where("user_id = ? AND status = ?", userID, models.OrderStatusCart).First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFoundError("No items in cart")
		}
		if err != nil {
			return err
		}

		var lines []models.OrderItem
		if err := tx.Where("order_id = ?", cart.ID).Find(&lines).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return utils.ValidationError("No items in cart")
		}

		for _, line := range lines {
			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock_quantity >= ?", line.ProductID, line.Quantity).
				Update("stock_quantity", gorm.Expr("stock_quantity - ?", line.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return utils.OutOfStockError(fmt.Sprintf("Insufficient stock for product ID: %d", line.ProductID))
			}
		}

		now := time.Now()
		res := tx.Model(&models.Order{}).
			Where("id = ? AND status = ?", cart.ID, models.OrderStatusCart).
			Updates(map[string]interface{}{
				"status":           models.OrderStatusPending,
				"shipping_address": shippingAddress,
				"order_date":       now,
				"cart_key":         nil,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// another session placed this cart first
			return utils.NotFoundError("No items in cart")
		}

		orderID = cart.ID
		total = cart.TotalAmount
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.notify(userID, orderID, total)
	return orderID, nil
}

// ListOrders returns the user's placed orders (everything but the cart),
// newest first, optionally filtered by status, with line counts aggregated
// in the same grouped query.
func (s *OrderService) ListOrders(userID uint, status string) ([]OrderSummary, error) {
	q := s.db.Table("orders o").
		Select("o.*, COUNT(oi.id) as item_count").
		Joins("LEFT JOIN order_items oi ON oi.order_id = o.id AND oi.deleted_at IS NULL").
		Where("o.user_id = ? AND o.status <> ? AND o.deleted_at IS NULL", userID, models.OrderStatusCart).
		Group("o.id").
		Order("o.order_date DESC")
	if status != "" {
		q = q.Where("o.status = ?", status)
	}

	var out []OrderSummary
	if err := q.Scan(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *OrderService) GetOrder(userID, orderID uint) (*models.Order, []CartItemDetail, error) {
	var order models.Order
	err := s.db.Where("id = ? AND user_id = ?", orderID, userID).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, utils.NotFoundError("Order not found")
		}
		return nil, nil, err
	}
	items, err := s.cartItems(s.db, order.ID)
	if err != nil {
		return nil, nil, err
	}
	return &order, items, nil
}

// UpdateOrderStatus moves a placed order to one of the post-Cart statuses.
// There is no path back to Cart.
func (s *OrderService) UpdateOrderStatus(orderID uint, status string) (*models.Order, error) {
	valid := map[string]bool{
		models.OrderStatusPending:   true,
		models.OrderStatusShipped:   true,
		models.OrderStatusDelivered: true,
		models.OrderStatusCancelled: true,
	}
	if !valid[status] {
		return nil, utils.ValidationError("Invalid order status")
	}

	res := s.db.Model(&models.Order{}).
		Where("id = ? AND status <> ?", orderID, models.OrderStatusCart).
		Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, utils.NotFoundError("Order not found")
	}

	var order models.Order
	if err := s.db.First(&order, orderID).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// NewOrderMailNotifier looks up the buyer's email and sends the SES
// confirmation in the background; failures are logged, never surfaced.
func NewOrderMailNotifier(db *gorm.DB) Notifier {
	return func(userID, orderID uint, total float64) {
		go func() {
			var user models.User
			if err := db.First(&user, userID).Error; err != nil {
				log.Printf("order mail: user %d lookup failed: %v", userID, err)
				return
			}
			if err := utils.SendOrderConfirmationEmail(user.Email, orderID, total); err != nil {
				log.Printf("order mail: send to %s failed: %v", user.Email, err)
			}
		}()
	}
}
