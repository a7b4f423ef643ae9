package controllers

import (
	"net/http"

	"github.com/MuKuL-DiXiT/Fit-Fusion/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

func (oc *OrderController) GetCart(c *gin.Context) {
	userID := c.GetUint("userID")
	cart, items, err := oc.Orders.GetOrCreateCart(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "cart": gin.H{
		"order_id":     cart.ID,
		"status":       cart.Status,
		"total_amount": cart.TotalAmount,
		"items":        items,
	}})
}

func (oc *OrderController) AddCartItem(c *gin.Context) {
	userID := c.GetUint("userID")
	var input struct {
		ProductID uint `json:"productId"`
		Quantity  int  `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Product ID and valid quantity are required"})
		return
	}
	if input.ProductID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Product ID and valid quantity are required"})
		return
	}
	if err := oc.Orders.AddItem(userID, input.ProductID, input.Quantity); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Item added to cart successfully"})
}

func (oc *OrderController) UpdateCartItem(c *gin.Context) {
	userID := c.GetUint("userID")
	itemID, ok := parseID(c, "itemId")
	if !ok {
		return
	}
	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Valid quantity is required"})
		return
	}
	if err := oc.Orders.UpdateItemQuantity(userID, itemID, input.Quantity); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cart item updated successfully"})
}

func (oc *OrderController) RemoveCartItem(c *gin.Context) {
	userID := c.GetUint("userID")
	itemID, ok := parseID(c, "itemId")
	if !ok {
		return
	}
	if err := oc.Orders.RemoveItem(userID, itemID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Item removed from cart successfully"})
}

func (oc *OrderController) PlaceOrder(c *gin.Context) {
	userID := c.GetUint("userID")
	var input struct {
		ShippingAddress string `json:"shippingAddress"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Shipping address is required"})
		return
	}
	orderID, err := oc.Orders.PlaceOrder(userID, input.ShippingAddress)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order placed successfully", "orderId": orderID})
}

func (oc *OrderController) List(c *gin.Context) {
	userID := c.GetUint("userID")
	orders, err := oc.Orders.ListOrders(userID, c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
}

func (oc *OrderController) Get(c *gin.Context) {
	userID := c.GetUint("userID")
	orderID, ok := parseID(c, "orderId")
	if !ok {
		return
	}
	order, items, err := oc.Orders.GetOrder(userID, orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "order": order, "items": items})
}

func (oc *OrderController) UpdateStatus(c *gin.Context) {
	orderID, ok := parseID(c, "orderId")
	if !ok {
		return
	}
	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid order status"})
		return
	}
	order, err := oc.Orders.UpdateOrderStatus(orderID, input.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order status updated successfully", "order": order})
}
