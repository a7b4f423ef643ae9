package controllers

import (
	"net/http"

	"github.com/MuKuL-DiXiT/Fit-Fusion/services"
	"github.com/MuKuL-DiXiT/Fit-Fusion/utils"

	"github.com/gin-gonic/gin"
)

type SupplierController struct {
	Products *services.ProductService
}

func NewSupplierController(products *services.ProductService) *SupplierController {
	return &SupplierController{Products: products}
}

func (sc *SupplierController) Inventory(c *gin.Context) {
	products, err := sc.Products.SupplierInventory()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
}

func (sc *SupplierController) UpdateInventory(c *gin.Context) {
	var input struct {
		ID            uint `json:"id"`
		StockQuantity int  `json:"stock_quantity"`
		InStock       bool `json:"inStock"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	product, err := sc.Products.UpdateInventory(input.ID, input.StockQuantity, input.InStock)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}

// POST /supplier/products/:productId/image  { "image_base64": "data:…" }
func (sc *SupplierController) UploadProductImage(c *gin.Context) {
	productID, ok := parseID(c, "productId")
	if !ok {
		return
	}
	var input struct {
		ImageBase64 string `json:"image_base64" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid body"})
		return
	}

	url, err := utils.UploadProductImage(input.ImageBase64, productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	if err := sc.Products.SetImageURL(productID, url); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "image_url": url})
}
