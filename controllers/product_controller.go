package controllers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/MuKuL-DiXiT/Fit-Fusion/services"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	Products *services.ProductService
}

func NewProductController(products *services.ProductService) *ProductController {
	return &ProductController{Products: products}
}

func (pc *ProductController) List(c *gin.Context) {
	f := services.ProductFilter{
		Category:  c.Query("category"),
		Search:    c.Query("search"),
		SortBy:    c.DefaultQuery("sortBy", "created_at"),
		SortOrder: c.DefaultQuery("sortOrder", "DESC"),
	}
	f.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if v, err := strconv.ParseFloat(c.Query("minPrice"), 64); err == nil {
		f.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(c.Query("maxPrice"), 64); err == nil {
		f.MaxPrice = &v
	}

	products, total, err := pc.Products.List(f)
	if err != nil {
		respondError(c, err)
		return
	}

	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"products": products,
		"pagination": gin.H{
			"currentPage":   f.Page,
			"totalPages":    int(math.Ceil(float64(total) / float64(limit))),
			"totalProducts": total,
		},
	})
}

func (pc *ProductController) Get(c *gin.Context) {
	productID, ok := parseID(c, "productId")
	if !ok {
		return
	}
	product, reviews, err := pc.Products.Get(productID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "product": product, "reviews": reviews})
}

func (pc *ProductController) AddReview(c *gin.Context) {
	userID := c.GetUint("userID")
	productID, ok := parseID(c, "productId")
	if !ok {
		return
	}
	var input struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	review, err := pc.Products.AddReview(userID, productID, input.Rating, input.Comment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Review added successfully", "review": review})
}
