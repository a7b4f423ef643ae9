package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/MuKuL-DiXiT/Fit-Fusion/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// respondError classifies a service error into the response taxonomy.
// Anything unclassified is Internal: logged with detail, answered generically.
func respondError(c *gin.Context, err error) {
	var appErr *utils.AppError
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case utils.KindValidation, utils.KindOutOfStock:
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": appErr.Message})
			return
		case utils.KindNotFound:
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": appErr.Message})
			return
		case utils.KindConflict:
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": appErr.Message})
			return
		case utils.KindInternal:
			log.Printf("internal error: %v", appErr)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Not found"})
		return
	}

	log.Printf("unhandled error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
}
