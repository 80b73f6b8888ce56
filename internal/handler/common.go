package handler

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "event-ticketing/pkg/app_errors"
	"event-ticketing/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		respondFailure(c, http.StatusBadRequest, "Invalid request format")
		return err
	}
	return nil
}

// paramID 解析路徑上的正整數 id，失敗時直接回應 400
func paramID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		respondFailure(c, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return id, true
}

func respondFailure(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"message": message,
	})
}

func respondData(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

// handleError 依錯誤類型轉成 HTTP 回應：預期內的錯誤記 Warn，其餘記 Error
func handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))

	switch apperrors.KindOf(err) {
	case apperrors.KindValidation:
		log.Warn("Validation failed")
		respondFailure(c, http.StatusBadRequest, validationMessage(err))
	case apperrors.KindNotFound:
		log.Warn("Not found")
		respondFailure(c, http.StatusNotFound, err.Error())
	case apperrors.KindConflict:
		log.Warn("Conflict")
		respondFailure(c, http.StatusConflict, err.Error())
	case apperrors.KindUnauthorized:
		log.Warn("Unauthorized")
		respondFailure(c, http.StatusUnauthorized, "Unauthorized")
	case apperrors.KindForbidden:
		log.Warn("Forbidden")
		respondFailure(c, http.StatusForbidden, "Forbidden")
	case apperrors.KindPersistence:
		log.Error("Checkout failed")
		respondFailure(c, http.StatusInternalServerError, "Checkout failed, please try again")
	default:
		log.Error("Unexpected error")
		respondFailure(c, http.StatusInternalServerError, "Internal server error")
	}
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrEmptyCart):
		return "Cart is empty"
	case errors.Is(err, apperrors.ErrInvalidQuantity):
		return "Quantity must be a positive integer"
	default:
		return "Invalid request"
	}
}
