package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vzahanych/wind-activity-app/internal/server/utils"
	"go.uber.org/zap"
)

// bindJSON decodes and validates a request body. On failure it writes the
// error response and returns false.
func bindJSON(c *gin.Context, logger *zap.Logger, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		logger.Warn("Invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Code:    "INVALID_PARAMS",
			Details: err.Error(),
		})
		return false
	}

	if fields := utils.ValidateStruct(dst); len(fields) > 0 {
		logger.Warn("Request validation failed", zap.Int("violations", len(fields)))
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:  "Request validation failed",
			Code:   "VALIDATION_FAILED",
			Fields: fields,
		})
		return false
	}

	return true
}

func requestLogger(c *gin.Context, logger *zap.Logger) *zap.Logger {
	return logger.With(zap.String("request_id", utils.GetRequestIDFromGinContext(c)))
}
