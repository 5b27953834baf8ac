package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vzahanych/wind-activity-app/internal/dashboard"
	"github.com/vzahanych/wind-activity-app/internal/server/utils"
	"github.com/vzahanych/wind-activity-app/internal/units"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	builder     *dashboard.Builder
	defaultUnit units.WindUnit
	logger      *zap.Logger
}

func NewDashboardHandler(builder *dashboard.Builder, defaultUnit units.WindUnit, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		builder:     builder,
		defaultUnit: defaultUnit,
		logger:      logger,
	}
}

func (h *DashboardHandler) Build(c *gin.Context) {
	ctx := utils.GetContextFromGinContext(c)
	reqLogger := requestLogger(c, h.logger)

	var req dashboard.Request
	if !bindJSON(c, reqLogger, &req) {
		return
	}
	if req.WindUnit == "" {
		req.WindUnit = h.defaultUnit
	}

	reqLogger.Info("Building dashboard",
		zap.Int("rules", len(req.Rules)),
		zap.Int("locations", len(req.Locations)),
		zap.String("wind_unit", string(req.WindUnit)))

	dash, err := h.builder.Build(ctx, req)
	if err != nil {
		reqLogger.Error("Failed to build dashboard", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Error:   "Failed to build dashboard",
			Code:    "DASHBOARD_ERROR",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dash)
}
