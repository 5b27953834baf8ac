package handlers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vzahanych/wind-activity-app/internal/activity"
	"github.com/vzahanych/wind-activity-app/internal/rules"
	"github.com/vzahanych/wind-activity-app/internal/server/utils"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ActivityHandler exposes the matcher over HTTP. Clients may send rules in
// any order; they are sorted by priority before matching.
type ActivityHandler struct {
	matcher *activity.Matcher
	metrics *MetricsHandler
	logger  *zap.Logger
}

func NewActivityHandler(matcher *activity.Matcher, metrics *MetricsHandler, logger *zap.Logger) *ActivityHandler {
	return &ActivityHandler{
		matcher: matcher,
		metrics: metrics,
		logger:  logger,
	}
}

func (h *ActivityHandler) Match(c *gin.Context) {
	reqLogger := requestLogger(c, h.logger)

	var req MatchRequest
	if !bindJSON(c, reqLogger, &req) {
		return
	}

	ordered := rules.SortByPriority(req.Rules)
	resp := MatchResponse{
		LocationID: req.LocationID,
		Activities: h.matcher.FindAllMatchingActivities(ordered, req.LocationID, req.Forecast),
		MaxGust:    h.matcher.MaxGustForDay(req.Forecast),
	}
	if a, ok := h.matcher.FindMatchingActivity(ordered, req.LocationID, req.Forecast); ok {
		resp.Activity = &a
	}

	span := utils.GetSpanFromGinContext(c)
	span.SetAttributes(
		attribute.String("location_id", req.LocationID),
		attribute.Bool("matched", resp.Activity != nil),
	)
	h.metrics.RecordRecommendation(c.Request.Context(), "location", resp.Activity != nil)

	reqLogger.Debug("Location matched",
		zap.String("location_id", req.LocationID),
		zap.Int("rules", len(ordered)),
		zap.Int("activities", len(resp.Activities)))

	c.JSON(http.StatusOK, resp)
}

func (h *ActivityHandler) Daily(c *gin.Context) {
	reqLogger := requestLogger(c, h.logger)

	var req DailyRequest
	if !bindJSON(c, reqLogger, &req) {
		return
	}

	var resp DailyResponse
	if daily, ok := h.matcher.FindDailyActivity(rules.SortByPriority(req.Rules), req.Locations); ok {
		resp.Match = &daily
	}

	utils.GetSpanFromGinContext(c).SetAttributes(attribute.Bool("matched", resp.Match != nil))
	h.metrics.RecordRecommendation(c.Request.Context(), "daily", resp.Match != nil)

	reqLogger.Debug("Daily activity resolved",
		zap.Int("rules", len(req.Rules)),
		zap.Int("locations", len(req.Locations)),
		zap.Bool("matched", resp.Match != nil))

	c.JSON(http.StatusOK, resp)
}

func (h *ActivityHandler) Compass(c *gin.Context) {
	var req CompassRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request parameters",
			Code:    "INVALID_PARAMS",
			Details: err.Error(),
		})
		return
	}
	if math.IsNaN(*req.Degrees) || math.IsInf(*req.Degrees, 0) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request parameters",
			Code:    "INVALID_PARAMS",
			Details: "degrees must be a finite number",
		})
		return
	}

	c.JSON(http.StatusOK, CompassResponse{
		Degrees: *req.Degrees,
		Octant:  activity.DegreesToCompass(*req.Degrees),
	})
}
