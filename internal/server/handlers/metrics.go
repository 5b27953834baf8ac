package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// MetricsHandler owns the application metrics and serves the registry in
// Prometheus text format.
type MetricsHandler struct {
	logger          *zap.Logger
	handler         http.Handler
	recommendations *prometheus.CounterVec
	daysEvaluated   *prometheus.CounterVec
}

func NewMetricsHandler(logger *zap.Logger, reg *prometheus.Registry) (*MetricsHandler, error) {
	h := &MetricsHandler{
		logger:  logger,
		handler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{
			ErrorLog: zap.NewStdLog(logger),
		}),
		recommendations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wind",
			Subsystem: "matcher",
			Name:      "recommendations_total",
			Help:      "Recommendation lookups by kind and whether a rule matched.",
		}, []string{"kind", "matched"}),
		daysEvaluated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wind",
			Subsystem: "dashboard",
			Name:      "days_evaluated_total",
			Help:      "Dashboard days evaluated and whether a daily activity was found.",
		}, []string{"matched"}),
	}

	collectorsToRegister := []prometheus.Collector{
		h.recommendations,
		h.daysEvaluated,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	}
	for _, c := range collectorsToRegister {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// RecordRecommendation counts a location or daily lookup.
func (h *MetricsHandler) RecordRecommendation(ctx context.Context, kind string, matched bool) {
	h.recommendations.WithLabelValues(kind, strconv.FormatBool(matched)).Inc()
}

// RecordDayEvaluated implements dashboard.MetricsRecorder.
func (h *MetricsHandler) RecordDayEvaluated(ctx context.Context, matched bool) {
	h.daysEvaluated.WithLabelValues(strconv.FormatBool(matched)).Inc()
}

func (h *MetricsHandler) ServeMetrics(c *gin.Context) {
	h.handler.ServeHTTP(c.Writer, c.Request)
}
