package dashboard

import (
	"context"
	"sort"
	"time"

	"github.com/vzahanych/wind-activity-app/internal/activity"
	"github.com/vzahanych/wind-activity-app/internal/rules"
	"github.com/vzahanych/wind-activity-app/internal/units"
	"github.com/vzahanych/wind-activity-app/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// MetricsRecorder receives one call per evaluated day.
type MetricsRecorder interface {
	RecordDayEvaluated(ctx context.Context, matched bool)
}

type Options struct {
	Concurrency int
	Stale       StalePolicy
	Metrics     MetricsRecorder
}

// Builder turns rules and multi-day location forecasts into per-day recommendations.
type Builder struct {
	matcher     *activity.Matcher
	logger      *zap.Logger
	tele        *telemetry.Telemetry
	concurrency int
	stale       StalePolicy
	metrics     MetricsRecorder
}

func NewBuilder(matcher *activity.Matcher, logger *zap.Logger, tele *telemetry.Telemetry, opts Options) *Builder {
	if matcher == nil {
		matcher = activity.NewMatcher()
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	if opts.Stale == nil {
		opts.Stale = NeverStale
	}
	return &Builder{
		matcher:     matcher,
		logger:      logger,
		tele:        tele,
		concurrency: opts.Concurrency,
		stale:       opts.Stale,
		metrics:     opts.Metrics,
	}
}

// SetMetricsRecorder sets the metrics recorder for the builder
func (b *Builder) SetMetricsRecorder(metrics MetricsRecorder) {
	b.metrics = metrics
}

func (b *Builder) Matcher() *activity.Matcher {
	return b.matcher
}

// Build evaluates every date found in the request. Rules are put into priority
// order first; days are evaluated concurrently and returned in date order.
func (b *Builder) Build(ctx context.Context, req Request) (*Dashboard, error) {
	ctx, end := b.tele.StartSpan(ctx, "dashboard.Build",
		attribute.Int("rules", len(req.Rules)),
		attribute.Int("locations", len(req.Locations)),
	)
	defer end()

	unit := req.WindUnit
	if unit == "" {
		unit = units.MetersPerSecond
	}

	ordered := rules.SortByPriority(req.Rules)
	dates := collectDates(req.Locations)
	days := make([]DaySummary, len(dates))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	for i, date := range dates {
		i, date := i, date
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			days[i] = b.buildDay(gCtx, date, ordered, req.Locations, unit)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		b.tele.RecordError(ctx, err, map[string]interface{}{"stage": "build"})
		b.logger.Warn("Dashboard build aborted", zap.Error(err))
		return nil, err
	}

	b.logger.Debug("Dashboard built",
		zap.Int("days", len(days)),
		zap.Int("rules", len(ordered)),
		zap.Int("locations", len(req.Locations)))

	return &Dashboard{
		Days:         days,
		WindUnit:     unit,
		UnitLabel:    unit.Label(),
		DisplayHours: b.matcher.DisplayHours(),
		GeneratedAt:  time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (b *Builder) buildDay(ctx context.Context, date string, ordered []activity.Rule, locations []LocationWeather, unit units.WindUnit) DaySummary {
	ctx, end := b.tele.StartSpan(ctx, "dashboard.buildDay", attribute.String("date", date))
	defer end()

	candidates := make([]activity.LocationForecast, len(locations))
	summary := DaySummary{
		Date:      date,
		Locations: make([]LocationDay, len(locations)),
	}

	for i, lw := range locations {
		forecast := forecastFor(lw.Days, date)
		candidates[i] = activity.LocationForecast{
			Location:  lw.Location,
			Forecast:  forecast,
			IsLoading: lw.IsLoading,
		}
		summary.Locations[i] = b.locationDay(lw, forecast, ordered, unit)
	}

	if daily, ok := b.matcher.FindDailyActivity(ordered, candidates); ok {
		summary.Daily = &daily
	}

	if b.metrics != nil {
		b.metrics.RecordDayEvaluated(ctx, summary.Daily != nil)
	}

	return summary
}

func (b *Builder) locationDay(lw LocationWeather, forecast *activity.DayForecast, ordered []activity.Rule, unit units.WindUnit) LocationDay {
	ld := LocationDay{
		LocationID:   lw.Location.ID,
		LocationName: lw.Location.Name,
		IsLoading:    lw.IsLoading,
		HasForecast:  forecast != nil,
		Activities:   b.matcher.FindAllMatchingActivities(ordered, lw.Location.ID, forecast),
		Hours:        []HourView{},
	}
	if forecast == nil {
		return ld
	}

	ld.MaxGust = units.ConvertWindSpeed(b.matcher.MaxGustForDay(forecast), unit)
	if a, ok := b.matcher.FindMatchingActivity(ordered, lw.Location.ID, forecast); ok {
		ld.Activity = &a
	}

	samples := b.matcher.RelevantSamples(forecast)
	sort.SliceStable(samples, func(i, j int) bool { return samples[i].Hour < samples[j].Hour })
	for _, s := range samples {
		ld.Hours = append(ld.Hours, b.hourView(forecast.Date, s, unit))
	}
	return ld
}

func (b *Builder) hourView(date string, s activity.Sample, unit units.WindUnit) HourView {
	hv := HourView{
		Hour:        s.Hour,
		Direction:   activity.DegreesToCompass(s.WindDirection),
		Degrees:     s.WindDirection,
		Temperature: s.Temperature,
	}
	if b.stale.IsStale(date, s.Hour) {
		hv.Stale = true
		return hv
	}
	speed := units.ConvertWindSpeed(s.WindSpeed, unit)
	gust := units.ConvertWindSpeed(s.WindGust, unit)
	hv.WindSpeed = &speed
	hv.WindGust = &gust
	return hv
}

func forecastFor(days []activity.DayForecast, date string) *activity.DayForecast {
	for i := range days {
		if days[i].Date == date {
			return &days[i]
		}
	}
	return nil
}

func collectDates(locations []LocationWeather) []string {
	seen := make(map[string]struct{})
	var dates []string
	for _, lw := range locations {
		for _, d := range lw.Days {
			if _, ok := seen[d.Date]; ok {
				continue
			}
			seen[d.Date] = struct{}{}
			dates = append(dates, d.Date)
		}
	}
	sort.Strings(dates)
	return dates
}
