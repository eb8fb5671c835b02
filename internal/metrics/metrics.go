package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// BuildsTotal считает сборки ленты по статусу (success, error).
	BuildsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pointerrss",
			Name:      "builds_total",
			Help:      "Total number of feed builds",
		},
		[]string{"status"},
	)

	// BuildDuration измеряет полный цикл загрузка → извлечение → сборка.
	BuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "pointerrss",
			Name:      "build_duration_seconds",
			Help:      "Duration of feed builds in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	// ErrorsTotal считает неудачные сборки по этапу конвейера.
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pointerrss",
			Name:      "errors_total",
			Help:      "Total number of build errors",
		},
		[]string{"stage"},
	)

	// SkippedAnchorsTotal считает ссылки без href, пропущенные экстрактором.
	SkippedAnchorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "pointerrss",
			Name:      "skipped_anchors_total",
			Help:      "Total number of anchors skipped because they have no href",
		},
	)

	// FeedItems - число элементов в последней успешной сборке.
	FeedItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "pointerrss",
			Name:      "feed_items",
			Help:      "Number of items in the last built feed",
		},
	)

	// LastSuccess - unix-время последней успешной сборки.
	LastSuccess = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "pointerrss",
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful feed build",
		},
	)
)

// RecordSuccess фиксирует успешную сборку ленты.
func RecordSuccess(duration time.Duration, items, skipped int) {
	BuildsTotal.WithLabelValues("success").Inc()
	BuildDuration.Observe(duration.Seconds())
	SkippedAnchorsTotal.Add(float64(skipped))
	FeedItems.Set(float64(items))
	LastSuccess.SetToCurrentTime()
}

// RecordFailure фиксирует сборку, прерванную на этапе stage.
func RecordFailure(stage string, duration time.Duration) {
	BuildsTotal.WithLabelValues("error").Inc()
	BuildDuration.Observe(duration.Seconds())
	ErrorsTotal.WithLabelValues(stage).Inc()
}
