package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EstimatesCalculated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "estimates_calculated_total",
			Help: "Total number of estimates calculated, by template",
		},
		[]string{"template_id"},
	)

	QuotesRequested = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "contractor_quotes_requested_total",
			Help: "Total number of contractor quotes requested",
		},
	)

	ProjectStoreFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "project_store_fallbacks_total",
			Help: "Times the primary project store failed and the local store was used",
		},
	)

	ActivityEventsDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "activity_events_dropped_total",
			Help: "Activity events that could not be written to the sink backend",
		},
	)
)
