package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ProfileUpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vcard_profile_updates_total",
			Help: "Total number of profile updates by outcome",
		},
		[]string{"status"},
	)

	StorageWriteDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "vcard_storage_write_duration_seconds",
			Help:    "Duration of durable profile writes",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
	)

	ImageEncodeTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vcard_image_encode_total",
			Help: "Total number of image encode attempts by result",
		},
		[]string{"result"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vcard_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vcard_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)
