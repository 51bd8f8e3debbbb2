package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SubmissionsAccepted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intake_submissions_accepted_total",
			Help: "Total number of submissions persisted successfully",
		},
		[]string{"funnel"},
	)

	SubmissionsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intake_submissions_rejected_total",
			Help: "Total number of submissions rejected or failed",
		},
		[]string{"funnel", "error_code"},
	)

	SubmissionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "intake_submission_duration_seconds",
			Help: "Duration of submission processing in seconds",
		},
		[]string{"funnel"},
	)

	DeckUploadBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "intake_deck_upload_bytes",
			Help:    "Size of uploaded pitch decks in bytes",
			Buckets: prometheus.ExponentialBuckets(64*1024, 4, 8),
		},
	)
)
