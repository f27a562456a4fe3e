// Package metrics exposes Prometheus instrumentation for the generator and
// upload paths.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DescriptorComputations counts descriptor set generations.
	DescriptorComputations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "opticderm_descriptor_computations_total",
		Help: "Number of descriptor sets generated.",
	})

	// PlaceholderRenders counts placeholder rasters rendered, per modality.
	PlaceholderRenders = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "opticderm_placeholder_renders_total",
		Help: "Number of placeholder images rendered.",
	}, []string{"modality"})

	// PlaceholderRenderSeconds observes placeholder render latency.
	PlaceholderRenderSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "opticderm_placeholder_render_seconds",
		Help:    "Time spent rendering placeholder images.",
		Buckets: prometheus.DefBuckets,
	})

	// UploadsAccepted counts successfully decoded uploads.
	UploadsAccepted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "opticderm_uploads_accepted_total",
		Help: "Number of uploaded images accepted.",
	})

	// UploadsRejected counts uploads rejected at the boundary, by reason.
	UploadsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "opticderm_uploads_rejected_total",
		Help: "Number of uploaded images rejected.",
	}, []string{"reason"})
)
