package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	appraisals      *prometheus.CounterVec
	errorsTotal     *prometheus.CounterVec
	estimatedPrice  prometheus.Histogram
	comparables     *prometheus.HistogramVec
	appraisalTiming prometheus.Histogram
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		appraisals: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "domainworth_appraisals_total",
				Help: "Total number of completed appraisals",
			},
			[]string{"category"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "domainworth_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		estimatedPrice: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "domainworth_estimated_price_dollars",
				Help:    "Distribution of estimated prices",
				Buckets: []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000, 50000, 100000},
			},
		),
		comparables: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "domainworth_comparables_found",
				Help:    "Number of comparables found per appraisal",
				Buckets: []float64{0, 1, 2, 3, 4, 5},
			},
			[]string{"pool"},
		),
		appraisalTiming: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "domainworth_appraisal_duration_seconds",
				Help:    "Duration of appraisals in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
}

// RecordAppraisal records one completed appraisal and its duration.
func (r *Recorder) RecordAppraisal(category string, seconds float64) {
	r.appraisals.WithLabelValues(category).Inc()
	r.appraisalTiming.Observe(seconds)
}

// RecordEstimatedPrice records the estimated price of one appraisal.
func (r *Recorder) RecordEstimatedPrice(price float64) {
	r.estimatedPrice.Observe(price)
}

// RecordComparables records how many comparables a pool contributed.
func (r *Recorder) RecordComparables(pool string, count int) {
	r.comparables.WithLabelValues(pool).Observe(float64(count))
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}
