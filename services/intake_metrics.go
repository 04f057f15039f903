package services

import "github.com/prometheus/client_golang/prometheus"

// IntakeMetrics exposes counters/histograms for the contact form flow.
type IntakeMetrics struct {
	submissionsTotal  *prometheus.CounterVec
	submitLatency     *prometheus.HistogramVec
	validationFailure *prometheus.CounterVec
	formsOpened       *prometheus.CounterVec
}

func NewIntakeMetrics(reg prometheus.Registerer) *IntakeMetrics {
	m := &IntakeMetrics{
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "binarybyte",
			Subsystem: "intake",
			Name:      "submissions_total",
			Help:      "Total lead transmissions to the intake collaborator",
		}, []string{"driver", "status"}),
		submitLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "binarybyte",
			Subsystem: "intake",
			Name:      "submit_latency_seconds",
			Help:      "Latency of lead transmissions",
			Buckets:   prometheus.DefBuckets,
		}, []string{"driver"}),
		validationFailure: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "binarybyte",
			Subsystem: "intake",
			Name:      "validation_failures_total",
			Help:      "Submit attempts blocked by field validation",
		}, []string{"field"}),
		formsOpened: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "binarybyte",
			Subsystem: "intake",
			Name:      "forms_opened_total",
			Help:      "Contact form instances opened",
		}, []string{"surface"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissionsTotal, m.submitLatency, m.validationFailure, m.formsOpened)
	return m
}

func (m *IntakeMetrics) ObserveSubmission(driver, status string, seconds float64) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(driver, status).Inc()
	m.submitLatency.WithLabelValues(driver).Observe(seconds)
}

func (m *IntakeMetrics) ObserveValidationFailure(field string) {
	if m == nil {
		return
	}
	m.validationFailure.WithLabelValues(field).Inc()
}

func (m *IntakeMetrics) ObserveFormOpened(surface string) {
	if m == nil {
		return
	}
	m.formsOpened.WithLabelValues(surface).Inc()
}
