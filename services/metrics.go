package services

import "github.com/prometheus/client_golang/prometheus"

// Intake outcomes for the submissions counter
const (
	OutcomeAccepted = "accepted"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
	OutcomeRejected = "rejected" // failed bot verification
)

// IntakeMetrics exposes counters/histograms for the public forms.
// A nil *IntakeMetrics records nothing.
type IntakeMetrics struct {
	submissions *prometheus.CounterVec
	deliveries  *prometheus.CounterVec
	sheetAppend *prometheus.CounterVec
	leadScore   prometheus.Histogram
}

func NewIntakeMetrics(reg prometheus.Registerer) *IntakeMetrics {
	m := &IntakeMetrics{
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "consultancy",
			Subsystem: "intake",
			Name:      "submissions_total",
			Help:      "Form submissions by form and outcome",
		}, []string{"form", "outcome"}),
		deliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "consultancy",
			Subsystem: "intake",
			Name:      "email_deliveries_total",
			Help:      "Transactional email send attempts",
		}, []string{"form", "recipient", "status"}),
		sheetAppend: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "consultancy",
			Subsystem: "intake",
			Name:      "sheet_appends_total",
			Help:      "Lead sheet append attempts",
		}, []string{"status"}),
		leadScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "consultancy",
			Subsystem: "intake",
			Name:      "lead_score",
			Help:      "Distribution of accepted lead scores",
			Buckets:   []float64{20, 40, 60, 80, 100},
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissions, m.deliveries, m.sheetAppend, m.leadScore)
	return m
}

func (m *IntakeMetrics) ObserveSubmission(form, outcome string) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(form, outcome).Inc()
}

func (m *IntakeMetrics) ObserveDelivery(form, recipient string, err error) {
	if m == nil {
		return
	}
	m.deliveries.WithLabelValues(form, recipient, statusLabel(err)).Inc()
}

func (m *IntakeMetrics) ObserveSheetAppend(err error) {
	if m == nil {
		return
	}
	m.sheetAppend.WithLabelValues(statusLabel(err)).Inc()
}

func (m *IntakeMetrics) ObserveLeadScore(score int) {
	if m == nil {
		return
	}
	m.leadScore.Observe(float64(score))
}

func statusLabel(err error) string {
	if err != nil {
		return "failed"
	}
	return "ok"
}
