package numeric

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts classification verdicts.
type Metrics struct {
	Classifications *prometheus.CounterVec
}

// NewMetrics registers classification metrics with reg. A nil reg creates
// unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Classifications: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "citenum_classifications_total",
			Help: "Total number of values classified, by deciding rule and result",
		}, []string{"rule", "numeric"}),
	}
}

// Observe records one verdict.
func (m *Metrics) Observe(v Verdict) {
	m.Classifications.WithLabelValues(string(v.Rule), strconv.FormatBool(v.Numeric)).Inc()
}

// Instrumented wraps a Classifier and records every verdict.
type Instrumented struct {
	classifier *Classifier
	metrics    *Metrics
}

// Instrument wraps c so that each classification is counted in m.
func Instrument(c *Classifier, m *Metrics) *Instrumented {
	return &Instrumented{classifier: c, metrics: m}
}

// Explain implements Explainer.
func (i *Instrumented) Explain(value, locale string) Verdict {
	v := i.classifier.Explain(value, locale)
	if i.metrics != nil {
		i.metrics.Observe(v)
	}
	return v
}

// Classify reports whether value is numeric content in locale.
func (i *Instrumented) Classify(value, locale string) bool {
	return i.Explain(value, locale).Numeric
}

// Classifier returns the wrapped classifier.
func (i *Instrumented) Classifier() *Classifier {
	return i.classifier
}
