package obs

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// QuoteMetrics groups Prometheus collectors for cart total calculations.
type QuoteMetrics struct {
	Calculations *prometheus.CounterVec
	Amount       prometheus.Histogram
}

// NewQuoteMetrics creates and registers the quote collectors. Collectors that
// are already registered with reg are reused.
func NewQuoteMetrics(namespace string, reg prometheus.Registerer) *QuoteMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &QuoteMetrics{
		Calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quote_calculations_total",
			Help:      "Count of cart total calculations by customer flags and outcome.",
		}, []string{"member", "coupon", "result"}),
		Amount: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "quote_total_amount",
			Help:      "Distribution of computed cart totals in currency units.",
			Buckets:   []float64{10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		}),
	}
	mustRegisterCollector(reg, m.Calculations, func(existing prometheus.Collector) {
		if v, ok := existing.(*prometheus.CounterVec); ok {
			m.Calculations = v
		}
	})
	mustRegisterCollector(reg, m.Amount, func(existing prometheus.Collector) {
		if v, ok := existing.(prometheus.Histogram); ok {
			m.Amount = v
		}
	})
	return m
}

// Observe records one calculation. Nil receivers are ignored.
func (m *QuoteMetrics) Observe(member, coupon bool, result string, amount float64) {
	if m == nil {
		return
	}
	m.Calculations.WithLabelValues(boolLabel(member), boolLabel(coupon), result).Inc()
	m.Amount.Observe(amount)
}

func boolLabel(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

func mustRegisterCollector(reg prometheus.Registerer, collector prometheus.Collector, reuse func(prometheus.Collector)) {
	if err := reg.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if reuse != nil {
				reuse(are.ExistingCollector)
			}
			return
		}
		panic(fmt.Errorf("register quote metric: %w", err))
	}
}
