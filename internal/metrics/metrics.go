// Package metrics holds the prometheus collectors for the forge
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace prefixes every metric name
const Namespace = "forge"

// Metrics collects forge activity. A nil *Metrics is valid and records nothing.
type Metrics struct {
	// Generated items by rarity and slot
	ItemsGeneratedTotal *prometheus.CounterVec

	// Currency operations by operation and result (success or failure reason)
	CurrencyOperationsTotal *prometheus.CounterVec

	// Stats cache lookups by result (hit/miss)
	StatsCacheLookupsTotal *prometheus.CounterVec

	// Damage calculations by skill
	DamageCalculationsTotal *prometheus.CounterVec
}

// New registers the collectors with the default registerer
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry registers the collectors with a custom registerer
func NewWithRegistry(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)

	return &Metrics{
		ItemsGeneratedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Subsystem: "items",
				Name:      "generated_total",
				Help:      "Total number of generated equipment instances by rarity and slot",
			},
			[]string{"rarity", "slot"},
		),

		CurrencyOperationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Subsystem: "currency",
				Name:      "operations_total",
				Help:      "Total number of currency operations by operation and result",
			},
			[]string{"operation", "result"},
		),

		StatsCacheLookupsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Subsystem: "stats",
				Name:      "cache_lookups_total",
				Help:      "Total number of player stats cache lookups by result (hit/miss)",
			},
			[]string{"result"},
		),

		DamageCalculationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Subsystem: "damage",
				Name:      "calculations_total",
				Help:      "Total number of damage calculations by skill",
			},
			[]string{"skill"},
		),
	}
}

// RecordItemGenerated counts a generated item
func (m *Metrics) RecordItemGenerated(rarity, slot string) {
	if m == nil {
		return
	}
	m.ItemsGeneratedTotal.WithLabelValues(rarity, slot).Inc()
}

// RecordCurrencyOperation counts a currency operation; result is "success" or the failure reason
func (m *Metrics) RecordCurrencyOperation(operation, result string) {
	if m == nil {
		return
	}
	m.CurrencyOperationsTotal.WithLabelValues(operation, result).Inc()
}

// RecordCacheLookup counts a stats cache hit or miss
func (m *Metrics) RecordCacheLookup(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.StatsCacheLookupsTotal.WithLabelValues(result).Inc()
}

// RecordDamageCalculation counts a damage calculation
func (m *Metrics) RecordDamageCalculation(skillID string) {
	if m == nil {
		return
	}
	m.DamageCalculationsTotal.WithLabelValues(skillID).Inc()
}
