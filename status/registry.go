// Package status holds live game metrics shared between the tick loop, the HUD debug panel and telemetry
package status

import "sync/atomic"

// Registry is the central metrics facade
// Systems cache pointers during construction; Update loops write directly to atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// Sample is a numeric view of one metric for export
type Sample struct {
	Key   string
	Value float64
}

// Numeric returns all bool, int and float metrics as float samples in key order per type
// Strings are not exportable as gauges and are skipped
func (r *Registry) Numeric() []Sample {
	out := make([]Sample, 0, r.Bools.Count()+r.Ints.Count()+r.Floats.Count())
	r.Bools.Range(func(key string, ptr *atomic.Bool) {
		v := 0.0
		if ptr.Load() {
			v = 1
		}
		out = append(out, Sample{Key: key, Value: v})
	})
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		out = append(out, Sample{Key: key, Value: float64(ptr.Load())})
	})
	r.Floats.Range(func(key string, ptr *AtomicFloat) {
		out = append(out, Sample{Key: key, Value: ptr.Get()})
	})
	return out
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}
