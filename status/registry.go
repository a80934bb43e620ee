// Package status holds lock-free runtime metrics shared between the ticker and readers such as the HUD
package status

import (
	"slices"
	"strconv"
	"strings"
	"sync/atomic"
)

// Registry groups metric maps by value type
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
	Texts  *MetricMap[AtomicText]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
		Texts:  NewMetricMap[AtomicText](),
	}
}

// Metric is a formatted reading
type Metric struct {
	Key   string
	Value string
}

// Snapshot formats every metric, ordered by key
func (r *Registry) Snapshot() []Metric {
	out := make([]Metric, 0, r.Ints.Len()+r.Floats.Len()+r.Texts.Len())
	for _, k := range r.Ints.Keys() {
		out = append(out, Metric{k, strconv.FormatInt(r.Ints.Get(k).Load(), 10)})
	}
	for _, k := range r.Floats.Keys() {
		out = append(out, Metric{k, strconv.FormatFloat(r.Floats.Get(k).Load(), 'f', 2, 64)})
	}
	for _, k := range r.Texts.Keys() {
		out = append(out, Metric{k, r.Texts.Get(k).Load()})
	}
	slices.SortFunc(out, func(a, b Metric) int { return strings.Compare(a.Key, b.Key) })
	return out
}

// String renders the snapshot as space separated key=value pairs
func (r *Registry) String() string {
	var b strings.Builder
	for i, m := range r.Snapshot() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(m.Key)
		b.WriteByte('=')
		b.WriteString(m.Value)
	}
	return b.String()
}
