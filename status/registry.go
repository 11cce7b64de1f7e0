// Package status collects runtime counters for the render loop and reports them on shutdown.
package status

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// Metric names written by the engine
const (
	Ticks        = "engine.ticks"
	KeyEvents    = "input.keys"
	Resizes      = "input.resizes"
	Repaints     = "render.repaints"
	CellsWritten = "render.cells"
	PeakFlushMs  = "render.flush_peak_ms"
)

// Registry groups counters and gauges by name
type Registry struct {
	Counters *MetricMap[atomic.Int64]
	Gauges   *MetricMap[Gauge]
}

func NewRegistry() *Registry {
	return &Registry{
		Counters: NewMetricMap[atomic.Int64](),
		Gauges:   NewMetricMap[Gauge](),
	}
}

// Counter is shorthand for Counters.Get
func (r *Registry) Counter(name string) *atomic.Int64 {
	return r.Counters.Get(name)
}

// Gauge is shorthand for Gauges.Get
func (r *Registry) Gauge(name string) *Gauge {
	return r.Gauges.Get(name)
}

func (r *Registry) Len() int {
	return r.Counters.Count() + r.Gauges.Count()
}

// Summary renders every metric as space-separated name=value pairs, counters first
func (r *Registry) Summary() string {
	var b strings.Builder
	sep := func() {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
	}
	r.Counters.Range(func(name string, c *atomic.Int64) {
		sep()
		fmt.Fprintf(&b, "%s=%d", name, c.Load())
	})
	r.Gauges.Range(func(name string, g *Gauge) {
		sep()
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(strconv.FormatFloat(g.Value(), 'f', 2, 64))
	})
	return b.String()
}
