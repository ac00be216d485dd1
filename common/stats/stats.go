// This package provides a small set of interfaces which build on and are
// backed by go-metrics. It records what a single elmdb invocation did on the
// wire: how many calls were made, how they ended and how long they took.
//
// Specifically, we provide the following:
// - A StatsReceiver object that can be passed down a call tree and scoped to each level.
// - The ability to specify a time.Duration precision when rendering latencies.
// - Flat JSON rendering of all instruments, for debug output.
//
// Original license: github.com/rcrowley/go-metrics/blob/master/LICENSE
package stats

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/rcrowley/go-metrics"
)

// For testing.
var Time StatsTime = DefaultStatsTime()

// Similar to the go-metrics registry but with most methods removed.
type StatsRegistry interface {
	// Gets an existing metric or registers the given one.
	GetOrRegister(string, interface{}) interface{}

	// Call the given function for each registered metric.
	Each(func(string, interface{}))
}

// A registry wrapper for metrics collected about remote calls.
//
// Hierarchical names are stored using a '/' path separator. Variadic name
// elements have '/' replaced by "_SLASH_" before they are used internally.
type StatsReceiver interface {
	// Return a stats receiver that will automatically namespace elements with
	// the given scope args.
	//
	//   statsReceiver.Scope("foo", "bar").Counter("baz")  // is equivalent to
	//   statsReceiver.Counter("foo", "bar", "baz")
	//
	Scope(scope ...string) StatsReceiver

	// Provides an event counter
	Counter(name ...string) Counter

	// Provides a histogram of call durations.
	Latency(name ...string) Latency

	// Construct a JSON object of every instrument.
	Render(pretty bool) []byte
}

// DefaultStatsReceiver is a small wrapper around a go-metrics registry, in millisecond precision.
func DefaultStatsReceiver() StatsReceiver {
	return &defaultStatsReceiver{
		registry:  metrics.NewRegistry(),
		precision: time.Millisecond,
	}
}

type defaultStatsReceiver struct {
	registry  StatsRegistry
	precision time.Duration
	scope     []string
}

func (s *defaultStatsReceiver) Scope(scope ...string) StatsReceiver {
	return &defaultStatsReceiver{s.registry, s.precision, s.scoped(scope...)}
}

func (s *defaultStatsReceiver) Counter(name ...string) Counter {
	return s.registry.GetOrRegister(s.scopedName(name...), newMetricCounter).(Counter)
}

func (s *defaultStatsReceiver) Latency(name ...string) Latency {
	// Can't do lazy instantiation since metrics.Registry can't cast a factory return val.
	return s.registry.GetOrRegister(s.scopedName(name...), newLatency().Precision(s.precision)).(Latency)
}

func (s *defaultStatsReceiver) Render(pretty bool) []byte {
	m := jsonMap{}
	s.registry.Each(func(name string, i interface{}) {
		switch inst := i.(type) {
		case Counter:
			m[name] = inst.Count()
		case Latency:
			marshalLatency(m, name, inst)
		}
	})

	var bytes []byte
	var err error
	if pretty {
		bytes, err = json.MarshalIndent(m, "", "  ")
	} else {
		bytes, err = json.Marshal(m)
	}
	if err != nil {
		panic("StatsRegistry bug, cannot be marshaled")
	}
	return bytes
}

// Append to existing scope and scrub slashes
func (s *defaultStatsReceiver) scoped(scope ...string) []string {
	out := make([]string, 0, len(s.scope)+len(scope))
	out = append(out, s.scope...)
	for _, e := range scope {
		out = append(out, strings.Replace(e, "/", "_SLASH_", -1))
	}
	return out
}

// Append to the existing scope and convert to slash-delimited string.
func (s *defaultStatsReceiver) scopedName(scope ...string) string {
	return strings.Join(s.scoped(scope...), "/")
}

// NilStats ignores all stats operations.
func NilStatsReceiver(scope ...string) StatsReceiver {
	return &nilStatsReceiver{}
}

type nilStatsReceiver struct{}

func (s *nilStatsReceiver) Scope(scope ...string) StatsReceiver { return s }
func (s *nilStatsReceiver) Counter(name ...string) Counter {
	return &metricCounter{metrics.NilCounter{}}
}
func (s *nilStatsReceiver) Latency(name ...string) Latency { return &nilLatency{} }
func (s *nilStatsReceiver) Render(pretty bool) []byte     { return []byte{} }

//
// Minimally mirror go-metrics instruments.
//

// Counter
type Counter interface {
	Count() int64
	Inc(int64)
}
type metricCounter struct{ metrics.Counter }

func newMetricCounter() Counter { return &metricCounter{metrics.NewCounter()} }

// Latency, backed by a Histogram of nanoseconds.
type Latency interface {
	Time() Latency // returns self.
	Stop()
	Count() int64
	GetPrecision() time.Duration
	Precision(time.Duration) Latency // returns self.
	Snapshot() metrics.Histogram
}
type metricLatency struct {
	metrics.Histogram
	start     time.Time
	precision time.Duration
}

func (l *metricLatency) Time() Latency { l.start = Time.Now(); return l }
func (l *metricLatency) Stop()         { l.Update(Time.Since(l.start).Nanoseconds()) }
func (l *metricLatency) GetPrecision() time.Duration {
	return l.precision
}
func (l *metricLatency) Precision(p time.Duration) Latency {
	if p < 1 {
		p = 1
	}
	l.precision = p
	return l
}
func newLatency() Latency {
	return &metricLatency{Histogram: metrics.NewHistogram(metrics.NewUniformSample(1000)), precision: time.Nanosecond}
}

type nilLatency struct{}

func (l *nilLatency) Time() Latency                   { return l }
func (l *nilLatency) Stop()                           {}
func (l *nilLatency) Count() int64                    { return 0 }
func (l *nilLatency) GetPrecision() time.Duration     { return 0 }
func (l *nilLatency) Precision(time.Duration) Latency { return l }
func (l *nilLatency) Snapshot() metrics.Histogram     { return metrics.NilHistogram{} }

type jsonMap map[string]interface{}

// Finagle style flattening: name.count, name.avg, name.min, name.max, name.p50, name.p99.
func marshalLatency(m jsonMap, name string, l Latency) {
	h := l.Snapshot()
	prec := float64(l.GetPrecision())
	m[name+".count"] = h.Count()
	if h.Count() == 0 {
		return
	}
	m[name+".avg"] = h.Mean() / prec
	m[name+".min"] = float64(h.Min()) / prec
	m[name+".max"] = float64(h.Max()) / prec
	ps := h.Percentiles([]float64{0.5, 0.99})
	m[name+".p50"] = ps[0] / prec
	m[name+".p99"] = ps[1] / prec
}
