package mine_serv

import (
	"maps"
	"strings"
	"time"
)

// ----------------------------------------------------
// Job counters
// ----------------------------------------------------

// IncMetric bumps a counter by one.
func (s *Service) IncMetric(name string) {
	s.AddMetric(name, 1)
}

func (s *Service) AddMetric(name string, delta int64) {
	s.mu.Lock()
	s.metrics[name] += delta
	s.mu.Unlock()
}

func (s *Service) SetMetric(name string, value int64) {
	s.mu.Lock()
	s.metrics[name] = value
	s.mu.Unlock()
}

func (s *Service) ResetMetrics() {
	s.mu.Lock()
	s.metrics = make(map[string]int64)
	s.mu.Unlock()
}

// Metrics returns a snapshot of the counters. Phase timings are reported in
// microseconds under "<name>_us" (last run) and "<name>_us_total".
func (s *Service) Metrics() map[string]int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.metrics)
}

// ----------------------------------------------------
// Job recorder
// ----------------------------------------------------

// jobRecorder scopes counters of one kind of job, e.g. "mine.jobs".
type jobRecorder struct {
	service *Service
	prefix  string
}

// WithMetricPrefix returns a recorder that prefixes every name.
func (s *Service) WithMetricPrefix(prefix string) *jobRecorder {
	return &jobRecorder{
		service: s,
		prefix:  strings.TrimSuffix(prefix, ".") + ".",
	}
}

func (m *jobRecorder) Inc(name string) {
	m.service.IncMetric(m.prefix + name)
}

func (m *jobRecorder) Add(name string, delta int64) {
	m.service.AddMetric(m.prefix+name, delta)
}

func (m *jobRecorder) Set(name string, value int64) {
	m.service.SetMetric(m.prefix+name, value)
}

// Observe records one phase duration: the last value and a running total.
func (m *jobRecorder) Observe(phase string, d time.Duration) {
	us := d.Microseconds()
	key := m.prefix + phase + "_us"

	m.service.mu.Lock()
	m.service.metrics[key] = us
	m.service.metrics[key+"_total"] += us
	m.service.mu.Unlock()
}

// Phase starts timing phase; the returned func stops the clock, records the
// duration and returns it.
func (m *jobRecorder) Phase(phase string) func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		d := time.Since(start)
		m.Observe(phase, d)
		return d
	}
}

// Outcome counts the job as failed when *err is set. Deferred right after
// the job counter has been bumped.
func (m *jobRecorder) Outcome(err *error) {
	if *err != nil {
		m.Inc("failed")
		return
	}
	m.Inc("ok")
}
