package portal

import (
	"errors"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records portal and pipeline activity in Prometheus collectors.
type Metrics struct {
	logins   *prometheus.CounterVec
	lookups  *prometheus.CounterVec
	rows     prometheus.Gauge
	subjects prometheus.Gauge
}

// NewMetrics registers the collectors on reg. If reg is nil, the default
// registerer is used. Already registered collectors are reused.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	logins := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "timetable_logins_total",
		Help: "Login attempts by outcome",
	}, []string{"outcome"})
	lookups := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "timetable_cache_lookups_total",
		Help: "Pipeline cache lookups by stage and hit",
	}, []string{"stage", "hit"})
	rows := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "timetable_roster_rows",
		Help: "Roster rows from the last load",
	})
	subjects := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "timetable_subjects",
		Help: "Subjects from the last load",
	})

	var err error
	if logins, err = register(reg, logins); err != nil {
		return nil, err
	}
	if lookups, err = register(reg, lookups); err != nil {
		return nil, err
	}
	if rows, err = register(reg, rows); err != nil {
		return nil, err
	}
	if subjects, err = register(reg, subjects); err != nil {
		return nil, err
	}
	return &Metrics{logins: logins, lookups: lookups, rows: rows, subjects: subjects}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

func (m *Metrics) Login(o Outcome) {
	m.logins.WithLabelValues(o.String()).Inc()
}

// CacheLookup implements pipeline.Recorder.
func (m *Metrics) CacheLookup(stage string, hit bool) {
	m.lookups.WithLabelValues(stage, strconv.FormatBool(hit)).Inc()
}

// RosterLoaded implements pipeline.Recorder.
func (m *Metrics) RosterLoaded(rows int, subjects int) {
	m.rows.Set(float64(rows))
	m.subjects.Set(float64(subjects))
}
