package notify

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/udisondev/skillgrowth/internal/game/skill"
)

// Metric names.
const (
	MetricNameNotificationsTotal = "skillgrowth_notifications_total"
	MetricNameLevelsTotal        = "skillgrowth_skill_levels_total"
	MetricNameSoundsTotal        = "skillgrowth_sounds_total"
	MetricNameInputHaltsTotal    = "skillgrowth_input_halts_total"

	LabelKind = "kind"
)

// Metrics counts presentation requests.
type Metrics struct {
	notifications *prometheus.CounterVec
	levels        *prometheus.CounterVec
	sounds        prometheus.Counter
	halts         prometheus.Counter
}

// NewMetrics registers counters on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		notifications: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricNameNotificationsTotal,
				Help: "Skill notifications emitted, by kind.",
			},
			[]string{LabelKind},
		),
		levels: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricNameLevelsTotal,
				Help: "Skill levels gained or lost, by kind.",
			},
			[]string{LabelKind},
		),
		sounds: f.NewCounter(prometheus.CounterOpts{
			Name: MetricNameSoundsTotal,
			Help: "Sound cues requested.",
		}),
		halts: f.NewCounter(prometheus.CounterOpts{
			Name: MetricNameInputHaltsTotal,
			Help: "Input halts requested.",
		}),
	}
}

func (m *Metrics) PlaySound(string) { m.sounds.Inc() }
func (m *Metrics) HaltInput()       { m.halts.Inc() }

func (m *Metrics) Notify(n skill.Notification) {
	kind := n.Kind.String()
	m.notifications.WithLabelValues(kind).Inc()
	if n.Delta > 0 {
		m.levels.WithLabelValues(kind).Add(float64(n.Delta))
	}
}
