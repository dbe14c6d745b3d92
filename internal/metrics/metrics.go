// Package metrics exposes the bot's Prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	RemindersActive     prometheus.Gauge
	ReminderFires       prometheus.Counter
	ReminderSendFailure prometheus.Counter
	Commands            *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		RemindersActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "hoabot",
			Name:      "reminders_active",
			Help:      "Number of chats with a daily reminder installed.",
		}),
		ReminderFires: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hoabot",
			Name:      "reminder_fires_total",
			Help:      "Daily reminders fired.",
		}),
		ReminderSendFailure: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hoabot",
			Name:      "reminder_send_failures_total",
			Help:      "Fired reminders whose message could not be delivered.",
		}),
		Commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hoabot",
			Name:      "commands_total",
			Help:      "Bot commands handled, by command name.",
		}, []string{"command"}),
	}

	reg.MustRegister(
		m.RemindersActive,
		m.ReminderFires,
		m.ReminderSendFailure,
		m.Commands,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Handler serves the collectors in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
