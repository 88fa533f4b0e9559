package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const namespace = "potion_stacker"

// Recorder counts click and pickup outcomes.
type Recorder struct {
	registry *prometheus.Registry

	clicks   *prometheus.CounterVec
	pickups  *prometheus.CounterVec
	absorbed prometheus.Counter
	reloads  *prometheus.CounterVec
}

// NewRecorder creates a Recorder with its own registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		clicks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "click_outcomes_total",
			Help:      "Drag-merge interactions by outcome.",
		}, []string{"result"}),
		pickups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pickup_outcomes_total",
			Help:      "Pickup consolidations by outcome.",
		}, []string{"result"}),
		absorbed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pickup_absorbed_items_total",
			Help:      "Items merged into existing stacks on pickup.",
		}),
		reloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settings_reloads_total",
			Help:      "Settings reloads by status.",
		}, []string{"status"}),
	}
	r.registry.MustRegister(r.clicks, r.pickups, r.absorbed, r.reloads)
	return r
}

// Click counts one drag-merge outcome.
func (r *Recorder) Click(result string) {
	r.clicks.WithLabelValues(result).Inc()
}

// Pickup counts one pickup outcome and the items it absorbed.
func (r *Recorder) Pickup(result string, absorbed int) {
	r.pickups.WithLabelValues(result).Inc()
	if absorbed > 0 {
		r.absorbed.Add(float64(absorbed))
	}
}

// Reload counts a settings reload.
func (r *Recorder) Reload(err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	r.reloads.WithLabelValues(status).Inc()
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Gather returns the current metric families.
func (r *Recorder) Gather() ([]*dto.MetricFamily, error) {
	return r.registry.Gather()
}
