package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts group and assignment activity.
type Metrics struct {
	groupsCreated      prometheus.Counter
	assignmentsCreated prometheus.Counter
	guestLookups       *prometheus.CounterVec
}

// NewMetrics registers the service metrics with reg. A nil registerer
// yields unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		groupsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "santa_groups_created_total",
			Help: "Groups created",
		}),
		assignmentsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "santa_assignments_created_total",
			Help: "Assignment tables computed; at most one per group",
		}),
		guestLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "santa_guest_lookups_total",
			Help: "Guest link lookups by outcome (ok, not_found)",
		}, []string{"result"}),
	}
}
