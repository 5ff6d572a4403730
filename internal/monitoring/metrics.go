package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TicketsIssued = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tickets_issued_total",
			Help: "Total tickets issued, by category",
		},
		[]string{"type"},
	)

	CartConfirmations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cart_confirmations_total",
			Help: "Total cart confirmations",
		},
	)

	PlanningRegistrations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "planning_registrations_total",
			Help: "Total planning registrations",
		},
	)
)
