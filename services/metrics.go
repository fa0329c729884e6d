package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ticketsDispatched = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pos_tickets_dispatched_total",
		Help: "Kitchen tickets created, by destination.",
	}, []string{"destination"})

	paymentsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_payments_recorded_total",
		Help: "Payments recorded against orders.",
	})

	ordersClosed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_orders_closed_total",
		Help: "Orders fully settled and closed.",
	})
)
