package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters for the registration ledger and the event catalog lifecycle.
var (
	EventRegistrationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "event_registrations_total",
		Help: "Number of successful event registrations.",
	})
	EventUnregistrationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "event_unregistrations_total",
		Help: "Number of successful event unregistrations.",
	})
	EventsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "events_created_total",
		Help: "Number of events created.",
	})
	EventsPassedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "events_passed_total",
		Help: "Number of events marked as passed.",
	})
	EventsDeletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "events_deleted_total",
		Help: "Number of events deleted.",
	})
)
