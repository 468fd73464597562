package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// EntriesCreated tracks total journal entries created.
var EntriesCreated = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "journal",
	Subsystem: "entries",
	Name:      "created_total",
	Help:      "Total journal entries created.",
})

// AIRuns tracks AI analysis attempts by outcome.
var AIRuns = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "journal",
	Subsystem: "ai",
	Name:      "runs_total",
	Help:      "Total AI analysis runs by outcome.",
}, []string{"outcome"})

// AIDuration tracks how long a full AI analysis run takes.
var AIDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Namespace: "journal",
	Subsystem: "ai",
	Name:      "run_duration_seconds",
	Help:      "Duration of AI analysis runs.",
	Buckets:   prometheus.DefBuckets,
})

// CreditsConsumed tracks total AI credits spent.
var CreditsConsumed = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "journal",
	Subsystem: "credits",
	Name:      "consumed_total",
	Help:      "Total AI credits consumed.",
})

// CreditsGranted tracks total AI credits granted through purchases.
var CreditsGranted = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "journal",
	Subsystem: "credits",
	Name:      "granted_total",
	Help:      "Total AI credits granted via completed purchases.",
})

// PaymentEvents tracks payment provider webhook deliveries by result.
var PaymentEvents = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "journal",
	Subsystem: "billing",
	Name:      "payment_events_total",
	Help:      "Total payment webhook events by result.",
}, []string{"result"})
