package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "whatsapp_ai_bridge"

// Outcome labels for NotificationsTotal.
const (
	OutcomeReplied      = "replied"
	OutcomeUnsupported  = "unsupported"
	OutcomeStatus       = "status"
	OutcomeDuplicate    = "duplicate"
	OutcomeUnrecognized = "unrecognized"
	OutcomeDeliveryFail = "delivery_failed"
)

var (
	// HandshakesTotal counts GET verification requests by result.
	HandshakesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "handshakes_total",
		Help:      "Webhook verification requests by result",
	}, []string{"result"})

	// NotificationsTotal counts POST notifications by outcome.
	NotificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Inbound notifications by processing outcome",
	}, []string{"outcome"})

	// CompletionFallbacksTotal counts replies replaced by the fallback text.
	CompletionFallbacksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "completion_fallbacks_total",
		Help:      "Replies where the AI completion failed and the fallback text was sent",
	})

	// ProcessingSeconds observes time spent handling one notification.
	ProcessingSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "notification_processing_seconds",
		Help:      "Time to process a notification end-to-end",
		Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
	})
)
