// README: Prometheus metrics for chat turns and the remote/local dual path.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ChatTurns = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "menuboard_chat_turns_total",
			Help: "Total number of chat turns handled",
		},
	)

	RemoteReplies = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "menuboard_remote_replies_total",
			Help: "Chat turns answered by the remote generation service",
		},
	)

	RemoteFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "menuboard_remote_failures_total",
			Help: "Remote generation failures by reason",
		},
		[]string{"reason"},
	)

	FallbackReplies = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "menuboard_fallback_replies_total",
			Help: "Chat turns answered by the local pipeline",
		},
	)

	RemoteDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "menuboard_remote_generation_seconds",
			Help: "Duration of remote generation calls in seconds",
		},
	)
)
