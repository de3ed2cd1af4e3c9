package middleware

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RLRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_limiter_requests_total",
			Help: "Total requests seen by the rate limiter",
		},
		[]string{"endpoint"},
	)
	RLBlocked = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_limiter_blocked_total",
			Help: "Total requests blocked by the rate limiter",
		},
		[]string{"endpoint"},
	)
	Verifications = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "verifications_total",
			Help: "Total verification requests by game and verdict",
		},
		[]string{"game", "verdict"},
	)
)

func init() {
	prometheus.MustRegister(RLRequests)
	prometheus.MustRegister(RLBlocked)
	prometheus.MustRegister(Verifications)
}
